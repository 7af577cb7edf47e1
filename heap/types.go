package heap

import (
	"errors"
	"sync"

	"github.com/spakin/disjoint"
)

// Sentinel errors for heap operations.
var (
	// ErrHeapMelded indicates an operation (Insert, or melding again) was
	// attempted on a heap that has already been absorbed by another via Meld.
	ErrHeapMelded = errors.New("heap: heap already melded")

	// ErrInvalidHandle indicates a handle was used after its node was
	// removed from the heap (by Delete or DeleteMin).
	ErrInvalidHandle = errors.New("heap: invalid handle")

	// ErrKeyNotDecreased indicates DecreaseKey was called with a new key
	// that is worse (by the heap's Order) than the current one; an equal
	// key is accepted.
	ErrKeyNotDecreased = errors.New("heap: key not decreased")

	// ErrComparatorMismatch indicates Meld was attempted between two heaps
	// built with different Order values.
	ErrComparatorMismatch = errors.New("heap: comparators of melding heaps differ")
)

// Order selects the heap's priority direction.
type Order int

const (
	// MinOrder makes FindMin/DeleteMin return the smallest key (the
	// convention used throughout package blossom: slack and blossom dual
	// are both "smaller is more urgent").
	MinOrder Order = iota

	// MaxOrder makes FindMin/DeleteMin return the largest key.
	MaxOrder
)

// better reports whether key a should sit closer to the root than key b.
func (o Order) better(a, b float64) bool {
	if o == MaxOrder {
		return a > b
	}

	return a < b
}

// node is one element of the pairing-heap tree. Nodes are never recreated
// across a meld; only their parent/child/sibling links change, so a Handle
// holding *node[T] remains valid structurally for the lifetime of the value.
type node[T any] struct {
	key   float64
	value T

	parent      *node[T]
	firstChild  *node[T]
	nextSibling *node[T]
	prevSibling *node[T]

	// owner is the disjoint-set element identifying the Heap this node's
	// handle was originally issued against. The Handle carries the same
	// element and resolves its *current* owning Heap by calling Find() on
	// it through the registry, never by caching a *Heap pointer (see
	// Handle.owningHeap).
	owner *disjoint.Element

	removed bool
}

// Registry maps a heap-identity element to the Heap instance it currently
// designates. Heaps meant to ever meld with one another must share a
// Registry (pass it to New, or obtain it via Heap.Registry after creation).
// This mirrors the solver's "single owning container" discipline: one
// blossom.State creates one Registry per heap family (e.g., one for all
// per-tree heaps) and threads it through every Heap it allocates.
type Registry[T any] struct {
	mu sync.Mutex
	m  map[*disjoint.Element]*Heap[T]
}

// NewRegistry creates an empty Registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{m: make(map[*disjoint.Element]*Heap[T])}
}

func (r *Registry[T]) register(e *disjoint.Element, h *Heap[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[e] = h
}

func (r *Registry[T]) resolve(e *disjoint.Element) *Heap[T] {
	rep := e.Find()

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.m[rep]
}

// Heap is an addressable, mergeable pairing heap over values of type T,
// keyed by a float64 priority.
type Heap[T any] struct {
	order Order
	reg   *Registry[T]
	elem  *disjoint.Element

	root   *node[T]
	size   int
	melded bool
}

// New creates an empty Heap with the given Order, registered in reg. If reg
// is nil, a fresh Registry is created (appropriate for a heap that will
// never meld with another); pass a shared Registry when several heaps are
// expected to meld into one another over their lifetime.
func New[T any](order Order, reg *Registry[T]) *Heap[T] {
	if reg == nil {
		reg = NewRegistry[T]()
	}

	h := &Heap[T]{order: order, reg: reg, elem: disjoint.NewElement()}
	reg.register(h.elem, h)

	return h
}

// Handle addresses one value inside some Heap (possibly melded elsewhere
// since the handle was issued). It is the only deletable/decreasable
// reference to that value.
type Handle[T any] struct {
	n    *node[T]
	reg  *Registry[T]
	elem *disjoint.Element
}

// owningHeap resolves the Heap currently responsible for h's node, via a
// path-compressing Find() through the handle's Registry (spakin/disjoint
// compresses the union-find chain on every Find call).
func (h *Handle[T]) owningHeap() *Heap[T] {
	return h.reg.resolve(h.elem)
}

// Value returns the value addressed by h. Safe to call even if h has since
// been deleted (the node retains its last value); check validity via the
// owning Heap's Delete/DecreaseKey return value if that matters.
func (h *Handle[T]) Value() T { return h.n.value }

// Key returns the current priority addressed by h.
func (h *Handle[T]) Key() float64 { return h.n.key }
