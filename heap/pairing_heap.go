package heap

import "github.com/spakin/disjoint"

// clearLinks detaches n from any parent/sibling links, leaving it a root.
func clearLinks[T any](n *node[T]) {
	n.parent = nil
	n.nextSibling = nil
	n.prevSibling = nil
}

// meld links two root trees, the better-keyed one becoming parent of the
// other, and returns the new root. Either argument may be nil.
func (h *Heap[T]) meld(a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	var top, bottom *node[T]
	if h.order.better(a.key, b.key) {
		top, bottom = a, b
	} else {
		top, bottom = b, a
	}

	bottom.parent = top
	bottom.nextSibling = top.firstChild
	bottom.prevSibling = nil
	if top.firstChild != nil {
		top.firstChild.prevSibling = bottom
	}
	top.firstChild = bottom

	return top
}

// pair performs the two-pass pairing merge over a sibling list: left-to-right
// pairing, then right-to-left folding of the resulting list.
func (h *Heap[T]) pair(first *node[T]) *node[T] {
	if first == nil || first.nextSibling == nil {
		if first != nil {
			clearLinks(first)
		}

		return first
	}

	a := first
	b := first.nextSibling
	rest := b.nextSibling

	clearLinks(a)
	clearLinks(b)

	return h.meld(h.meld(a, b), h.pair(rest))
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// Count returns the number of elements currently in the heap.
func (h *Heap[T]) Count() int { return h.size }

// Order returns the heap's priority direction.
func (h *Heap[T]) Order() Order { return h.order }

// Registry returns the Registry this heap was created with, so callers can
// create further heaps meant to meld with it.
func (h *Heap[T]) Registry() *Registry[T] { return h.reg }

// Insert adds value keyed by key and returns a Handle addressing it.
// Fails with ErrHeapMelded if this heap has been absorbed by another.
// Complexity: O(1) worst case (a single meld with the current root).
func (h *Heap[T]) Insert(key float64, value T) (*Handle[T], error) {
	if h.melded {
		return nil, ErrHeapMelded
	}

	n := &node[T]{key: key, value: value, owner: h.elem}
	h.root = h.meld(h.root, n)
	h.size++

	return &Handle[T]{n: n, reg: h.reg, elem: h.elem}, nil
}

// FindMin returns a Handle to the minimal (by Order) element without
// removing it. Complexity: O(1).
func (h *Heap[T]) FindMin() (*Handle[T], bool) {
	if h.root == nil {
		return nil, false
	}

	return &Handle[T]{n: h.root, reg: h.reg, elem: h.elem}, true
}

// DeleteMin removes and returns the minimal (by Order) element.
// Complexity: amortized O(log n).
func (h *Heap[T]) DeleteMin() (*Handle[T], bool) {
	if h.root == nil {
		return nil, false
	}

	removed := h.root
	children := removed.firstChild
	removed.firstChild = nil
	removed.removed = true
	h.root = h.pair(children)
	h.size--

	return &Handle[T]{n: removed, reg: h.reg, elem: h.elem}, true
}

// detach splices n out of its parent's child list, leaving the rest of the
// tree intact. n keeps its own children and its parent/sibling fields;
// callers clear or re-pair those themselves.
func detach[T any](n *node[T]) {
	switch {
	case n.parent == nil:
		// n is already a root; nothing to splice out of a parent list.
	case n.prevSibling != nil:
		n.prevSibling.nextSibling = n.nextSibling
		if n.nextSibling != nil {
			n.nextSibling.prevSibling = n.prevSibling
		}
	default:
		n.parent.firstChild = n.nextSibling
		if n.nextSibling != nil {
			n.nextSibling.prevSibling = nil
		}
	}
}

// DecreaseKey lowers (per Order, "improves") the key addressed by handle to
// newKey. Fails with ErrKeyNotDecreased if newKey is worse (per Order) than
// the current key, or ErrInvalidHandle if handle's node was already removed.
// A newKey equal to the current key is accepted.
// Complexity: amortized O(log n).
func (h *Handle[T]) DecreaseKey(newKey float64) error {
	owner := h.owningHeap()
	if h.n.removed {
		return ErrInvalidHandle
	}
	if !owner.order.better(newKey, h.n.key) && newKey != h.n.key {
		return ErrKeyNotDecreased
	}

	h.n.key = newKey

	if h.n.parent == nil {
		// Already a root (or the sole tree); nothing to re-splice.
		return nil
	}

	detach(h.n)
	clearLinks(h.n)
	owner.root = owner.meld(owner.root, h.n)

	return nil
}

// Delete removes the value addressed by handle from its owning heap,
// wherever that heap currently lives after any melds. Fails with
// ErrInvalidHandle if the node was already removed.
// Complexity: amortized O(log n).
func (h *Handle[T]) Delete() error {
	owner := h.owningHeap()
	if h.n.removed {
		return ErrInvalidHandle
	}

	if h.n.parent == nil && h.n != owner.root {
		// Defensive: a root-less node that isn't the tracked root implies
		// bookkeeping corruption elsewhere; treat as already removed.
		return ErrInvalidHandle
	}

	if h.n == owner.root {
		children := h.n.firstChild
		h.n.firstChild = nil
		owner.root = owner.pair(children)
	} else {
		children := h.n.firstChild
		detach(h.n)
		h.n.firstChild = nil
		owner.root = owner.meld(owner.root, owner.pair(children))
	}

	h.n.removed = true
	owner.size--

	return nil
}

// Clear empties the heap in O(1), dropping all outstanding handles'
// validity (they will report ErrInvalidHandle on next use... except Clear
// cannot retroactively mark every node removed without a traversal, so by
// contract callers must not use handles issued before a Clear).
func (h *Heap[T]) Clear() {
	h.root = nil
	h.size = 0
}

// Meld destructively absorbs other into h: other's elements become h's,
// other becomes unusable for further Insert, and handles previously issued
// against other continue to resolve correctly to h (or wherever h is later
// melded into) via the Registry-backed union-find.
//
// Fails with ErrComparatorMismatch if h.order != other.order, or
// ErrHeapMelded if other was already melded.
// Complexity: O(1) plus the cost of one meld() call.
func (h *Heap[T]) Meld(other *Heap[T]) error {
	if other == h {
		return nil
	}
	if h.melded || other.melded {
		return ErrHeapMelded
	}
	if h.order != other.order {
		return ErrComparatorMismatch
	}

	disjoint.Union(h.elem, other.elem)
	// Whichever of the two elements Union makes the new representative,
	// both keys must resolve to h from now on.
	h.reg.register(h.elem, h)
	h.reg.register(other.elem, h)
	h.root = h.meld(h.root, other.root)
	h.size += other.size

	other.melded = true
	other.root = nil
	other.size = 0

	return nil
}
