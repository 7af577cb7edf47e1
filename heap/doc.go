// Package heap implements an addressable, mergeable pairing heap: insert,
// find-min, delete-min, decrease-key, delete and meld are all supported
// with a stable Handle that survives meld without the caller re-walking
// the structure.
//
// What
//
//   - A two-pass (left-to-right pair, then right-to-left fold) pairing
//     heap, giving amortized O(log n) Insert/DeleteMin/DecreaseKey/Meld and
//     O(1) FindMin.
//   - Meld is destructive: the absorbed heap can no longer accept Insert,
//     but its previously issued handles keep working against the merged
//     structure.
//   - Handle validity across Meld is provided by a tiny path-compressed
//     union-find (backed by github.com/spakin/disjoint) mapping each
//     heap's identity element to whichever Heap currently owns it, rather
//     than caching the owning *Heap pointer directly in the handle.
//
// Why
//
//   - package blossom needs exactly this: every tree, and every pair of
//     trees joined by a TreeEdge, owns one or more heaps of boundary edges
//     keyed by slack (or blossom dual), with handles held by Edge/Node
//     values elsewhere in the solver for later deletion. Meld lets heaps
//     of one Registry combine without invalidating such handles; package
//     blossom itself does not call Meld (its augment moves edges between
//     heaps one at a time).
//
// Complexity (n = heap size)
//
//   - Insert, DecreaseKey, Delete, Meld: amortized O(log n).
//   - FindMin: O(1).
//   - DeleteMin: amortized O(log n), via two-pass pairing of the root's
//     children.
//
// Errors
//
//   - ErrHeapMelded    if Insert/Meld is attempted on an already-absorbed heap.
//   - ErrInvalidHandle if a handle is used after its node was deleted.
//   - ErrKeyNotDecreased if DecreaseKey's new key is worse than the old one
//     (an equal key is accepted).
//   - ErrComparatorMismatch if melding two heaps built with different Order.
package heap
