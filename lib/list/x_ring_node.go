package list

import (
	"github.com/benz9527/xring/lib/infra"
)

// Node is a detached snapshot of one live ring slot. Value is copied at
// snapshot time, while the slot index keeps aliasing the live arena.
// That asymmetry is what lets a freely copied handle still navigate the
// ring and write back into it.
type Node[T comparable] struct {
	idx     int32
	listRef *xRingList[T]
	Value   T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

// live resolves the snapshot back to its live arena slot.
// A zero handle or an index outside the arena means the handle never
// came from a healthy ring, which maps to ErrXRingBrokenLink.
func (n Node[T]) live() (int32, error) {
	if n.listRef == nil || n.idx < 0 || int(n.idx) >= len(n.listRef.nodes) {
		return ringNilIdx, infra.WrapErrorStack(ErrXRingBrokenLink)
	}
	return n.idx, nil
}

// Next returns a fresh snapshot of the live node after this one.
func (n Node[T]) Next() (Node[T], error) {
	idx, err := n.live()
	if err != nil {
		return Node[T]{}, err
	}
	fwd := n.listRef.nodes[idx].next
	if fwd < 0 || int(fwd) >= len(n.listRef.nodes) {
		return Node[T]{}, infra.WrapErrorStack(ErrXRingBrokenLink)
	}
	return n.listRef.snapshot(fwd), nil
}

// Prev returns a fresh snapshot of the live node before this one.
func (n Node[T]) Prev() (Node[T], error) {
	idx, err := n.live()
	if err != nil {
		return Node[T]{}, err
	}
	bwd := n.listRef.nodes[idx].prev
	if bwd < 0 || int(bwd) >= len(n.listRef.nodes) {
		return Node[T]{}, infra.WrapErrorStack(ErrXRingBrokenLink)
	}
	return n.listRef.snapshot(bwd), nil
}

// Mutate overwrites the live node's value, not the snapshot's copy.
func (n Node[T]) Mutate(v T) error {
	if n.listRef == nil {
		return infra.WrapErrorStack(ErrXRingBrokenLink)
	}
	return n.listRef.Mutate(n, v)
}
