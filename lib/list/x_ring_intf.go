package list

// Note that the ring list is not thread safe.
// It is a teaching-oriented container: every public read hands out a
// detached value snapshot instead of a live pointer, and the snapshot
// can still navigate and mutate the live ring through its stable slot
// identity.

// RingList is a circular doubly linked list. The next/prev links of a
// non-empty ring always form exactly one cycle over all elements, with
// head.prev == tail and tail.next == head.
type RingList[T comparable] interface {
	Len() int64
	// Add inserts value v as the new tail, keeping the cycle closed.
	Add(v T)
	// Head returns a snapshot of the current head, or ErrXRingEmpty.
	Head() (Node[T], error)
	// Tail returns a snapshot of the current tail, or ErrXRingEmpty.
	Tail() (Node[T], error)
	// Mutate overwrites the live value behind snapshot n, not the
	// snapshot's own detached copy.
	Mutate(n Node[T], v T) error
	// IsHead reports whether the live node behind n is the current head.
	// A valid snapshot of another ring is false, not an error.
	IsHead(n Node[T]) (bool, error)
	// IsTail reports whether the live node behind n is the current tail.
	IsTail(n Node[T]) (bool, error)
	// Iter returns a one-shot double-ended iterator anchored at the
	// current head.
	Iter() *RingIterator[T]
	// Foreach visits every element from head to tail.
	Foreach(fn func(idx int64, n Node[T]))
	// ReverseForeach visits every element from tail to head.
	ReverseForeach(fn func(idx int64, n Node[T]))
}
