package list

// RingIterator is a one-shot double-ended cursor over the live ring.
// It is anchored to the head captured at construction: a traversal ends
// when a step would land back on that anchor. Once exhausted it yields
// nothing more; obtain a fresh iterator to traverse again.
//
// Pure-forward and pure-backward traversals are the supported modes.
// Next and NextBack share the single cursor, so interleaving them in
// one traversal is unspecified.
type RingIterator[T comparable] struct {
	listRef        *xRingList[T]
	anchor, cursor int32
}

// Next yields a snapshot of the node under the cursor, then advances
// along the live forward links.
func (it *RingIterator[T]) Next() (Node[T], bool) {
	if it.cursor == ringNilIdx {
		return Node[T]{}, false
	}
	out := it.listRef.snapshot(it.cursor)
	if fwd := it.listRef.nodes[it.cursor].next; fwd == it.anchor {
		it.cursor = ringNilIdx
	} else {
		it.cursor = fwd
	}
	return out, true
}

// NextBack steps the cursor backward along the live links and yields
// the node it lands on. Note the asymmetry with Next: the yielded
// snapshot is the destination of the step, not the node the cursor
// left behind.
func (it *RingIterator[T]) NextBack() (Node[T], bool) {
	if it.cursor == ringNilIdx {
		return Node[T]{}, false
	}
	bwd := it.listRef.nodes[it.cursor].prev
	if bwd == it.anchor {
		it.cursor = ringNilIdx
	} else {
		it.cursor = bwd
	}
	return it.listRef.snapshot(bwd), true
}
