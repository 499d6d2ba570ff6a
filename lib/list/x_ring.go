package list

import (
	"errors"

	"github.com/benz9527/xring/lib/infra"
)

var (
	ErrXRingEmpty       = errors.New("[x-ring] there is no element")
	ErrXRingBrokenLink  = errors.New("[x-ring] circular link is absent")
	ErrXRingForeignNode = errors.New("[x-ring] node belongs to another ring")
)

const ringNilIdx int32 = -1

var _ RingList[struct{}] = (*xRingList[struct{}])(nil) // Type check assertion

// xRingList stores all nodes in one growable arena. Links are stable
// slot indices instead of pointers, so the cycle carries no reference
// loops and a copied handle keeps a usable identity for free.
// There is no removal, hence slots are never reclaimed individually.
type xRingList[T comparable] struct {
	nodes      []xRingNode[T]
	head, tail int32
}

type xRingNode[T comparable] struct {
	value      T
	next, prev int32
}

func NewRingList[T comparable]() RingList[T] {
	return &xRingList[T]{
		head: ringNilIdx,
		tail: ringNilIdx,
	}
}

func (l *xRingList[T]) Len() int64 {
	return int64(len(l.nodes))
}

func (l *xRingList[T]) Add(v T) {
	idx := int32(len(l.nodes))
	if l.head == ringNilIdx {
		// First element closes the cycle on itself.
		l.nodes = append(l.nodes, xRingNode[T]{value: v, next: idx, prev: idx})
		l.head, l.tail = idx, idx
		return
	}

	l.nodes = append(l.nodes, xRingNode[T]{value: v, next: l.head, prev: l.tail})
	l.nodes[l.head].prev = idx
	l.nodes[l.tail].next = idx
	l.tail = idx
}

// snapshot copies the value of slot idx into a fresh handle.
func (l *xRingList[T]) snapshot(idx int32) Node[T] {
	return Node[T]{
		Value:   l.nodes[idx].value,
		idx:     idx,
		listRef: l,
	}
}

func (l *xRingList[T]) Head() (Node[T], error) {
	if l.head == ringNilIdx {
		return Node[T]{}, infra.WrapErrorStack(ErrXRingEmpty)
	}
	return l.snapshot(l.head), nil
}

func (l *xRingList[T]) Tail() (Node[T], error) {
	if l.tail == ringNilIdx {
		return Node[T]{}, infra.WrapErrorStack(ErrXRingEmpty)
	}
	return l.snapshot(l.tail), nil
}

func (l *xRingList[T]) Mutate(n Node[T], v T) error {
	idx, err := n.live()
	if err != nil {
		return err
	}
	if n.listRef != l {
		// Writing through a foreign handle would hit the wrong arena.
		return infra.WrapErrorStack(ErrXRingForeignNode)
	}
	l.nodes[idx].value = v
	return nil
}

func (l *xRingList[T]) IsHead(n Node[T]) (bool, error) {
	idx, err := n.live()
	if err != nil {
		return false, err
	}
	return n.listRef == l && idx == l.head, nil
}

func (l *xRingList[T]) IsTail(n Node[T]) (bool, error) {
	idx, err := n.live()
	if err != nil {
		return false, err
	}
	return n.listRef == l && idx == l.tail, nil
}

func (l *xRingList[T]) Iter() *RingIterator[T] {
	return &RingIterator[T]{
		listRef: l,
		anchor:  l.head,
		cursor:  l.head,
	}
}

func (l *xRingList[T]) Foreach(fn func(idx int64, n Node[T])) {
	it := l.Iter()
	for idx := int64(0); ; idx++ {
		n, ok := it.Next()
		if !ok {
			return
		}
		fn(idx, n)
	}
}

func (l *xRingList[T]) ReverseForeach(fn func(idx int64, n Node[T])) {
	it := l.Iter()
	for idx := int64(0); ; idx++ {
		n, ok := it.NextBack()
		if !ok {
			return
		}
		fn(idx, n)
	}
}
