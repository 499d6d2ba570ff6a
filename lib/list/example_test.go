package list_test

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/benz9527/xring/lib/list"
)

func ExampleRingList() {
	ring := list.NewRingList[int]()
	for i := 1; i < 10; i++ {
		ring.Add(i)
	}

	// Chain next and prev freely from any snapshot.
	n := lo.Must(ring.Head())
	for i := 0; i < 3; i++ {
		n = lo.Must(n.Next())
	}
	for i := 0; i < 3; i++ {
		n = lo.Must(n.Prev())
	}
	fmt.Println("Chained back to:", n.Value)

	// Walk forward, quadrupling every live value through its snapshot.
	it := ring.Iter()
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		if lo.Must(ring.IsHead(n)) {
			fmt.Println("Head:", n.Value)
		} else if lo.Must(ring.IsTail(n)) {
			fmt.Println("Tail:", n.Value)
		}
		_ = n.Mutate(4 * n.Value)
	}

	// Walk backward over the mutated ring.
	it = ring.Iter()
	for n, ok := it.NextBack(); ok; n, ok = it.NextBack() {
		if lo.Must(ring.IsHead(n)) {
			fmt.Println("Head:", n.Value)
		} else if lo.Must(ring.IsTail(n)) {
			fmt.Println("Tail:", n.Value)
		}
	}

	// Output:
	// Chained back to: 1
	// Head: 1
	// Tail: 9
	// Tail: 36
	// Head: 4
}
