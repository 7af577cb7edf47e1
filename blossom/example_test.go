package blossom_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/blossom"
	"github.com/katalvlaran/lvlath/graph"
)

// ExampleMatch finds a minimum weight perfect matching on a 4-cycle, one of
// whose two possible perfect matchings costs less than the other.
func ExampleMatch() {
	g := graph.New[int]()
	for i := 1; i <= 4; i++ {
		g.AddVertex(i)
	}

	table := make(map[graph.EdgeID]float64)
	add := func(u, v int, w float64) {
		e, _ := g.AddEdge(u, v)
		table[e.ID] = w
	}
	add(1, 2, 7)
	add(2, 3, 4)
	add(3, 4, 3)
	add(4, 1, 4)

	view := graph.NewWeightedView[int](g, table)

	m, _, err := blossom.Match[int](g, view, blossom.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Pairs[1] == 4 || m.Pairs[1] == 2)
	fmt.Println(m.TotalWeight)
	// Output:
	// true
	// 8
}
