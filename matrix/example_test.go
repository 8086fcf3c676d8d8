package matrix_test

import (
	"fmt"

	"github.com/hernandezj1/QuantumRandomWalks/matrix"
)

// ExampleNewAdjacency builds the directed 3-node path 0→1→2 and queries one
// edge in each orientation.
func ExampleNewAdjacency() {
	adj, err := matrix.NewAdjacency([][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	forward, _ := adj.At(0, 1)
	backward, _ := adj.At(1, 0)
	fmt.Printf("0→1: %g\n1→0: %g\n", forward, backward)
	// Output:
	// 0→1: 1
	// 1→0: 0
}
