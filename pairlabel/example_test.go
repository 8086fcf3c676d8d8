package pairlabel_test

import (
	"fmt"

	"github.com/hernandezj1/QuantumRandomWalks/pairlabel"
)

// ExampleFormat demonstrates the fixed-width encoding for a 5-node graph
// (three bits per node index).
func ExampleFormat() {
	width := pairlabel.PairBits(5)
	fmt.Println(width)
	fmt.Println(pairlabel.Format(pairlabel.Pair{I: 1, J: 2}, width))
	// Output:
	// 3
	// 001 010
}

// ExampleParse demonstrates the tagged decode: well-formed labels yield a
// pair, everything else reports ok=false and is left to pass through.
func ExampleParse() {
	if p, ok := pairlabel.Parse("001 010"); ok {
		fmt.Println(pairlabel.Decimal(p))
	}
	if _, ok := pairlabel.Parse("Time"); !ok {
		fmt.Println("Time is not a pair label")
	}
	// Output:
	// 1-2
	// Time is not a pair label
}
