// File: enumerate/example_test.go
package enumerate_test

import (
	"fmt"

	"github.com/katalvlaran/polycube/cell"
	"github.com/katalvlaran/polycube/enumerate"
)

// ExampleCount reproduces the classic sequence of free polyomino counts:
// one monomino, one domino, two trominoes, five tetrominoes.
func ExampleCount() {
	for n := 1; n <= 4; n++ {
		count, _ := enumerate.Count(n)
		fmt.Printf("size %d: %d\n", n, count)
	}
	// Output:
	// size 1: 1
	// size 2: 1
	// size 3: 2
	// size 4: 5
}

// ExampleGenerate renders the two trominoes: the straight bar and the bend.
func ExampleGenerate() {
	res, _ := enumerate.Generate(3, enumerate.WithShapes())
	for _, s := range res.Generation(3) {
		fmt.Println(s)
	}
	// Output:
	// O
	// O
	// O
	//
	// OO
	// O.
}

// ExampleGenerate_dim3 counts free polycubes under the full cube group.
func ExampleGenerate_dim3() {
	res, _ := enumerate.Generate(4, enumerate.WithDim(cell.Dim3))
	fmt.Println(res.Counts)
	// Output:
	// [1 1 2 7]
}
