package bitvec_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/fixpoint"
)

// ExampleBitVector_Union demonstrates change detection for a fixed-point loop.
func ExampleBitVector_Union() {
	a := bitvec.FromElem(200, false)
	b := bitvec.FromElem(200, true)

	fmt.Println(a.Union(b))
	fmt.Println(a.Union(b))
	// Output:
	// true
	// false
}

// ExampleBitVector_UnionU32 shows that the word-at-a-time union agrees with Union.
func ExampleBitVector_UnionU32() {
	a := bitvec.FromElem(64, true)
	b := bitvec.FromElem(64, true)

	fmt.Println(a.UnionU32(b), a.Len())
	// Output: false 64
}

// Example_fixpoint propagates a fully set vector along a chain until no
// union reports a change.
func Example_fixpoint() {
	values := []*bitvec.BitVector{
		bitvec.FromElem(1000, true),
		bitvec.FromElem(1000, false),
		bitvec.FromElem(1000, false),
	}

	stats, err := fixpoint.Solve(context.Background(), fixpoint.Problem[*bitvec.BitVector]{
		Name:   "chain",
		Values: values,
		Edges:  []fixpoint.Edge{{From: 1, To: 2}, {From: 0, To: 1}},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("sweeps=%d changes=%d\n", stats.Sweeps, stats.Changes)
	// Output: sweeps=3 changes=2
}
