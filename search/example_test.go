package search_test

import (
	"fmt"

	"github.com/katalvlaran/upword/search"
	"github.com/katalvlaran/upword/word"
)

// ExampleSearch finds every binary upword for windows of length 4 that the
// single-wildcard-per-window placement can reach from "0".
func ExampleSearch() {
	p := word.MustParams("01", 4)

	res, err := search.Search(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("target length:", res.TargetLength)
	for _, w := range res.Words {
		fmt.Println(w)
	}

	// Output:
	// target length: 11
	// 011*100*011
	// 001*110*001
}

// ExampleEngine_Words consumes results lazily and stops after the first.
func ExampleEngine_Words() {
	e, err := search.New(word.MustParams("01", 4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for w, err := range e.Words() {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("first:", w)
		break
	}
	fmt.Println("visited so far:", e.Progress().Visited)

	// Output:
	// first: 011*100*011
	// visited so far: 11
}
