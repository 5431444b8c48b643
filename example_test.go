package poset_test

import (
	"fmt"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/poset"
)

func ExampleGeFunc() {
	// a >= b if and only if b divides a
	divis := poset.GeFunc[int](func(a, b int) bool { return a%b == 0 })

	fmt.Println(poset.Cp[int](divis, 3, 6))  // 3 is comparable with 6
	fmt.Println(poset.Ip[int](divis, 4, 6))  // 4 is incomparable with 6
	fmt.Println(poset.Lt[int](divis, 3, 15)) // 3 divides 15

	// Output:
	// true
	// true
	// true
}

func ExamplePoset_ChainDecomposition() {
	divis := poset.GeFunc[int](func(a, b int) bool { return a%b == 0 })
	p := poset.Of[int](divis, iterkit.Collect(iterkit.IntRange(1, 15))...)

	chains, err := p.ChainDecomposition()
	if err != nil {
		panic(err)
	}

	// see https://oeis.org/A051026
	fmt.Println(iterkit.Count(p.Antichains(chains)))
	// Output: 1133
}

func ExamplePoset_Maxima() {
	divis := poset.GeFunc[int](func(a, b int) bool { return a%b == 0 })
	p := poset.Of[int](divis, 1, 2, 3, 4, 5, 6)

	maxima, err := p.Maxima()
	if err != nil {
		panic(err)
	}
	fmt.Println(maxima)
	// Output: [4 5 6]
}

func ExampleAntichains() {
	divis := poset.GeFunc[int](func(a, b int) bool { return a%b == 0 })

	chains := []poset.Chain[int]{{1, 2, 4}, {3}}
	for antichain := range poset.Antichains[int](divis, chains) {
		fmt.Println(antichain)
	}
	// Output:
	// []
	// [3]
	// [1]
	// [2]
	// [2 3]
	// [4]
	// [4 3]
}
