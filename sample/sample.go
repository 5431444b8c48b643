// Package sample provides randomized sampling over posets.
package sample

import (
	"math/rand/v2"
	"slices"

	"go.llib.dev/poset"
)

// MaximalAntichain returns a random maximal antichain of the poset.
//
// It visits the elements in an order shuffled by the supplied random source
// and greedily admits every element that is incomparable with everything
// admitted so far. The result is maximal: no further element of the poset can
// be added to it. The outcome is deterministic for a deterministic source.
func MaximalAntichain[T comparable](p *poset.Poset[T], rnd *rand.Rand) []T {
	elements := slices.Collect(p.Elements())

	var antichain []T
admit:
	for _, index := range rnd.Perm(len(elements)) {
		candidate := elements[index]
		for _, v := range antichain {
			if !poset.Ip[T](p.Order(), v, candidate) {
				continue admit
			}
		}
		antichain = append(antichain, candidate)
	}
	return antichain
}
