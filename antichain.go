package poset

import "iter"

// Antichains returns a lazy sequence over every antichain that can be formed
// by selecting at most one element from each of the given chains.
//
// See the package level Antichains function for the enumeration semantics.
func (p *Poset[T]) Antichains(chains []Chain[T]) iter.Seq[[]T] {
	return Antichains[T](p.order, chains)
}

// Antichains returns a lazy sequence over every antichain that can be formed
// by selecting at most one element from each of the given chains, according
// to the given partial order.
//
// Each chain acts as a digit of an odometer with len(chain)+1 states: either
// no element is selected from it, or one of its elements is. Every state of
// the odometer is visited exactly once, starting from the all-unselected
// state, with the rightmost chain varying fastest. A visited combination is
// emitted when its selected elements are pairwise incomparable; the very
// first emitted antichain is therefore always the empty one.
//
// The sequence is re-rangeable: each range starts a fresh enumeration.
func Antichains[T any](o Order[T], chains []Chain[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		const unselected = -1
		indices := make([]int, len(chains))
		for i := range indices {
			indices[i] = unselected
		}

		// advance steps the odometer by one state, and reports whether it
		// could do so without wrapping back to the all-unselected state.
		advance := func() bool {
			for i := len(indices) - 1; 0 <= i; i-- {
				switch idx := indices[i]; {
				case idx == unselected:
					if len(chains[i]) != 0 {
						indices[i] = 0
						return true
					}
				case idx+1 < len(chains[i]):
					indices[i] = idx + 1
					return true
				default:
					indices[i] = unselected // carry
				}
			}
			return false
		}

		for finished := false; !finished; {
			var combination []T
			for i, idx := range indices {
				if idx != unselected {
					combination = append(combination, chains[i][idx])
				}
			}

			finished = !advance()

			if IsAntichain(o, combination) {
				if !yield(combination) {
					return
				}
			}
		}
	}
}
