package poset

import "slices"

// Chain is a totally ordered subsequence of a poset, listed from least to
// greatest by direct covering steps.
type Chain[T any] []T

// ChainDecomposition partitions the elements of the poset into chains.
//
// The construction is greedy: it repeatedly extracts one chain from the pool
// of remaining elements until the pool is empty. The union of the returned
// chains is exactly the element collection of the poset, but the number of
// chains is not guaranteed to be minimal in the sense of Dilworth's theorem.
//
// It fails with ErrNoMinimalElement when a non-empty pool yields no minimal
// element, which can only happen when the partial order is invalid. A failed
// decomposition returns no partial chain list.
func (p *Poset[T]) ChainDecomposition() ([]Chain[T], error) {
	pool := slices.Clone(p.elements)

	var chains []Chain[T]
	for len(pool) > 0 {
		chain, err := p.ChainFromPool(&pool)
		if err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}
	return chains, nil
}

// ChainFromPool extracts one chain from a pool of elements, according to the
// partial order of the poset, and removes the chain's elements from the pool
// by value equality. An empty pool yields an empty chain.
//
// The chain starts at a minimal element of the pool and grows by repeatedly
// appending the first element of the pool that directly covers the current
// chain tail within the pool, until no covering successor is found.
//
// It fails with ErrNoMinimalElement when the non-empty pool has no minimal
// element, which can only happen when the partial order is invalid.
func (p *Poset[T]) ChainFromPool(pool *[]T) (Chain[T], error) {
	if len(*pool) == 0 {
		return Chain[T]{}, nil
	}

	// snapshot: the chain is grown against the pool as it was on entry,
	// the live pool only shrinks once the chain is complete.
	snapshot := slices.Clone(*pool)

	minima := p.MinimaInPool(snapshot)
	if len(minima) == 0 {
		return nil, ErrNoMinimalElement
	}

	chain := Chain[T]{minima[0]}
	latest := minima[0]
grow:
	for {
		for _, x := range snapshot {
			if p.CoverInPool(latest, x, snapshot) {
				chain = append(chain, x)
				latest = x
				continue grow
			}
		}
		break
	}

	*pool = slices.DeleteFunc(*pool, func(v T) bool {
		return slices.Contains(chain, v)
	})
	return chain, nil
}
