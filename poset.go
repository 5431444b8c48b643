// Package poset provides tools to model and analyse finite partially ordered
// sets.
//
// Go already gives us some tools to work with ordered values; we can sort and
// compare most types through cmp.Ordered or a Compare method. But those tools
// assume a single, total order baked into the type. They fall short when we
// wish to consider multiple partial orders on the same type. For example,
// what if we wanted to study the natural numbers under the divisibility
// relation: a >= b if and only if a % b == 0?
//
// The purpose of this package is to provide an ergonomic way to work with
// arbitrary partial orders, and helpful tools to study their posets: locating
// minimal and maximal elements, detecting covering relations, decomposing the
// poset into chains, and lazily enumerating the antichains implied by a chain
// decomposition.
//
//	divis := poset.GeFunc[int](func(a, b int) bool { return a%b == 0 })
//
//	p := poset.Of[int](divis, slices.Collect(iterkit.IntRange(1, 15))...)
//	chains, err := p.ChainDecomposition()
//	if err != nil {
//		return err
//	}
//	total := iterkit.Count(p.Antichains(chains)) // 1133, see https://oeis.org/A051026
//
// The package trusts the caller to supply a valid partial order; it never
// checks reflexivity, antisymmetry or transitivity. Queries that can detect
// the consequences of an invalid order fail with a sentinel error instead.
package poset

import (
	"iter"
	"slices"
)

// Poset represents a finite partially ordered set: an ordered collection of
// elements together with a partial order over them.
//
// The element collection keeps insertion order and permits duplicates, though
// neither carries meaning for the algorithms of this package. A Poset must
// not be mutated while a chain decomposition or an antichain enumeration
// derived from it is still being consumed.
type Poset[T comparable] struct {
	elements []T
	order    Order[T]
}

// New returns a poset with no elements but a partial order.
func New[T comparable](o Order[T]) *Poset[T] {
	return &Poset[T]{order: o}
}

// Of returns a poset seeded with the given elements and partial order.
func Of[T comparable](o Order[T], elements ...T) *Poset[T] {
	return &Poset[T]{elements: slices.Clone(elements), order: o}
}

// Ge reports whether a >= b under the poset's partial order.
// It makes *Poset itself usable as an Order of its element type.
func (p *Poset[T]) Ge(a, b T) bool {
	return p.order.Ge(a, b)
}

// Add appends an element to the poset.
func (p *Poset[T]) Add(v T) {
	p.elements = append(p.elements, v)
}

// ReplaceElements replaces the elements of the poset.
func (p *Poset[T]) ReplaceElements(vs []T) {
	p.elements = slices.Clone(vs)
}

// ReplaceOrder replaces the partial order of the poset.
func (p *Poset[T]) ReplaceOrder(o Order[T]) {
	p.order = o
}

// Cardinality returns the number of elements in the poset.
func (p *Poset[T]) Cardinality() int {
	return len(p.elements)
}

// Elements returns a re-rangeable sequence over the elements of the poset in
// insertion order.
func (p *Poset[T]) Elements() iter.Seq[T] {
	return slices.Values(p.elements)
}

// Order returns the partial order of the poset.
func (p *Poset[T]) Order() Order[T] {
	return p.order
}

// Maxima returns the maximal element(s) of the poset, which must exist unless
// the poset has no elements. An empty poset yields an empty, non-error result.
//
// It fails with ErrNoMaxima when the poset is non-empty but has no maximal
// element, indicating that the chosen partial order is invalid.
func (p *Poset[T]) Maxima() ([]T, error) {
	if len(p.elements) == 0 {
		return nil, nil
	}

	var maxima []T
	for _, v := range p.elements {
		if !slices.ContainsFunc(p.elements, func(w T) bool { return Gt(p.order, w, v) }) {
			maxima = append(maxima, v)
		}
	}

	if len(maxima) == 0 {
		return nil, ErrNoMaxima
	}
	return maxima, nil
}

// Minima returns the minimal element(s) of the poset, which must exist unless
// the poset has no elements. An empty poset yields an empty, non-error result.
//
// It fails with ErrNoMinima when the poset is non-empty but has no minimal
// element, indicating that the chosen partial order is invalid.
func (p *Poset[T]) Minima() ([]T, error) {
	if len(p.elements) == 0 {
		return nil, nil
	}

	var minima []T
	for _, v := range p.elements {
		if !slices.ContainsFunc(p.elements, func(w T) bool { return Lt(p.order, w, v) }) {
			minima = append(minima, v)
		}
	}

	if len(minima) == 0 {
		return nil, ErrNoMinima
	}
	return minima, nil
}

// MinimaInPool returns the minimal element(s) of a pool of elements, according
// to the partial order of the poset. It always succeeds; an empty pool yields
// an empty result.
func (p *Poset[T]) MinimaInPool(pool []T) []T {
	var minima []T
	for _, v := range pool {
		if !slices.ContainsFunc(pool, func(w T) bool { return Lt(p.order, w, v) }) {
			minima = append(minima, v)
		}
	}
	return minima
}

// Cover reports whether x is covered by y in the poset: y > x and no element
// of the poset sits strictly between them.
func (p *Poset[T]) Cover(x, y T) bool {
	return p.CoverInPool(x, y, p.elements)
}

// CoverInPool reports whether x is covered by y within the given pool of
// elements: y > x under the poset's partial order, and no element of the pool
// sits strictly between them.
func (p *Poset[T]) CoverInPool(x, y T, pool []T) bool {
	if !Gt(p.order, y, x) {
		return false
	}
	return !slices.ContainsFunc(pool, func(z T) bool {
		return Lt(p.order, x, z) && Lt(p.order, z, y)
	})
}
