package poset

// Order represents the behaviour of a partial order over T.
//
// An implementation only has to define the "greater than or equal to"
// relation; every other comparison predicate in this package is derived from
// it. Implementing Order is not a *guarantee* that the relation is a valid
// partial order (reflexive, antisymmetric, transitive); this requires care in
// the function you decide to implement. The package never verifies validity,
// but the guarantees of Poset's queries depend on it.
type Order[T any] interface {
	// Ge reports whether a >= b in the partial order.
	Ge(a, b T) bool
}

// GeFunc adapts an ordinary "greater than or equal to" predicate into an
// Order.
//
//	divisibility := poset.GeFunc[int](func(a, b int) bool { return a%b == 0 })
type GeFunc[T any] func(a, b T) bool

// Ge implements Order.
func (fn GeFunc[T]) Ge(a, b T) bool { return fn(a, b) }

// Le reports whether a <= b in the partial order.
func Le[T any](o Order[T], a, b T) bool {
	return o.Ge(b, a)
}

// Gt reports whether a > b in the partial order.
func Gt[T any](o Order[T], a, b T) bool {
	return o.Ge(a, b) && !o.Ge(b, a)
}

// Lt reports whether a < b in the partial order.
func Lt[T any](o Order[T], a, b T) bool {
	return o.Ge(b, a) && !o.Ge(a, b)
}

// Eq reports whether a and b are equal in the partial order.
func Eq[T any](o Order[T], a, b T) bool {
	return o.Ge(a, b) && o.Ge(b, a)
}

// Cp reports whether a is comparable with b in the partial order.
func Cp[T any](o Order[T], a, b T) bool {
	return o.Ge(a, b) || o.Ge(b, a)
}

// Ip reports whether a is incomparable with b in the partial order.
func Ip[T any](o Order[T], a, b T) bool {
	return !o.Ge(a, b) && !o.Ge(b, a)
}

// Compare returns a partial order comparison between two elements.
//
// cmp follows the -1/0/+1 convention, and ok reports whether the two elements
// are comparable at all. When ok is false, cmp is zero and carries no meaning.
func Compare[T any](o Order[T], a, b T) (cmp int, ok bool) {
	switch ab, ba := o.Ge(a, b), o.Ge(b, a); {
	case ab && ba:
		return 0, true
	case ab:
		return 1, true
	case ba:
		return -1, true
	default:
		return 0, false
	}
}

// IsAntichain reports whether the given elements are pairwise incomparable
// under the partial order. It is vacuously true for zero or one element.
func IsAntichain[T any](o Order[T], vs []T) bool {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if Cp(o, vs[i], vs[j]) {
				return false
			}
		}
	}
	return true
}
