// Package ordercontract provides a reusable behavioural contract for
// poset.Order implementations.
//
// The contract asserts the algebraic laws that every derived comparison
// predicate must satisfy, regardless of which concrete relation the Order
// implementation expresses. Run it against your own Order implementation to
// verify that it composes correctly with the rest of the poset package.
package ordercontract

import (
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/poset"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Order returns the behavioural contract of a poset.Order implementation.
//
// mkOrder creates the Order under test, mkElement creates sample elements of
// its element type; element creation is called repeatedly and should cover
// comparable and incomparable pairs for meaningful coverage.
func Order[T any](mkOrder contract.Make[poset.Order[T]], mkElement contract.Make[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	var (
		order = testcase.Let(s, func(t *testcase.T) poset.Order[T] {
			return mkOrder(t)
		})
		a = testcase.Let(s, func(t *testcase.T) T {
			return mkElement(t)
		})
		b = testcase.Let(s, func(t *testcase.T) T {
			return mkElement(t)
		})
	)

	s.Before(func(t *testcase.T) {
		t.OnFail(func() {
			t.Log("a:", a.Get(t))
			t.Log("b:", b.Get(t))
		})
	})

	s.Then("Le is Ge with its arguments flipped", func(t *testcase.T) {
		assert.Equal(t,
			poset.Le[T](order.Get(t), a.Get(t), b.Get(t)),
			order.Get(t).Ge(b.Get(t), a.Get(t)))
	})

	s.Then("Gt holds exactly when Ge holds strictly in one direction", func(t *testcase.T) {
		assert.Equal(t,
			poset.Gt[T](order.Get(t), a.Get(t), b.Get(t)),
			order.Get(t).Ge(a.Get(t), b.Get(t)) && !order.Get(t).Ge(b.Get(t), a.Get(t)))
	})

	s.Then("Lt is Gt with its arguments flipped", func(t *testcase.T) {
		assert.Equal(t,
			poset.Lt[T](order.Get(t), a.Get(t), b.Get(t)),
			poset.Gt[T](order.Get(t), b.Get(t), a.Get(t)))
	})

	s.Then("Eq holds exactly when Ge holds in both directions", func(t *testcase.T) {
		assert.Equal(t,
			poset.Eq[T](order.Get(t), a.Get(t), b.Get(t)),
			order.Get(t).Ge(a.Get(t), b.Get(t)) && order.Get(t).Ge(b.Get(t), a.Get(t)))
	})

	s.Then("Cp holds exactly when Ge holds in either direction", func(t *testcase.T) {
		assert.Equal(t,
			poset.Cp[T](order.Get(t), a.Get(t), b.Get(t)),
			order.Get(t).Ge(a.Get(t), b.Get(t)) || order.Get(t).Ge(b.Get(t), a.Get(t)))
	})

	s.Then("Ip is the negation of Cp", func(t *testcase.T) {
		assert.Equal(t,
			poset.Ip[T](order.Get(t), a.Get(t), b.Get(t)),
			!poset.Cp[T](order.Get(t), a.Get(t), b.Get(t)))
	})

	s.Then("exactly one of Lt, Eq, Gt and Ip holds", func(t *testcase.T) {
		var holds int
		for _, ok := range []bool{
			poset.Lt[T](order.Get(t), a.Get(t), b.Get(t)),
			poset.Eq[T](order.Get(t), a.Get(t), b.Get(t)),
			poset.Gt[T](order.Get(t), a.Get(t), b.Get(t)),
			poset.Ip[T](order.Get(t), a.Get(t), b.Get(t)),
		} {
			if ok {
				holds++
			}
		}
		assert.Equal(t, 1, holds)
	})

	s.Then("Compare agrees with the derived predicates", func(t *testcase.T) {
		cmp, ok := poset.Compare[T](order.Get(t), a.Get(t), b.Get(t))
		switch {
		case ok && cmp == 0:
			assert.True(t, poset.Eq[T](order.Get(t), a.Get(t), b.Get(t)))
		case ok && cmp == 1:
			assert.True(t, poset.Gt[T](order.Get(t), a.Get(t), b.Get(t)))
		case ok && cmp == -1:
			assert.True(t, poset.Lt[T](order.Get(t), a.Get(t), b.Get(t)))
		default:
			assert.False(t, ok)
			assert.Equal(t, 0, cmp)
			assert.True(t, poset.Ip[T](order.Get(t), a.Get(t), b.Get(t)))
		}
	})

	return s.AsSuite("Order")
}
