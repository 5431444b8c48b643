// Package posetjson provides a structured JSON representation for posets.
//
// The element list of a poset externalizes verbatim, but its partial order is
// a function and has no structural representation. posetjson bridges this
// with a registry of named orders: the wire format carries the registered
// identifier of the order, and unmarshalling resolves it back through the
// registry. Both sides of an exchange must register the same identifiers.
//
//	var divis = poset.GeFunc[int](func(a, b int) bool { return a%b == 0 })
//
//	func init() {
//		posetjson.Register[int]("divisibility", divis)
//	}
package posetjson

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/poset"
)

const (
	// ErrUnknownOrder indicates that an order identifier has no registered
	// order for the requested element type.
	ErrUnknownOrder errorkit.Error = "posetjson: order identifier is not registered"

	// ErrMalformed indicates that a serialized poset representation could not
	// be parsed.
	ErrMalformed errorkit.Error = "posetjson: malformed poset representation"
)

var registry sync.Map // order identifier -> registered Order value

// Register associates an order identifier with an Order value for use by
// Marshal and Unmarshal. It returns a function that undoes the registration.
//
// Registering an already used identifier panics; identifiers are meant to be
// declared once, at package init time.
func Register[T comparable](id string, o poset.Order[T]) func() {
	if _, loaded := registry.LoadOrStore(id, o); loaded {
		panic(fmt.Sprintf("posetjson: %q is already a registered order identifier", id))
	}
	return func() { registry.Delete(id) }
}

type serialized[T any] struct {
	Order    string `json:"order"`
	Elements []T    `json:"elements"`
}

// Marshal returns the JSON representation of the poset: its element list
// verbatim, plus the given order identifier.
//
// It fails with ErrUnknownOrder when the identifier is not registered for the
// poset's element type.
func Marshal[T comparable](id string, p *poset.Poset[T]) ([]byte, error) {
	if _, err := lookup[T](id); err != nil {
		return nil, err
	}
	var dto serialized[T]
	dto.Order = id
	for v := range p.Elements() {
		dto.Elements = append(dto.Elements, v)
	}
	return json.Marshal(dto)
}

// Unmarshal rebuilds a poset from its JSON representation, resolving the
// order identifier through the registry.
//
// It fails with ErrMalformed when the payload cannot be parsed, and with
// ErrUnknownOrder when the payload names an identifier that is not registered
// for the requested element type.
func Unmarshal[T comparable](data []byte) (*poset.Poset[T], error) {
	var dto serialized[T]
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, ErrMalformed.Wrap(err)
	}
	o, err := lookup[T](dto.Order)
	if err != nil {
		return nil, err
	}
	return poset.Of[T](o, dto.Elements...), nil
}

func lookup[T comparable](id string) (poset.Order[T], error) {
	v, ok := registry.Load(id)
	if !ok {
		return nil, ErrUnknownOrder.F("id: %q", id)
	}
	o, ok := v.(poset.Order[T])
	if !ok {
		return nil, ErrUnknownOrder.F("%q is registered for a different element type", id)
	}
	return o, nil
}
