package poset

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNoMaxima indicates that a non-empty poset has no maximal element,
	// when it should. It signals that the chosen partial order is not a valid
	// partial order, for example because it contains a dominance cycle.
	ErrNoMaxima errorkit.Error = "non-empty poset should have a maximal element"

	// ErrNoMinima indicates that a non-empty poset has no minimal element,
	// when it should. It signals that the chosen partial order is not a valid
	// partial order.
	ErrNoMinima errorkit.Error = "non-empty poset should have a minimal element"

	// ErrNoMinimalElement indicates that a non-empty pool of elements yielded
	// no minimal element during chain extraction. Such an element exists
	// whenever the partial order is valid.
	ErrNoMinimalElement errorkit.Error = "no minimal element found in a non-empty pool"
)
