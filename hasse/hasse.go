// Package hasse exports the covering relation of a poset as a directed graph.
//
// The Hasse diagram of a poset has one vertex per element and one edge x->y
// for every covering pair: y > x with no element strictly in between.
// Reflexive and transitive edges are omitted by construction, which makes the
// diagram the minimal graph representation of the partial order.
package hasse

import (
	"slices"

	"github.com/katalvlaran/lvlath/core"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/poset"
)

// ErrExport indicates that the covering relation could not be turned into a
// graph, for example because the vertex identifier function produced values
// the graph implementation rejects.
const ErrExport errorkit.Error = "hasse: exporting the covering relation failed"

// Export builds the Hasse diagram of the poset as a directed lvlath graph.
//
// id supplies the vertex identifier of an element and must yield a unique,
// non-empty identifier per distinct element. Export consumes only the poset's
// read-only query surface.
func Export[T comparable](p *poset.Poset[T], id func(T) string) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))

	elements := slices.Collect(p.Elements())
	for _, v := range elements {
		if err := g.AddVertex(id(v)); err != nil {
			return nil, ErrExport.Wrap(err)
		}
	}

	for _, x := range elements {
		for _, y := range elements {
			if !p.Cover(x, y) {
				continue
			}
			if _, err := g.AddEdge(id(x), id(y), 0); err != nil {
				return nil, ErrExport.Wrap(err)
			}
		}
	}

	return g, nil
}
