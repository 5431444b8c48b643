package hasse_test

import (
	"strconv"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/poset"
	"go.llib.dev/poset/hasse"

	"go.llib.dev/testcase/assert"
)

var divisibility = poset.GeFunc[int](func(a, b int) bool { return a%b == 0 })

func TestExport(t *testing.T) {
	t.Run("divisibility on 1..15", func(t *testing.T) {
		p := poset.Of[int](divisibility, iterkit.Collect(iterkit.IntRange(1, 15))...)

		g, err := hasse.Export[int](p, strconv.Itoa)
		assert.NoError(t, err)
		assert.Equal(t, 15, g.VertexCount())
		assert.Equal(t, 19, g.EdgeCount())
	})

	t.Run("edges point from the covered to the covering element", func(t *testing.T) {
		p := poset.Of[int](divisibility, 1, 2, 4)

		g, err := hasse.Export[int](p, strconv.Itoa)
		assert.NoError(t, err)
		assert.True(t, g.HasEdge("1", "2"))
		assert.True(t, g.HasEdge("2", "4"))
		assert.False(t, g.HasEdge("2", "1"))
	})

	t.Run("transitive and reflexive pairs yield no edge", func(t *testing.T) {
		p := poset.Of[int](divisibility, 1, 2, 4)

		g, err := hasse.Export[int](p, strconv.Itoa)
		assert.NoError(t, err)
		assert.False(t, g.HasEdge("1", "4")) // 2 sits in between
		assert.False(t, g.HasEdge("2", "2"))
	})

	t.Run("empty poset yields an empty graph", func(t *testing.T) {
		p := poset.New[int](divisibility)

		g, err := hasse.Export[int](p, strconv.Itoa)
		assert.NoError(t, err)
		assert.Equal(t, 0, g.VertexCount())
		assert.Equal(t, 0, g.EdgeCount())
	})

	t.Run("invalid vertex identifiers fail the export", func(t *testing.T) {
		p := poset.Of[int](divisibility, 1, 2)

		_, err := hasse.Export[int](p, func(int) string { return "" })
		assert.ErrorIs(t, hasse.ErrExport, err)
	})
}
