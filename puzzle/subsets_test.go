package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinations(t *testing.T) {
	var got [][]int
	done := combinations([]int{1, 2, 3, 4}, 2, func(subset []int) bool {
		got = append(got, append([]int(nil), subset...))
		return true
	})
	assert.True(t, done)
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}, got)

	count := 0
	done = combinations([]int{1, 2, 3, 4}, 2, func([]int) bool {
		count++
		return count < 3
	})
	assert.False(t, done)
	assert.Equal(t, 3, count)
}

func TestNakedSingleFill(t *testing.T) {
	var rows [sideLen][sideLen]int
	for c := 0; c < 8; c++ {
		rows[0][c] = c + 1
	}
	g := New(rows)
	g.propagateAll()

	filled, elims := g.nakedSubsets(1, 3, false, true)
	require.Len(t, filled, 1)
	assert.Equal(t, cellIndex(0, 8), filled[0].idx)
	assert.Equal(t, 9, filled[0].digit)
	assert.False(t, filled[0].hidden)
	assert.Empty(t, elims)
	assert.Equal(t, 9, g.cells[cellIndex(0, 8)].value)
}

// A pair confined to one line of a box strips its digits from the
// rest of the line as well as the rest of the box, and never from
// its own cells.
func TestNakedPairPointing(t *testing.T) {
	g := New([sideLen][sideLen]int{})
	setCands(g, 0, 0, 1, 2)
	setCands(g, 0, 1, 1, 2)

	filled, elims := g.nakedSubsets(2, 2, true, true)
	assert.Empty(t, filled)
	// 7 line cells and 6 remaining box cells, two digits each
	require.Len(t, elims, 26)

	subset := []Coord{{0, 0}, {0, 1}}
	for _, e := range elims {
		assert.NotContains(t, subset, e.Target)
		assert.Equal(t, subset, e.Reasons)
	}
	assert.Equal(t,
		"Due to a pointing naked subset {1 2} in box 1 confined to row 1, the cell in row 1 column 3 cannot be 1",
		elims[0].Explanation)

	assert.Equal(t, intset{1, 2}, g.cells[cellIndex(0, 0)].cands)
	assert.Equal(t, intset{3, 4, 5, 6, 7, 8, 9}, g.cells[cellIndex(0, 5)].cands)
	assert.Equal(t, intset{3, 4, 5, 6, 7, 8, 9}, g.cells[cellIndex(2, 2)].cands)
	assert.Equal(t, newIntsetRange(sideLen), g.cells[cellIndex(5, 5)].cands)
}

// A triple spread over two rows of a box stays inside the box.
func TestNakedTripleBoxOnly(t *testing.T) {
	g := New([sideLen][sideLen]int{})
	setCands(g, 0, 0, 4, 5)
	setCands(g, 1, 1, 5, 6)
	setCands(g, 2, 2, 4, 6)

	_, elims := g.nakedSubsets(3, 3, true, true)
	require.NotEmpty(t, elims)
	for _, e := range elims {
		assert.Less(t, e.Target.Row, 3)
		assert.Less(t, e.Target.Col, 3)
	}
	// 6 other box cells each lose 4, 5, and 6
	assert.Len(t, elims, 18)
	assert.Equal(t, intset{1, 2, 3, 7, 8, 9}, g.cells[cellIndex(0, 1)].cands)
	// the line outside the box is untouched
	assert.Equal(t, newIntsetRange(sideLen), g.cells[cellIndex(0, 5)].cands)
}

// Single-step mode stops at the first firing subset but reports
// that subset's eliminations in full.
func TestNakedSubsetsOneStep(t *testing.T) {
	g := New(gridValues(oneStarValues))
	g.propagateAll()

	filled, elims := g.nakedSubsets(1, 3, true, true)
	assert.Empty(t, filled)
	require.Len(t, elims, 10)
	for _, e := range elims {
		assert.Equal(t, []Coord{{0, 1}, {0, 2}, {1, 1}}, e.Reasons)
	}
}
