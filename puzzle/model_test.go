package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*

Integer sets

*/

func TestIntsetInsert(t *testing.T) {
	ps := intset{}
	assert.False(t, ps.insert(4))
	assert.False(t, ps.insert(1))
	assert.False(t, ps.insert(9))
	assert.False(t, ps.insert(6))
	assert.Equal(t, intset{1, 4, 6, 9}, ps)
	assert.True(t, ps.insert(6), "re-insert reports presence")
	assert.Equal(t, intset{1, 4, 6, 9}, ps)
}

func TestIntsetRemove(t *testing.T) {
	ps := newIntsetRange(5)
	assert.Equal(t, intset{1, 2, 3, 4, 5}, ps)
	assert.True(t, ps.remove(3))
	assert.False(t, ps.remove(3))
	assert.True(t, ps.remove(1))
	assert.True(t, ps.remove(5))
	assert.Equal(t, intset{2, 4}, ps)
	assert.False(t, ps.remove(9))
}

func TestIntsetFind(t *testing.T) {
	ps := intset{2, 5, 8}
	where, found := ps.find(5)
	assert.True(t, found)
	assert.Equal(t, 1, where)
	where, found = ps.find(6)
	assert.False(t, found)
	assert.Equal(t, 2, where, "insertion point for an absent value")
	assert.True(t, ps.contains(8))
	assert.False(t, ps.contains(1))
}

func TestIntsetCopy(t *testing.T) {
	assert.Nil(t, newIntsetCopy(nil))
	ps := intset{1, 2, 3}
	cp := newIntsetCopy(ps)
	cp.remove(2)
	assert.Equal(t, intset{1, 2, 3}, ps)
	assert.Equal(t, intset{1, 3}, cp)
}

/*

Grids

*/

func TestNewCandidates(t *testing.T) {
	g := New(gridValues(oneStarValues))
	// fixed cells carry no candidates, empty cells start full
	assert.Nil(t, g.cells[cellIndex(0, 0)].cands)
	assert.Equal(t, newIntsetRange(sideLen), g.cells[cellIndex(0, 1)].cands)
}

func TestPropagate(t *testing.T) {
	g := New(gridValues(oneStarValues))
	g.propagateAll()
	assert.Equal(t, intset{1, 6, 7}, g.cells[cellIndex(0, 1)].cands)
	assert.Equal(t, intset{1, 6}, g.cells[cellIndex(0, 2)].cands)
	assert.Equal(t, intset{1, 2, 7, 8}, g.cells[cellIndex(1, 0)].cands)
}

func TestPropagateIdempotent(t *testing.T) {
	g := New(gridValues(oneStarValues))
	g.propagateAll()
	var before [cellCount]intset
	for idx := 0; idx < cellCount; idx++ {
		before[idx] = newIntsetCopy(g.cells[idx].cands)
	}
	g.propagateAll()
	for idx := 0; idx < cellCount; idx++ {
		assert.Equal(t, before[idx], g.cells[idx].cands, "cell %d", idx)
	}
}

func TestRemoveCandidates(t *testing.T) {
	g := New([sideLen][sideLen]int{})
	idx := cellIndex(4, 4)
	assert.True(t, g.removeCandidates(idx, 2, 5))
	assert.False(t, g.removeCandidates(idx, 2, 5), "already gone")
	assert.Equal(t, intset{1, 3, 4, 6, 7, 8, 9}, g.cells[idx].cands)
	g.addCandidate(idx, 5)
	assert.Equal(t, intset{1, 3, 4, 5, 6, 7, 8, 9}, g.cells[idx].cands)
}

func TestResetCandidates(t *testing.T) {
	g := New([sideLen][sideLen]int{})
	g.setValue(cellIndex(0, 0), 5)
	g.removeCandidates(cellIndex(8, 8), 1, 2, 3)
	g.pairs = append(g.pairs, pairEntry{newPairKey(3, 4), 6})

	g.resetCandidates()
	assert.Nil(t, g.pairs)
	assert.Equal(t, newIntsetRange(sideLen), g.cells[cellIndex(8, 8)].cands)
	// re-derivation still honors the fixed cell
	assert.Equal(t, intset{1, 2, 3, 4, 6, 7, 8, 9}, g.cells[cellIndex(0, 1)].cands)
}

func TestSolvedDetection(t *testing.T) {
	assert.True(t, New(gridValues(oneStarSolution)).Solved())
	assert.False(t, New(gridValues(oneStarValues)).Solved())

	broken := gridValues(oneStarSolution)
	broken[0][0] = 5 // duplicate 5 in row 0
	assert.False(t, New(broken).Solved())

	broken = gridValues(oneStarSolution)
	broken[0][0], broken[0][3] = broken[0][3], broken[0][0] // row stays legal, columns break
	assert.False(t, New(broken).Solved())

	empty := gridValues(oneStarSolution)
	empty[4][4] = 0
	assert.False(t, New(empty).Solved())
}

func TestSolvedSticky(t *testing.T) {
	g := New(gridValues(oneStarSolution))
	require.True(t, g.Solved())
	g.cells[0].value = 0
	assert.True(t, g.Solved(), "the solved flag is a one-way latch")
}

/*

Conjugate pairs and change logs

*/

func TestPairRegistry(t *testing.T) {
	g := New([sideLen][sideLen]int{})
	key := newPairKey(17, 3)
	assert.Equal(t, pairKey{3, 17}, key, "keys are order-normalized")
	_, known := g.lookupPair(key)
	assert.False(t, known)
	g.pairs = append(g.pairs, pairEntry{key, 8})
	digit, known := g.lookupPair(newPairKey(3, 17))
	assert.True(t, known)
	assert.Equal(t, 8, digit)
}

func TestChangeLog(t *testing.T) {
	var l changeLog
	l.record(5) // inactive, dropped
	l.start()
	l.record(40)
	l.record(7)
	l.record(40)
	assert.Equal(t, intset{7, 40}, l.stop())
	l.record(9) // stopped, dropped
	l.start()
	assert.Empty(t, l.stop(), "start forgets prior entries")
}
