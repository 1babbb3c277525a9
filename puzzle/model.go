package puzzle

/*

Board model

The Grid owns an arena of 81 cells and everything derived from
them: the candidate sets, the conjugate-pair registry, and a
sticky solved flag.  Cells do not know about the Grid; all peer
lookups go through the arena by index, and propagation is done by
the Grid on behalf of whoever changed a cell.

*/

/*

Cells

*/

// A cell holds an assigned value (0 when empty) and the set of
// digits still possible for it.  A cell with an assigned value
// has an empty candidate set.
type cell struct {
	value int
	cands intset
}

func (c *cell) isEmpty() bool { return c.value == 0 }

/*

Grids

*/

// A Grid is a 9x9 Sudoku board with candidate bookkeeping.  Build
// one with New, mutate it with Update, and drive deductions with
// Solve and NextStep.  A Grid is not safe for concurrent use;
// independent Grids share no state.
type Grid struct {
	cells      [cellCount]cell
	pairs      []pairEntry
	solved     bool
	log        changeLog
	solveOrder []Strategy
	stepOrder  []Strategy
}

// New creates a Grid from a 9x9 matrix of values, 0 meaning an
// empty cell.  Out-of-range values are accepted here so the
// validator can report the offending cells as data instead of
// this constructor failing.
func New(rows [sideLen][sideLen]int) *Grid {
	g := &Grid{
		solveOrder: append([]Strategy(nil), DefaultSolveOrder...),
		stepOrder:  append([]Strategy(nil), DefaultStepOrder...),
	}
	for r := 0; r < sideLen; r++ {
		for c := 0; c < sideLen; c++ {
			idx := cellIndex(r, c)
			if v := rows[r][c]; v == 0 {
				g.cells[idx] = cell{cands: newIntsetRange(sideLen)}
			} else {
				g.cells[idx] = cell{value: v}
			}
		}
	}
	return g
}

// setValue assigns a value to a cell, clears its candidates, and
// propagates the new digit to the cell's peers.  It accepts any
// value, including 0 and out-of-range digits; the validator is
// where bad values are reported.
func (g *Grid) setValue(idx, value int) {
	g.cells[idx].value = value
	g.cells[idx].cands = nil
	g.log.record(idx)
	g.propagate(idx)
}

// propagate removes a fixed cell's digit from the candidate set
// of every empty peer.  Removing an absent candidate is a no-op,
// so repeated propagation is harmless.
func (g *Grid) propagate(idx int) {
	digit := g.cells[idx].value
	if digit == 0 {
		return
	}
	for _, pi := range cellPeers[idx] {
		if g.cells[pi].isEmpty() && g.cells[pi].cands.remove(digit) {
			g.log.record(pi)
		}
	}
}

// propagateAll propagates every fixed digit on the board.  Every
// solving operation starts with this so that user edits made
// since the last call are reflected in the candidate sets.
func (g *Grid) propagateAll() {
	for idx := 0; idx < cellCount; idx++ {
		g.propagate(idx)
	}
}

// removeCandidates strips digits from a cell's candidate set
// without propagation; the caller knows why they are impossible.
// It reports whether any digit was actually removed.
func (g *Grid) removeCandidates(idx int, digits ...int) bool {
	removed := false
	for _, d := range digits {
		if g.cells[idx].cands.remove(d) {
			removed = true
		}
	}
	if removed {
		g.log.record(idx)
	}
	return removed
}

// addCandidate restores a digit to an empty cell's candidate set.
// The presentation layer uses this when a user retracts a digit
// and a previously eliminated candidate becomes possible again.
func (g *Grid) addCandidate(idx, digit int) {
	if g.cells[idx].isEmpty() && !g.cells[idx].cands.insert(digit) {
		g.log.record(idx)
	}
}

// resetCandidates returns every empty cell to the full digit
// range and re-derives the sets from the fixed cells.  The
// conjugate-pair registry is cleared too: its entries were
// justified by eliminations that may no longer hold.
func (g *Grid) resetCandidates() {
	for idx := 0; idx < cellCount; idx++ {
		if g.cells[idx].isEmpty() {
			g.cells[idx].cands = newIntsetRange(sideLen)
		}
	}
	g.pairs = nil
	g.propagateAll()
}

// emptyCells returns the arena indices from the given list whose
// cells are still empty.
func (g *Grid) emptyCells(indices []int) []int {
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if g.cells[idx].isEmpty() {
			out = append(out, idx)
		}
	}
	return out
}

// candidateCells returns the cells of a group that still carry
// the digit as a candidate.  Fixed cells have empty candidate
// sets, so only empty cells can qualify.
func (g *Grid) candidateCells(gd *groupDescriptor, digit int) []int {
	var out []int
	for _, idx := range gd.indices {
		if g.cells[idx].cands.contains(digit) {
			out = append(out, idx)
		}
	}
	return out
}

// Solved reports whether every row, column, and box holds the
// digits 1 through 9 exactly once.  The result is cached once
// true and stays true for the life of the Grid; a caller editing
// a solved board is expected to rebuild the Grid.
func (g *Grid) Solved() bool {
	if g.solved {
		return true
	}
	for gi := range allGroups {
		var seen [sideLen + 1]bool
		for _, idx := range allGroups[gi].indices {
			v := g.cells[idx].value
			if v < 1 || v > sideLen || seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	g.solved = true
	return true
}

/*

Conjugate-pair registry

For every unordered pair of cells discovered to be the only two
hosts for some digit within a unit, the registry remembers the
pair and the digit.  Entries accumulate over the life of a solve
and are scanned linearly (a solve accumulates a few dozen at
most); the registry resets when candidates are fully re-derived.

*/

// A pairKey identifies an unordered pair of cells by arena index.
type pairKey struct {
	lo, hi int
}

func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

type pairEntry struct {
	key   pairKey
	digit int
}

// lookupPair returns the digit remembered for a pair, if any.
func (g *Grid) lookupPair(key pairKey) (int, bool) {
	for i := range g.pairs {
		if g.pairs[i].key == key {
			return g.pairs[i].digit, true
		}
	}
	return 0, false
}

/*

Change logs

*/

// A changeLog records the arena indices mutated while it is
// active, so a deduction can report every cell it touched.
type changeLog struct {
	active  bool
	entries intset
}

// start turns on the log, forgetting prior entries.
func (l *changeLog) start() {
	l.active = true
	l.entries = intset{}
}

// stop turns off the log and returns its entries.
func (l *changeLog) stop() intset {
	l.active = false
	return l.entries
}

// record adds an index to the log, if it is active.
func (l *changeLog) record(idx int) {
	if l.active {
		l.entries.insert(idx)
	}
}

/*

Integer sets

An intset is a set of small integers represented as a sorted
slice.  Candidate sets are intsets, as are the index sets kept by
change logs; the sorted representation makes every iteration
order deterministic.

*/

type intset []int

// newIntsetRange makes an intset holding 1 through max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy makes a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// find returns where v is (or should be) in the set and whether
// it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// contains reports whether v is in the set.
func (ps intset) contains(v int) bool {
	_, found := ps.find(v)
	return found
}

// insert adds v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// remove deletes v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}
