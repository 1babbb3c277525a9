package puzzle

/*

Validation

The validator runs at the start of every solving operation,
before any strategy.  It reports two distinct problems, both as
de-duplicated cell sets in reading order:

  - invalid cells: a fixed digit duplicated within a unit (every
    duplicate is reported), or a value outside 0-9

  - unfillable cells: empty cells whose candidate set is empty, a
    dead end reachable from otherwise-legal input

A board with either problem short-circuits the orchestrator; no
deduction is attempted on it.

*/

// validate scans all 27 units and every cell, returning the
// invalid and unfillable coordinate sets.
func (g *Grid) validate() (invalid, unfillable []Coord) {
	var bad, starved [cellCount]bool
	for gi := range allGroups {
		var where [sideLen + 1][]int
		for _, idx := range allGroups[gi].indices {
			if v := g.cells[idx].value; v >= 1 && v <= sideLen {
				where[v] = append(where[v], idx)
			}
		}
		for digit := 1; digit <= sideLen; digit++ {
			if len(where[digit]) > 1 {
				for _, idx := range where[digit] {
					bad[idx] = true
				}
			}
		}
	}
	for idx := 0; idx < cellCount; idx++ {
		if v := g.cells[idx].value; v < 0 || v > sideLen {
			bad[idx] = true
		}
		if g.cells[idx].isEmpty() && len(g.cells[idx].cands) == 0 {
			starved[idx] = true
		}
	}
	for idx := 0; idx < cellCount; idx++ {
		if bad[idx] {
			invalid = append(invalid, coordOf(idx))
		}
		if starved[idx] {
			unfillable = append(unfillable, coordOf(idx))
		}
	}
	return invalid, unfillable
}

// checkValid wraps validate in a Deduction.  The second return
// value reports whether the board had problems.
func (g *Grid) checkValid() (Deduction, bool) {
	invalid, unfillable := g.validate()
	if len(invalid) > 0 {
		return Deduction{Kind: KindInvalid, Invalid: invalid, Unfillable: unfillable}, true
	}
	if len(unfillable) > 0 {
		return Deduction{Kind: KindUnfillable, Unfillable: unfillable}, true
	}
	return Deduction{}, false
}
