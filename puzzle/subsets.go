package puzzle

/*

Naked subsets

A naked subset is n empty cells within a unit whose combined
candidates total exactly n digits: those digits are confined to
those cells, so they can be stripped from the rest of the unit.
The n=1 case is a cell with a single candidate, which is simply
filled.  When the unit is a box and the subset shares one line,
the subset also "points": its digits cannot appear in the rest of
that line outside the box.

Units are scanned boxes, then rows, then columns, with subset
sizes tried in increasing order within each unit.

*/

// nakedSubsets searches for naked subsets of size minN through
// maxN.  In single-step mode the scan stops at the first filled
// cell or at the first subset that eliminated anything.  With
// fill false, single-candidate cells are reported but not placed.
//
// As in the full solve, fills made here propagate immediately, so
// later units in the same pass see the updated candidates.
func (g *Grid) nakedSubsets(minN, maxN int, oneStep, fill bool) ([]foundCell, []Elimination) {
	var filled []foundCell
	var elims []Elimination
	for gi := range allGroups {
		gd := &allGroups[gi]
		for n := minN; n <= maxN; n++ {
			// recomputed per size: fills shrink the empty set
			empties := g.emptyCells(gd.indices)
			if n > len(empties) {
				continue
			}
			done := combinations(empties, n, func(subset []int) bool {
				union := intset{}
				for _, idx := range subset {
					for _, d := range g.cells[idx].cands {
						union.insert(d)
					}
				}
				if len(union) != n {
					return true
				}
				if n == 1 {
					idx, digit := subset[0], union[0]
					if fill {
						g.setValue(idx, digit)
					}
					filled = append(filled, foundCell{idx, digit, gd.id, false})
					return !oneStep
				}
				found := g.eliminateSubset(gd, subset, union)
				elims = append(elims, found...)
				return !(oneStep && len(found) > 0)
			})
			if !done {
				return filled, elims
			}
		}
	}
	return filled, elims
}

// eliminateSubset strips the subset's digits from the rest of the
// unit and, for a box subset confined to one line, from the rest
// of that line outside the box.  Cells inside the subset are
// never touched.
func (g *Grid) eliminateSubset(gd *groupDescriptor, subset []int, union intset) []Elimination {
	var elims []Elimination
	reasons := make([]Coord, len(subset))
	inSubset := make(map[int]bool, len(subset))
	for i, idx := range subset {
		reasons[i] = coordOf(idx)
		inSubset[idx] = true
	}

	if gd.id.Gtype == GtypeBox {
		sameRow, sameCol := true, true
		for _, idx := range subset[1:] {
			sameRow = sameRow && rowOf(idx) == rowOf(subset[0])
			sameCol = sameCol && colOf(idx) == colOf(subset[0])
		}
		var line *groupDescriptor
		if sameRow {
			line = rowGroup(rowOf(subset[0]))
		} else if sameCol {
			line = colGroup(colOf(subset[0]))
		}
		if line != nil {
			for _, idx := range line.indices {
				if inSubset[idx] {
					continue
				}
				for _, d := range union {
					if g.removeCandidates(idx, d) {
						elims = append(elims, Elimination{
							Target:      coordOf(idx),
							Digit:       d,
							Reasons:     reasons,
							Explanation: explainPointingSubset(union, gd.id, line.id, coordOf(idx), d),
						})
					}
				}
			}
		}
	}

	for _, idx := range gd.indices {
		if inSubset[idx] {
			continue
		}
		for _, d := range union {
			if g.removeCandidates(idx, d) {
				elims = append(elims, Elimination{
					Target:      coordOf(idx),
					Digit:       d,
					Reasons:     reasons,
					Explanation: explainNakedSubset(union, gd.id, coordOf(idx), d),
				})
			}
		}
	}
	return elims
}

// combinations calls fn with each k-element combination of items,
// in lexicographic order of positions.  fn returns false to stop
// the enumeration early; combinations reports whether it ran to
// completion.  The slice passed to fn is reused between calls.
func combinations(items []int, k int, fn func([]int) bool) bool {
	subset := make([]int, k)
	var walk func(start, depth int) bool
	walk = func(start, depth int) bool {
		if depth == k {
			return fn(subset)
		}
		for i := start; i <= len(items)-(k-depth); i++ {
			subset[depth] = items[i]
			if !walk(i+1, depth+1) {
				return false
			}
		}
		return true
	}
	return walk(0, 0)
}
