package puzzle

/*

Hidden singles, box/line pointing, and X-wings

This strategy works digit by digit over every unit.  A digit with
exactly one candidate cell in a unit is forced there (a hidden
single).  A digit with exactly two candidate cells that share a
line inside one box cannot appear elsewhere on that line.  Every
line-aligned two-cell confinement is also remembered in the
conjugate-pair registry, which is what lets two independently
discovered pairs for the same digit be recognized later as an
X-wing rectangle.

*/

// A foundCell records a fill deduced by a strategy: the cell, the
// digit, and (for hidden singles) the unit that forced it.
type foundCell struct {
	idx    int
	digit  int
	group  GroupID
	hidden bool
}

// hiddenSingles scans boxes, then rows, then columns.  The first
// pass fills hidden singles; if the board has none, the second
// pass runs box/line pointing and registers conjugate pairs.  In
// single-step mode the scan stops at the first deduction.  With
// fill false, hidden singles are reported but not placed.
func (g *Grid) hiddenSingles(oneStep, fill bool) ([]foundCell, []Elimination) {
	var filled []foundCell
	for gi := range allGroups {
		gd := &allGroups[gi]
		for digit := 1; digit <= sideLen; digit++ {
			cands := g.candidateCells(gd, digit)
			if len(cands) != 1 {
				continue
			}
			if fill {
				g.setValue(cands[0], digit)
			}
			filled = append(filled, foundCell{cands[0], digit, gd.id, true})
			if oneStep {
				return filled, nil
			}
		}
	}
	if len(filled) > 0 {
		return filled, nil
	}

	var elims []Elimination
	for gi := range allGroups {
		gd := &allGroups[gi]
		for digit := 1; digit <= sideLen; digit++ {
			cands := g.candidateCells(gd, digit)
			if len(cands) != 2 {
				continue
			}
			a, b := cands[0], cands[1]
			if rowOf(a) != rowOf(b) && colOf(a) != colOf(b) {
				continue // diagonal pairs pin nothing
			}
			if gd.id.Gtype == GtypeBox {
				var line *groupDescriptor
				if rowOf(a) == rowOf(b) {
					line = rowGroup(rowOf(a))
				} else {
					line = colGroup(colOf(a))
				}
				pointed := g.pointLine(line, digit, boxOf(a), a, b)
				elims = append(elims, pointed...)
				if oneStep && len(pointed) > 0 {
					return nil, elims
				}
			}
			paired := g.addPair(a, b, digit)
			elims = append(elims, paired...)
			if oneStep && len(paired) > 0 {
				return nil, elims
			}
		}
	}
	return nil, elims
}

// pointLine eliminates a digit from the cells of a line outside
// the pointing pair.  Cells inside the pair's box cannot still
// carry the digit (the pair would not be a pair), so this only
// ever strips the line outside the box.
func (g *Grid) pointLine(line *groupDescriptor, digit, box, a, b int) []Elimination {
	var elims []Elimination
	reasons := []Coord{coordOf(a), coordOf(b)}
	for _, idx := range line.indices {
		if idx == a || idx == b {
			continue
		}
		if g.removeCandidates(idx, digit) {
			elims = append(elims, Elimination{
				Target:      coordOf(idx),
				Digit:       digit,
				Reasons:     reasons,
				Explanation: explainPointing(digit, box, line.id, coordOf(idx)),
			})
		}
	}
	return elims
}

/*

The conjugate-pair registry

*/

// addPair records that a digit is confined to a pair of cells
// within some unit, and derives what follows:
//
//   - a pair already remembered for a different digit must hold
//     exactly those two digits, so every other candidate is
//     stripped from both cells
//
//   - a new pair forming a rectangle over exactly two rows and
//     two columns with a previously remembered pair for the same
//     digit is an X-wing; the digit is eliminated from the rest
//     of those rows and columns
func (g *Grid) addPair(a, b, digit int) []Elimination {
	key := newPairKey(a, b)
	current, known := g.lookupPair(key)
	if !known {
		elims := g.checkXWing(key, digit)
		g.pairs = append(g.pairs, pairEntry{key, digit})
		return elims
	}
	if current == digit {
		return nil
	}

	// The pair must be exactly {current, digit}.
	var strip intset
	for d := 1; d <= sideLen; d++ {
		if d != current && d != digit {
			strip.insert(d)
		}
	}
	var elims []Elimination
	reasons := []Coord{coordOf(a), coordOf(b)}
	for _, idx := range []int{a, b} {
		for _, d := range strip {
			if g.removeCandidates(idx, d) {
				elims = append(elims, Elimination{
					Target:      coordOf(idx),
					Digit:       d,
					Reasons:     reasons,
					Explanation: explainLockedPair(coordOf(key.lo), coordOf(key.hi), current, digit, coordOf(idx)),
				})
			}
		}
	}
	if len(elims) > 0 {
		return elims
	}
	return g.checkXWing(key, digit)
}

// checkXWing looks for a remembered pair with the same digit that
// completes a rectangle with the given pair: four distinct cells
// spanning exactly two rows and two columns.  The first such pair
// wins; the digit is then stripped from every other empty cell in
// the rectangle's rows and columns.
func (g *Grid) checkXWing(key pairKey, digit int) []Elimination {
	for i := range g.pairs {
		if g.pairs[i].digit != digit {
			continue
		}
		other := g.pairs[i].key
		var corners intset
		for _, idx := range []int{key.lo, key.hi, other.lo, other.hi} {
			corners.insert(idx)
		}
		if len(corners) != 4 {
			continue
		}
		var rows, cols intset
		for _, idx := range corners {
			rows.insert(rowOf(idx))
			cols.insert(colOf(idx))
		}
		if len(rows) != 2 || len(cols) != 2 {
			continue
		}

		var elims []Elimination
		reasons := coordsOf(corners)
		lines := []*groupDescriptor{
			colGroup(cols[0]), colGroup(cols[1]),
			rowGroup(rows[0]), rowGroup(rows[1]),
		}
		for _, line := range lines {
			for _, idx := range line.indices {
				if corners.contains(idx) || !g.cells[idx].isEmpty() {
					continue
				}
				if g.removeCandidates(idx, digit) {
					elims = append(elims, Elimination{
						Target:      coordOf(idx),
						Digit:       digit,
						Reasons:     reasons,
						Explanation: explainXWing(rows, cols, coordOf(idx), digit),
					})
				}
			}
		}
		return elims
	}
	return nil
}
