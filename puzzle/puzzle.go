// Package puzzle implements a 9x9 Sudoku engine that solves by
// human-style logical deduction and explains itself, so it can
// teach a user how to work a puzzle rather than just answer it.
//
// A Grid holds the board: 81 cells, each either empty (value 0)
// or fixed to a digit 1-9, plus a candidate set for every empty
// cell recording which digits are still possible there.  The
// engine keeps candidates consistent by propagation: fixing a
// digit removes it from every empty cell sharing a row, column,
// or box.
//
// Deductions come from a layered strategy set: hidden and naked
// singles, box/line pointing, naked subsets, X-wings found via a
// conjugate-pair registry, and Y-wings.  Solve runs the set to
// exhaustion; NextStep returns one justified deduction at a time.
// There is no guessing and no backtracking: a puzzle beyond the
// strategy set comes back as stuck, not wrong.
//
// Problems are reported as data, never as panics or process
// failures.  Boards with rule violations or dead-end cells come
// back as Invalid or Unfillable deductions carrying the offending
// coordinates, so a caller can highlight them.
package puzzle

import (
	"strings"
)

/*

Construction and mutation

*/

// Update synchronizes the Grid with a new 9x9 matrix of values,
// as edited by the user.  Newly placed digits are propagated.  A
// retraction (a previously fixed cell cleared or changed) forces
// a full candidate reset and re-derivation for the whole board:
// eliminations justified by the old digit cannot be undone
// incrementally, because later eliminations may have layered on
// top of them.
//
// The returned deduction is KindInvalid or KindUnfillable when
// the edit broke the board, and KindNone otherwise.  Passing the
// current values unchanged is a no-op.
func (g *Grid) Update(rows [sideLen][sideLen]int) Deduction {
	changed, retraction := false, false
	for r := 0; r < sideLen; r++ {
		for c := 0; c < sideLen; c++ {
			idx := cellIndex(r, c)
			v := rows[r][c]
			if v == g.cells[idx].value {
				continue
			}
			if g.cells[idx].value != 0 {
				// a previously fixed digit was retracted or
				// replaced, so earlier eliminations are suspect
				retraction = true
			}
			g.setValue(idx, v)
			changed = true
		}
	}
	if retraction {
		g.resetCandidates()
	}
	if changed {
		if d, bad := g.checkValid(); bad {
			return d
		}
	}
	return Deduction{}
}

/*

Queries

*/

// cellInfo snapshots one cell by arena index.
func (g *Grid) cellInfo(idx int) CellInfo {
	return CellInfo{
		Row:        rowOf(idx),
		Col:        colOf(idx),
		Box:        boxOf(idx),
		Value:      g.cells[idx].value,
		Candidates: newIntsetCopy(g.cells[idx].cands),
	}
}

// CellAt returns a snapshot of the cell at the given 0-based
// coordinates: its value and a copy of its candidate set.
func (g *Grid) CellAt(row, col int) CellInfo {
	return g.cellInfo(cellIndex(row, col))
}

// Values returns the current cell values as a 9x9 matrix, 0 for
// empty cells.
func (g *Grid) Values() [sideLen][sideLen]int {
	var out [sideLen][sideLen]int
	for r := 0; r < sideLen; r++ {
		for c := 0; c < sideLen; c++ {
			out[r][c] = g.cells[cellIndex(r, c)].value
		}
	}
	return out
}

// String renders the board as nine rows of digits with dots for
// empty cells, for logs and test failures.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < sideLen; r++ {
		for c := 0; c < sideLen; c++ {
			switch v := g.cells[cellIndex(r, c)].value; {
			case v == 0:
				b.WriteByte('.')
			case v >= 1 && v <= sideLen:
				b.WriteByte(byte('0' + v))
			default:
				b.WriteByte('?')
			}
		}
		if r < sideLen-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
