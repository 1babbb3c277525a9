package puzzle

/*

Board geometry

The engine supports the standard 9x9 geometry: nine rows, nine
columns, and nine 3x3 boxes.  Cells live in a single arena indexed
0..80 in reading order, and every derived view (the groups, the
peer sets) is computed once at package initialization, so there is
no observable "first access" state.

*/

import (
	"fmt"
)

// Side length, box side, and cell count of the board.
const (
	sideLen   = 9
	boxLen    = 3
	cellCount = sideLen * sideLen
)

// Group kind constants.  These are human-readable but not
// localized.
const (
	GtypeRow = "row"
	GtypeCol = "column"
	GtypeBox = "box"
)

// A GroupID names one row, column, or box.  Indices are 0-based
// internally; the Stringer prints them 1-based for humans.
type GroupID struct {
	Gtype string `json:"gtype"`
	Index int    `json:"index"`
}

func (gid GroupID) String() string {
	if gid.Gtype == "" {
		return fmt.Sprintf("<group> %d", gid.Index+1)
	}
	return fmt.Sprintf("%s %d", gid.Gtype, gid.Index+1)
}

// A groupDescriptor identifies a group and enumerates the arena
// indices of its cells, in reading order.
type groupDescriptor struct {
	id      GroupID
	indices []int
}

// cellIndex returns the arena index of a coordinate pair.
func cellIndex(row, col int) int {
	return row*sideLen + col
}

// rowOf, colOf, and boxOf derive a cell's coordinates from its
// arena index.  Boxes are numbered 0..8 in reading order, so
// box = col/3 + 3*(row/3).
func rowOf(idx int) int { return idx / sideLen }
func colOf(idx int) int { return idx % sideLen }
func boxOf(idx int) int { return colOf(idx)/boxLen + boxLen*(rowOf(idx)/boxLen) }

// sharesUnit reports whether two cells see each other, that is,
// whether they share a row, a column, or a box.
func sharesUnit(a, b int) bool {
	return rowOf(a) == rowOf(b) || colOf(a) == colOf(b) || boxOf(a) == boxOf(b)
}

// The group tables.  allGroups is ordered boxes, then rows, then
// columns, which is the scan order the strategies use.  cellPeers
// maps each arena index to the 20 distinct cells it shares a unit
// with, in reading order.
var (
	allGroups []groupDescriptor
	cellPeers [cellCount][]int
)

// boxGroup, rowGroup, and colGroup return the descriptor for the
// requested unit.
func boxGroup(b int) *groupDescriptor { return &allGroups[b] }
func rowGroup(r int) *groupDescriptor { return &allGroups[sideLen+r] }
func colGroup(c int) *groupDescriptor { return &allGroups[2*sideLen+c] }

func init() {
	allGroups = make([]groupDescriptor, 3*sideLen)
	for i := 0; i < sideLen; i++ {
		// box i
		box := make([]int, 0, sideLen)
		baseRow, baseCol := boxLen*(i/boxLen), boxLen*(i%boxLen)
		for br := 0; br < boxLen; br++ {
			for bc := 0; bc < boxLen; bc++ {
				box = append(box, cellIndex(baseRow+br, baseCol+bc))
			}
		}
		allGroups[i] = groupDescriptor{GroupID{GtypeBox, i}, box}
		// row i
		row := make([]int, sideLen)
		for c := 0; c < sideLen; c++ {
			row[c] = cellIndex(i, c)
		}
		allGroups[sideLen+i] = groupDescriptor{GroupID{GtypeRow, i}, row}
		// column i
		col := make([]int, sideLen)
		for r := 0; r < sideLen; r++ {
			col[r] = cellIndex(r, i)
		}
		allGroups[2*sideLen+i] = groupDescriptor{GroupID{GtypeCol, i}, col}
	}
	for idx := 0; idx < cellCount; idx++ {
		peers := make([]int, 0, 20)
		for other := 0; other < cellCount; other++ {
			if other != idx && sharesUnit(idx, other) {
				peers = append(peers, other)
			}
		}
		cellPeers[idx] = peers
	}
}
