package puzzle

/*

Deduction results

Every strategy and every orchestration step reports its outcome
as a Deduction value.  Problems with the board (rule violations,
dead-end cells) are data too: the engine never panics on bad
input and never aborts; the presentation layer is expected to
highlight offending cells rather than crash.

All the English explanation text lives here, produced from
structured facts (unit, coordinates, digit) so the wording for
identical cases is built in exactly one place.

*/

import (
	"fmt"
	"strings"
)

// Kind tags a Deduction.  Callers switch on the tag; only the
// fields documented for each kind are populated.
type Kind int

const (
	// KindNone reports that there was nothing to do, e.g. an
	// Update that changed nothing and found no problems.
	KindNone Kind = iota
	// KindFilled carries a cell whose digit is forced, with an
	// explanation.  When filling was requested the digit has been
	// placed and propagated.
	KindFilled
	// KindEliminated carries one pattern's worth of candidate
	// eliminations, each with its reason cells and explanation.
	KindEliminated
	// KindInvalid carries the cells violating a Sudoku rule
	// (duplicate digit in a unit, or a value outside 0-9).
	KindInvalid
	// KindUnfillable carries the empty cells left with no
	// candidate, a dead end reachable from otherwise-legal input.
	KindUnfillable
	// KindSolved carries the completed grid.
	KindSolved
	// KindStuck carries the grid as far as the strategy set could
	// take it; the puzzle needs techniques the engine lacks.
	KindStuck
	// KindNoProgress is the single-step analog of KindStuck: no
	// strategy found a next step.
	KindNoProgress
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFilled:
		return "filled"
	case KindEliminated:
		return "eliminated"
	case KindInvalid:
		return "invalid"
	case KindUnfillable:
		return "unfillable"
	case KindSolved:
		return "solved"
	case KindStuck:
		return "stuck"
	case KindNoProgress:
		return "no progress"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// A Coord addresses a cell by 0-based row and column.  The
// Stringer prints the 1-based form humans read, e.g. "(r3, c5)".
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func coordOf(idx int) Coord {
	return Coord{rowOf(idx), colOf(idx)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row+1, c.Col+1)
}

// coordsOf converts an index set to coordinates.
func coordsOf(indices intset) []Coord {
	if len(indices) == 0 {
		return nil
	}
	out := make([]Coord, len(indices))
	for i, idx := range indices {
		out[i] = coordOf(idx)
	}
	return out
}

// CellInfo is a snapshot of one cell: value, coordinates, and a
// copy of the candidate set.  It shares no storage with the Grid.
type CellInfo struct {
	Row        int   `json:"row"`
	Col        int   `json:"col"`
	Box        int   `json:"box"`
	Value      int   `json:"value"`
	Candidates []int `json:"candidates,omitempty"`
}

// Coord returns the cell's coordinates.
func (ci CellInfo) Coord() Coord { return Coord{ci.Row, ci.Col} }

// An Elimination records one candidate removed from one cell,
// the cells that justify the removal, and an explanation.
type Elimination struct {
	Target      Coord   `json:"target"`
	Digit       int     `json:"digit"`
	Reasons     []Coord `json:"reasons,omitempty"`
	Explanation string  `json:"explanation"`
}

// A Deduction is the tagged result of a strategy or of an
// orchestration step.
type Deduction struct {
	Kind         Kind                  `json:"kind"`
	Cell         CellInfo              `json:"cell,omitempty"`         // KindFilled
	Digit        int                   `json:"digit,omitempty"`        // KindFilled
	Explanation  string                `json:"explanation,omitempty"`  // KindFilled, KindNoProgress
	Changed      []Coord               `json:"changed,omitempty"`      // KindFilled, KindEliminated
	Eliminations []Elimination         `json:"eliminations,omitempty"` // KindEliminated
	Invalid      []Coord               `json:"invalid,omitempty"`      // KindInvalid
	Unfillable   []Coord               `json:"unfillable,omitempty"`   // KindInvalid, KindUnfillable
	Values       [sideLen][sideLen]int `json:"values,omitempty"`       // KindSolved, KindStuck
}

/*

Explanations

*/

// digitsString verbalizes a candidate set, e.g. "{1 6 7}".
func digitsString(ds intset) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = fmt.Sprint(d)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

const noStepMessage = "No next step could be found for the given configuration, ensure the board is unique!"

// explainNakedSingle describes a cell whose candidate set has
// shrunk to one digit.
func explainNakedSingle(target Coord, digit int) string {
	return fmt.Sprintf("%d is the only digit that can go in row %d, column %d!",
		digit, target.Row+1, target.Col+1)
}

// explainHiddenSingle describes the only cell in a unit that can
// host a digit.
func explainHiddenSingle(gid GroupID, target Coord, digit int) string {
	var position string
	switch gid.Gtype {
	case GtypeRow:
		position = fmt.Sprintf("column %d", target.Col+1)
	case GtypeCol:
		position = fmt.Sprintf("row %d", target.Row+1)
	default:
		position = fmt.Sprintf("row %d, column %d", target.Row+1, target.Col+1)
	}
	return fmt.Sprintf("The only cell in %v where %d can go is %s", gid, digit, position)
}

// explainPointing describes a box/line reduction: a digit whose
// two candidate cells in a box share a line cannot appear
// elsewhere in that line.
func explainPointing(digit, box int, line GroupID, target Coord) string {
	return fmt.Sprintf("The digit %d in box %d can only go in %v, therefore %v cannot be %d",
		digit, box+1, line, target, digit)
}

// explainNakedSubset describes a candidate eliminated because a
// subset of cells already claims it within the unit.
func explainNakedSubset(digits intset, unit GroupID, target Coord, digit int) string {
	return fmt.Sprintf("Due to a naked subset %s in %v, the cell in row %d column %d cannot be %d",
		digitsString(digits), unit, target.Row+1, target.Col+1, digit)
}

// explainPointingSubset is the box-confined refinement: the
// subset's digits cannot appear in the rest of the shared line.
func explainPointingSubset(digits intset, unit GroupID, line GroupID, target Coord, digit int) string {
	return fmt.Sprintf("Due to a pointing naked subset %s in %v confined to %v, the cell in row %d column %d cannot be %d",
		digitsString(digits), unit, line, target.Row+1, target.Col+1, digit)
}

// explainLockedPair describes two cells forced to hold exactly
// two digits between them.
func explainLockedPair(a, b Coord, d1, d2 int, target Coord) string {
	return fmt.Sprintf("The pair of cells %v, %v must contain the digits %d and %d, therefore %v cannot be any other digit",
		a, b, d1, d2, target)
}

// explainXWing describes the rectangle elimination.
func explainXWing(rows, cols []int, target Coord, digit int) string {
	return fmt.Sprintf("An X-wing in rows (%d, %d) and columns (%d, %d) does not allow %v to be the digit %d",
		rows[0]+1, rows[1]+1, cols[0]+1, cols[1]+1, target, digit)
}

// explainYWing describes the pivot/wing chain that forbids the
// shared digit.
func explainYWing(pivot, wingA, wingB, target Coord, digit int) string {
	return fmt.Sprintf("%d can no longer go in %v due to a Y-wing pattern with a pivot at %v which forces one of %v and %v to be the digit %d!",
		digit, target, pivot, wingA, wingB, digit)
}
