package puzzle

/*

Orchestration

The solver applies the strategy set in a fixed priority order,
restarting from the top after every success, until the board is
solved or no strategy makes progress.  Each strategy only ever
fills cells or removes candidates, so a round either shrinks the
puzzle or is the last one; the loop always terminates.

The single-step mode runs the same strategies but stops at the
first deduction, so a caller can walk a user through the solve
one justified move at a time.

*/

// A Strategy selects one deduction procedure for the solve loop.
type Strategy int

const (
	// StrategySingles covers hidden singles, box/line pointing,
	// and the X-wings found through the conjugate-pair registry.
	StrategySingles Strategy = iota
	// StrategyYWing is the pivot-and-wings chain.
	StrategyYWing
	// StrategyNakedSubsets covers naked subsets up to size 3,
	// including the single-candidate fill.
	StrategyNakedSubsets
	// StrategyDeepSubsets covers naked subsets of size 4 through
	// 8, a heavier scan that rarely fires before the others.
	StrategyDeepSubsets
)

func (s Strategy) String() string {
	switch s {
	case StrategySingles:
		return "singles"
	case StrategyYWing:
		return "y-wing"
	case StrategyNakedSubsets:
		return "naked subsets"
	case StrategyDeepSubsets:
		return "deep subsets"
	}
	return "unknown strategy"
}

// The default strategy orders.  The step order leads with naked
// subsets so a bare single-candidate cell is explained before the
// heavier scans run; the deep subsets stay last in both orders as
// a fallback.  Callers who want different behavior use
// SetSolveOrder and SetStepOrder.
var (
	DefaultSolveOrder = []Strategy{StrategySingles, StrategyYWing, StrategyNakedSubsets, StrategyDeepSubsets}
	DefaultStepOrder  = []Strategy{StrategyNakedSubsets, StrategySingles, StrategyYWing, StrategyDeepSubsets}
)

// SetSolveOrder overrides the strategy order used by Solve.  The
// slice is copied.
func (g *Grid) SetSolveOrder(order []Strategy) {
	g.solveOrder = append([]Strategy(nil), order...)
}

// SetStepOrder overrides the strategy order used by NextStep.
// The slice is copied.
func (g *Grid) SetStepOrder(order []Strategy) {
	g.stepOrder = append([]Strategy(nil), order...)
}

// runStrategy dispatches one strategy in the requested mode.
func (g *Grid) runStrategy(s Strategy, oneStep, fill bool) ([]foundCell, []Elimination) {
	switch s {
	case StrategySingles:
		return g.hiddenSingles(oneStep, fill)
	case StrategyYWing:
		return nil, g.yWing(oneStep)
	case StrategyNakedSubsets:
		return g.nakedSubsets(1, 3, oneStep, fill)
	case StrategyDeepSubsets:
		return g.nakedSubsets(4, sideLen-1, oneStep, fill)
	}
	return nil, nil
}

// Solve runs the strategy set to exhaustion.  It returns a
// KindSolved deduction with the completed grid, a KindInvalid or
// KindUnfillable deduction if validation fails, or KindStuck with
// the board as far as the strategies could take it.
func (g *Grid) Solve() Deduction {
	g.propagateAll()
	if d, bad := g.checkValid(); bad {
		return d
	}
	for {
		if g.Solved() {
			return Deduction{Kind: KindSolved, Values: g.Values()}
		}
		progress := false
		for _, s := range g.solveOrder {
			filled, elims := g.runStrategy(s, false, true)
			if len(filled) > 0 || len(elims) > 0 {
				progress = true
				break
			}
		}
		if !progress {
			return Deduction{Kind: KindStuck, Values: g.Values()}
		}
	}
}

// NextStep returns the first deduction the strategy set can make,
// with a human-readable justification.  With fill true a forced
// cell is actually placed (and propagated); with fill false it is
// only reported, so the same step is returned again next call.
// Eliminations always mutate the candidate sets: they are valid,
// non-terminal progress, and a caller looking for the next
// fillable cell loops on NextStep.
//
// An already-solved board returns KindSolved; a board none of the
// strategies can advance returns KindNoProgress, meaning the
// puzzle needs techniques beyond the strategy set (or has no
// solution to find).
func (g *Grid) NextStep(fill bool) Deduction {
	g.propagateAll()
	if d, bad := g.checkValid(); bad {
		return d
	}
	if g.Solved() {
		return Deduction{Kind: KindSolved, Values: g.Values()}
	}
	for _, s := range g.stepOrder {
		g.log.start()
		filled, elims := g.runStrategy(s, true, fill)
		changed := g.log.stop()
		if len(filled) > 0 {
			f := filled[0]
			d := Deduction{
				Kind:    KindFilled,
				Cell:    g.cellInfo(f.idx),
				Digit:   f.digit,
				Changed: coordsOf(changed),
			}
			if f.hidden {
				d.Explanation = explainHiddenSingle(f.group, coordOf(f.idx), f.digit)
			} else {
				d.Explanation = explainNakedSingle(coordOf(f.idx), f.digit)
			}
			return d
		}
		if len(elims) > 0 {
			return Deduction{
				Kind:         KindEliminated,
				Eliminations: elims,
				Changed:      coordsOf(changed),
			}
		}
	}
	return Deduction{Kind: KindNoProgress, Explanation: noStepMessage}
}
