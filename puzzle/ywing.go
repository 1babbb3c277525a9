package puzzle

/*

Y-wings

A Y-wing is a three-cell chain of bi-value cells: a pivot with
candidates {x,y}, a wing with {x,z}, and a wing with {y,z}, where
both wings see the pivot but not each other.  Whichever digit the
pivot takes, one of the wings is forced to z, so no cell that
sees both wings can hold z.

*/

// A yWingSet is one discovered pivot/wing triple and the digit it
// forbids.
type yWingSet struct {
	pivot, wingX, wingY, z int
}

// yWing enumerates all bi-value cells, matches pivot/wing triples,
// and strips the shared digit from every empty cell that sees
// both wings.  In single-step mode the first triple that
// eliminated anything wins.
func (g *Grid) yWing(oneStep bool) []Elimination {
	var doubles []int
	for idx := 0; idx < cellCount; idx++ {
		if g.cells[idx].isEmpty() && len(g.cells[idx].cands) == 2 {
			doubles = append(doubles, idx)
		}
	}

	var wings []yWingSet
	for _, pivot := range doubles {
		x, y := g.cells[pivot].cands[0], g.cells[pivot].cands[1]
		for _, wx := range doubles {
			if wx == pivot || !sharesUnit(wx, pivot) {
				continue
			}
			wc := g.cells[wx].cands
			if !wc.contains(x) || wc.contains(y) {
				continue
			}
			z := wc[0]
			if z == x {
				z = wc[1]
			}
			for _, wy := range doubles {
				if wy == pivot || !sharesUnit(wy, pivot) {
					continue
				}
				yc := g.cells[wy].cands
				if !yc.contains(y) || yc.contains(x) {
					continue
				}
				if yc.contains(z) && !sharesUnit(wx, wy) {
					wings = append(wings, yWingSet{pivot, wx, wy, z})
				}
			}
		}
	}

	var elims []Elimination
	for _, w := range wings {
		reasons := []Coord{coordOf(w.pivot), coordOf(w.wingX), coordOf(w.wingY)}
		found := false
		for idx := 0; idx < cellCount; idx++ {
			if !g.cells[idx].isEmpty() || !sharesUnit(idx, w.wingX) || !sharesUnit(idx, w.wingY) {
				continue
			}
			if g.removeCandidates(idx, w.z) {
				found = true
				elims = append(elims, Elimination{
					Target:      coordOf(idx),
					Digit:       w.z,
					Reasons:     reasons,
					Explanation: explainYWing(coordOf(w.pivot), coordOf(w.wingX), coordOf(w.wingY), coordOf(idx), w.z),
				})
			}
		}
		if oneStep && found {
			return elims
		}
	}
	return elims
}
