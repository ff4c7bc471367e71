package xwsolver

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/samber/lo"

	"crosswarped.com/xwsolver/pkg/primitives"
)

// ErrNoSolution is returned by Solve when the puzzle admits no complete
// assignment. It is an ordinary negative outcome, not a fault.
var ErrNoSolution = errors.New("crossword has no solution")

// Assignment maps each slot to its chosen word. A complete assignment
// covers every slot of the crossword.
type Assignment map[primitives.Variable]string

// Arc is an ordered pair of distinct slots for the AC-3 worklist: the
// first slot is the one whose domain gets revised against the second.
type Arc struct {
	X primitives.Variable
	Y primitives.Variable
}

// Solver owns the mutable per-slot domains for a single solve. Domains
// only shrink; the search itself mutates only the assignment, so a failed
// branch leaves the propagated domains intact. A Solver is single-use.
type Solver struct {
	crossword *Crossword
	domains   map[primitives.Variable]*primitives.WordSet
}

// NewSolver initializes every slot's domain to the full vocabulary.
func NewSolver(c *Crossword) *Solver {
	domains := make(map[primitives.Variable]*primitives.WordSet, len(c.Variables()))
	for _, v := range c.Variables() {
		domains[v] = primitives.NewWordSet(c.Words()...)
	}
	return &Solver{crossword: c, domains: domains}
}

// Domain returns the remaining candidates for a slot.
func (s *Solver) Domain(v primitives.Variable) *primitives.WordSet {
	return s.domains[v]
}

// EnforceNodeConsistency drops from each slot's domain every word whose
// length differs from the slot's length. Idempotent.
func (s *Solver) EnforceNodeConsistency() {
	for _, v := range s.crossword.Variables() {
		domain := s.domains[v]
		var remove []string
		for _, word := range domain.Words() {
			if len(word) != v.Length {
				remove = append(remove, word)
			}
		}
		for _, word := range remove {
			domain.Remove(word)
		}
	}
}

// Revise makes x arc consistent with y: it removes from x's domain every
// word with no distinct supporting word in y's domain at the overlap, and
// reports whether anything was removed. Slots that do not cross need no
// revision.
func (s *Solver) Revise(x, y primitives.Variable) bool {
	ov, ok := s.crossword.Overlap(x, y)
	if !ok {
		return false
	}

	dy := s.domains[y]
	counts := primitives.DefaultLetterCounts()
	for _, wy := range dy.Words() {
		counts.Add(rune(wy[ov.B]))
	}

	var remove []string
	for _, wx := range s.domains[x].Words() {
		support := counts.Count(rune(wx[ov.A]))
		// wx cannot support itself: assigned words must be distinct. The
		// Contains check comes first; only a word of y's length may be
		// indexed at y's offset.
		if dy.Contains(wx) && wx[ov.A] == wx[ov.B] {
			support--
		}
		if support == 0 {
			remove = append(remove, wx)
		}
	}

	for _, word := range remove {
		s.domains[x].Remove(word)
	}
	return len(remove) > 0
}

// AC3 enforces arc consistency over the given worklist of arcs, or over
// every ordered pair of distinct slots if arcs is nil. It returns false as
// soon as a revision empties a domain, true once the worklist drains with
// every domain non-empty.
func (s *Solver) AC3(arcs []Arc) bool {
	if arcs == nil {
		variables := s.crossword.Variables()
		arcs = make([]Arc, 0, len(variables)*(len(variables)-1))
		for _, x := range variables {
			for _, y := range variables {
				if x != y {
					arcs = append(arcs, Arc{X: x, Y: y})
				}
			}
		}
	}

	for len(arcs) > 0 {
		arc := arcs[0]
		arcs = arcs[1:]

		if !s.Revise(arc.X, arc.Y) {
			continue
		}
		if s.domains[arc.X].Len() == 0 {
			return false
		}
		// x's domain shrank, so every neighbor's consistency with x may
		// no longer hold.
		for _, z := range s.crossword.Neighbors(arc.X) {
			if z != arc.Y {
				arcs = append(arcs, Arc{X: z, Y: arc.X})
			}
		}
	}
	return true
}

// Solve runs node consistency, full arc consistency, and backtracking
// search in sequence. It returns a complete assignment, ErrNoSolution if
// none exists, or ctx.Err() if the context expires mid-search.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	s.EnforceNodeConsistency()
	if !s.AC3(nil) {
		return nil, ErrNoSolution
	}
	assignment, err := s.backtrack(ctx, Assignment{})
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, ErrNoSolution
	}
	return assignment, nil
}

// backtrack is the depth-first search over partial assignments. A nil
// assignment with a nil error means this branch is exhausted.
func (s *Solver) backtrack(ctx context.Context, assignment Assignment) (Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(assignment) == len(s.crossword.Variables()) {
		return assignment, nil
	}

	v := s.selectUnassignedVariable(assignment)
	for _, word := range s.orderDomainValues(v, assignment) {
		assignment[v] = word
		if s.consistent(assignment) {
			result, err := s.backtrack(ctx, assignment)
			if err != nil {
				return nil, err
			}
			if result != nil {
				return result, nil
			}
		}
		delete(assignment, v)
	}
	return nil, nil
}

// selectUnassignedVariable picks the next slot to fill: fewest remaining
// candidates first (MRV), then most neighbors (degree), then the fixed
// variable order.
func (s *Solver) selectUnassignedVariable(assignment Assignment) primitives.Variable {
	unassigned := lo.Filter(s.crossword.Variables(), func(v primitives.Variable, _ int) bool {
		_, ok := assignment[v]
		return !ok
	})

	best := unassigned[0]
	bestSize := s.domains[best].Len()
	bestDegree := len(s.crossword.Neighbors(best))
	for _, v := range unassigned[1:] {
		size := s.domains[v].Len()
		degree := len(s.crossword.Neighbors(v))
		if size < bestSize || (size == bestSize && degree > bestDegree) {
			best, bestSize, bestDegree = v, size, degree
		}
	}
	return best
}

// orderDomainValues orders v's candidates least-constraining first: by how
// many candidates each would eliminate from unassigned neighbors, either
// by clashing at the overlap or by consuming the identical word. Ties keep
// the domain's lexicographic order.
func (s *Solver) orderDomainValues(v primitives.Variable, assignment Assignment) []string {
	words := s.domains[v].Words()
	eliminations := make(map[string]int, len(words))

	for _, n := range s.crossword.Neighbors(v) {
		if _, assigned := assignment[n]; assigned {
			continue
		}
		ov, _ := s.crossword.Overlap(v, n)
		dn := s.domains[n]

		counts := primitives.DefaultLetterCounts()
		for _, wn := range dn.Words() {
			counts.Add(rune(wn[ov.B]))
		}

		for _, word := range words {
			kept := counts.Count(rune(word[ov.A]))
			if dn.Contains(word) && word[ov.A] == word[ov.B] {
				kept--
			}
			eliminations[word] += dn.Len() - kept
		}
	}

	ordered := slices.Clone(words)
	slices.SortStableFunc(ordered, func(a, b string) int {
		return cmp.Compare(eliminations[a], eliminations[b])
	})
	return ordered
}

// consistent reports whether a partial assignment violates no constraint:
// every word fits its slot, no word is used twice, and every assigned pair
// of crossing slots agrees at the shared cell.
func (s *Solver) consistent(assignment Assignment) bool {
	seen := make(map[string]bool, len(assignment))
	for v, word := range assignment {
		if len(word) != v.Length {
			return false
		}
		if seen[word] {
			return false
		}
		seen[word] = true
	}

	for v, word := range assignment {
		for _, n := range s.crossword.Neighbors(v) {
			other, assigned := assignment[n]
			if !assigned {
				continue
			}
			ov, _ := s.crossword.Overlap(v, n)
			if word[ov.A] != other[ov.B] {
				return false
			}
		}
	}
	return true
}
