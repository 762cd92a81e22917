package probability

import (
	"github.com/louisbranch/fairdice/internal/dice"
)

// Matrix holds the pairwise win probability of every ordered pair of dice in
// a fixed set. Entry (i, j) is the probability that die i beats die j; the
// diagonal is undefined.
type Matrix struct {
	dice  []dice.Die
	cells [][]Ratio
}

// NewMatrix computes the full matrix for the set. The set is copied.
func NewMatrix(set []dice.Die) *Matrix {
	m := &Matrix{
		dice:  append([]dice.Die(nil), set...),
		cells: make([][]Ratio, len(set)),
	}
	for i := range set {
		m.cells[i] = make([]Ratio, len(set))
		for j := range set {
			if i == j {
				continue
			}
			m.cells[i][j] = Pairwise(set[i], set[j])
		}
	}
	return m
}

// Len returns the number of dice.
func (m *Matrix) Len() int {
	return len(m.dice)
}

// Die returns the i-th die.
func (m *Matrix) Die(i int) dice.Die {
	return m.dice[i]
}

// Dice returns a copy of the dice in matrix order.
func (m *Matrix) Dice() []dice.Die {
	return append([]dice.Die(nil), m.dice...)
}

// At returns the probability that die i beats die j. ok is false on the
// diagonal and for indexes outside the matrix.
func (m *Matrix) At(i, j int) (r Ratio, ok bool) {
	if i == j || i < 0 || j < 0 || i >= len(m.dice) || j >= len(m.dice) {
		return Ratio{}, false
	}
	return m.cells[i][j], true
}

// SelfPlay returns the self-comparison ratio of die i.
func (m *Matrix) SelfPlay(i int) Ratio {
	return SelfPlay(m.dice[i])
}

// Cycle finds three dice a, b, c such that a beats b, b beats c and c beats a,
// each with probability above 1/2. The first cycle in index order is returned.
func (m *Matrix) Cycle() ([]int, bool) {
	n := len(m.dice)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if b == a || !m.cells[a][b].GreaterThanHalf() {
				continue
			}
			for c := 0; c < n; c++ {
				if c == a || c == b {
					continue
				}
				if m.cells[b][c].GreaterThanHalf() && m.cells[c][a].GreaterThanHalf() {
					return []int{a, b, c}, true
				}
			}
		}
	}
	return nil, false
}

// Counters returns the dice with the highest probability of beating die i,
// in index order.
func (m *Matrix) Counters(i int) []int {
	var best []int
	var bestRatio Ratio
	for j := range m.dice {
		if j == i {
			continue
		}
		r := m.cells[j][i]
		switch {
		case best == nil || r.Cmp(bestRatio) > 0:
			best = []int{j}
			bestRatio = r
		case r.Cmp(bestRatio) == 0:
			best = append(best, j)
		}
	}
	return best
}

// Maximin returns the dice whose worst matchup against any other die is
// best, in index order. It is the safest pick when the opponent chooses
// second.
func (m *Matrix) Maximin() []int {
	var best []int
	var bestWorst Ratio
	for i := range m.dice {
		worst := Ratio{Wins: Outcomes, Total: Outcomes}
		for j := range m.dice {
			if j != i && m.cells[i][j].Cmp(worst) < 0 {
				worst = m.cells[i][j]
			}
		}
		switch {
		case best == nil || worst.Cmp(bestWorst) > 0:
			best = []int{i}
			bestWorst = worst
		case worst.Cmp(bestWorst) == 0:
			best = append(best, i)
		}
	}
	return best
}
