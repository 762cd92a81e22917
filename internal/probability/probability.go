// Package probability computes exact win probabilities between dice.
//
// A die wins a roll when its face is strictly greater; ties count for
// neither side. Probabilities are kept as integer win counts over the 36
// face pairs and only turned into floats for display.
package probability

import (
	"math/big"
	"strconv"

	"github.com/louisbranch/fairdice/internal/dice"
)

// Outcomes is the number of face pairs between two dice.
const Outcomes = dice.Faces * dice.Faces

// Ratio is an exact probability Wins/Total.
type Ratio struct {
	Wins  int
	Total int
}

// Float64 returns the ratio as a float. A zero Total yields 0.
func (r Ratio) Float64() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Total)
}

// Rat returns the ratio as a reduced big.Rat.
func (r Ratio) Rat() *big.Rat {
	if r.Total == 0 {
		return new(big.Rat)
	}
	return big.NewRat(int64(r.Wins), int64(r.Total))
}

// Cmp compares two ratios exactly, returning -1, 0 or +1.
func (r Ratio) Cmp(other Ratio) int {
	return r.Rat().Cmp(other.Rat())
}

// GreaterThanHalf reports whether the ratio is strictly above 1/2.
func (r Ratio) GreaterThanHalf() bool {
	return 2*r.Wins > r.Total
}

// String renders the unreduced ratio, e.g. "20/36".
func (r Ratio) String() string {
	return strconv.Itoa(r.Wins) + "/" + strconv.Itoa(r.Total)
}

// Pairwise returns the probability that a rolls strictly higher than b.
func Pairwise(a, b dice.Die) Ratio {
	af, bf := a.Faces(), b.Faces()
	wins := 0
	for _, x := range af {
		for _, y := range bf {
			if x > y {
				wins++
			}
		}
	}
	return Ratio{Wins: wins, Total: Outcomes}
}

// SelfPlay returns the probability that a die beats an identical copy of
// itself. It is the value shown on the diagonal of a probability table: by
// symmetry it equals (36 - ties) / 72, which is 1/3 for dice made of three
// pairs of equal faces.
func SelfPlay(d dice.Die) Ratio {
	return Pairwise(d, d)
}
