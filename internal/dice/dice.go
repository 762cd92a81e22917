// Package dice defines six-sided dice with arbitrary integer faces.
package dice

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// Faces is the number of faces on every die.
const Faces = 6

// ErrInvalidFaceCount indicates a die was not given exactly six faces.
var ErrInvalidFaceCount = apperrors.New(apperrors.CodeDieInvalidFaceCount, "dice must have exactly 6 faces")

// ErrNonIntegerFace indicates a face value is not a whole number.
var ErrNonIntegerFace = apperrors.New(apperrors.CodeDieNonIntegerFace, "all dice faces must be integers")

// ErrInvalidFace indicates a face value could not be read as a number.
var ErrInvalidFace = apperrors.New(apperrors.CodeDieInvalidFace, "invalid face value")

// ErrIndexOutOfRange indicates a face index outside [0, 5].
var ErrIndexOutOfRange = apperrors.New(apperrors.CodeDieIndexOutOfRange, "invalid face index")

// Die is an immutable, ordered set of six integer faces. Dice with the same
// faces in the same order are equal, and Die values can be compared with ==.
type Die struct {
	faces [Faces]int64
}

// New builds a die from exactly six faces.
func New(faces []int64) (Die, error) {
	if len(faces) != Faces {
		return Die{}, faceCountError(len(faces))
	}
	var d Die
	copy(d.faces[:], faces)
	return d, nil
}

// FromFloats builds a die from numeric faces that must all be whole numbers
// representable as int64.
func FromFloats(faces []float64) (Die, error) {
	if len(faces) != Faces {
		return Die{}, faceCountError(len(faces))
	}
	ints := make([]int64, Faces)
	for i, f := range faces {
		v, err := wholeNumber(f)
		if err != nil {
			return Die{}, err
		}
		ints[i] = v
	}
	return New(ints)
}

// MustNew is like New but panics on error. It is meant for fixed dice in
// tests and examples.
func MustNew(faces ...int64) Die {
	d, err := New(faces)
	if err != nil {
		panic(err)
	}
	return d
}

// FaceAt returns the face at index i.
func (d Die) FaceAt(i int) (int64, error) {
	if i < 0 || i >= Faces {
		return 0, apperrors.WithMetadata(apperrors.CodeDieIndexOutOfRange, "invalid face index",
			map[string]string{"Index": strconv.Itoa(i)})
	}
	return d.faces[i], nil
}

// Faces returns a copy of the faces in order.
func (d Die) Faces() [Faces]int64 {
	return d.faces
}

// Equal reports whether both dice have the same faces in the same order.
func (d Die) Equal(other Die) bool {
	return d.faces == other.faces
}

// String renders the faces as comma-separated integers, e.g. "2,2,4,4,9,9".
func (d Die) String() string {
	parts := make([]string, Faces)
	for i, f := range d.faces {
		parts[i] = strconv.FormatInt(f, 10)
	}
	return strings.Join(parts, ",")
}

func faceCountError(got int) error {
	return apperrors.WithMetadata(apperrors.CodeDieInvalidFaceCount, "dice must have exactly 6 faces",
		map[string]string{"Got": strconv.Itoa(got)})
}

// wholeNumber converts f to int64, rejecting fractions, NaN, infinities and
// values outside the int64 range.
func wholeNumber(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, apperrors.WithMetadata(apperrors.CodeDieNonIntegerFace, "all dice faces must be integers",
			map[string]string{"Face": strconv.FormatFloat(f, 'g', -1, 64)})
	}
	return int64(f), nil
}
