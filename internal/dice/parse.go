package dice

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// MinDice is the smallest set a game can be played with.
const MinDice = 3

// UsageExample shows a valid set of dice on the command line.
const UsageExample = "fairdice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3"

// ErrTooFewDice indicates fewer than MinDice dice were given.
var ErrTooFewDice = apperrors.New(apperrors.CodeDiceTooFew, "at least 3 dice must be provided")

// Parse reads a die from comma-separated faces such as "2,2,4,4,9,9".
//
// Faces are integers; whole-valued decimals like "4.0" are accepted, while
// "2.5" fails with ErrNonIntegerFace and anything that is not a number fails
// with ErrInvalidFace. Inf and NaN are not numbers here.
func Parse(spec string) (Die, error) {
	fields := strings.Split(spec, ",")
	if len(fields) != Faces {
		return Die{}, faceCountError(len(fields))
	}
	faces := make([]int64, Faces)
	for i, field := range fields {
		v, err := parseFace(strings.TrimSpace(field))
		if err != nil {
			return Die{}, err
		}
		faces[i] = v
	}
	return New(faces)
}

// ParseSet parses one die per argument. Errors name the 1-based position of
// the offending argument.
func ParseSet(args []string) ([]Die, error) {
	if len(args) < MinDice {
		return nil, apperrors.WithMetadata(apperrors.CodeDiceTooFew, "at least 3 dice must be provided",
			map[string]string{"Min": strconv.Itoa(MinDice), "Got": strconv.Itoa(len(args))})
	}
	set := make([]Die, 0, len(args))
	for i, arg := range args {
		d, err := Parse(arg)
		if err != nil {
			return nil, apperrors.WrapWithMetadata(apperrors.CodeDiceInvalidAtPosition,
				"invalid dice configuration at position "+strconv.Itoa(i+1),
				map[string]string{"Position": strconv.Itoa(i + 1)}, err)
		}
		set = append(set, d)
	}
	return set, nil
}

func parseFace(field string) (int64, error) {
	if v, err := strconv.ParseInt(field, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, apperrors.WithMetadata(apperrors.CodeDieInvalidFace, "invalid face value",
			map[string]string{"Face": field})
	}
	return wholeNumber(f)
}
