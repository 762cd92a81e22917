package game

import (
	"fmt"
	"strings"
)

// Strategy decides how the computer picks its die.
type Strategy string

const (
	// StrategyRandom picks uniformly among the dice still available.
	StrategyRandom Strategy = "random"
	// StrategyCounter picks the die most likely to beat the user's die, or a
	// maximin die when the computer moves first. Ties are broken uniformly.
	StrategyCounter Strategy = "counter"
)

// ParseStrategy maps a config value to a Strategy.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case StrategyRandom:
		return StrategyRandom, nil
	case StrategyCounter:
		return StrategyCounter, nil
	default:
		return "", fmt.Errorf("unknown strategy %q: want %q or %q", value, StrategyRandom, StrategyCounter)
	}
}

// computerDie picks the computer's die. userDie is -1 when the computer moves
// first.
func (s *Session) computerDie(userDie int) (int, error) {
	candidates := s.candidates(userDie)
	i, err := s.source.Pick(len(candidates))
	if err != nil {
		return 0, fmt.Errorf("pick die: %w", err)
	}
	return candidates[i], nil
}

func (s *Session) candidates(userDie int) []int {
	if s.strategy == StrategyCounter {
		if userDie >= 0 {
			return s.matrix.Counters(userDie)
		}
		return s.matrix.Maximin()
	}
	available := make([]int, 0, len(s.dice))
	for i := range s.dice {
		if i != userDie {
			available = append(available, i)
		}
	}
	return available
}
