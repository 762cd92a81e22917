package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/louisbranch/fairdice/internal/random"
)

func TestParseStrategy(t *testing.T) {
	tcs := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{in: "random", want: StrategyRandom},
		{in: " Counter ", want: StrategyCounter},
		{in: "", wantErr: true},
		{in: "greedy", wantErr: true},
	}
	for _, tc := range tcs {
		got, err := ParseStrategy(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStrategy(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func newStrategySession(t *testing.T, strategy Strategy) *Session {
	t.Helper()
	s, err := NewSession(classicDice(), Options{
		In:       strings.NewReader(""),
		Out:      &bytes.Buffer{},
		Source:   random.New(constReader(0xFF)),
		Strategy: strategy,
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestCounterStrategyCandidates(t *testing.T) {
	s := newStrategySession(t, StrategyCounter)

	// A is beaten by C, B by A and C by B.
	want := map[int]int{0: 2, 1: 0, 2: 1}
	for user, counter := range want {
		got, err := s.computerDie(user)
		if err != nil {
			t.Fatalf("computer die: %v", err)
		}
		if got != counter {
			t.Errorf("counter to %d = %d, want %d", user, got, counter)
		}
	}

	if got := s.candidates(-1); len(got) != 3 {
		t.Fatalf("maximin candidates = %v, want all three dice", got)
	}
}

func TestRandomStrategyNeverTakesUserDie(t *testing.T) {
	s, err := NewSession(classicDice(), Options{
		In:  strings.NewReader(""),
		Out: &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	for user := range 3 {
		for range 50 {
			got, err := s.computerDie(user)
			if err != nil {
				t.Fatalf("computer die: %v", err)
			}
			if got == user {
				t.Fatalf("computer took the user's die %d", user)
			}
		}
	}
}
