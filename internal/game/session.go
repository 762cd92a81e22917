// Package game runs one interactive round of the non-transitive dice game.
//
// Every random draw is a fair.Exchange: the computer commits to its number
// before the user picks theirs, so neither side controls the first move or the
// rolls.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/louisbranch/fairdice/internal/dice"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
	"github.com/louisbranch/fairdice/internal/platform/i18n/catalog"
	"github.com/louisbranch/fairdice/internal/probability"
	"github.com/louisbranch/fairdice/internal/random"
)

const tracerName = "github.com/louisbranch/fairdice/internal/game"

// ErrQuit is returned by Run when the user exits or input ends.
var ErrQuit = errors.New("game: quit")

// Outcome is the result of a finished round.
type Outcome int

const (
	OutcomeUserWins Outcome = iota + 1
	OutcomeComputerWins
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUserWins:
		return "user wins"
	case OutcomeComputerWins:
		return "computer wins"
	case OutcomeTie:
		return "tie"
	default:
		return "unknown"
	}
}

// Options configures a Session. In and Out are required.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Source draws secrets, keys and random dice picks. Defaults to
	// random.Default().
	Source *random.Source
	// Printer renders user-facing text. Defaults to the en-US catalog.
	Printer *message.Printer
	// Strategy picks the computer's die. Defaults to StrategyRandom.
	Strategy Strategy
	// Tracer starts exchange spans. Defaults to the global provider.
	Tracer trace.Tracer
}

// Session plays one round over a fixed set of dice.
type Session struct {
	dice     []dice.Die
	matrix   *probability.Matrix
	in       *lineReader
	out      io.Writer
	source   *random.Source
	printer  *message.Printer
	strategy Strategy
	tracer   trace.Tracer
}

// NewSession validates the dice and options and precomputes the probability
// matrix shown in help.
func NewSession(set []dice.Die, opts Options) (*Session, error) {
	if len(set) < dice.MinDice {
		return nil, apperrors.WithMetadata(apperrors.CodeDiceTooFew, "at least 3 dice must be provided",
			map[string]string{"Min": strconv.Itoa(dice.MinDice), "Got": strconv.Itoa(len(set))})
	}
	if opts.In == nil {
		return nil, errors.New("input is required")
	}
	if opts.Out == nil {
		return nil, errors.New("output is required")
	}
	strategy := StrategyRandom
	if opts.Strategy != "" {
		parsed, err := ParseStrategy(string(opts.Strategy))
		if err != nil {
			return nil, err
		}
		strategy = parsed
	}

	s := &Session{
		dice:     append([]dice.Die(nil), set...),
		matrix:   probability.NewMatrix(set),
		in:       newLineReader(opts.In),
		out:      opts.Out,
		source:   opts.Source,
		printer:  opts.Printer,
		strategy: strategy,
		tracer:   opts.Tracer,
	}
	if s.source == nil {
		s.source = random.Default()
	}
	if s.printer == nil {
		s.printer = catalog.Default().Printer(catalog.BaseLocale)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s, nil
}

// Run plays the round: first-move draw, die selection, the computer's roll,
// the user's roll. It returns ErrQuit if the user exits or input ends before
// the round is decided.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	outcome, err := s.run(ctx)
	if errors.Is(err, ErrQuit) {
		s.say("game.goodbye")
	}
	return outcome, err
}

func (s *Session) run(ctx context.Context) (Outcome, error) {
	s.say("game.first_move.intro")
	userFirst, err := s.firstMove(ctx)
	if err != nil {
		return 0, err
	}

	var userDie, computerDie int
	if userFirst {
		s.say("game.first_move.user")
		if userDie, err = s.chooseDie(ctx, -1); err != nil {
			return 0, err
		}
		if computerDie, err = s.computerDie(userDie); err != nil {
			return 0, err
		}
		s.say("game.die.computer", s.dice[computerDie].String())
	} else {
		s.say("game.first_move.computer")
		if computerDie, err = s.computerDie(-1); err != nil {
			return 0, err
		}
		s.say("game.die.computer", s.dice[computerDie].String())
		if userDie, err = s.chooseDie(ctx, computerDie); err != nil {
			return 0, err
		}
	}
	s.say("game.die.user", s.dice[userDie].String())

	s.say("game.roll.computer_turn")
	computerRoll, err := s.roll(ctx, s.dice[computerDie])
	if err != nil {
		return 0, err
	}
	s.say("game.roll.computer_result", face(computerRoll))

	s.say("game.roll.user_turn")
	userRoll, err := s.roll(ctx, s.dice[userDie])
	if err != nil {
		return 0, err
	}
	s.say("game.roll.user_result", face(userRoll))

	switch {
	case userRoll > computerRoll:
		s.say("game.outcome.user", face(userRoll), face(computerRoll))
		return OutcomeUserWins, nil
	case computerRoll > userRoll:
		s.say("game.outcome.computer", face(computerRoll), face(userRoll))
		return OutcomeComputerWins, nil
	default:
		s.say("game.outcome.tie", face(userRoll), face(computerRoll))
		return OutcomeTie, nil
	}
}

// firstMove draws a fair bit; the user moves first when their guess matches
// the computer's secret.
func (s *Session) firstMove(ctx context.Context) (bool, error) {
	res, err := s.exchange(ctx, 1, numberOptions(1), "game.first_move.prompt")
	if err != nil {
		return false, err
	}
	s.say("game.first_move.reveal", res.Secret, res.KeyHex())
	return res.Secret == res.Choice, nil
}

// chooseDie asks the user for a die, leaving out the one at exclude.
func (s *Session) chooseDie(ctx context.Context, exclude int) (int, error) {
	s.say("game.die.choose")
	options := make([]option, 0, len(s.dice))
	for i, d := range s.dice {
		if i != exclude {
			options = append(options, option{value: int64(i), label: d.String()})
		}
	}
	v, err := s.choose(ctx, options)
	return int(v), err
}

// roll runs a fair draw over the six faces and returns the face it lands on.
func (s *Session) roll(ctx context.Context, d dice.Die) (int64, error) {
	res, err := s.exchange(ctx, dice.Faces-1, numberOptions(dice.Faces-1), "game.roll.prompt", dice.Faces)
	if err != nil {
		return 0, err
	}
	s.say("game.roll.reveal", res.Secret, res.KeyHex())
	s.say("game.roll.result", res.Secret, res.Choice, res.Combined, dice.Faces)
	return d.FaceAt(int(res.Combined))
}

// face renders a die face the way dice labels do, without locale grouping.
func face(v int64) string {
	return strconv.FormatInt(v, 10)
}

func (s *Session) say(key string, args ...any) {
	s.printer.Fprintf(s.out, key, args...)
	fmt.Fprintln(s.out)
}
