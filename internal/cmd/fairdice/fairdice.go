// Package fairdice parses game command flags and runs an interactive session.
package fairdice

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"

	"github.com/louisbranch/fairdice/internal/dice"
	"github.com/louisbranch/fairdice/internal/game"
	entrypoint "github.com/louisbranch/fairdice/internal/platform/cmd"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
	"github.com/louisbranch/fairdice/internal/platform/i18n/catalog"
)

// Config holds game command configuration. Dice are the positional
// arguments, one die per argument.
type Config struct {
	Locale   string `env:"FAIRDICE_LOCALE" envDefault:"en-US"`
	Strategy string `env:"FAIRDICE_STRATEGY" envDefault:"random"`
	Dice     []string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for game text (en-US, pt-BR)")
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "How the computer picks its die (random, counter)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Dice = fs.Args()
	return cfg, nil
}

// Run parses the dice and plays one round reading from in and writing to out.
// It returns game.ErrQuit when the user exits early.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	strategy, err := game.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	set, err := dice.ParseSet(cfg.Dice)
	if err != nil {
		return err
	}
	printer := catalog.Default().Printer(cfg.Locale)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceFairdice, func(ctx context.Context) error {
		session, err := game.NewSession(set, game.Options{
			In:       in,
			Out:      out,
			Printer:  printer,
			Strategy: strategy,
		})
		if err != nil {
			return err
		}
		outcome, err := session.Run(ctx)
		if err != nil {
			return err
		}
		log.Printf("round finished: %s", outcome)
		return nil
	})
}

// IsQuit reports whether the round ended because the user left: by choosing
// exit, closing input or interrupting a prompt.
func IsQuit(err error) bool {
	return errors.Is(err, game.ErrQuit) || errors.Is(err, context.Canceled)
}

// IsUsageError reports whether err came from bad command-line dice, in which
// case the usage example should be shown.
func IsUsageError(err error) bool {
	return apperrors.IsKind(err, apperrors.KindValidation)
}

// ErrorMessage renders err and the usage example in the configured locale.
func ErrorMessage(cfg Config, err error) (message string, usage string) {
	locale := catalog.Default().ResolveLocale(cfg.Locale)
	printer := catalog.Default().Printer(locale)
	return printer.Sprintf("game.error", apperrors.Localize(err, locale)),
		printer.Sprintf("game.usage", dice.UsageExample)
}
