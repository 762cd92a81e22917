package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/fairdice/internal/table"
)

type option struct {
	value int64
	label string
}

// numberOptions lists 0..maxValue, each labelled with itself.
func numberOptions(maxValue int64) []option {
	options := make([]option, 0, maxValue+1)
	for v := int64(0); v <= maxValue; v++ {
		options = append(options, option{value: v, label: strconv.FormatInt(v, 10)})
	}
	return options
}

// choose prints the menu and reads lines until one names an option. "x" and
// end of input return ErrQuit; "?" prints help and shows the menu again. A
// context that ends while waiting for a line returns its error.
func (s *Session) choose(ctx context.Context, options []option) (int64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for _, o := range options {
			fmt.Fprintf(s.out, "%d - %s\n", o.value, o.label)
		}
		s.say("game.menu.exit")
		s.say("game.menu.help")
		s.printer.Fprintf(s.out, "game.menu.prompt")

		line, err := s.in.next(ctx)
		if err != nil {
			fmt.Fprintln(s.out)
			switch {
			case errors.Is(err, io.EOF):
				return 0, ErrQuit
			case ctx.Err() != nil:
				return 0, err
			default:
				return 0, fmt.Errorf("read selection: %w", err)
			}
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "x":
			return 0, ErrQuit
		case "?":
			s.help()
			continue
		}
		if v, err := strconv.ParseInt(answer, 10, 64); err == nil {
			for _, o := range options {
				if o.value == v {
					return v, nil
				}
			}
		}
		s.say("game.menu.invalid")
	}
}

func (s *Session) help() {
	fmt.Fprintln(s.out)
	s.say("game.help.text")
	fmt.Fprint(s.out, table.Render(s.printer, s.matrix))

	cycle, ok := s.matrix.Cycle()
	if !ok {
		s.say("game.help.no_cycle")
		return
	}
	a, b, c := s.dice[cycle[0]].String(), s.dice[cycle[1]].String(), s.dice[cycle[2]].String()
	s.say("game.help.cycle", a, b, b, c, c, a)
}
