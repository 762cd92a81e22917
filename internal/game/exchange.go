package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/fairdice/internal/fair"
)

// exchange commits to a secret in [0, rangeMax], shows the MAC, asks the user
// for their number and reveals. The user's prompt is printed with promptArgs.
func (s *Session) exchange(ctx context.Context, rangeMax int64, options []option, prompt string, promptArgs ...any) (res fair.Result, err error) {
	ctx, span := s.tracer.Start(ctx, "fair.exchange",
		trace.WithAttributes(attribute.Int64("fair.range", rangeMax)))
	defer func() {
		if err != nil && !errors.Is(err, ErrQuit) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	ex, err := fair.New(rangeMax, fair.WithSource(s.source))
	if err != nil {
		return fair.Result{}, err
	}
	mac, err := ex.Commit()
	if err != nil {
		return fair.Result{}, err
	}
	span.SetAttributes(attribute.String("fair.mac", mac))

	s.say("game.exchange.commit", rangeMax, mac)
	s.say(prompt, promptArgs...)

	choice, err := s.choose(ctx, options)
	if err != nil {
		return fair.Result{}, err
	}
	res, err = ex.Reveal(choice)
	if err != nil {
		return fair.Result{}, err
	}
	span.SetAttributes(
		attribute.Int64("fair.choice", res.Choice),
		attribute.Int64("fair.combined", res.Combined),
	)
	return res, nil
}
