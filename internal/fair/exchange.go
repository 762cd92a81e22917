// Package fair implements a two-party commit-reveal exchange that produces a
// jointly random number neither party controls.
//
// # Protocol
//
// One party (the committer) draws a secret uniformly from [0, range], draws
// a fresh 32-byte key, and publishes HMAC(key, secret) through Commit. The
// counterpart then picks any number in [0, range]. Reveal combines both as
//
//	(secret + choice) mod (range + 1)
//
// and discloses the secret and key so the counterpart can recompute the MAC
// and check the secret was fixed before the choice was known.
//
// Because the secret is uniform and independent of the choice, the combined
// value is uniform whatever strategy the counterpart uses.
//
// # Ordering
//
// An Exchange moves Created → Committed → Revealed and never skips a state.
// Callers must collect the counterpart's choice after publishing the MAC and
// before calling Reveal; the two-call interface keeps the secret hidden until
// the choice is passed in.
//
// An Exchange is not safe for concurrent use. Run one per random draw.
package fair

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/louisbranch/fairdice/internal/commitment"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
	"github.com/louisbranch/fairdice/internal/random"
)

// State is the protocol state of an Exchange.
type State int

const (
	StateCreated State = iota
	StateCommitted
	StateRevealed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateCommitted:
		return "Committed"
	case StateRevealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// ErrInvalidRange indicates a negative range.
var ErrInvalidRange = random.ErrInvalidRange

// ErrAlreadyCommitted indicates Commit was called more than once.
var ErrAlreadyCommitted = apperrors.New(apperrors.CodeExchangeAlreadyCommitted, "exchange already committed")

// ErrNotCommitted indicates Reveal was called before Commit.
var ErrNotCommitted = apperrors.New(apperrors.CodeExchangeNotCommitted, "exchange not committed")

// ErrAlreadyRevealed indicates Reveal was called more than once.
var ErrAlreadyRevealed = apperrors.New(apperrors.CodeExchangeAlreadyRevealed, "exchange already revealed")

// ErrChoiceOutOfRange indicates the counterpart's choice is outside [0, range].
var ErrChoiceOutOfRange = apperrors.New(apperrors.CodeExchangeChoiceOutOfRange, "choice out of range")

// Result is the outcome of a completed exchange.
type Result struct {
	// Combined is (Secret + Choice) mod (range + 1).
	Combined int64
	// Secret is the committer's value, hidden until reveal.
	Secret int64
	// Choice is the counterpart's value.
	Choice int64
	// Key is the HMAC key, hidden until reveal.
	Key []byte
	// MAC is the commitment published before the choice.
	MAC string
}

// KeyHex renders the key as uppercase hex for display.
func (r Result) KeyHex() string {
	return strings.ToUpper(hex.EncodeToString(r.Key))
}

// Verify recomputes the commitment from the revealed key and secret.
func (r Result) Verify() bool {
	return commitment.Verify(r.Key, r.Secret, r.MAC)
}

// Option configures an Exchange.
type Option func(*Exchange)

// WithSource draws the secret and key from source instead of the default
// crypto/rand source.
func WithSource(source *random.Source) Option {
	return func(e *Exchange) {
		if source != nil {
			e.source = source
		}
	}
}

// Exchange is one commit-reveal round over [0, Range()].
type Exchange struct {
	rangeMax int64
	source   *random.Source
	state    State

	secret int64
	key    []byte
	mac    string
}

// New creates an exchange whose results lie in [0, rangeMax].
func New(rangeMax int64, opts ...Option) (*Exchange, error) {
	if rangeMax < 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeRandomInvalidRange,
			"range maximum must be non-negative",
			map[string]string{"Max": strconv.FormatInt(rangeMax, 10)})
	}
	e := &Exchange{
		rangeMax: rangeMax,
		source:   random.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Range returns the inclusive upper bound of results.
func (e *Exchange) Range() int64 {
	return e.rangeMax
}

// State returns the current protocol state.
func (e *Exchange) State() State {
	return e.state
}

// MAC returns the published commitment, or "" before Commit.
func (e *Exchange) MAC() string {
	return e.mac
}

// Commit draws the secret and key and returns the MAC to publish.
//
// A failure to read entropy leaves the exchange in StateCreated.
func (e *Exchange) Commit() (string, error) {
	if e.state != StateCreated {
		return "", ErrAlreadyCommitted
	}
	secret, err := e.source.UniformInRange(e.rangeMax)
	if err != nil {
		return "", err
	}
	key, err := e.source.GenerateKey()
	if err != nil {
		return "", err
	}

	e.secret = secret
	e.key = key
	e.mac = commitment.Compute(key, secret)
	e.state = StateCommitted
	return e.mac, nil
}

// Reveal combines the secret with the counterpart's choice and discloses the
// secret and key.
//
// An out-of-range choice returns ErrChoiceOutOfRange and leaves the exchange
// committed, so the caller may ask again.
func (e *Exchange) Reveal(choice int64) (Result, error) {
	switch e.state {
	case StateCreated:
		return Result{}, ErrNotCommitted
	case StateRevealed:
		return Result{}, ErrAlreadyRevealed
	}
	if choice < 0 || choice > e.rangeMax {
		return Result{}, apperrors.WithMetadata(apperrors.CodeExchangeChoiceOutOfRange, "choice out of range",
			map[string]string{
				"Choice": strconv.FormatInt(choice, 10),
				"Max":    strconv.FormatInt(e.rangeMax, 10),
			})
	}

	// Both operands are below 2^63, so the uint64 sum cannot overflow.
	n := uint64(e.rangeMax) + 1
	combined := (uint64(e.secret) + uint64(choice)) % n

	e.state = StateRevealed
	return Result{
		Combined: int64(combined),
		Secret:   e.secret,
		Choice:   choice,
		Key:      append([]byte(nil), e.key...),
		MAC:      e.mac,
	}, nil
}
