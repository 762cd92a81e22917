// Package random provides cryptographically secure integer and key generation.
//
// Integers are drawn by rejection sampling over 64-bit samples so every value
// in the requested range is equally likely, whatever the range size.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math"
	"strconv"
	"sync"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// KeySize is the length in bytes of keys returned by GenerateKey.
const KeySize = 32

// ErrInvalidRange indicates a negative range maximum.
var ErrInvalidRange = apperrors.New(apperrors.CodeRandomInvalidRange, "range maximum must be non-negative")

// ErrEntropy indicates the entropy reader failed.
var ErrEntropy = apperrors.New(apperrors.CodeRandomEntropy, "read entropy")

// Source draws uniform integers and keys from an entropy stream.
//
// A Source is safe for concurrent use: reads from the underlying reader are
// serialized, so independent exchanges may share one Source.
type Source struct {
	mu     sync.Mutex
	reader io.Reader
}

var defaultSource = New(crand.Reader)

// New returns a Source reading from reader. A nil reader means crypto/rand.
func New(reader io.Reader) *Source {
	if reader == nil {
		reader = crand.Reader
	}
	return &Source{reader: reader}
}

// Default returns the process-wide Source backed by crypto/rand.
func Default() *Source {
	return defaultSource
}

// UniformInRange returns a value uniformly distributed over [0, maxValue].
//
// Samples are 64-bit. For n = maxValue+1 outcomes, samples below 2^64 mod n are
// rejected and redrawn; the remaining sample space is an exact multiple of n,
// so reducing modulo n is unbiased. At most half of all samples are rejected
// for any n, so the expected number of draws is below two.
func (s *Source) UniformInRange(maxValue int64) (int64, error) {
	if maxValue < 0 {
		return 0, apperrors.WithMetadata(apperrors.CodeRandomInvalidRange,
			"range maximum must be non-negative",
			map[string]string{"Max": strconv.FormatInt(maxValue, 10)})
	}
	if maxValue == 0 {
		return 0, nil
	}

	n := uint64(maxValue) + 1
	// (2^64 - n) mod n == 2^64 mod n, computed without overflow.
	threshold := (math.MaxUint64 - n + 1) % n

	s.mu.Lock()
	defer s.mu.Unlock()

	var buf [8]byte
	for {
		if _, err := io.ReadFull(s.reader, buf[:]); err != nil {
			return 0, apperrors.Wrap(apperrors.CodeRandomEntropy, "read entropy", err)
		}
		sample := binary.LittleEndian.Uint64(buf[:])
		if sample >= threshold {
			return int64(sample % n), nil
		}
	}
}

// GenerateKey returns KeySize random bytes.
func (s *Source) GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.ReadFull(s.reader, key); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeRandomEntropy, "read entropy", err)
	}
	return key, nil
}

// Pick returns a uniform index in [0, n). It returns ErrInvalidRange when n is
// not positive.
func (s *Source) Pick(n int) (int, error) {
	v, err := s.UniformInRange(int64(n) - 1)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// UniformInRange draws from the default Source.
func UniformInRange(maxValue int64) (int64, error) {
	return defaultSource.UniformInRange(maxValue)
}

// GenerateKey draws a key from the default Source.
func GenerateKey() ([]byte, error) {
	return defaultSource.GenerateKey()
}
