package random

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// samples encodes values as consecutive little-endian 64-bit samples.
func samples(values ...uint64) *bytes.Reader {
	buf := make([]byte, 0, 8*len(values))
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, v)
	}
	return bytes.NewReader(buf)
}

func TestUniformInRangeRejectsNegativeMax(t *testing.T) {
	_, err := New(nil).UniformInRange(-1)
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestUniformInRangeZeroConsumesNoEntropy(t *testing.T) {
	reader := samples()
	v, err := New(reader).UniformInRange(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

// 2^64 mod 3 == 1, so a zero sample falls in the biased tail and is redrawn.
func TestUniformInRangeRedrawsBiasedSamples(t *testing.T) {
	reader := samples(0, 5)
	v, err := New(reader).UniformInRange(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
	assert.Zero(t, reader.Len(), "expected both samples to be consumed")
}

// 2^64 mod 6 == 4: samples 0..3 are rejected, 4 is the first accepted value.
func TestUniformInRangeThresholdForSixOutcomes(t *testing.T) {
	reader := samples(0, 1, 2, 3, 4)
	v, err := New(reader).UniformInRange(5)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)
}

func TestUniformInRangePowerOfTwoNeverRejects(t *testing.T) {
	reader := samples(0, 7)
	v, err := New(reader).UniformInRange(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
	assert.Equal(t, 8, reader.Len())
}

func TestUniformInRangeMaxInt64(t *testing.T) {
	v, err := New(samples(1<<63 + 9)).UniformInRange(1<<63 - 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), v)
}

func TestUniformInRangeReaderError(t *testing.T) {
	_, err := New(bytes.NewReader([]byte{1, 2, 3})).UniformInRange(5)
	require.ErrorIs(t, err, ErrEntropy)
}

func TestGenerateKey(t *testing.T) {
	key, err := Default().GenerateKey()
	require.NoError(t, err)
	assert.Len(t, key, KeySize)

	other, err := GenerateKey()
	require.NoError(t, err)
	assert.False(t, bytes.Equal(key, other), "two keys should differ")
}

func TestGenerateKeyReaderError(t *testing.T) {
	_, err := New(bytes.NewReader(make([]byte, KeySize-1))).GenerateKey()
	require.True(t, errors.Is(err, ErrEntropy))
}

func TestPick(t *testing.T) {
	i, err := New(samples(0)).Pick(4)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = New(nil).Pick(0)
	require.ErrorIs(t, err, ErrInvalidRange)
}

// TestUniformInRangeChiSquare runs a chi-square goodness-of-fit test against
// the uniform distribution for several range sizes. The critical value is the
// 0.9999 quantile, so a correct generator fails about once in ten thousand runs.
func TestUniformInRangeChiSquare(t *testing.T) {
	const perBucket = 2000
	for _, maxValue := range []int64{1, 2, 5, 6, 36, 99} {
		buckets := int(maxValue) + 1
		observed := make([]float64, buckets)
		expected := make([]float64, buckets)
		for i := range expected {
			expected[i] = perBucket
		}
		for i := 0; i < perBucket*buckets; i++ {
			v, err := UniformInRange(maxValue)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, int64(0))
			require.LessOrEqual(t, v, maxValue)
			observed[v]++
		}

		chi2 := stat.ChiSquare(observed, expected)
		critical := distuv.ChiSquared{K: float64(buckets - 1)}.Quantile(0.9999)
		assert.Less(t, chi2, critical, "range 0..%d: chi-square %v exceeds critical %v", maxValue, chi2, critical)
	}
}

func TestSourceConcurrentUse(t *testing.T) {
	source := Default()
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := source.UniformInRange(5); err != nil {
					errs <- err
					return
				}
				if _, err := source.GenerateKey(); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent draw: %v", err)
	}
}
