package radix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix/internal/core/domain"
)

func TestConvert_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		source    domain.Base
		target    domain.Base
		expected  string
		magnitude int64
	}{
		{"binary to decimal", "1010", 2, 10, "10", 10},
		{"hex to binary", "FF", 16, 2, "11111111", 255},
		{"binary to hex", "11111111", 2, 16, "FF", 255},
		{"octal to decimal", "777", 8, 10, "511", 511},
		{"decimal to base 7", "100", 10, 7, "202", 100},
		{"zero", "0", 10, 16, "0", 0},
		{"leading zeros", "000101", 2, 10, "5", 5},
		{"decimal max to hex", domain.MaxMagnitudeString, 10, 16, "7FFFFFFFFFFFFFFF", domain.MaxMagnitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Convert(tt.raw, tt.source, tt.target, Options{})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Target.Digits)
			assert.Equal(t, tt.target, result.Target.Base)
			assert.Equal(t, tt.raw, result.Source.Digits)
			assert.Equal(t, tt.magnitude, result.Magnitude)
			assert.Nil(t, result.Steps)
			assert.Empty(t, result.Strategy)
		})
	}
}

func TestConvert_WithTrace(t *testing.T) {
	result, err := Convert("11111111", 2, 16, Options{Trace: true})

	require.NoError(t, err)
	assert.Equal(t, domain.StrategyHexGrouping, result.Strategy)
	require.Len(t, result.Steps, 4)
	assert.Equal(t, "Group 1111 → 15 → F", result.Steps[1].String())
	assert.Equal(t, "Group 1111 → 15 → F", result.Steps[2].String())
	assert.Equal(t, "Merge groups → FF", result.Steps[3].String())
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		source  domain.Base
		target  domain.Base
		opts    Options
		wantErr error
	}{
		{"invalid digit", "2", 2, 10, Options{}, domain.ErrInvalidDigit},
		{"empty", "", 10, 2, Options{}, domain.ErrInvalidDigit},
		{"lowercase", "ff", 16, 2, Options{}, domain.ErrInvalidDigit},
		{"same base", "10", 10, 10, Options{}, domain.ErrSameBase},
		{"same base wins over bad digits", "XYZ", 10, 10, Options{}, domain.ErrSameBase},
		{"source out of range", "1", 1, 10, Options{}, domain.ErrInvalidBase},
		{"target out of range", "1", 10, 17, Options{}, domain.ErrInvalidBase},
		{"decimal overflow", "9223372036854775808", 10, 2, Options{}, domain.ErrOverflow},
		{"twenty decimal digits", "10000000000000000000", 10, 2, Options{}, domain.ErrOverflow},
		{"literal rejects long binary", strings.Repeat("1", 20), 2, 10, Options{}, domain.ErrOverflow},
		{"hex beyond range", "FFFFFFFFFFFFFFFF", 16, 10, Options{}, domain.ErrOverflow},
		{"exact rejects hex beyond range", "FFFFFFFFFFFFFFFF", 16, 10,
			Options{Overflow: domain.OverflowExact}, domain.ErrOverflow},
		{"exact rejects 64 bits", strings.Repeat("1", 64), 2, 10,
			Options{Overflow: domain.OverflowExact}, domain.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Convert(tt.raw, tt.source, tt.target, tt.opts)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestConvert_ExactModeAcceptsLongBinary(t *testing.T) {
	raw := strings.Repeat("1", 63)

	result, err := Convert(raw, 2, 16, Options{Trace: true, Overflow: domain.OverflowExact})

	require.NoError(t, err)
	assert.Equal(t, "7FFFFFFFFFFFFFFF", result.Target.Digits)
	assert.Equal(t, domain.MaxMagnitude, result.Magnitude)
	assert.Equal(t, "7FFFFFFFFFFFFFFF", result.Steps[len(result.Steps)-1].Result)
}

func TestConvert_RoundTrip(t *testing.T) {
	values := []int64{0, 1, 5, 15, 16, 255, 1000, 65535, 99999}
	for b1 := domain.MinBase; b1 <= domain.MaxBase; b1++ {
		for b2 := domain.MinBase; b2 <= domain.MaxBase; b2++ {
			if b1 == b2 {
				continue
			}
			for _, v := range values {
				raw := FromMagnitude(v, b1).Digits

				forward, err := Convert(raw, b1, b2, Options{Trace: true})
				require.NoError(t, err, "%s %d→%d", raw, b1, b2)

				back, err := Convert(forward.Target.Digits, b2, b1, Options{Trace: true})
				require.NoError(t, err, "%s %d→%d", forward.Target.Digits, b2, b1)

				assert.Equal(t, v, back.Magnitude)
				assert.Equal(t, raw, back.Target.Digits)
			}
		}
	}
}

func TestConvert_Deterministic(t *testing.T) {
	a, err := Convert("ABC", 16, 5, Options{Trace: true})
	require.NoError(t, err)
	b, err := Convert("ABC", 16, 5, Options{Trace: true})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
