package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix/internal/core/domain"
)

func TestSettingsShow(t *testing.T) {
	setupTestServices(t, nil)

	for _, args := range [][]string{{"settings"}, {"settings", "show"}} {
		stdout, _, err := execute(t, nil, args...)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Step Visualization: Enabled")
		assert.Contains(t, stdout, "Prefix Annotations: Enabled")
		assert.Contains(t, stdout, "Number Type: Unsigned Integer")
		assert.Contains(t, stdout, "Overflow Mode: Literal")
		assert.Contains(t, stdout, "Recording: Enabled")
		assert.Contains(t, stdout, "List Limit: 50")
	}
}

func TestSettingsToggles(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		want  string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{
			name: "steps",
			args: []string{"settings", "steps"},
			want: "Step visualization disabled",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.False(t, s.Display.ShowSteps)
			},
		},
		{
			name: "prefix",
			args: []string{"settings", "prefix"},
			want: "Prefix annotations disabled",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.False(t, s.Display.PrefixAnnotations)
			},
		},
		{
			name: "number type",
			args: []string{"settings", "number-type"},
			want: "Note: conversions still treat every value as unsigned.",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, domain.NumberTypeSigned, s.Display.NumberType)
			},
		},
		{
			name: "overflow exact",
			args: []string{"settings", "overflow", "exact"},
			want: "Overflow mode set to Exact",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, domain.OverflowExact, s.Engine.Overflow)
			},
		},
		{
			name: "history off",
			args: []string{"settings", "history", "off"},
			want: "History recording disabled",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.False(t, s.History.Enabled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t, nil)

			stdout, _, err := execute(t, nil, tt.args...)

			require.NoError(t, err)
			assert.Contains(t, stdout, tt.want)
			s, err := settingsService.Get()
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestSettingsOverflow_Invalid(t *testing.T) {
	setupTestServices(t, nil)

	_, _, err := execute(t, nil, "settings", "overflow", "sometimes")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsHistory_Invalid(t *testing.T) {
	setupTestServices(t, nil)

	_, _, err := execute(t, nil, "settings", "history", "maybe")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettings_NoService(t *testing.T) {
	SetServices(Services{})

	_, _, err := execute(t, nil, "settings", "show")

	assert.EqualError(t, err, "settings service not configured")
}

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{in: "on", want: true},
		{in: "off", want: false},
		{in: "true", want: true},
		{in: "0", want: false},
		{in: "yes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSwitch(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
