package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/meditrack/internal/domain"
)

func TestNewFrequency(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         domain.Frequency
		requiresDays bool
		wantErr      bool
	}{
		{
			name:  "daily",
			input: "Daily",
			want:  domain.FrequencyDaily,
		},
		{
			name:         "weekly lower case",
			input:        "weekly",
			want:         domain.FrequencyWeekly,
			requiresDays: true,
		},
		{
			name:         "specific days upper case",
			input:        "SPECIFICDAYS",
			want:         domain.FrequencySpecificDays,
			requiresDays: true,
		},
		{
			name:    "unknown",
			input:   "Monthly",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := domain.NewFrequency(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnsupportedFrequency)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, f)
			assert.Equal(t, tt.requiresDays, f.RequiresDaysOfWeek())
		})
	}
}
