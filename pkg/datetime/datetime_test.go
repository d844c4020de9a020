package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2023-10-01", time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)},
		{"2023-10-01 09:30:00", time.Date(2023, 10, 1, 9, 30, 0, 0, time.UTC)},
		{"2023-10-01T09:30:00", time.Date(2023, 10, 1, 9, 30, 0, 0, time.UTC)},
		{"2023-10-01T09:30", time.Date(2023, 10, 1, 9, 30, 0, 0, time.UTC)},
		{"2023-10-01T09:30:00Z", time.Date(2023, 10, 1, 9, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%s: got %s", tt.in, got)
	}

	_, err := Parse("yesterday")
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "yesterday", parseErr.Value)
}
