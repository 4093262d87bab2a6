package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptsCommonLayouts(t *testing.T) {
	expected := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"2024-03-15",
		"2024-03-15T10:30:00Z",
		"2024-03-15T10:30:00",
		"15/03/2024",
		"  2024-03-15  ",
	} {
		parsed := parseDate(raw)
		require.NotNil(t, parsed, "input %q", raw)
		assert.Equal(t, expected, *parsed, "input %q", raw)
	}
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "not-a-date", "2024-13-45", "15-03-2024"} {
		assert.Nil(t, parseDate(raw), "input %q", raw)
	}
}
