package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringQuarterly(t *testing.T) {
	assert.Equal(t, "2025-Q1", Quarterly(2025, 1).String())
	assert.Equal(t, "2024-Q4", Quarterly(2024, 4).String())
}

func TestStringMonthly(t *testing.T) {
	assert.Equal(t, "2025-03", Monthly(2025, 3).String())
}

func TestParseQuarterly(t *testing.T) {
	p, err := Parse("2025-Q2")
	require.NoError(t, err)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, 2, p.Quarter)
	assert.Equal(t, 0, p.Month)
}

func TestParseMonthly(t *testing.T) {
	p, err := Parse("2025-11")
	require.NoError(t, err)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, 11, p.Month)
	assert.Equal(t, 0, p.Quarter)
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "2025", "2025-Q5", "2025-13", "2025-Q0", "abcd-Q1", "2025-xx"} {
		_, err := Parse(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"2025-Q1", "2025-04"} {
		p, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
}

func TestCurrent(t *testing.T) {
	p := Current(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Quarterly(2025, 3), p)

	p = Current(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Quarterly(2025, 1), p)

	p = Current(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Quarterly(2025, 4), p)
}
