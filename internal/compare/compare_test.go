package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrt-closure/qrtrecon/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompare_MatchWithinTolerance(t *testing.T) {
	r := Compare(dec("100000.005"), dec("100000.00"), DefaultTolerance)
	assert.True(t, r.Match)
	assert.True(t, r.Difference.Equal(dec("0.005")))
}

func TestCompare_NoMatchBeyondTolerance(t *testing.T) {
	r := Compare(dec("100001.50"), dec("100000.00"), DefaultTolerance)
	assert.False(t, r.Match)
	assert.True(t, r.Difference.Equal(dec("1.50")))
	assert.True(t, r.PercentOfTarget.Equal(dec("0.0015")))
}

func TestCompare_ExactToleranceIsNoMatch(t *testing.T) {
	// Match requires strictly less than tolerance.
	r := Compare(dec("101"), dec("100"), DefaultTolerance)
	assert.False(t, r.Match)
}

func TestCompare_ZeroTarget(t *testing.T) {
	r := Compare(dec("50"), decimal.Zero, DefaultTolerance)
	assert.False(t, r.Match)
	assert.True(t, r.PercentOfTarget.IsZero())
}

func TestTrialBalanceDiff_Identical(t *testing.T) {
	rows := []model.TrialBalanceEntry{
		{AccountCode: "1100", DebitBalance: dec("40000")},
		{AccountCode: "4100", CreditBalance: dec("40000")},
	}
	assert.Empty(t, TrialBalanceDiff(rows, rows, DefaultTolerance))
}

func TestTrialBalanceDiff_FieldMismatch(t *testing.T) {
	derived := []model.TrialBalanceEntry{
		{AccountCode: "4100", CreditBalance: dec("68653")},
	}
	reported := []model.TrialBalanceEntry{
		{AccountCode: "4100", CreditBalance: dec("65000")},
	}
	diffs := TrialBalanceDiff(derived, reported, DefaultTolerance)
	require.Len(t, diffs, 1)
	assert.Equal(t, "4100", diffs[0].AccountCode)
	assert.Equal(t, "credit", diffs[0].Field)
	assert.True(t, diffs[0].Derived.Equal(dec("68653")))
	assert.True(t, diffs[0].Reported.Equal(dec("65000")))
}

func TestTrialBalanceDiff_MissingAccounts(t *testing.T) {
	derived := []model.TrialBalanceEntry{
		{AccountCode: "1100", DebitBalance: dec("5000")},
	}
	reported := []model.TrialBalanceEntry{
		{AccountCode: "5200", DebitBalance: dec("1200")},
	}
	diffs := TrialBalanceDiff(derived, reported, DefaultTolerance)
	require.Len(t, diffs, 2)

	codes := map[string]bool{}
	for _, d := range diffs {
		codes[d.AccountCode] = true
	}
	assert.True(t, codes["1100"])
	assert.True(t, codes["5200"])
}
