// Package compare reports discrepancies between observed totals and
// reference totals, both for spreadsheet-vs-platform reconciliation and for
// validating platform reports against derived balances.
package compare

import (
	"github.com/shopspring/decimal"

	"github.com/qrt-closure/qrtrecon/internal/model"
)

// DefaultTolerance is the comparator's match cutoff: one unit of currency.
var DefaultTolerance = decimal.NewFromInt(1)

// Result is the outcome of comparing an observed total against a target.
type Result struct {
	Observed        decimal.Decimal
	Target          decimal.Decimal
	Difference      decimal.Decimal // absolute
	PercentOfTarget decimal.Decimal // difference as % of target, zero if target is zero
	Match           bool
}

// Compare reports the absolute difference and percent-of-target between
// observed and target. Match is true when the difference is strictly below
// tolerance.
func Compare(observed, target, tolerance decimal.Decimal) Result {
	diff := observed.Sub(target).Abs()
	r := Result{
		Observed:   observed,
		Target:     target,
		Difference: diff,
		Match:      diff.LessThan(tolerance),
	}
	if !target.IsZero() {
		r.PercentOfTarget = diff.Div(target.Abs()).Mul(decimal.NewFromInt(100)).Round(4)
	}
	return r
}

// AccountDiff is a per-account discrepancy between a derived balance and
// the platform's reported trial balance row.
type AccountDiff struct {
	AccountCode string
	Field       string // "debit" or "credit"
	Derived     decimal.Decimal
	Reported    decimal.Decimal
}

// TrialBalanceDiff compares derived trial balance rows field-by-field
// against the platform's report. Accounts present on only one side are
// reported as diffs against zero.
func TrialBalanceDiff(derived, reported []model.TrialBalanceEntry, tolerance decimal.Decimal) []AccountDiff {
	derivedBy := make(map[string]model.TrialBalanceEntry, len(derived))
	for _, d := range derived {
		derivedBy[d.AccountCode] = d
	}
	reportedBy := make(map[string]model.TrialBalanceEntry, len(reported))
	for _, r := range reported {
		reportedBy[r.AccountCode] = r
	}

	var diffs []AccountDiff
	check := func(code, field string, d, r decimal.Decimal) {
		if d.Sub(r).Abs().GreaterThanOrEqual(tolerance) {
			diffs = append(diffs, AccountDiff{AccountCode: code, Field: field, Derived: d, Reported: r})
		}
	}

	for _, d := range derived {
		r := reportedBy[d.AccountCode]
		check(d.AccountCode, "debit", d.DebitBalance, r.DebitBalance)
		check(d.AccountCode, "credit", d.CreditBalance, r.CreditBalance)
	}
	for _, r := range reported {
		if _, ok := derivedBy[r.AccountCode]; ok {
			continue
		}
		check(r.AccountCode, "debit", decimal.Zero, r.DebitBalance)
		check(r.AccountCode, "credit", decimal.Zero, r.CreditBalance)
	}
	return diffs
}
