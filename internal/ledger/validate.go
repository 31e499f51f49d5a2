package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/qrt-closure/qrtrecon/internal/model"
)

// Epsilon is the currency-rounding tolerance for the balance invariant.
var Epsilon = decimal.RequireFromString("0.01")

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// BalanceReport summarizes the debit/credit totals of an entry set.
type BalanceReport struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Difference returns |debits − credits|.
func (r BalanceReport) Difference() decimal.Decimal {
	return r.TotalDebit.Sub(r.TotalCredit).Abs()
}

// Balanced reports whether the set balances within Epsilon.
func (r BalanceReport) Balanced() bool {
	return r.Difference().LessThan(Epsilon)
}

// CheckBalance totals both sides of an entry set.
func CheckBalance(entries []model.JournalEntry) BalanceReport {
	var r BalanceReport
	for _, e := range entries {
		r.TotalDebit = r.TotalDebit.Add(e.Debit)
		r.TotalCredit = r.TotalCredit.Add(e.Credit)
	}
	return r
}

// ValidateEntries enforces 4 invariants on a set of journal entries.
func ValidateEntries(entries []model.JournalEntry) []ValidationError {
	var errs []ValidationError

	// Invariant 1: The set balances (sum(debits) == sum(credits) within Epsilon).
	if r := CheckBalance(entries); !r.Balanced() {
		errs = append(errs, ValidationError{
			Invariant: 1,
			EntryID:   "*",
			Description: fmt.Sprintf("debits (%s) != credits (%s), difference %s",
				r.TotalDebit.StringFixed(2), r.TotalCredit.StringFixed(2), r.Difference().StringFixed(2)),
		})
	}

	two := decimal.NewFromInt(100)
	for _, e := range entries {
		// Invariant 2: Exactly one of debit/credit per entry.
		hasDebit := !e.Debit.IsZero()
		hasCredit := !e.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     e.ID,
				Description: "entry must have exactly one of debit or credit",
			})
		}

		// Invariant 3: Account code maps to a known class.
		if model.ClassOf(e.AccountCode) == model.ClassUnknown {
			errs = append(errs, ValidationError{
				Invariant:   3,
				EntryID:     e.ID,
				Description: fmt.Sprintf("unclassifiable account code %q", e.AccountCode),
			})
		}

		// Invariant 4: Non-negative amounts with at most 2 decimal places.
		for side, amt := range map[string]decimal.Decimal{"debit": e.Debit, "credit": e.Credit} {
			if amt.IsNegative() {
				errs = append(errs, ValidationError{
					Invariant:   4,
					EntryID:     e.ID,
					Description: fmt.Sprintf("negative %s %s", side, amt),
				})
			}
			if !amt.IsZero() && !amt.Mul(two).Equal(amt.Mul(two).Floor()) {
				errs = append(errs, ValidationError{
					Invariant:   4,
					EntryID:     e.ID,
					Description: fmt.Sprintf("%s %s has more than 2 decimal places", side, amt),
				})
			}
		}
	}

	return errs
}
