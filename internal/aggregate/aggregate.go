// Package aggregate folds journal entries and classified extraction results
// into per-account and per-category totals.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/qrt-closure/qrtrecon/internal/model"
)

// Balances groups journal entries by account code, tracking debit and
// credit sums independently before any netting. Results are sorted by
// account code.
func Balances(entries []model.JournalEntry) []model.AccountBalance {
	byCode := make(map[string]*model.AccountBalance)
	for _, e := range entries {
		b, ok := byCode[e.AccountCode]
		if !ok {
			b = &model.AccountBalance{AccountCode: e.AccountCode, AccountName: e.AccountName}
			byCode[e.AccountCode] = b
		}
		b.TotalDebit = b.TotalDebit.Add(e.Debit)
		b.TotalCredit = b.TotalCredit.Add(e.Credit)
	}

	balances := make([]model.AccountBalance, 0, len(byCode))
	for _, b := range byCode {
		balances = append(balances, *b)
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].AccountCode < balances[j].AccountCode
	})
	return balances
}

// TrialBalance derives trial balance rows from account balances. Each
// account's net lands on its normal side; a net that flips sign shows up on
// the opposite side rather than as a negative.
func TrialBalance(balances []model.AccountBalance) []model.TrialBalanceEntry {
	rows := make([]model.TrialBalanceEntry, 0, len(balances))
	for _, b := range balances {
		row := model.TrialBalanceEntry{
			AccountCode: b.AccountCode,
			AccountName: b.AccountName,
		}
		net := b.TotalDebit.Sub(b.TotalCredit)
		if net.IsNegative() {
			row.CreditBalance = net.Neg()
		} else {
			row.DebitBalance = net
		}
		rows = append(rows, row)
	}
	return rows
}

// Classified is one extracted amount together with its document's category.
type Classified struct {
	Category model.Category
	Amount   decimal.Decimal
}

// CategoryTotals sums classified amounts per category.
func CategoryTotals(values []Classified) map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, v := range values {
		totals[v.Category] = totals[v.Category].Add(v.Amount)
	}
	return totals
}
