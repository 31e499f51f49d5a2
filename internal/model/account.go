package model

import "github.com/shopspring/decimal"

// AccountClass classifies ledger accounts by account-code prefix.
type AccountClass string

const (
	ClassAsset     AccountClass = "asset"
	ClassLiability AccountClass = "liability"
	ClassEquity    AccountClass = "equity"
	ClassRevenue   AccountClass = "revenue"
	ClassExpense   AccountClass = "expense"
	ClassUnknown   AccountClass = "unknown"
)

// ClassOf maps an account code to its class by leading digit:
// 1xxx assets, 2xxx liabilities, 3xxx equity, 4xxx revenue, 5xxx expenses.
func ClassOf(code string) AccountClass {
	if len(code) == 0 {
		return ClassUnknown
	}
	switch code[0] {
	case '1':
		return ClassAsset
	case '2':
		return ClassLiability
	case '3':
		return ClassEquity
	case '4':
		return ClassRevenue
	case '5':
		return ClassExpense
	default:
		return ClassUnknown
	}
}

// DebitPositive reports whether the class carries a debit normal balance.
// Assets and expenses net as debit − credit; liabilities, equity and
// revenue net as credit − debit.
func (c AccountClass) DebitPositive() bool {
	return c == ClassAsset || c == ClassExpense
}

// AccountBalance accumulates both sides of one ledger account. It is built
// in memory from journal entries and never persisted.
type AccountBalance struct {
	AccountCode string
	AccountName string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Net returns the balance on the account's normal side, so a revenue
// account with only credits nets positive.
func (b AccountBalance) Net() decimal.Decimal {
	if ClassOf(b.AccountCode).DebitPositive() {
		return b.TotalDebit.Sub(b.TotalCredit)
	}
	return b.TotalCredit.Sub(b.TotalDebit)
}
