package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one double-entry record produced by the platform's
// generation endpoint. Exactly one of Debit/Credit is nonzero on a
// well-formed entry.
type JournalEntry struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debitAmount"`
	Credit      decimal.Decimal `json:"creditAmount"`
	Narration   string          `json:"narration"`
	Entity      string          `json:"entity"`
	DocumentID  string          `json:"documentId"`
}

// TrialBalanceEntry is one row of the platform's trial balance report.
type TrialBalanceEntry struct {
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	Entity        string          `json:"entity"`
}
