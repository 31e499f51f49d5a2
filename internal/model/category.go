package model

// Category is the ledger category a source document is classified into.
type Category string

const (
	CategorySales        Category = "sales"
	CategoryPurchase     Category = "purchase"
	CategoryBank         Category = "bank"
	CategoryTrialBalance Category = "trial_balance"
	CategoryUnknown      Category = "unknown"
)

// Categories lists every known category in a stable order, excluding unknown.
func Categories() []Category {
	return []Category{CategorySales, CategoryPurchase, CategoryBank, CategoryTrialBalance}
}
