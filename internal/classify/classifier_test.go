package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qrt-closure/qrtrecon/internal/model"
)

func TestClassifyByFilename(t *testing.T) {
	c := New(nil)

	res := c.Classify("Sales Register Q1.xlsx", nil)
	assert.Equal(t, model.CategorySales, res.Category)

	res = c.Classify("vendor_payments_jan.csv", nil)
	assert.Equal(t, model.CategoryPurchase, res.Category)

	res = c.Classify("HDFC bank statement.xlsx", nil)
	assert.Equal(t, model.CategoryBank, res.Category)

	res = c.Classify("trial balance 2025.xlsx", nil)
	assert.Equal(t, model.CategoryTrialBalance, res.Category)
}

func TestClassifyByHeaders(t *testing.T) {
	c := New(nil)

	res := c.Classify("upload-7c2a.xlsx", []string{"Invoice No", "Customer", "Sales Amount"})
	assert.Equal(t, model.CategorySales, res.Category)

	res = c.Classify("upload-7c2a.xlsx", []string{"Supplier", "Cost Centre", "Amount"})
	assert.Equal(t, model.CategoryPurchase, res.Category)
}

func TestClassifyNoMatch(t *testing.T) {
	c := New(nil)
	res := c.Classify("data.xlsx", []string{"col1", "col2"})
	assert.Equal(t, model.CategoryUnknown, res.Category)
}

func TestClassifyTieIsUnknown(t *testing.T) {
	c := New(nil)
	// One sales hit and one purchase hit: ambiguous, must not guess.
	res := c.Classify("report.xlsx", []string{"Sales Amount", "Purchase Amount"})
	assert.Equal(t, model.CategoryUnknown, res.Category)
	assert.Equal(t, res.Scores[model.CategorySales], res.Scores[model.CategoryPurchase])
}

func TestClassifyScoredNotFirstMatch(t *testing.T) {
	c := New(nil)
	// Mentions sales once but purchase vocabulary twice; the score decides,
	// not keyword order.
	res := c.Classify("purchases.xlsx", []string{"Sales Tax", "Vendor", "Supplier Name"})
	assert.Equal(t, model.CategoryPurchase, res.Category)
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(nil)
	headers := []string{"Invoice No", "Customer", "Sales Amount"}
	first := c.Classify("register.xlsx", headers)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Category, c.Classify("register.xlsx", headers).Category)
	}
}

func TestClassifyCustomKeywords(t *testing.T) {
	c := New(map[model.Category][]string{
		model.CategoryBank: {"kontoauszug"},
	})
	res := c.Classify("Kontoauszug_2025.xlsx", nil)
	assert.Equal(t, model.CategoryBank, res.Category)
}
