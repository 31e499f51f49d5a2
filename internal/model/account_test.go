package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	assert.Equal(t, ClassAsset, ClassOf("1100"))
	assert.Equal(t, ClassLiability, ClassOf("2100"))
	assert.Equal(t, ClassEquity, ClassOf("3000"))
	assert.Equal(t, ClassRevenue, ClassOf("4100"))
	assert.Equal(t, ClassExpense, ClassOf("5200"))
	assert.Equal(t, ClassUnknown, ClassOf("9999"))
	assert.Equal(t, ClassUnknown, ClassOf(""))
}

func TestDebitPositive(t *testing.T) {
	assert.True(t, ClassAsset.DebitPositive())
	assert.True(t, ClassExpense.DebitPositive())
	assert.False(t, ClassLiability.DebitPositive())
	assert.False(t, ClassEquity.DebitPositive())
	assert.False(t, ClassRevenue.DebitPositive())
}

func TestNet_RevenueIsCreditPositive(t *testing.T) {
	b := AccountBalance{
		AccountCode: "4100",
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.NewFromInt(68653),
	}
	assert.True(t, b.Net().Equal(decimal.NewFromInt(68653)))
}

func TestNet_ExpenseIsDebitPositive(t *testing.T) {
	b := AccountBalance{
		AccountCode: "5100",
		TotalDebit:  decimal.NewFromInt(1200),
		TotalCredit: decimal.NewFromInt(200),
	}
	assert.True(t, b.Net().Equal(decimal.NewFromInt(1000)))
}
