package domain_test

import (
	"testing"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBalanceType(t *testing.T) {
	assert.Equal(t, domain.DebitBalance, domain.DefaultBalanceType(domain.Asset))
	assert.Equal(t, domain.DebitBalance, domain.DefaultBalanceType(domain.Expense))
	assert.Equal(t, domain.CreditBalance, domain.DefaultBalanceType(domain.Liability))
	assert.Equal(t, domain.CreditBalance, domain.DefaultBalanceType(domain.Equity))
	assert.Equal(t, domain.CreditBalance, domain.DefaultBalanceType(domain.Revenue))
}

func TestAccountTypeIsValid(t *testing.T) {
	for _, at := range []domain.AccountType{domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense} {
		assert.True(t, at.IsValid(), string(at))
	}
	assert.False(t, domain.AccountType("CASHFLOW").IsValid())
	assert.False(t, domain.AccountType("").IsValid())
}

func TestAccountCanBePostedTo(t *testing.T) {
	acc := domain.Account{IsActive: true, IsPostingAllowed: true}
	assert.True(t, acc.CanBePostedTo())

	acc.IsActive = false
	assert.False(t, acc.CanBePostedTo())

	acc.IsActive = true
	acc.IsPostingAllowed = false
	assert.False(t, acc.CanBePostedTo())
}

func TestAccountSummary(t *testing.T) {
	acc := domain.Account{
		AccountID:   "acc-1",
		Code:        "1100",
		Name:        "Cash",
		NameAr:      "نقد",
		AccountType: domain.Asset,
		Level:       2,
	}
	summary := acc.Summary()
	assert.Equal(t, acc.AccountID, summary.AccountID)
	assert.Equal(t, acc.Code, summary.Code)
	assert.Equal(t, acc.Name, summary.Name)
	assert.Equal(t, acc.NameAr, summary.NameAr)
	assert.Equal(t, acc.AccountType, summary.AccountType)
}
