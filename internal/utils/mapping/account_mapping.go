package mapping

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:          d.AccountID,
		TenantID:           d.TenantID,
		Code:               d.Code,
		Name:               d.Name,
		NameAr:             d.NameAr,
		AccountType:        models.AccountType(d.AccountType),
		AccountSubtype:     d.AccountSubtype,
		ParentAccountID:    d.ParentAccountID,
		Level:              d.Level,
		BalanceType:        models.BalanceType(d.BalanceType),
		CurrencyCode:       d.CurrencyCode,
		IsControlAccount:   d.IsControlAccount,
		IsPostingAllowed:   d.IsPostingAllowed,
		IsActive:           d.IsActive,
		CostCenterRequired: d.CostCenterRequired,
		Description:        d.Description,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:          m.AccountID,
		TenantID:           m.TenantID,
		Code:               m.Code,
		Name:               m.Name,
		NameAr:             m.NameAr,
		AccountType:        domain.AccountType(m.AccountType),
		AccountSubtype:     m.AccountSubtype,
		ParentAccountID:    m.ParentAccountID,
		Level:              m.Level,
		BalanceType:        domain.BalanceType(m.BalanceType),
		CurrencyCode:       m.CurrencyCode,
		IsControlAccount:   m.IsControlAccount,
		IsPostingAllowed:   m.IsPostingAllowed,
		IsActive:           m.IsActive,
		CostCenterRequired: m.CostCenterRequired,
		Description:        m.Description,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
