package mapping

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/models"
)

// ToDomainFiscalPeriod converts a model FiscalPeriod to the domain shape.
func ToDomainFiscalPeriod(m models.FiscalPeriod) domain.FiscalPeriod {
	return domain.FiscalPeriod{
		FiscalPeriodID: m.FiscalPeriodID,
		TenantID:       m.TenantID,
		FiscalYearID:   m.FiscalYearID,
		Name:           m.Name,
		NameAr:         m.NameAr,
		PeriodNumber:   m.PeriodNumber,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		IsLocked:       m.IsLocked,
		LockedAt:       m.LockedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFiscalYear converts a model FiscalYear to the domain shape.
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	return domain.FiscalYear{
		FiscalYearID: m.FiscalYearID,
		TenantID:     m.TenantID,
		Name:         m.Name,
		NameAr:       m.NameAr,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsClosed:     m.IsClosed,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTenant converts a domain Tenant to the tenants row shape.
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:            d.TenantID,
		Code:                d.Code,
		Name:                d.Name,
		NameAr:              d.NameAr,
		DefaultCurrencyCode: d.DefaultCurrencyCode,
		IsActive:            d.IsActive,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to the domain shape.
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:            m.TenantID,
		Code:                m.Code,
		Name:                m.Name,
		NameAr:              m.NameAr,
		DefaultCurrencyCode: m.DefaultCurrencyCode,
		IsActive:            m.IsActive,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
