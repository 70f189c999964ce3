package domain

import "time"

// FiscalYear groups twelve fiscal periods for a tenant.
type FiscalYear struct {
	FiscalYearID string    `json:"fiscalYearID"` // Primary Key (UUID)
	TenantID     string    `json:"tenantID"`
	Name         string    `json:"name"`
	NameAr       string    `json:"nameAr"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	IsClosed     bool      `json:"isClosed"`
	AuditFields
}

// FiscalPeriod is a bounded date range gating postability. Periods are
// created in bulk at fiscal-year provisioning and locked individually.
type FiscalPeriod struct {
	FiscalPeriodID string     `json:"fiscalPeriodID"` // Primary Key (UUID)
	TenantID       string     `json:"tenantID"`
	FiscalYearID   string     `json:"fiscalYearID"`
	Name           string     `json:"name"`
	NameAr         string     `json:"nameAr"`
	PeriodNumber   int        `json:"periodNumber"` // 1-12
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	IsLocked       bool       `json:"isLocked"`
	LockedAt       *time.Time `json:"lockedAt,omitempty"`
	AuditFields
}

// Contains reports whether date falls inside the period, boundaries included.
func (p *FiscalPeriod) Contains(date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}
