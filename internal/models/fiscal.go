package models

import "time"

// FiscalYear is the fiscal_years table row shape.
type FiscalYear struct {
	FiscalYearID string    `db:"fiscal_year_id"`
	TenantID     string    `db:"tenant_id"`
	Name         string    `db:"name"`
	NameAr       string    `db:"name_ar"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	IsClosed     bool      `db:"is_closed"`
	AuditFields
}

// FiscalPeriod is the fiscal_periods table row shape.
type FiscalPeriod struct {
	FiscalPeriodID string     `db:"fiscal_period_id"`
	TenantID       string     `db:"tenant_id"`
	FiscalYearID   string     `db:"fiscal_year_id"`
	Name           string     `db:"name"`
	NameAr         string     `db:"name_ar"`
	PeriodNumber   int        `db:"period_number"`
	StartDate      time.Time  `db:"start_date"`
	EndDate        time.Time  `db:"end_date"`
	IsLocked       bool       `db:"is_locked"`
	LockedAt       *time.Time `db:"locked_at"`
	AuditFields
}
