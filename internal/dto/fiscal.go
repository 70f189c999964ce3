package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// FiscalPeriodResponse defines the data returned for a fiscal period.
type FiscalPeriodResponse struct {
	FiscalPeriodID string     `json:"fiscalPeriodID"`
	FiscalYearID   string     `json:"fiscalYearID"`
	Name           string     `json:"name"`
	NameAr         string     `json:"nameAr"`
	PeriodNumber   int        `json:"periodNumber"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	IsLocked       bool       `json:"isLocked"`
	LockedAt       *time.Time `json:"lockedAt,omitempty"`
}

// ToFiscalPeriodResponse converts a domain period to its DTO.
func ToFiscalPeriodResponse(p *domain.FiscalPeriod) FiscalPeriodResponse {
	return FiscalPeriodResponse{
		FiscalPeriodID: p.FiscalPeriodID,
		FiscalYearID:   p.FiscalYearID,
		Name:           p.Name,
		NameAr:         p.NameAr,
		PeriodNumber:   p.PeriodNumber,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		IsLocked:       p.IsLocked,
		LockedAt:       p.LockedAt,
	}
}

// ToFiscalPeriodResponses converts a slice of domain periods.
func ToFiscalPeriodResponses(periods []domain.FiscalPeriod) []FiscalPeriodResponse {
	res := make([]FiscalPeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToFiscalPeriodResponse(&periods[i])
	}
	return res
}

// ResolvePeriodParams defines query parameters for period resolution.
type ResolvePeriodParams struct {
	Date time.Time `form:"date" binding:"required" time_format:"2006-01-02"`
}
