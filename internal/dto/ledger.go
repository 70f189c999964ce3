package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse defines the data returned for a balance query.
// Debit and Credit are the raw sums across posted lines; Balance nets them
// onto the account's natural side, mirrored into NetDebit/NetCredit.
type AccountBalanceResponse struct {
	AccountID   string             `json:"accountID"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
	Balance     decimal.Decimal    `json:"balance"`
	NetDebit    decimal.Decimal    `json:"netDebit"`
	NetCredit   decimal.Decimal    `json:"netCredit"`
	BalanceType domain.BalanceType `json:"balanceType"`
	AsOfDate    *time.Time         `json:"asOfDate,omitempty"`
}

// GetBalanceParams defines query parameters for a balance query.
type GetBalanceParams struct {
	AsOfDate *time.Time `form:"asOfDate" time_format:"2006-01-02"`
}

// ListAccountLinesParams defines query parameters for an account's posted lines.
type ListAccountLinesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListAccountLinesResponse wraps a page of posted lines plus the next cursor.
type ListAccountLinesResponse struct {
	Lines     []JournalLineResponse `json:"lines"`
	NextToken *string               `json:"nextToken,omitempty"`
}
