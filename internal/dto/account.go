package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code               string              `json:"code" binding:"required"`
	Name               string              `json:"name" binding:"required"`
	NameAr             string              `json:"nameAr"`
	AccountType        domain.AccountType  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	AccountSubtype     string              `json:"accountSubtype"`
	ParentAccountID    *string             `json:"parentAccountID"` // Optional, use pointer for nullability
	BalanceType        *domain.BalanceType `json:"balanceType" binding:"omitempty,oneof=DEBIT CREDIT"`
	CurrencyCode       string              `json:"currencyCode" binding:"required,len=3"`
	IsControlAccount   bool                `json:"isControlAccount"`
	IsPostingAllowed   *bool               `json:"isPostingAllowed"` // Defaults to true
	CostCenterRequired bool                `json:"costCenterRequired"`
	Description        string              `json:"description"`
}

// UpdateAccountRequest defines the fields allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided. Code,
// type, parent and level are immutable after creation.
type UpdateAccountRequest struct {
	Name               *string `json:"name"`
	NameAr             *string `json:"nameAr"`
	AccountSubtype     *string `json:"accountSubtype"`
	Description        *string `json:"description"`
	IsControlAccount   *bool   `json:"isControlAccount"`
	IsPostingAllowed   *bool   `json:"isPostingAllowed"`
	IsActive           *bool   `json:"isActive"`
	CostCenterRequired *bool   `json:"costCenterRequired"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID          string                 `json:"accountID"`
	Code               string                 `json:"code"`
	Name               string                 `json:"name"`
	NameAr             string                 `json:"nameAr"`
	AccountType        domain.AccountType     `json:"accountType"`
	AccountSubtype     string                 `json:"accountSubtype"`
	ParentAccountID    string                 `json:"parentAccountID"` // Empty string if root
	Level              int                    `json:"level"`
	BalanceType        domain.BalanceType     `json:"balanceType"`
	CurrencyCode       string                 `json:"currencyCode"`
	IsControlAccount   bool                   `json:"isControlAccount"`
	IsPostingAllowed   bool                   `json:"isPostingAllowed"`
	IsActive           bool                   `json:"isActive"`
	CostCenterRequired bool                   `json:"costCenterRequired"`
	Description        string                 `json:"description"`
	Parent             *domain.AccountSummary `json:"parent,omitempty"`
	Children           []AccountResponse      `json:"children,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	CreatedBy          string                 `json:"createdBy"`
	LastUpdatedAt      time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy      string                 `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account (and its children, if any)
// to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:          acc.AccountID,
		Code:               acc.Code,
		Name:               acc.Name,
		NameAr:             acc.NameAr,
		AccountType:        acc.AccountType,
		AccountSubtype:     acc.AccountSubtype,
		ParentAccountID:    acc.ParentAccountID,
		Level:              acc.Level,
		BalanceType:        acc.BalanceType,
		CurrencyCode:       acc.CurrencyCode,
		IsControlAccount:   acc.IsControlAccount,
		IsPostingAllowed:   acc.IsPostingAllowed,
		IsActive:           acc.IsActive,
		CostCenterRequired: acc.CostCenterRequired,
		Description:        acc.Description,
		Parent:             acc.Parent,
		CreatedAt:          acc.CreatedAt,
		CreatedBy:          acc.CreatedBy,
		LastUpdatedAt:      acc.LastUpdatedAt,
		LastUpdatedBy:      acc.LastUpdatedBy,
	}
	for _, child := range acc.Children {
		resp.Children = append(resp.Children, ToAccountResponse(child))
	}
	return resp
}

// ToListAccountResponse converts a slice of tree roots.
func ToListAccountResponse(accounts []*domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	IncludeInactive bool `form:"includeInactive,default=false"`
}

// ListAccountsResponse wraps the nested account tree.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
