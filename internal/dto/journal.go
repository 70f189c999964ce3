package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one debit-or-credit row of a journal draft.
type CreateJournalLineRequest struct {
	AccountID     string          `json:"accountID" binding:"required"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"descriptionAr"`
	CostCenterID  *string         `json:"costCenterID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Reference     string          `json:"reference"`
}

// CreateJournalRequest defines the data needed to create a journal draft.
type CreateJournalRequest struct {
	JournalType     domain.JournalType         `json:"journalType" binding:"required,journaltype"`
	JournalNumber   *string                    `json:"journalNumber"` // Generated when omitted
	ReferenceNumber string                     `json:"referenceNumber"`
	Description     string                     `json:"description" binding:"required"`
	DescriptionAr   string                     `json:"descriptionAr"`
	TransactionDate time.Time                  `json:"transactionDate" binding:"required"`
	PostingDate     *time.Time                 `json:"postingDate"`
	CurrencyCode    string                     `json:"currencyCode" binding:"required,len=3"`
	ExchangeRate    *decimal.Decimal           `json:"exchangeRate"`
	Notes           string                     `json:"notes"`
	AttachmentRef   string                     `json:"attachmentRef"`
	SourceModule    *string                    `json:"sourceModule"`
	SourceID        *string                    `json:"sourceID"`
	Lines           []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalRequest defines draft-mutable header fields.
type UpdateJournalRequest struct {
	ReferenceNumber *string    `json:"referenceNumber"`
	Description     *string    `json:"description"`
	DescriptionAr   *string    `json:"descriptionAr"`
	TransactionDate *time.Time `json:"transactionDate"`
	PostingDate     *time.Time `json:"postingDate"`
	Notes           *string    `json:"notes"`
	AttachmentRef   *string    `json:"attachmentRef"`
}

// UpdateJournalLinesRequest replaces the full line set of a draft.
type UpdateJournalLinesRequest struct {
	Lines []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID        string                 `json:"lineID"`
	LineNumber    int                    `json:"lineNumber"`
	AccountID     string                 `json:"accountID"`
	Account       *domain.AccountSummary `json:"account,omitempty"`
	Description   string                 `json:"description"`
	DescriptionAr string                 `json:"descriptionAr"`
	CostCenterID  *string                `json:"costCenterID,omitempty"`
	Debit         decimal.Decimal        `json:"debit"`
	Credit        decimal.Decimal        `json:"credit"`
	CurrencyCode  string                 `json:"currencyCode"`
	ExchangeRate  decimal.Decimal        `json:"exchangeRate"`
	Reference     string                 `json:"reference"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID          string                `json:"journalID"`
	JournalNumber      string                `json:"journalNumber"`
	JournalType        domain.JournalType    `json:"journalType"`
	BranchID           *string               `json:"branchID,omitempty"`
	ReferenceNumber    string                `json:"referenceNumber"`
	Description        string                `json:"description"`
	DescriptionAr      string                `json:"descriptionAr"`
	TransactionDate    time.Time             `json:"transactionDate"`
	PostingDate        time.Time             `json:"postingDate"`
	CurrencyCode       string                `json:"currencyCode"`
	ExchangeRate       decimal.Decimal       `json:"exchangeRate"`
	TotalDebit         decimal.Decimal       `json:"totalDebit"`
	TotalCredit        decimal.Decimal       `json:"totalCredit"`
	Status             domain.JournalStatus  `json:"status"`
	Notes              string                `json:"notes"`
	AttachmentRef      string                `json:"attachmentRef"`
	SourceModule       *string               `json:"sourceModule,omitempty"`
	SourceID           *string               `json:"sourceID,omitempty"`
	OriginalJournalID  *string               `json:"originalJournalID,omitempty"`
	ReversingJournalID *string               `json:"reversingJournalID,omitempty"`
	Lines              []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	CreatedBy          string                `json:"createdBy"`
	SubmittedBy        *string               `json:"submittedBy,omitempty"`
	SubmittedAt        *time.Time            `json:"submittedAt,omitempty"`
	ApprovedBy         *string               `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time            `json:"approvedAt,omitempty"`
	PostedBy           *string               `json:"postedBy,omitempty"`
	PostedAt           *time.Time            `json:"postedAt,omitempty"`
}

// ToJournalLineResponse converts a domain line to its DTO.
func ToJournalLineResponse(line domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:        line.LineID,
		LineNumber:    line.LineNumber,
		AccountID:     line.AccountID,
		Account:       line.Account,
		Description:   line.Description,
		DescriptionAr: line.DescriptionAr,
		CostCenterID:  line.CostCenterID,
		Debit:         line.Debit,
		Credit:        line.Credit,
		CurrencyCode:  line.CurrencyCode,
		ExchangeRate:  line.ExchangeRate,
		Reference:     line.Reference,
	}
}

// ToJournalResponse converts a domain journal (with lines, if loaded) to its DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:          j.JournalID,
		JournalNumber:      j.JournalNumber,
		JournalType:        j.JournalType,
		BranchID:           j.BranchID,
		ReferenceNumber:    j.ReferenceNumber,
		Description:        j.Description,
		DescriptionAr:      j.DescriptionAr,
		TransactionDate:    j.TransactionDate,
		PostingDate:        j.PostingDate,
		CurrencyCode:       j.CurrencyCode,
		ExchangeRate:       j.ExchangeRate,
		TotalDebit:         j.TotalDebit,
		TotalCredit:        j.TotalCredit,
		Status:             j.Status,
		Notes:              j.Notes,
		AttachmentRef:      j.AttachmentRef,
		SourceModule:       j.SourceModule,
		SourceID:           j.SourceID,
		OriginalJournalID:  j.OriginalJournalID,
		ReversingJournalID: j.ReversingJournalID,
		CreatedAt:          j.CreatedAt,
		CreatedBy:          j.CreatedBy,
		SubmittedBy:        j.SubmittedBy,
		SubmittedAt:        j.SubmittedAt,
		ApprovedBy:         j.ApprovedBy,
		ApprovedAt:         j.ApprovedAt,
		PostedBy:           j.PostedBy,
		PostedAt:           j.PostedAt,
	}
	for _, line := range j.Lines {
		resp.Lines = append(resp.Lines, ToJournalLineResponse(line))
	}
	return resp
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Status       *domain.JournalStatus `form:"status" binding:"omitempty,oneof=DRAFT SUBMITTED APPROVED POSTED REVERSED"`
	JournalType  *domain.JournalType   `form:"journalType" binding:"omitempty,journaltype"`
	DateFrom     *time.Time            `form:"dateFrom" time_format:"2006-01-02"`
	DateTo       *time.Time            `form:"dateTo" time_format:"2006-01-02"`
	Limit        int                   `form:"limit,default=20"`
	NextToken    *string               `form:"nextToken"`
	IncludeLines bool                  `form:"includeLines,default=true"`
}

// ListJournalsResponse wraps a page of journals plus the next cursor.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}
