package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft     JournalStatus = "DRAFT"
	Submitted JournalStatus = "SUBMITTED"
	Approved  JournalStatus = "APPROVED"
	Posted    JournalStatus = "POSTED"
	Reversed  JournalStatus = "REVERSED"
)

// Journal is the journals table row shape.
type Journal struct {
	JournalID       string          `db:"journal_id"`
	TenantID        string          `db:"tenant_id"`
	BranchID        *string         `db:"branch_id"`
	JournalNumber   string          `db:"journal_number"`
	JournalType     string          `db:"journal_type"`
	ReferenceNumber string          `db:"reference_number"`
	Description     string          `db:"description"`
	DescriptionAr   string          `db:"description_ar"`
	TransactionDate time.Time       `db:"transaction_date"`
	PostingDate     time.Time       `db:"posting_date"`
	CurrencyCode    string          `db:"currency_code"`
	ExchangeRate    decimal.Decimal `db:"exchange_rate"`
	TotalDebit      decimal.Decimal `db:"total_debit"`
	TotalCredit     decimal.Decimal `db:"total_credit"`
	Status          JournalStatus   `db:"status"`
	Notes           string          `db:"notes"`
	AttachmentRef   string          `db:"attachment_ref"`
	SourceModule    *string         `db:"source_module"`
	SourceID        *string         `db:"source_id"`

	OriginalJournalID  *string `db:"original_journal_id"`
	ReversingJournalID *string `db:"reversing_journal_id"`

	AuditFields
	SubmittedBy *string    `db:"submitted_by"`
	SubmittedAt *time.Time `db:"submitted_at"`
	ApprovedBy  *string    `db:"approved_by"`
	ApprovedAt  *time.Time `db:"approved_at"`
	PostedBy    *string    `db:"posted_by"`
	PostedAt    *time.Time `db:"posted_at"`
}

// JournalLine is the journal_lines table row shape.
type JournalLine struct {
	LineID        string          `db:"line_id"`
	JournalID     string          `db:"journal_id"`
	TenantID      string          `db:"tenant_id"`
	LineNumber    int             `db:"line_number"`
	AccountID     string          `db:"account_id"`
	Description   string          `db:"description"`
	DescriptionAr string          `db:"description_ar"`
	CostCenterID  *string         `db:"cost_center_id"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	CurrencyCode  string          `db:"currency_code"`
	ExchangeRate  decimal.Decimal `db:"exchange_rate"`
	Reference     string          `db:"reference"`
	AuditFields

	// Joined account columns, present only on read queries.
	AccountCode   string `db:"account_code"`
	AccountName   string `db:"account_name"`
	AccountNameAr string `db:"account_name_ar"`
	AccountType   string `db:"account_type"`
}
