package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalType enumerates the document kinds a journal can originate from.
type JournalType string

const (
	GeneralJournal      JournalType = "GENERAL"
	SalesJournal        JournalType = "SALES"
	PurchaseJournal     JournalType = "PURCHASE"
	ReceiptJournal      JournalType = "RECEIPT"
	PaymentJournal      JournalType = "PAYMENT"
	ExpenseJournal      JournalType = "EXPENSE"
	DepreciationJournal JournalType = "DEPRECIATION"
	AdjustmentJournal   JournalType = "ADJUSTMENT"
	OpeningJournal      JournalType = "OPENING"
	ClosingJournal      JournalType = "CLOSING"
)

// journalNumberPrefixes maps each journal type to its two-letter number prefix.
var journalNumberPrefixes = map[JournalType]string{
	GeneralJournal:      "GN",
	SalesJournal:        "SL",
	PurchaseJournal:     "PU",
	ReceiptJournal:      "RC",
	PaymentJournal:      "PM",
	ExpenseJournal:      "EX",
	DepreciationJournal: "DP",
	AdjustmentJournal:   "AD",
	OpeningJournal:      "OP",
	ClosingJournal:      "CL",
}

// NumberPrefix returns the document-number prefix for the journal type.
// Unknown types fall back to the generic "JR" prefix.
func (t JournalType) NumberPrefix() string {
	if p, ok := journalNumberPrefixes[t]; ok {
		return p
	}
	return "JR"
}

// IsValid reports whether t is one of the ten known journal types.
func (t JournalType) IsValid() bool {
	_, ok := journalNumberPrefixes[t]
	return ok
}

// JournalStatus indicates the state of a journal entry in its approval workflow.
type JournalStatus string

const (
	Draft     JournalStatus = "DRAFT"
	Submitted JournalStatus = "SUBMITTED"
	Approved  JournalStatus = "APPROVED"
	Posted    JournalStatus = "POSTED"
	Reversed  JournalStatus = "REVERSED"
)

// nextStatus holds the only legal forward transition from each status.
// Reversed is terminal.
var nextStatus = map[JournalStatus]JournalStatus{
	Draft:     Submitted,
	Submitted: Approved,
	Approved:  Posted,
	Posted:    Reversed,
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle transition.
func (s JournalStatus) CanTransitionTo(target JournalStatus) bool {
	return nextStatus[s] == target
}

// BalanceEpsilon is the tolerance within which total debits and credits
// must agree for a journal to be accepted.
var BalanceEpsilon = decimal.NewFromFloat(0.01)

// Journal represents a single transaction document composed of balanced
// debit/credit lines, moving through draft -> submitted -> approved ->
// posted, with reversed reachable only from posted.
type Journal struct {
	JournalID       string          `json:"journalID"` // Primary Key (UUID)
	TenantID        string          `json:"tenantID"`
	BranchID        *string         `json:"branchID,omitempty"`
	JournalNumber   string          `json:"journalNumber"` // Unique per tenant+type, generated
	JournalType     JournalType     `json:"journalType"`
	ReferenceNumber string          `json:"referenceNumber"`
	Description     string          `json:"description"`
	DescriptionAr   string          `json:"descriptionAr"`
	TransactionDate time.Time       `json:"transactionDate"`
	PostingDate     time.Time       `json:"postingDate"`
	CurrencyCode    string          `json:"currencyCode"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	Status          JournalStatus   `json:"status"`
	Notes           string          `json:"notes"`
	AttachmentRef   string          `json:"attachmentRef"`
	SourceModule    *string         `json:"sourceModule,omitempty"` // Originating document link
	SourceID        *string         `json:"sourceID,omitempty"`

	// Reversal linkage: a reversing journal points back at its original,
	// and a reversed original points forward at its reversal.
	OriginalJournalID  *string `json:"originalJournalID,omitempty"`
	ReversingJournalID *string `json:"reversingJournalID,omitempty"`

	AuditFields
	SubmittedBy *string    `json:"submittedBy,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	ApprovedBy  *string    `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	PostedBy    *string    `json:"postedBy,omitempty"`
	PostedAt    *time.Time `json:"postedAt,omitempty"`

	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine represents a single debit-or-credit row of a journal.
// Exactly one of Debit/Credit is positive; the other is zero.
type JournalLine struct {
	LineID        string          `json:"lineID"` // Primary Key (UUID)
	JournalID     string          `json:"journalID"`
	TenantID      string          `json:"tenantID"`
	LineNumber    int             `json:"lineNumber"`
	AccountID     string          `json:"accountID"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"descriptionAr"`
	CostCenterID  *string         `json:"costCenterID,omitempty"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	CurrencyCode  string          `json:"currencyCode"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	Reference     string          `json:"reference"`
	AuditFields

	// Account summary, populated on reads that join accounts.
	Account *AccountSummary `json:"account,omitempty"`
}
