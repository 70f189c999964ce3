package repositories

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListJournalsFilter narrows a journal listing. Nil fields are ignored.
type ListJournalsFilter struct {
	Status       *domain.JournalStatus
	JournalType  *domain.JournalType
	DateFrom     *time.Time
	DateTo       *time.Time
	Limit        int
	NextToken    *string
	IncludeLines bool
}

// StatusTransition describes a compare-and-swap lifecycle update. The update
// only applies while the journal's current status equals From; zero rows
// updated means another caller won the transition.
type StatusTransition struct {
	TenantID  string
	JournalID string
	From      domain.JournalStatus
	To        domain.JournalStatus
	ActorID   string
	At        time.Time
}

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a journal header by ID, tenant-scoped.
	FindJournalByID(ctx context.Context, tenantID string, journalID string) (*domain.Journal, error)

	// FindLinesByJournalID retrieves a journal's lines with account summaries,
	// ordered by line number.
	FindLinesByJournalID(ctx context.Context, tenantID string, journalID string) ([]domain.JournalLine, error)

	// FindLinesByJournalIDs retrieves lines for many journals in one batch,
	// keyed by journal ID.
	FindLinesByJournalIDs(ctx context.Context, tenantID string, journalIDs []string) (map[string][]domain.JournalLine, error)

	// ListJournals retrieves a filtered, cursor-paginated list of journal
	// headers, newest transaction date first.
	ListJournals(ctx context.Context, tenantID string, filter ListJournalsFilter) ([]domain.Journal, *string, error)

	// SumAccountLines sums debit and credit across posted journal lines for
	// an account. A non-nil asOf restricts to transaction dates on or before it.
	SumAccountLines(ctx context.Context, tenantID string, accountID string, asOf *time.Time) (debit, credit decimal.Decimal, err error)

	// ListAccountLines retrieves a cursor-paginated list of posted lines for
	// an account, newest first.
	ListAccountLines(ctx context.Context, tenantID string, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
}

// JournalWriter defines write operations for journal data. All multi-row
// writes are atomic: a header is never observable without its lines.
type JournalWriter interface {
	// SaveJournal persists a journal header and all of its lines in one
	// database transaction.
	SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error

	// ReplaceJournalLines swaps the full line set and updates the header
	// totals in one transaction, only while the journal is still a draft.
	ReplaceJournalLines(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error

	// UpdateJournalHeader updates draft-mutable header fields, guarded by
	// status = DRAFT.
	UpdateJournalHeader(ctx context.Context, journal domain.Journal) error

	// TransitionStatus performs a compare-and-swap status update, stamping
	// the transition's audit column. Returns ErrConflict-wrapped failure when
	// the journal is no longer in the expected state.
	TransitionStatus(ctx context.Context, t StatusTransition) error

	// DeleteJournal removes a draft journal and its lines in one transaction,
	// guarded by status = DRAFT.
	DeleteJournal(ctx context.Context, tenantID string, journalID string) error

	// SaveReversal atomically inserts the reversing journal with its lines
	// and flips the original from POSTED to REVERSED, linking the two.
	SaveReversal(ctx context.Context, original domain.Journal, reversing domain.Journal, lines []domain.JournalLine) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
