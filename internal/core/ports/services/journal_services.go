package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// JournalSvcFacade is the journal lifecycle engine's programmatic contract.
// Lifecycle: draft -> submitted -> approved -> posted -> reversed; only the
// listed transitions are legal, and each is applied with a compare-and-swap
// so concurrent callers cannot both win.
type JournalSvcFacade interface {
	// CreateJournal validates a draft (balance, line shape, accounts, fiscal
	// period), allocates a journal number when none is supplied, and persists
	// header plus lines atomically.
	CreateJournal(ctx context.Context, tenantID string, req dto.CreateJournalRequest, creatorUserID string, branchID *string) (*domain.Journal, error)

	// GetJournalByID returns a journal with lines and account summaries.
	GetJournalByID(ctx context.Context, tenantID string, journalID string) (*domain.Journal, error)

	// ListJournals returns a filtered page of journals, newest first.
	ListJournals(ctx context.Context, tenantID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)

	// UpdateJournal updates draft-mutable header fields.
	UpdateJournal(ctx context.Context, tenantID string, journalID string, req dto.UpdateJournalRequest, updaterUserID string) (*domain.Journal, error)

	// UpdateJournalLines replaces the full line set of a draft, re-running
	// the create-path validations.
	UpdateJournalLines(ctx context.Context, tenantID string, journalID string, req dto.UpdateJournalLinesRequest, updaterUserID string) (*domain.Journal, error)

	// SubmitJournal transitions draft -> submitted.
	SubmitJournal(ctx context.Context, tenantID string, journalID string, actorUserID string) (*domain.Journal, error)

	// ApproveJournal transitions submitted -> approved.
	ApproveJournal(ctx context.Context, tenantID string, journalID string, actorUserID string) (*domain.Journal, error)

	// PostJournal transitions approved -> posted, re-checking that the
	// journal's fiscal period is still open.
	PostJournal(ctx context.Context, tenantID string, journalID string, actorUserID string) (*domain.Journal, error)

	// ReverseJournal transitions posted -> reversed and creates the posted
	// mirror journal in the same transaction.
	ReverseJournal(ctx context.Context, tenantID string, journalID string, actorUserID string) (*domain.Journal, error)

	// DeleteJournal removes a draft journal and its lines.
	DeleteJournal(ctx context.Context, tenantID string, journalID string) error
}
