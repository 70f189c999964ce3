package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNoFiscalPeriod  = errors.New("no fiscal period for transaction date")
	ErrPeriodLocked    = errors.New("fiscal period is locked")
)

// journalService drives the journal lifecycle: it validates drafts against
// the chart of accounts and the fiscal calendar, allocates numbers, and
// applies the draft -> submitted -> approved -> posted -> reversed state
// machine through compare-and-swap updates.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountReaderSvc
	fiscalSvc   portssvc.FiscalPeriodSvcFacade
	sequenceSvc portssvc.SequenceSvcFacade
}

// NewJournalService creates a new journal lifecycle service.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountSvc portssvc.AccountReaderSvc,
	fiscalSvc portssvc.FiscalPeriodSvcFacade,
	sequenceSvc portssvc.SequenceSvcFacade,
) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		fiscalSvc:   fiscalSvc,
		sequenceSvc: sequenceSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines converts line requests into domain lines, numbering them in
// request order and stamping the journal's currency and exchange rate.
func buildLines(journal *domain.Journal, reqs []dto.CreateJournalLineRequest, actorID string, now time.Time) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(reqs))
	for i, lr := range reqs {
		lines[i] = domain.JournalLine{
			LineID:        uuid.NewString(),
			JournalID:     journal.JournalID,
			TenantID:      journal.TenantID,
			LineNumber:    i + 1,
			AccountID:     lr.AccountID,
			Description:   lr.Description,
			DescriptionAr: lr.DescriptionAr,
			CostCenterID:  lr.CostCenterID,
			Debit:         lr.Debit,
			Credit:        lr.Credit,
			CurrencyCode:  journal.CurrencyCode,
			ExchangeRate:  journal.ExchangeRate,
			Reference:     lr.Reference,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
	}
	return lines
}

// validateLineSet enforces the double-entry invariants on a candidate line
// set and returns the computed totals.
func validateLineSet(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal, err error) {
	if err := accounting.ValidateLineShape(lines); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	totalDebit, totalCredit = accounting.ComputeTotals(lines)
	if err := accounting.ValidateBalanced(totalDebit, totalCredit); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return totalDebit, totalCredit, nil
}

// validateLineAccounts batch-loads every referenced account and rejects
// missing, inactive or non-posting targets. Accounts flagged as requiring a
// cost center reject lines without one.
func (s *journalService) validateLineAccounts(ctx context.Context, tenantID string, lines []domain.JournalLine) error {
	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, tenantID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for journal validation", slog.String("tenant_id", tenantID))
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}

	for _, id := range accountIDs {
		acc, found := accountsMap[id]
		if !found {
			return fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acc.Code)
		}
		if !acc.IsPostingAllowed {
			return fmt.Errorf("%w: account %s does not allow posting", apperrors.ErrValidation, acc.Code)
		}
	}

	for _, line := range lines {
		acc := accountsMap[line.AccountID]
		if acc.CostCenterRequired && line.CostCenterID == nil {
			return fmt.Errorf("%w: account %s requires a cost center on line %d", apperrors.ErrValidation, acc.Code, line.LineNumber)
		}
	}
	return nil
}

// validateFiscalPeriod resolves the period for a transaction date and
// rejects locked or missing periods.
func (s *journalService) validateFiscalPeriod(ctx context.Context, tenantID string, date time.Time) error {
	period, err := s.fiscalSvc.ResolvePeriod(ctx, tenantID, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNoFiscalPeriod)
		}
		return fmt.Errorf("failed to resolve fiscal period: %w", err)
	}
	if period.IsLocked {
		return fmt.Errorf("%w: %s (%s)", apperrors.ErrValidation, ErrPeriodLocked, period.Name)
	}
	return nil
}

// CreateJournal validates a draft and persists header plus lines as one
// atomic unit.
func (s *journalService) CreateJournal(ctx context.Context, tenantID string, req dto.CreateJournalRequest, creatorUserID string, branchID *string) (*domain.Journal, error) {
	now := time.Now().UTC()

	exchangeRate := decimal.NewFromInt(1)
	if req.ExchangeRate != nil && req.ExchangeRate.IsPositive() {
		exchangeRate = *req.ExchangeRate
	}

	postingDate := req.TransactionDate
	if req.PostingDate != nil {
		postingDate = *req.PostingDate
	}

	journal := domain.Journal{
		JournalID:       uuid.NewString(),
		TenantID:        tenantID,
		BranchID:        branchID,
		JournalType:     req.JournalType,
		ReferenceNumber: req.ReferenceNumber,
		Description:     req.Description,
		DescriptionAr:   req.DescriptionAr,
		TransactionDate: req.TransactionDate,
		PostingDate:     postingDate,
		CurrencyCode:    req.CurrencyCode,
		ExchangeRate:    exchangeRate,
		Status:          domain.Draft,
		Notes:           req.Notes,
		AttachmentRef:   req.AttachmentRef,
		SourceModule:    req.SourceModule,
		SourceID:        req.SourceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	lines := buildLines(&journal, req.Lines, creatorUserID, now)

	totalDebit, totalCredit, err := validateLineSet(lines)
	if err != nil {
		return nil, err
	}
	journal.TotalDebit = totalDebit
	journal.TotalCredit = totalCredit

	if err := s.validateFiscalPeriod(ctx, tenantID, req.TransactionDate); err != nil {
		return nil, err
	}

	if err := s.validateLineAccounts(ctx, tenantID, lines); err != nil {
		return nil, err
	}

	if req.JournalNumber != nil && *req.JournalNumber != "" {
		journal.JournalNumber = *req.JournalNumber
	} else {
		number, err := s.sequenceSvc.NextJournalNumber(ctx, tenantID, req.JournalType)
		if err != nil {
			s.LogError(ctx, err, "Failed to allocate journal number", slog.String("tenant_id", tenantID))
			return nil, err
		}
		journal.JournalNumber = number
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, lines); err != nil {
		s.LogError(ctx, err, "Failed to save journal", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	s.LogInfo(ctx, "Journal created",
		slog.String("journal_id", journal.JournalID),
		slog.String("journal_number", journal.JournalNumber),
		slog.String("tenant_id", tenantID))

	return s.GetJournalByID(ctx, tenantID, journal.JournalID)
}

// GetJournalByID returns a journal with its lines and account summaries.
func (s *journalService) GetJournalByID(ctx context.Context, tenantID string, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, tenantID, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal", slog.String("journal_id", journalID))
		}
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByJournalID(ctx, tenantID, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch journal lines", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve lines for journal %s: %w", journalID, err)
	}
	journal.Lines = lines
	return journal, nil
}

// ListJournals returns a filtered page of journals, newest first, with
// lines batch-loaded when requested.
func (s *journalService) ListJournals(ctx context.Context, tenantID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	filter := portsrepo.ListJournalsFilter{
		Status:      params.Status,
		JournalType: params.JournalType,
		DateFrom:    params.DateFrom,
		DateTo:      params.DateTo,
		Limit:       params.Limit,
		NextToken:   params.NextToken,
	}

	journals, nextToken, err := s.journalRepo.ListJournals(ctx, tenantID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}

	if params.IncludeLines && len(journals) > 0 {
		journalIDs := make([]string, len(journals))
		for i, j := range journals {
			journalIDs[i] = j.JournalID
		}
		linesMap, err := s.journalRepo.FindLinesByJournalIDs(ctx, tenantID, journalIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to batch-fetch journal lines", slog.String("tenant_id", tenantID))
			return nil, fmt.Errorf("failed to retrieve journal lines: %w", err)
		}
		for i := range journals {
			journals[i].Lines = linesMap[journals[i].JournalID]
		}
	}

	responses := make([]dto.JournalResponse, len(journals))
	for i := range journals {
		responses[i] = dto.ToJournalResponse(&journals[i])
	}

	return &dto.ListJournalsResponse{Journals: responses, NextToken: nextToken}, nil
}

// requireStatus loads a journal and verifies its current status, producing
// a validation error naming the expected prior state otherwise. The check
// here is advisory: the repository transition re-checks under the store's
// compare-and-swap, so a concurrent loser still fails cleanly.
func (s *journalService) requireStatus(ctx context.Context, tenantID, journalID string, expected domain.JournalStatus) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, tenantID, journalID)
	if err != nil {
		return nil, err
	}
	if journal.Status != expected {
		return nil, fmt.Errorf("%w: journal must be in %s status, current status is %s",
			apperrors.ErrValidation, expected, journal.Status)
	}
	return journal, nil
}

// UpdateJournal updates draft-mutable header fields. Changing the
// transaction date re-validates the fiscal period.
func (s *journalService) UpdateJournal(ctx context.Context, tenantID string, journalID string, req dto.UpdateJournalRequest, updaterUserID string) (*domain.Journal, error) {
	journal, err := s.requireStatus(ctx, tenantID, journalID, domain.Draft)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.ReferenceNumber != nil {
		journal.ReferenceNumber = *req.ReferenceNumber
		updated = true
	}
	if req.Description != nil {
		journal.Description = *req.Description
		updated = true
	}
	if req.DescriptionAr != nil {
		journal.DescriptionAr = *req.DescriptionAr
		updated = true
	}
	if req.TransactionDate != nil {
		if err := s.validateFiscalPeriod(ctx, tenantID, *req.TransactionDate); err != nil {
			return nil, err
		}
		journal.TransactionDate = *req.TransactionDate
		updated = true
	}
	if req.PostingDate != nil {
		journal.PostingDate = *req.PostingDate
		updated = true
	}
	if req.Notes != nil {
		journal.Notes = *req.Notes
		updated = true
	}
	if req.AttachmentRef != nil {
		journal.AttachmentRef = *req.AttachmentRef
		updated = true
	}

	if !updated {
		return s.GetJournalByID(ctx, tenantID, journalID)
	}

	journal.LastUpdatedAt = time.Now().UTC()
	journal.LastUpdatedBy = updaterUserID

	if err := s.journalRepo.UpdateJournalHeader(ctx, *journal); err != nil {
		s.LogError(ctx, err, "Failed to update journal header", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to update journal: %w", err)
	}

	return s.GetJournalByID(ctx, tenantID, journalID)
}

// UpdateJournalLines replaces the full line set of a draft. The replacement
// runs the same validations as creation: double-entry invariants, fiscal
// period of the journal's transaction date, and account checks.
func (s *journalService) UpdateJournalLines(ctx context.Context, tenantID string, journalID string, req dto.UpdateJournalLinesRequest, updaterUserID string) (*domain.Journal, error) {
	journal, err := s.requireStatus(ctx, tenantID, journalID, domain.Draft)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lines := buildLines(journal, req.Lines, updaterUserID, now)

	totalDebit, totalCredit, err := validateLineSet(lines)
	if err != nil {
		return nil, err
	}

	if err := s.validateFiscalPeriod(ctx, tenantID, journal.TransactionDate); err != nil {
		return nil, err
	}

	if err := s.validateLineAccounts(ctx, tenantID, lines); err != nil {
		return nil, err
	}

	journal.TotalDebit = totalDebit
	journal.TotalCredit = totalCredit
	journal.LastUpdatedAt = now
	journal.LastUpdatedBy = updaterUserID

	if err := s.journalRepo.ReplaceJournalLines(ctx, *journal, lines); err != nil {
		s.LogError(ctx, err, "Failed to replace journal lines", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to replace journal lines: %w", err)
	}

	return s.GetJournalByID(ctx, tenantID, journalID)
}

// SubmitJournal transitions draft -> submitted.
func (s *journalService) SubmitJournal(ctx context.Context, tenantID string, journalID string, actorUserID string) (*domain.Journal, error) {
	return s.transition(ctx, tenantID, journalID, actorUserID, domain.Draft, domain.Submitted)
}

// ApproveJournal transitions submitted -> approved.
func (s *journalService) ApproveJournal(ctx context.Context, tenantID string, journalID string, actorUserID string) (*domain.Journal, error) {
	return s.transition(ctx, tenantID, journalID, actorUserID, domain.Submitted, domain.Approved)
}

// PostJournal transitions approved -> posted. Approval and posting can be
// separated in time, so the fiscal period is re-checked here: a period
// locked since approval blocks the post.
func (s *journalService) PostJournal(ctx context.Context, tenantID string, journalID string, actorUserID string) (*domain.Journal, error) {
	journal, err := s.requireStatus(ctx, tenantID, journalID, domain.Approved)
	if err != nil {
		return nil, err
	}
	if err := s.validateFiscalPeriod(ctx, tenantID, journal.TransactionDate); err != nil {
		return nil, err
	}
	return s.applyTransition(ctx, tenantID, journalID, actorUserID, domain.Approved, domain.Posted)
}

func (s *journalService) transition(ctx context.Context, tenantID, journalID, actorUserID string, from, to domain.JournalStatus) (*domain.Journal, error) {
	if _, err := s.requireStatus(ctx, tenantID, journalID, from); err != nil {
		return nil, err
	}
	return s.applyTransition(ctx, tenantID, journalID, actorUserID, from, to)
}

func (s *journalService) applyTransition(ctx context.Context, tenantID, journalID, actorUserID string, from, to domain.JournalStatus) (*domain.Journal, error) {
	err := s.journalRepo.TransitionStatus(ctx, portsrepo.StatusTransition{
		TenantID:  tenantID,
		JournalID: journalID,
		From:      from,
		To:        to,
		ActorID:   actorUserID,
		At:        time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Lost the race: another caller moved the journal first.
			return nil, fmt.Errorf("%w: journal must be in %s status", apperrors.ErrValidation, from)
		}
		s.LogError(ctx, err, "Failed to transition journal status",
			slog.String("journal_id", journalID),
			slog.String("from", string(from)),
			slog.String("to", string(to)))
		return nil, fmt.Errorf("failed to transition journal: %w", err)
	}

	s.LogInfo(ctx, "Journal status changed",
		slog.String("journal_id", journalID),
		slog.String("from", string(from)),
		slog.String("to", string(to)))

	return s.GetJournalByID(ctx, tenantID, journalID)
}

// ReverseJournal creates a posted mirror of a posted journal (debits and
// credits swapped) and flips the original to reversed, atomically.
func (s *journalService) ReverseJournal(ctx context.Context, tenantID string, journalID string, actorUserID string) (*domain.Journal, error) {
	original, err := s.requireStatus(ctx, tenantID, journalID, domain.Posted)
	if err != nil {
		return nil, err
	}
	if original.OriginalJournalID != nil {
		return nil, fmt.Errorf("%w: cannot reverse a journal that is already a reversal", apperrors.ErrValidation)
	}

	originalLines, err := s.journalRepo.FindLinesByJournalID(ctx, tenantID, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve original lines: %w", err)
	}

	now := time.Now().UTC()
	number, err := s.sequenceSvc.NextJournalNumber(ctx, tenantID, original.JournalType)
	if err != nil {
		return nil, err
	}

	reversing := domain.Journal{
		JournalID:         uuid.NewString(),
		TenantID:          tenantID,
		BranchID:          original.BranchID,
		JournalNumber:     number,
		JournalType:       original.JournalType,
		ReferenceNumber:   original.JournalNumber,
		Description:       fmt.Sprintf("Reversal of %s: %s", original.JournalNumber, original.Description),
		DescriptionAr:     original.DescriptionAr,
		TransactionDate:   original.TransactionDate,
		PostingDate:       now,
		CurrencyCode:      original.CurrencyCode,
		ExchangeRate:      original.ExchangeRate,
		TotalDebit:        original.TotalCredit,
		TotalCredit:       original.TotalDebit,
		Status:            domain.Posted,
		OriginalJournalID: &original.JournalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
		PostedBy: &actorUserID,
		PostedAt: &now,
	}

	reversingLines := make([]domain.JournalLine, len(originalLines))
	for i, line := range originalLines {
		reversingLines[i] = domain.JournalLine{
			LineID:        uuid.NewString(),
			JournalID:     reversing.JournalID,
			TenantID:      tenantID,
			LineNumber:    line.LineNumber,
			AccountID:     line.AccountID,
			Description:   line.Description,
			DescriptionAr: line.DescriptionAr,
			CostCenterID:  line.CostCenterID,
			Debit:         line.Credit,
			Credit:        line.Debit,
			CurrencyCode:  line.CurrencyCode,
			ExchangeRate:  line.ExchangeRate,
			Reference:     line.Reference,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorUserID,
			},
		}
	}

	if err := s.journalRepo.SaveReversal(ctx, *original, reversing, reversingLines); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: journal must be in %s status", apperrors.ErrValidation, domain.Posted)
		}
		s.LogError(ctx, err, "Failed to save reversal", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save reversal: %w", err)
	}

	s.LogInfo(ctx, "Journal reversed",
		slog.String("journal_id", journalID),
		slog.String("reversing_journal_id", reversing.JournalID))

	return s.GetJournalByID(ctx, tenantID, reversing.JournalID)
}

// DeleteJournal removes a draft journal and its lines.
func (s *journalService) DeleteJournal(ctx context.Context, tenantID string, journalID string) error {
	if _, err := s.requireStatus(ctx, tenantID, journalID, domain.Draft); err != nil {
		return err
	}

	if err := s.journalRepo.DeleteJournal(ctx, tenantID, journalID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return fmt.Errorf("%w: journal must be in %s status", apperrors.ErrValidation, domain.Draft)
		}
		s.LogError(ctx, err, "Failed to delete journal", slog.String("journal_id", journalID))
		return fmt.Errorf("failed to delete journal: %w", err)
	}

	s.LogInfo(ctx, "Journal deleted", slog.String("journal_id", journalID), slog.String("tenant_id", tenantID))
	return nil
}
