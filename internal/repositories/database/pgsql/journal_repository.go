package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks/finbooks_backend/internal/models"
	"github.com/finbooks/finbooks_backend/internal/utils/mapping"
	"github.com/finbooks/finbooks_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and line data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, tenant_id, branch_id, journal_number, journal_type, reference_number, description, description_ar, transaction_date, posting_date, currency_code, exchange_rate, total_debit, total_credit, status, notes, attachment_ref, source_module, source_id, original_journal_id, reversing_journal_id, created_at, created_by, last_updated_at, last_updated_by, submitted_by, submitted_at, approved_by, approved_at, posted_by, posted_at`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.TenantID,
		&m.BranchID,
		&m.JournalNumber,
		&m.JournalType,
		&m.ReferenceNumber,
		&m.Description,
		&m.DescriptionAr,
		&m.TransactionDate,
		&m.PostingDate,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.Status,
		&m.Notes,
		&m.AttachmentRef,
		&m.SourceModule,
		&m.SourceID,
		&m.OriginalJournalID,
		&m.ReversingJournalID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.SubmittedBy,
		&m.SubmittedAt,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.PostedBy,
		&m.PostedAt,
	)
	return m, err
}

// Line reads join the chart of accounts so each line carries its account
// summary without a second round trip.
const lineSelect = `
	SELECT jl.line_id, jl.journal_id, jl.tenant_id, jl.line_number, jl.account_id,
	       jl.description, jl.description_ar, jl.cost_center_id, jl.debit, jl.credit,
	       jl.currency_code, jl.exchange_rate, jl.reference,
	       jl.created_at, jl.created_by, jl.last_updated_at, jl.last_updated_by,
	       a.code AS account_code, a.name AS account_name, a.name_ar AS account_name_ar, a.account_type
	FROM journal_lines jl
	JOIN accounts a ON a.tenant_id = jl.tenant_id AND a.account_id = jl.account_id`

func scanJournalLine(row pgx.Row) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.JournalID,
		&m.TenantID,
		&m.LineNumber,
		&m.AccountID,
		&m.Description,
		&m.DescriptionAr,
		&m.CostCenterID,
		&m.Debit,
		&m.Credit,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.Reference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.AccountCode,
		&m.AccountName,
		&m.AccountNameAr,
		&m.AccountType,
	)
	return m, err
}

func collectJournalLines(rows pgx.Rows) ([]models.JournalLine, error) {
	defer rows.Close()
	lines := []models.JournalLine{}
	for rows.Next() {
		m, err := scanJournalLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return lines, nil
}

// queueLineInserts adds one insert per line to the batch.
func queueLineInserts(batch *pgx.Batch, lines []domain.JournalLine) {
	query := `
		INSERT INTO journal_lines (line_id, journal_id, tenant_id, line_number, account_id, description, description_ar, cost_center_id, debit, credit, currency_code, exchange_rate, reference, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(query,
			m.LineID,
			m.JournalID,
			m.TenantID,
			m.LineNumber,
			m.AccountID,
			m.Description,
			m.DescriptionAr,
			m.CostCenterID,
			m.Debit,
			m.Credit,
			m.CurrencyCode,
			m.ExchangeRate,
			m.Reference,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
}

func insertJournalHeader(ctx context.Context, tx pgx.Tx, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)
	query := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31);
	`
	_, err := tx.Exec(ctx, query,
		m.JournalID,
		m.TenantID,
		m.BranchID,
		m.JournalNumber,
		m.JournalType,
		m.ReferenceNumber,
		m.Description,
		m.DescriptionAr,
		m.TransactionDate,
		m.PostingDate,
		m.CurrencyCode,
		m.ExchangeRate,
		m.TotalDebit,
		m.TotalCredit,
		m.Status,
		m.Notes,
		m.AttachmentRef,
		m.SourceModule,
		m.SourceID,
		m.OriginalJournalID,
		m.ReversingJournalID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.SubmittedBy,
		m.SubmittedAt,
		m.ApprovedBy,
		m.ApprovedAt,
		m.PostedBy,
		m.PostedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: journal number %s already exists", apperrors.ErrDuplicate, m.JournalNumber)
		}
		return fmt.Errorf("failed to insert journal %s: %w", m.JournalID, err)
	}
	return nil
}

func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert journal line %d: %w", i+1, err)
		}
	}
	return br.Close()
}

// SaveJournal persists a journal header and all of its lines in one
// database transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertJournalHeader(ctx, tx, journal); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	if err := sendBatch(ctx, tx, batch); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReplaceJournalLines swaps the full line set and updates the header totals
// in one transaction. The header update is guarded by status = DRAFT, so a
// journal that moved on since the caller loaded it is left untouched.
func (r *PgxJournalRepository) ReplaceJournalLines(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		UPDATE journals
		SET total_debit = $3, total_credit = $4, last_updated_at = $5, last_updated_by = $6
		WHERE tenant_id = $1 AND journal_id = $2 AND status = $7;
	`
	tag, err := tx.Exec(ctx, headerQuery,
		journal.TenantID,
		journal.JournalID,
		journal.TotalDebit,
		journal.TotalCredit,
		journal.LastUpdatedAt,
		journal.LastUpdatedBy,
		models.Draft,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal totals %s: %w", journal.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is not a draft", apperrors.ErrConflict, journal.JournalID)
	}

	deleteQuery := `DELETE FROM journal_lines WHERE tenant_id = $1 AND journal_id = $2;`
	if _, err := tx.Exec(ctx, deleteQuery, journal.TenantID, journal.JournalID); err != nil {
		return fmt.Errorf("failed to delete lines of journal %s: %w", journal.JournalID, err)
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	if err := sendBatch(ctx, tx, batch); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateJournalHeader updates draft-mutable header fields, guarded by
// status = DRAFT.
func (r *PgxJournalRepository) UpdateJournalHeader(ctx context.Context, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)

	query := `
		UPDATE journals
		SET reference_number = $3, description = $4, description_ar = $5,
		    transaction_date = $6, posting_date = $7, notes = $8, attachment_ref = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE tenant_id = $1 AND journal_id = $2 AND status = $12;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.JournalID,
		m.ReferenceNumber,
		m.Description,
		m.DescriptionAr,
		m.TransactionDate,
		m.PostingDate,
		m.Notes,
		m.AttachmentRef,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		models.Draft,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal header %s: %w", m.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is not a draft", apperrors.ErrConflict, m.JournalID)
	}
	return nil
}

// TransitionStatus performs a compare-and-swap status update, stamping the
// transition's audit column. Zero rows updated means the journal was no
// longer in the expected state.
func (r *PgxJournalRepository) TransitionStatus(ctx context.Context, t portsrepo.StatusTransition) error {
	setClause := "status = $4, last_updated_at = $6, last_updated_by = $5"
	switch t.To {
	case domain.Submitted:
		setClause += ", submitted_by = $5, submitted_at = $6"
	case domain.Approved:
		setClause += ", approved_by = $5, approved_at = $6"
	case domain.Posted:
		setClause += ", posted_by = $5, posted_at = $6"
	}

	query := fmt.Sprintf(`
		UPDATE journals
		SET %s
		WHERE tenant_id = $1 AND journal_id = $2 AND status = $3;
	`, setClause)

	tag, err := r.Pool.Exec(ctx, query,
		t.TenantID,
		t.JournalID,
		string(t.From),
		string(t.To),
		t.ActorID,
		t.At,
	)
	if err != nil {
		return fmt.Errorf("failed to transition journal %s to %s: %w", t.JournalID, t.To, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is no longer %s", apperrors.ErrConflict, t.JournalID, t.From)
	}
	return nil
}

// DeleteJournal removes a draft journal and its lines in one transaction.
func (r *PgxJournalRepository) DeleteJournal(ctx context.Context, tenantID string, journalID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	lineQuery := `DELETE FROM journal_lines WHERE tenant_id = $1 AND journal_id = $2;`
	if _, err := tx.Exec(ctx, lineQuery, tenantID, journalID); err != nil {
		return fmt.Errorf("failed to delete lines of journal %s: %w", journalID, err)
	}

	headerQuery := `DELETE FROM journals WHERE tenant_id = $1 AND journal_id = $2 AND status = $3;`
	tag, err := tx.Exec(ctx, headerQuery, tenantID, journalID, models.Draft)
	if err != nil {
		return fmt.Errorf("failed to delete journal %s: %w", journalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is not a draft", apperrors.ErrConflict, journalID)
	}

	return r.Commit(ctx, tx)
}

// SaveReversal atomically inserts the reversing journal with its lines and
// flips the original from POSTED to REVERSED, linking the two.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, original domain.Journal, reversing domain.Journal, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	flipQuery := `
		UPDATE journals
		SET status = $4, reversing_journal_id = $5, last_updated_at = $6, last_updated_by = $7
		WHERE tenant_id = $1 AND journal_id = $2 AND status = $3;
	`
	tag, err := tx.Exec(ctx, flipQuery,
		original.TenantID,
		original.JournalID,
		models.Posted,
		models.Reversed,
		reversing.JournalID,
		reversing.CreatedAt,
		reversing.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to mark journal %s reversed: %w", original.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is no longer %s", apperrors.ErrConflict, original.JournalID, models.Posted)
	}

	if err := insertJournalHeader(ctx, tx, reversing); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, lines)
	if err := sendBatch(ctx, tx, batch); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal header by ID, tenant-scoped.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, tenantID string, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE tenant_id = $1 AND journal_id = $2;`

	m, err := scanJournal(r.Pool.QueryRow(ctx, query, tenantID, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	j := mapping.ToDomainJournal(m)
	return &j, nil
}

// FindLinesByJournalID retrieves a journal's lines with account summaries,
// ordered by line number.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, tenantID string, journalID string) ([]domain.JournalLine, error) {
	query := lineSelect + `
	WHERE jl.tenant_id = $1 AND jl.journal_id = $2
	ORDER BY jl.line_number;`

	rows, err := r.Pool.Query(ctx, query, tenantID, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of journal %s: %w", journalID, err)
	}
	ms, err := collectJournalLines(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainJournalLineSlice(ms), nil
}

// FindLinesByJournalIDs retrieves lines for many journals in one batch,
// keyed by journal ID.
func (r *PgxJournalRepository) FindLinesByJournalIDs(ctx context.Context, tenantID string, journalIDs []string) (map[string][]domain.JournalLine, error) {
	if len(journalIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := lineSelect + `
	WHERE jl.tenant_id = $1 AND jl.journal_id = ANY($2)
	ORDER BY jl.journal_id, jl.line_number;`

	rows, err := r.Pool.Query(ctx, query, tenantID, journalIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to batch-query journal lines: %w", err)
	}
	ms, err := collectJournalLines(rows)
	if err != nil {
		return nil, err
	}

	linesMap := make(map[string][]domain.JournalLine)
	for _, m := range ms {
		linesMap[m.JournalID] = append(linesMap[m.JournalID], mapping.ToDomainJournalLine(m))
	}
	return linesMap, nil
}

// ListJournals retrieves a filtered, cursor-paginated list of journal
// headers, newest transaction date first. One extra row is fetched to
// decide whether a next page exists.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, tenantID string, filter portsrepo.ListJournalsFilter) ([]domain.Journal, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + journalColumns + ` FROM journals WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.JournalType != nil {
		args = append(args, string(*filter.JournalType))
		query += fmt.Sprintf(" AND journal_type = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND transaction_date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND transaction_date <= $%d", len(args))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, txnDate, createdAt)
		query += fmt.Sprintf(" AND (transaction_date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journals for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, mapping.ToDomainJournal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	var nextToken *string
	if len(journals) > limit {
		journals = journals[:limit]
		last := journals[len(journals)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextToken = &token
	}
	return journals, nextToken, nil
}

// SumAccountLines sums debit and credit across posted journal lines for an
// account. A non-nil asOf restricts to transaction dates on or before it.
func (r *PgxJournalRepository) SumAccountLines(ctx context.Context, tenantID string, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(jl.debit), 0), COALESCE(SUM(jl.credit), 0)
		FROM journal_lines jl
		JOIN journals j ON j.tenant_id = jl.tenant_id AND j.journal_id = jl.journal_id
		WHERE jl.tenant_id = $1 AND jl.account_id = $2 AND j.status = $3
	`
	args := []interface{}{tenantID, accountID, models.Posted}
	if asOf != nil {
		args = append(args, *asOf)
		query += fmt.Sprintf(" AND j.transaction_date <= $%d", len(args))
	}
	query += ";"

	var debit, credit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum lines for account %s: %w", accountID, err)
	}
	return debit, credit, nil
}

// ListAccountLines retrieves a cursor-paginated list of posted lines for an
// account, newest first. The cursor orders on the owning journal's
// transaction date plus the line's creation time.
func (r *PgxJournalRepository) ListAccountLines(ctx context.Context, tenantID string, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := lineSelect + `
	JOIN journals j ON j.tenant_id = jl.tenant_id AND j.journal_id = jl.journal_id
	WHERE jl.tenant_id = $1 AND jl.account_id = $2 AND j.status = $3`
	args := []interface{}{tenantID, accountID, models.Posted}

	if nextToken != nil && *nextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, txnDate, createdAt)
		query += fmt.Sprintf(" AND (j.transaction_date, jl.created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY j.transaction_date DESC, jl.created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query lines for account %s: %w", accountID, err)
	}
	ms, err := collectJournalLines(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		// Resolve the last line's journal transaction date for the cursor.
		last := ms[len(ms)-1]
		var txnDate time.Time
		dateQuery := `SELECT transaction_date FROM journals WHERE tenant_id = $1 AND journal_id = $2;`
		if err := r.Pool.QueryRow(ctx, dateQuery, tenantID, last.JournalID).Scan(&txnDate); err != nil {
			return nil, nil, fmt.Errorf("failed to resolve cursor for account %s: %w", accountID, err)
		}
		t := pagination.EncodeToken(txnDate, last.CreatedAt)
		token = &t
	}
	return mapping.ToDomainJournalLineSlice(ms), token, nil
}
