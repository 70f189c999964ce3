package mapping

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:          d.JournalID,
		TenantID:           d.TenantID,
		BranchID:           d.BranchID,
		JournalNumber:      d.JournalNumber,
		JournalType:        string(d.JournalType),
		ReferenceNumber:    d.ReferenceNumber,
		Description:        d.Description,
		DescriptionAr:      d.DescriptionAr,
		TransactionDate:    d.TransactionDate,
		PostingDate:        d.PostingDate,
		CurrencyCode:       d.CurrencyCode,
		ExchangeRate:       d.ExchangeRate,
		TotalDebit:         d.TotalDebit,
		TotalCredit:        d.TotalCredit,
		Status:             models.JournalStatus(d.Status),
		Notes:              d.Notes,
		AttachmentRef:      d.AttachmentRef,
		SourceModule:       d.SourceModule,
		SourceID:           d.SourceID,
		OriginalJournalID:  d.OriginalJournalID,
		ReversingJournalID: d.ReversingJournalID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
		SubmittedBy:        d.SubmittedBy,
		SubmittedAt:        d.SubmittedAt,
		ApprovedBy:         d.ApprovedBy,
		ApprovedAt:         d.ApprovedAt,
		PostedBy:           d.PostedBy,
		PostedAt:           d.PostedAt,
	}
}

// ToDomainJournal converts a model Journal to a domain Journal.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:          m.JournalID,
		TenantID:           m.TenantID,
		BranchID:           m.BranchID,
		JournalNumber:      m.JournalNumber,
		JournalType:        domain.JournalType(m.JournalType),
		ReferenceNumber:    m.ReferenceNumber,
		Description:        m.Description,
		DescriptionAr:      m.DescriptionAr,
		TransactionDate:    m.TransactionDate,
		PostingDate:        m.PostingDate,
		CurrencyCode:       m.CurrencyCode,
		ExchangeRate:       m.ExchangeRate,
		TotalDebit:         m.TotalDebit,
		TotalCredit:        m.TotalCredit,
		Status:             domain.JournalStatus(m.Status),
		Notes:              m.Notes,
		AttachmentRef:      m.AttachmentRef,
		SourceModule:       m.SourceModule,
		SourceID:           m.SourceID,
		OriginalJournalID:  m.OriginalJournalID,
		ReversingJournalID: m.ReversingJournalID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
		SubmittedBy:        m.SubmittedBy,
		SubmittedAt:        m.SubmittedAt,
		ApprovedBy:         m.ApprovedBy,
		ApprovedAt:         m.ApprovedAt,
		PostedBy:           m.PostedBy,
		PostedAt:           m.PostedAt,
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:        d.LineID,
		JournalID:     d.JournalID,
		TenantID:      d.TenantID,
		LineNumber:    d.LineNumber,
		AccountID:     d.AccountID,
		Description:   d.Description,
		DescriptionAr: d.DescriptionAr,
		CostCenterID:  d.CostCenterID,
		Debit:         d.Debit,
		Credit:        d.Credit,
		CurrencyCode:  d.CurrencyCode,
		ExchangeRate:  d.ExchangeRate,
		Reference:     d.Reference,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine.
// Joined account columns, when present, become the embedded account summary.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	line := domain.JournalLine{
		LineID:        m.LineID,
		JournalID:     m.JournalID,
		TenantID:      m.TenantID,
		LineNumber:    m.LineNumber,
		AccountID:     m.AccountID,
		Description:   m.Description,
		DescriptionAr: m.DescriptionAr,
		CostCenterID:  m.CostCenterID,
		Debit:         m.Debit,
		Credit:        m.Credit,
		CurrencyCode:  m.CurrencyCode,
		ExchangeRate:  m.ExchangeRate,
		Reference:     m.Reference,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.AccountCode != "" || m.AccountName != "" {
		line.Account = &domain.AccountSummary{
			AccountID:   m.AccountID,
			Code:        m.AccountCode,
			Name:        m.AccountName,
			NameAr:      m.AccountNameAr,
			AccountType: domain.AccountType(m.AccountType),
		}
	}
	return line
}

// ToDomainJournalLineSlice converts a slice of model lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		lines[i] = ToDomainJournalLine(m)
	}
	return lines
}
