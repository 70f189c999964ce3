package accounting

import (
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeTotals sums the debit and credit sides of a line set.
func ComputeTotals(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit, totalCredit
}

// ValidateLineShape checks that exactly one of debit/credit is strictly
// positive on every line, and that neither side is negative.
func ValidateLineShape(lines []domain.JournalLine) error {
	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("line %d: debit and credit must not be negative", i+1)
		}
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if hasDebit && hasCredit {
			return fmt.Errorf("line %d: a line cannot carry both a debit and a credit", i+1)
		}
		if !hasDebit && !hasCredit {
			return fmt.Errorf("line %d: a line must carry either a debit or a credit", i+1)
		}
	}
	return nil
}

// ValidateBalanced checks the double-entry invariant: total debits must equal
// total credits within domain.BalanceEpsilon, and the journal must move a
// non-zero amount.
func ValidateBalanced(totalDebit, totalCredit decimal.Decimal) error {
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(domain.BalanceEpsilon) {
		return fmt.Errorf("total debit %s must equal total credit %s", totalDebit.String(), totalCredit.String())
	}
	if !totalDebit.IsPositive() {
		return fmt.Errorf("journal must have non-zero amounts")
	}
	return nil
}

// NaturalBalance resolves a summed debit/credit pair onto the account's
// natural side. The returned netDebit/netCredit mirror the balance onto the
// natural side, zero on the other.
func NaturalBalance(debit, credit decimal.Decimal, balanceType domain.BalanceType) (balance, netDebit, netCredit decimal.Decimal) {
	if balanceType == domain.DebitBalance {
		balance = debit.Sub(credit)
		return balance, balance, decimal.Zero
	}
	balance = credit.Sub(debit)
	return balance, decimal.Zero, balance
}
