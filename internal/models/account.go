package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceType is the natural (increasing) side of an account.
type BalanceType string

const (
	DebitBalance  BalanceType = "DEBIT"
	CreditBalance BalanceType = "CREDIT"
)

// Account is the accounts table row shape.
// ParentAccountID uses a string for the nullable self-referencing FK; the
// repository maps empty string to SQL NULL.
type Account struct {
	AccountID          string      `db:"account_id"`
	TenantID           string      `db:"tenant_id"`
	Code               string      `db:"code"`
	Name               string      `db:"name"`
	NameAr             string      `db:"name_ar"`
	AccountType        AccountType `db:"account_type"`
	AccountSubtype     string      `db:"account_subtype"`
	ParentAccountID    string      `db:"parent_account_id"` // Nullable
	Level              int         `db:"level"`
	BalanceType        BalanceType `db:"balance_type"`
	CurrencyCode       string      `db:"currency_code"`
	IsControlAccount   bool        `db:"is_control_account"`
	IsPostingAllowed   bool        `db:"is_posting_allowed"`
	IsActive           bool        `db:"is_active"`
	CostCenterRequired bool        `db:"cost_center_required"`
	Description        string      `db:"description"`
	AuditFields
}
