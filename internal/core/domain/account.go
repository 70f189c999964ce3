package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid checks whether the account type is one of the known values.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// BalanceType indicates which side is an account's natural (increasing) side.
type BalanceType string

const (
	DebitBalance  BalanceType = "DEBIT"
	CreditBalance BalanceType = "CREDIT"
)

// DefaultBalanceType returns the natural balance side for an account type.
// Asset and expense accounts grow with debits; everything else with credits.
func DefaultBalanceType(accountType AccountType) BalanceType {
	switch accountType {
	case Asset, Expense:
		return DebitBalance
	default:
		return CreditBalance
	}
}

// Account represents one node in a tenant's chart of accounts.
// This is the primary representation used by services.
type Account struct {
	AccountID          string      `json:"accountID"`   // Primary Key (UUID)
	TenantID           string      `json:"tenantID"`    // FK -> tenants.tenant_id
	Code               string      `json:"code"`        // Unique within tenant
	Name               string      `json:"name"`        // English name
	NameAr             string      `json:"nameAr"`      // Arabic name
	AccountType        AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	AccountSubtype     string      `json:"accountSubtype"`
	ParentAccountID    string      `json:"parentAccountID"` // Nullable self-reference, same tenant
	Level              int         `json:"level"`           // Root = 1; child = parent.Level + 1
	BalanceType        BalanceType `json:"balanceType"`     // Natural side; defaulted from AccountType
	CurrencyCode       string      `json:"currencyCode"`
	IsControlAccount   bool        `json:"isControlAccount"`
	IsPostingAllowed   bool        `json:"isPostingAllowed"`
	IsActive           bool        `json:"isActive"`
	CostCenterRequired bool        `json:"costCenterRequired"`
	Description        string      `json:"description"`
	AuditFields

	// Children is populated only by hierarchy queries; it is a view of the
	// flat result set, not an ownership relation in storage.
	Children []*Account `json:"children,omitempty"`
	// Parent summary, populated on single-account reads.
	Parent *AccountSummary `json:"parent,omitempty"`
}

// AccountSummary is the shape embedded in journal lines and parent/child views.
type AccountSummary struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	NameAr      string      `json:"nameAr"`
	AccountType AccountType `json:"accountType"`
}

// Summary projects the account into its summary form.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		AccountID:   a.AccountID,
		Code:        a.Code,
		Name:        a.Name,
		NameAr:      a.NameAr,
		AccountType: a.AccountType,
	}
}

// CanBePostedTo reports whether journal lines may target this account.
func (a *Account) CanBePostedTo() bool {
	return a.IsActive && a.IsPostingAllowed
}
