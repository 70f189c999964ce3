package domain

// Tenant represents an isolated bookkeeping environment owning its chart of
// accounts, journals and fiscal calendar. Provisioning of users, roles and
// template accounts is handled by external collaborators.
type Tenant struct {
	TenantID            string `json:"tenantID"` // Primary Key (UUID)
	Code                string `json:"code"`     // Generated, e.g. TEN000001
	Name                string `json:"name"`
	NameAr              string `json:"nameAr"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode"`
	IsActive            bool   `json:"isActive"`
	AuditFields
}

// TenantCodePrefix is the namespace prefix for generated tenant codes.
const TenantCodePrefix = "TEN"
