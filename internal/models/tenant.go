package models

// Tenant is the tenants table row shape.
type Tenant struct {
	TenantID            string `db:"tenant_id"`
	Code                string `db:"code"`
	Name                string `db:"name"`
	NameAr              string `db:"name_ar"`
	DefaultCurrencyCode string `db:"default_currency_code"`
	IsActive            bool   `db:"is_active"`
	AuditFields
}
