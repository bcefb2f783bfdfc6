package entity

// CompanyTypes is the enumerated set accepted for CustomerInfo.CompanyType.
var CompanyTypes = []string{
	"Private Limited Company (PLC)",
	"Share Company (S.C)",
	"Sole Proprietorship",
	"Partnership",
	"Cooperative",
	"NGO/Association",
	"Government Entity",
	"Other",
}

// IsValidCompanyType reports whether s is one of CompanyTypes.
func IsValidCompanyType(s string) bool {
	for _, t := range CompanyTypes {
		if s == t {
			return true
		}
	}
	return false
}

// CustomerInfo is the form-captured metadata attached to a single order
// submission attempt. It is not persisted beyond that attempt.
type CustomerInfo struct {
	Name        string `validate:"required"`
	Phone       string `validate:"required"`
	CompanyType string `validate:"required,company_type"`
	TINNumber   string
	Email       string `validate:"omitempty,email"`
	Address     string
	Notes       string
}
