package domain

// CompanyKey selects one registered supplier company.
type CompanyKey string

const (
	CompanyProstor           CompanyKey = "prostor"
	CompanyStroytorgcomplect CompanyKey = "stroytorgcomplect"
)

// CompanyProfile is a supplier's static legal identity plus its contract
// clause body. Defined once at startup, read-only afterwards.
type CompanyProfile struct {
	Key              CompanyKey
	Name             string
	OGRN             string
	INN              string
	LegalAddress     string
	CentralWarehouse string
	ExecutorName     string
	ContractText     string
}
