package cvrdex

// Company is one normalized registry record as served by the API.
// Optional fields are pointers and stay nil when the registry carries no
// value.
type Company struct {
	VAT              int     `json:"vat"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Zipcode          *int    `json:"zipcode"`
	City             *string `json:"city"`
	CityName         *string `json:"cityname"`
	Protected        *bool   `json:"protected"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	Fax              *string `json:"fax"`
	StartDate        *string `json:"startdate"`
	EndDate          *string `json:"enddate"`
	Employees        *int    `json:"employees"`
	AddressCo        *string `json:"addressco"`
	IndustryCode     string  `json:"industrycode"`
	IndustryDesc     string  `json:"industrydesc"`
	CompanyCode      int     `json:"companycode"`
	CompanyDesc      string  `json:"companydesc"`
	Bankrupt         bool    `json:"bankrupt"`
	Status           string  `json:"status"`
	CompanyTypeShort string  `json:"companytypeshort"`
	Website          *string `json:"website"`
	Version          int     `json:"version"`
}

// VersionInfo is the build metadata of a deployment.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	BuiltAt string `json:"built_at"`
}

// HealthStatus represents the aggregated health of a deployment.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "degraded"
	Checks map[string]string `json:"checks"` // component → "ok"/"error"
}
