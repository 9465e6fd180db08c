package domain

// SchemaVersion identifies the current company mapping schema. Bump it
// whenever the mapping rules change shape, not on data updates.
const SchemaVersion = 1

// Company is the normalized view of one registry record. Optional fields
// are pointers and serialize as null when the registry carries no value.
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
