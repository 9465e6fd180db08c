package cvrdex

import "github.com/kailas-cloud/cvrdex/internal/domain"

// Company is one normalized registry record. Optional fields are pointers
// and stay nil when the registry carries no value.
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

func companyFromDomain(c domain.Company) Company {
	return Company{
		VAT:              c.VAT,
		Name:             c.Name,
		Address:          c.Address,
		Zipcode:          c.Zipcode,
		City:             c.City,
		CityName:         c.CityName,
		Protected:        c.Protected,
		Phone:            c.Phone,
		Email:            c.Email,
		Fax:              c.Fax,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		Employees:        c.Employees,
		AddressCo:        c.AddressCo,
		IndustryCode:     c.IndustryCode,
		IndustryDesc:     c.IndustryDesc,
		CompanyCode:      c.CompanyCode,
		CompanyDesc:      c.CompanyDesc,
		Bankrupt:         c.Bankrupt,
		Status:           c.Status,
		CompanyTypeShort: c.CompanyTypeShort,
		Website:          c.Website,
		Version:          c.Version,
	}
}

func companiesFromDomain(dcs []domain.Company) []Company {
	out := make([]Company, 0, len(dcs))
	for _, dc := range dcs {
		out = append(out, companyFromDomain(dc))
	}
	return out
}
