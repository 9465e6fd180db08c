package company

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/cvrdex/internal/domain"
	"github.com/kailas-cloud/cvrdex/internal/domain/search"
)

// CVRNumber reads the registration number a raw record carries.
func CVRNumber(rec search.Record) (int, bool) {
	return intField(rec, "cvrNummer")
}

// Normalize maps one raw registry record, plus the registration number it
// was found under, to the stable company schema. A missing required field
// fails the whole record with a mapping error; optional fields simply stay
// absent. The record is only read, never mutated.
func Normalize(rec search.Record, vat int) (domain.Company, error) {
	meta, ok := nestedMap(rec, "virksomhedMetadata")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata")
	}

	c := domain.Company{
		VAT:     vat,
		Version: domain.SchemaVersion,
	}

	nameBlock, ok := nestedMap(meta, "nyesteNavn")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteNavn")
	}
	c.Name, ok = stringField(nameBlock, "navn")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteNavn.navn")
	}

	addr, ok := nestedMap(meta, "nyesteBeliggenhedsadresse")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteBeliggenhedsadresse")
	}
	c.Address, ok = combinedAddress(addr)
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteBeliggenhedsadresse.vejnavn")
	}
	if v, ok := intField(addr, "postnummer"); ok {
		c.Zipcode = &v
	}
	if v, ok := stringField(addr, "postdistrikt"); ok {
		c.City = &v
	}
	if v, ok := stringField(addr, "bynavn"); ok {
		c.CityName = &v
	}
	if v, ok := stringField(addr, "conavn"); ok {
		c.AddressCo = &v
	}

	if v, ok := boolField(rec, "reklamebeskyttet"); ok {
		c.Protected = &v
	}

	blob := contactBlob(meta)
	if v, ok := extractContact(contactPhone, blob); ok {
		c.Phone = &v
	}
	if v, ok := extractContact(contactEmail, blob); ok {
		c.Email = &v
	}
	if v, ok := extractContact(contactWebsite, blob); ok {
		c.Website = &v
	}
	if v, ok := faxNumber(rec); ok {
		c.Fax = &v
	}

	if raw, ok := stringField(meta, "stiftelsesDato"); ok && raw != "" {
		v, err := formatDate(raw)
		if err != nil {
			return domain.Company{}, fmt.Errorf("start date: %w", err)
		}
		c.StartDate = &v
	}
	if raw, ok := dissolutionDate(rec); ok {
		v, err := formatDate(raw)
		if err != nil {
			return domain.Company{}, fmt.Errorf("end date: %w", err)
		}
		c.EndDate = &v
	}

	if emp, ok := nestedMap(meta, "nyesteErstMaanedsbeskaeftigelse"); ok {
		if v, ok := intField(emp, "antalAnsatte"); ok {
			c.Employees = &v
		}
	}

	branch, ok := nestedMap(meta, "nyesteHovedbranche")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteHovedbranche")
	}
	c.IndustryCode, ok = scalarString(branch, "branchekode")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteHovedbranche.branchekode")
	}
	c.IndustryDesc, ok = stringField(branch, "branchetekst")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteHovedbranche.branchetekst")
	}

	form, ok := nestedMap(meta, "nyesteVirksomhedsform")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteVirksomhedsform")
	}
	c.CompanyCode, ok = intField(form, "virksomhedsformkode")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteVirksomhedsform.virksomhedsformkode")
	}
	c.CompanyDesc, ok = stringField(form, "langBeskrivelse")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteVirksomhedsform.langBeskrivelse")
	}
	c.CompanyTypeShort, ok = stringField(form, "kortBeskrivelse")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.nyesteVirksomhedsform.kortBeskrivelse")
	}

	c.Bankrupt = isBankrupt(meta)

	c.Status, ok = stringField(meta, "sammensatStatus")
	if !ok {
		return domain.Company{}, domain.NewMappingError("virksomhedMetadata.sammensatStatus")
	}

	return c, nil
}

// combinedAddress assembles the street address from its optional parts.
// Only the street name is required; absent parts contribute neither value
// nor separator. The shape is
// "<street> <from>[-<to>][<letterFrom>][-<letterTo>][, <floor>]".
func combinedAddress(addr map[string]any) (string, bool) {
	street, ok := scalarString(addr, "vejnavn")
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString(street)

	if from, ok := scalarString(addr, "husnummerFra"); ok {
		b.WriteString(" ")
		b.WriteString(from)
	}
	if to, ok := scalarString(addr, "husnummerTil"); ok {
		b.WriteString("-")
		b.WriteString(to)
	}
	if letter, ok := scalarString(addr, "bogstavFra"); ok {
		b.WriteString(letter)
	}
	if letter, ok := scalarString(addr, "bogstavTil"); ok {
		b.WriteString("-")
		b.WriteString(letter)
	}
	if floor, ok := scalarString(addr, "etage"); ok {
		b.WriteString(", ")
		b.WriteString(floor)
	}

	return b.String(), true
}

// formatDate reformats a registry date from YYYY-MM-DD to DD/MM - YYYY.
func formatDate(date string) (string, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: date %q not in YYYY-MM-DD form", domain.ErrMapping, date)
	}
	return fmt.Sprintf("%s/%s - %s", parts[2], parts[1], parts[0]), nil
}

// dissolutionDate reads the valid-until date from the first lifecycle
// period. Companies without one are presumed active.
func dissolutionDate(rec search.Record) (string, bool) {
	periods, ok := rec["livsforloeb"].([]any)
	if !ok || len(periods) == 0 {
		return "", false
	}
	first, ok := periods[0].(map[string]any)
	if !ok {
		return "", false
	}
	periode, ok := nestedMap(first, "periode")
	if !ok {
		return "", false
	}
	v, ok := stringField(periode, "gyldigTil")
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// faxNumber reads the first fax contact entry, tolerating both the entry
// list the registry serves and a bare string.
func faxNumber(rec search.Record) (string, bool) {
	switch v := rec["telefaxNummer"].(type) {
	case string:
		if v != "" {
			return v, true
		}
	case []any:
		for _, e := range v {
			if entry, ok := e.(map[string]any); ok {
				if s, ok := stringField(entry, "kontaktoplysning"); ok && s != "" {
					return s, true
				}
			}
		}
	}
	return "", false
}

// isBankrupt reports whether the latest status credit text equals the
// bankruptcy marker exactly. Any missing link in the chain means false.
func isBankrupt(meta map[string]any) bool {
	status, ok := nestedMap(meta, "nyesteStatus")
	if !ok {
		return false
	}
	v, _ := stringField(status, "kreditoplysningtekst")
	return v == "Konkurs"
}
