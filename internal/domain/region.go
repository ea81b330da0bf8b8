package domain

import (
	"sort"
	"strings"
)

const (
	RegionNorthAmerica = "North America"
	RegionLatinAmerica = "Latin America"
	RegionEurope       = "Europe"
	RegionMiddleEast   = "Middle East"
	RegionAsiaPacific  = "Asia Pacific"
	RegionAfrica       = "Africa"
	RegionOther        = "Other"
)

// Regions is the display order of the geographic report. RegionOther is always last.
var Regions = []string{
	RegionNorthAmerica,
	RegionLatinAmerica,
	RegionEurope,
	RegionMiddleEast,
	RegionAsiaPacific,
	RegionAfrica,
	RegionOther,
}

var countryToRegion = map[string]string{
	// North America
	"US": RegionNorthAmerica, "CA": RegionNorthAmerica, "PR": RegionNorthAmerica, "BM": RegionNorthAmerica,

	// Latin America
	"MX": RegionLatinAmerica, "BR": RegionLatinAmerica, "AR": RegionLatinAmerica, "CL": RegionLatinAmerica,
	"CO": RegionLatinAmerica, "PE": RegionLatinAmerica, "VE": RegionLatinAmerica, "EC": RegionLatinAmerica,
	"BO": RegionLatinAmerica, "PY": RegionLatinAmerica, "UY": RegionLatinAmerica, "CR": RegionLatinAmerica,
	"PA": RegionLatinAmerica, "GT": RegionLatinAmerica, "HN": RegionLatinAmerica, "SV": RegionLatinAmerica,
	"NI": RegionLatinAmerica, "DO": RegionLatinAmerica, "CU": RegionLatinAmerica, "JM": RegionLatinAmerica,
	"TT": RegionLatinAmerica, "BS": RegionLatinAmerica, "BB": RegionLatinAmerica,

	// Europe
	"GB": RegionEurope, "IE": RegionEurope, "FR": RegionEurope, "DE": RegionEurope, "IT": RegionEurope,
	"ES": RegionEurope, "PT": RegionEurope, "NL": RegionEurope, "BE": RegionEurope, "LU": RegionEurope,
	"CH": RegionEurope, "AT": RegionEurope, "DK": RegionEurope, "SE": RegionEurope, "NO": RegionEurope,
	"FI": RegionEurope, "IS": RegionEurope, "PL": RegionEurope, "CZ": RegionEurope, "SK": RegionEurope,
	"HU": RegionEurope, "RO": RegionEurope, "BG": RegionEurope, "GR": RegionEurope, "HR": RegionEurope,
	"SI": RegionEurope, "RS": RegionEurope, "BA": RegionEurope, "ME": RegionEurope, "MK": RegionEurope,
	"AL": RegionEurope, "EE": RegionEurope, "LV": RegionEurope, "LT": RegionEurope, "UA": RegionEurope,
	"MD": RegionEurope, "MT": RegionEurope, "CY": RegionEurope, "MC": RegionEurope, "LI": RegionEurope,
	"AD": RegionEurope, "SM": RegionEurope,

	// Middle East
	"AE": RegionMiddleEast, "SA": RegionMiddleEast, "QA": RegionMiddleEast, "KW": RegionMiddleEast,
	"BH": RegionMiddleEast, "OM": RegionMiddleEast, "IL": RegionMiddleEast, "JO": RegionMiddleEast,
	"LB": RegionMiddleEast, "TR": RegionMiddleEast, "IQ": RegionMiddleEast, "IR": RegionMiddleEast,

	// Asia Pacific
	"CN": RegionAsiaPacific, "JP": RegionAsiaPacific, "KR": RegionAsiaPacific, "IN": RegionAsiaPacific,
	"SG": RegionAsiaPacific, "HK": RegionAsiaPacific, "TW": RegionAsiaPacific, "TH": RegionAsiaPacific,
	"MY": RegionAsiaPacific, "ID": RegionAsiaPacific, "PH": RegionAsiaPacific, "VN": RegionAsiaPacific,
	"AU": RegionAsiaPacific, "NZ": RegionAsiaPacific, "PK": RegionAsiaPacific, "BD": RegionAsiaPacific,
	"LK": RegionAsiaPacific, "MO": RegionAsiaPacific,

	// Africa
	"ZA": RegionAfrica, "EG": RegionAfrica, "NG": RegionAfrica, "KE": RegionAfrica, "MA": RegionAfrica,
	"GH": RegionAfrica, "TN": RegionAfrica, "DZ": RegionAfrica, "ET": RegionAfrica, "TZ": RegionAfrica,
	"UG": RegionAfrica, "SN": RegionAfrica, "CI": RegionAfrica, "MU": RegionAfrica,
}

// ClassifyRegion maps an ISO 3166-1 alpha-2 code to its sales region. Unknown and empty codes
// land in RegionOther.
func ClassifyRegion(countryCode string) string {
	if region, ok := countryToRegion[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return region
	}

	return RegionOther
}

// RegionCountries returns the sorted country codes that belong to region.
func RegionCountries(region string) []string {
	codes := []string{}
	for code, r := range countryToRegion {
		if r == region {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	return codes
}
