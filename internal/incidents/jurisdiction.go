// Package incidents reads live road incidents for the jurisdiction of an address.
package incidents

import (
	"strings"
)

// countyIDs maps North Carolina county names to NC DOT TIMS county ids.
//
//nolint:gochecknoglobals // read-only lookup table
var countyIDs = map[string]int{
	"mecklenburg": 56, "cabarrus": 13, "union": 83, "gaston": 37,
	"iredell": 45, "davidson": 26, "guilford": 41, "wake": 81,
	"forsyth": 38, "durham": 28, "alamance": 1, "johnston": 46,
	"lee": 53, "moore": 65, "chatham": 18, "orange": 68,
	"buncombe": 9, "pitt": 71, "cumberland": 23,
}

//nolint:gochecknoglobals // read-only lookup table
var cityCounties = map[string]string{
	"charlotte":     "mecklenburg",
	"matthews":      "mecklenburg",
	"mint hill":     "mecklenburg",
	"huntersville":  "mecklenburg",
	"concord":       "cabarrus",
	"kannapolis":    "cabarrus",
	"monroe":        "union",
	"indian trail":  "union",
	"gastonia":      "gaston",
	"cherryville":   "gaston",
	"statesville":   "iredell",
	"mooresville":   "iredell",
	"davidson":      "davidson",
	"greensboro":    "guilford",
	"high point":    "guilford",
	"raleigh":       "wake",
	"cary":          "wake",
	"apex":          "wake",
	"winston-salem": "forsyth",
	"kernersville":  "forsyth",
	"durham":        "durham",
	"asheville":     "buncombe",
}

//nolint:gochecknoglobals // read-only lookup table
var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"DC": {},
}

// StateFromAddress returns the last token of the address that is a US state code.
func StateFromAddress(address string) (string, bool) {
	tokens := strings.Fields(strings.ReplaceAll(address, ",", " "))
	for i := len(tokens) - 1; i >= 0; i-- {
		token := strings.ToUpper(tokens[i])
		if _, ok := stateCodes[token]; ok {
			return token, true
		}
	}

	return "", false
}

// CountyForAddress guesses the North Carolina county from the city part of an address.
func CountyForAddress(address string) (string, bool) {
	city, _, _ := strings.Cut(strings.ToLower(address), ",")
	county, ok := cityCounties[strings.TrimSpace(city)]

	return county, ok
}

// CountyID returns the TIMS id of a county name.
func CountyID(county string) (int, bool) {
	id, ok := countyIDs[strings.ToLower(strings.TrimSpace(county))]
	return id, ok
}
