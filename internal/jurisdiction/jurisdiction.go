// Package jurisdiction normalizes the free-text place names that arrive in
// upstream payloads (cities, countries, casual spellings) to ISO 3166 country
// codes. Core logic works on codes; substring heuristics stay at this
// boundary.
package jurisdiction

import "strings"

// Code is an ISO 3166-1 alpha-2 country code.
type Code string

const (
	IN Code = "IN"
	AE Code = "AE"
	SG Code = "SG"
	GB Code = "GB"
	US Code = "US"
	PT Code = "PT"
	AU Code = "AU"
	CH Code = "CH"
	FR Code = "FR"
	JP Code = "JP"
	ES Code = "ES"
	GR Code = "GR"
)

// aliases maps each code to the names it is known by upstream, including
// major cities, since real-world stamp-duty tables are keyed by city as often
// as by country.
var aliases = map[Code][]string{
	IN: {"india", "mumbai", "delhi", "new delhi", "bangalore", "bengaluru", "chennai", "hyderabad", "pune", "kolkata", "gurgaon"},
	AE: {"uae", "united arab emirates", "dubai", "abu dhabi", "sharjah", "emirates"},
	SG: {"singapore"},
	GB: {"uk", "united kingdom", "england", "london", "britain", "great britain", "scotland", "edinburgh", "manchester"},
	US: {"usa", "united states", "america", "new york", "miami", "san francisco", "los angeles", "texas", "florida"},
	PT: {"portugal", "lisbon", "lisboa", "porto", "algarve", "cascais"},
	AU: {"australia", "sydney", "melbourne", "brisbane", "perth"},
	CH: {"switzerland", "zurich", "geneva", "zug", "lugano"},
	FR: {"france", "paris", "nice", "lyon", "cote d'azur"},
	JP: {"japan", "tokyo", "osaka", "kyoto"},
	ES: {"spain", "madrid", "barcelona", "marbella", "valencia"},
	GR: {"greece", "athens"},
}

// codeOrder fixes the alias scan order so resolution is deterministic even
// for names that overlap multiple jurisdictions.
var codeOrder = []Code{IN, AE, SG, GB, US, PT, AU, CH, FR, JP, ES, GR}

// Resolve maps a free-text jurisdiction name to a country code. Matching is
// case-insensitive and bidirectional-substring: "Dubai Marina" resolves to AE
// and "UK" resolves against "united kingdom".
func Resolve(name string) (Code, bool) {
	n := fold(name)
	if n == "" {
		return "", false
	}
	for _, code := range codeOrder {
		for _, a := range aliases[code] {
			if contains(n, a) {
				return code, true
			}
		}
	}
	return "", false
}

// Matches reports whether two free-text jurisdiction names refer to the same
// place: identical after folding, one contains the other, or both resolve to
// the same country code.
func Matches(a, b string) bool {
	fa, fb := fold(a), fold(b)
	if fa == "" || fb == "" {
		return false
	}
	if strings.Contains(fa, fb) || strings.Contains(fb, fa) {
		return true
	}
	ca, okA := Resolve(a)
	cb, okB := Resolve(b)
	return okA && okB && ca == cb
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// contains treats short names (codes like "uk", "in") as whole-string
// matches only, so "ukraine" does not resolve to GB nor "in" to Singapore.
func contains(input, alias string) bool {
	if len(alias) <= 3 || len(input) <= 3 {
		return input == alias
	}
	return strings.Contains(input, alias) || strings.Contains(alias, input)
}
