package config

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Company holds the listing details for one ISIN
type Company struct {
	ISIN string `yaml:"isin" json:"isin"`
	Name string `yaml:"name" json:"name"`
	Code string `yaml:"code" json:"code"` // NSE ticker, used in the Screener URL
}

// DefaultCompanies is the built-in ISIN table
var DefaultCompanies = []Company{
	{"INE002A01018", "Reliance Industries", "RELIANCE"},
	{"INE123A01016", "Tata Consultancy Services", "TCS"},
	{"INE062A01020", "Infosys", "INFY"},
	{"INE105A01010", "HDFC Bank", "HDFCBANK"},
	{"INE258A01026", "Larsen & Toubro", "LT"},
	{"INE446A01022", "Bajaj Finance", "BAJFINANCE"},
	{"INE040A01034", "ICICI Bank", "ICICIBANK"},
	{"INE467A01023", "Hindustan Unilever", "HINDUNILVR"},
	{"INE318A01028", "Maruti Suzuki", "MARUTI"},
	{"INE274A01024", "State Bank of India", "SBIN"},
}

// Registry is an immutable ISIN lookup table. Build it once at startup and
// pass it to whatever needs lookups.
type Registry struct {
	byISIN map[string]Company
}

// NewRegistry builds a registry from the given entries. Later entries replace
// earlier ones with the same ISIN.
func NewRegistry(companies ...[]Company) *Registry {
	r := &Registry{byISIN: make(map[string]Company)}
	for _, list := range companies {
		for _, c := range list {
			r.byISIN[c.ISIN] = c
		}
	}
	return r
}

// DefaultRegistry returns a registry holding DefaultCompanies
func DefaultRegistry() *Registry {
	return NewRegistry(DefaultCompanies)
}

// Lookup finds the company for an ISIN. Matching is exact and case-sensitive,
// so callers should run the input through NormalizeISIN first.
func (r *Registry) Lookup(isin string) (Company, bool) {
	c, ok := r.byISIN[isin]
	return c, ok
}

// Len returns the number of companies in the registry
func (r *Registry) Len() int {
	return len(r.byISIN)
}

// Companies returns every entry sorted by ISIN
func (r *Registry) Companies() []Company {
	out := make([]Company, 0, len(r.byISIN))
	for _, c := range r.byISIN {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISIN < out[j].ISIN })
	return out
}

// NormalizeISIN trims user input and upper-cases it
func NormalizeISIN(s string) string {
	// a Caser is stateful, so each call gets its own
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}
