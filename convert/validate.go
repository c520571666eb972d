package convert

import (
	"fmt"
	"strings"

	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/tokenize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// CurrencyValidator decides if a well-formed currency code is acceptable.
type CurrencyValidator interface {
	ValidCurrency(code string) bool
}

// BICValidator decides if a structurally valid BIC is acceptable, e.g. by
// looking it up in a directory of institutions.
type BICValidator interface {
	ValidBIC(bic BIC) bool
}

// ISOCurrencies accepts currency codes known to the ISO 4217 tables of
// golang.org/x/text.
type ISOCurrencies struct{}

// ValidCurrency is part of interface CurrencyValidator.
func (ISOCurrencies) ValidCurrency(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}

// StructuralBICs accepts every structurally valid BIC.
type StructuralBICs struct{}

// ValidBIC is part of interface BICValidator.
func (StructuralBICs) ValidBIC(BIC) bool {
	return true
}

// Converter performs conversions which depend on external validation.
// The zero value is not usable; create converters with New.
type Converter struct {
	currencies CurrencyValidator
	bics       BICValidator
}

// Option configures a converter.
type Option func(*Converter)

// WithCurrencyValidator sets the validator for currency codes.
func WithCurrencyValidator(v CurrencyValidator) Option {
	return func(c *Converter) {
		c.currencies = v
	}
}

// WithBICValidator sets the validator for BICs.
func WithBICValidator(v BICValidator) Option {
	return func(c *Converter) {
		c.bics = v
	}
}

// New creates a converter. Without options, currencies are checked against
// ISO 4217 and BICs are checked for structure only.
func New(opts ...Option) *Converter {
	c := &Converter{
		currencies: ISOCurrencies{},
		bics:       StructuralBICs{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default is the converter used by package-level functions Currency and ParseBIC.
var Default = New()

// --- Currencies ------------------------------------------------------------

// Currency converts a currency code with the default converter.
func Currency(s string) (currency.Unit, bool) {
	return Default.Currency(s)
}

// Currency converts a three-letter uppercase currency code.
func (c *Converter) Currency(s string) (currency.Unit, bool) {
	if len(s) != 3 || strings.ToUpper(s) != s {
		return currency.Unit{}, false
	}
	if alpha, _ := tokenize.AlphaPrefix(s); alpha != s {
		return currency.Unit{}, false
	}
	if !c.currencies.ValidCurrency(s) {
		T().Debugf("currency %q rejected by validator", s)
		return currency.Unit{}, false
	}
	u, err := currency.ParseISO(s)
	if err != nil {
		// accepted by a custom validator, but unknown to ISO tables
		return currency.Unit{}, true
	}
	return u, true
}

// Scale returns the number of decimals used for amounts in currency u.
func Scale(u currency.Unit) int {
	scale, _ := currency.Standard.Rounding(u)
	return scale
}

// --- BICs ------------------------------------------------------------------

// BIC is a business identifier code, split into its parts.
type BIC struct {
	Institution string // 4 characters
	Country     string // ISO 3166 country code
	Location    string // 2 characters
	Branch      string // 3 characters, may be empty
}

// ParseBIC converts a BIC with the default converter.
func ParseBIC(s string) (BIC, bool) {
	return Default.BIC(s)
}

// BIC converts an 8 or 11 character business identifier code. The country
// part must be an ISO 3166 country.
func (c *Converter) BIC(s string) (BIC, bool) {
	if len(s) != 8 && len(s) != 11 {
		return BIC{}, false
	}
	if strings.ToUpper(s) != s || !alphaNumeric(s) {
		return BIC{}, false
	}
	bic := BIC{
		Institution: s[:4],
		Country:     s[4:6],
		Location:    s[6:8],
	}
	if len(s) == 11 {
		bic.Branch = s[8:]
	}
	if alpha, _ := tokenize.AlphaPrefix(bic.Country); alpha != bic.Country {
		return BIC{}, false
	}
	if _, ok := bic.Region(); !ok {
		T().Debugf("BIC %q has unknown country %q", s, bic.Country)
		return BIC{}, false
	}
	if !c.bics.ValidBIC(bic) {
		T().Debugf("BIC %q rejected by validator", s)
		return BIC{}, false
	}
	return bic, true
}

// Region returns the country of a BIC as a language region.
func (bic BIC) Region() (language.Region, bool) {
	r, err := language.ParseRegion(bic.Country)
	if err != nil || !r.IsCountry() {
		return language.Region{}, false
	}
	return r, true
}

// IsTest is true for BICs of test and training systems, i.e. with '0' as the
// second character of the location.
func (bic BIC) IsTest() bool {
	return len(bic.Location) == 2 && bic.Location[1] == '0'
}

// BranchCode returns the branch of a BIC, or "XXX" for the primary office.
func (bic BIC) BranchCode() string {
	if bic.Branch == "" {
		return "XXX"
	}
	return bic.Branch
}

func (bic BIC) String() string {
	return bic.Institution + bic.Country + bic.Location + bic.Branch
}

// --- Kinds -----------------------------------------------------------------

// Valid checks if a value conforms to the textual grammar of kind k. Dates
// and times are checked using grammars dg and tg. Null values are valid.
func (c *Converter) Valid(k swiftmt.Kind, value string, dg swiftmt.DateGrammar, tg swiftmt.TimeGrammar) bool {
	if value == "" {
		return true
	}
	var ok bool
	switch k {
	case swiftmt.Number:
		_, ok = Long(value)
	case swiftmt.Amount:
		_, ok = Amount(value)
	case swiftmt.Date:
		_, ok = Date(value, dg)
	case swiftmt.Time:
		_, ok = Time(value, tg)
	case swiftmt.Offset:
		_, ok = Offset(value)
	case swiftmt.Currency:
		_, ok = c.Currency(value)
	case swiftmt.BIC:
		_, ok = c.BIC(value)
	case swiftmt.String, swiftmt.Code:
		ok = true
	default:
		panic(fmt.Errorf("%w: unknown kind %q", swiftmt.ErrInvalidArgument, byte(k)))
	}
	return ok
}

func alphaNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !(b >= 'A' && b <= 'Z') && !(b >= '0' && b <= '9') {
			return false
		}
	}
	return true
}
