package swiftmt

import "fmt"

// Kind is the semantic type of a component, denoted by a single letter in a
// layout's types pattern.
type Kind byte

// Component kinds. The letters are the ones used in types patterns, e.g.
// "SDTNW" for a qualifier followed by a date, a time, decimals and an offset.
const (
	String   Kind = 'S' // plain string
	Number   Kind = 'N' // integer-like number
	Amount   Kind = 'I' // decimal amount with comma as decimal separator
	Date     Kind = 'D' // calendar date, DATE2 or DATE4
	Time     Kind = 'T' // time of day, TIME2 or TIME3
	Offset   Kind = 'W' // signed time offset, e.g. "N0230"
	Currency Kind = 'C' // ISO 4217 currency code
	BIC      Kind = 'B' // business identifier code
	Code     Kind = 'c' // character code
)

// IsValid checks if k is one of the known kind letters.
func (k Kind) IsValid() bool {
	switch k {
	case String, Number, Amount, Date, Time, Offset, Currency, BIC, Code:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Amount:
		return "amount"
	case Date:
		return "date"
	case Time:
		return "time"
	case Offset:
		return "offset"
	case Currency:
		return "currency"
	case BIC:
		return "bic"
	case Code:
		return "code"
	}
	return fmt.Sprintf("kind(%q)", byte(k))
}

// KindsOf splits a types pattern like "SDTNW" into kinds. It returns an error
// for letters outside the kind alphabet.
func KindsOf(pattern string) ([]Kind, error) {
	kinds := make([]Kind, len(pattern))
	for i := 0; i < len(pattern); i++ {
		k := Kind(pattern[i])
		if !k.IsValid() {
			return nil, fmt.Errorf("%w: illegal kind %q in types pattern %q", ErrInvalidArgument,
				pattern[i], pattern)
		}
		kinds[i] = k
	}
	return kinds, nil
}

// --- Date and time grammars ------------------------------------------------

// DateGrammar is the fixed-width grammar of date components of a layout.
type DateGrammar int8

// Date grammars
const (
	NoDate DateGrammar = iota
	DATE2              // YYMMDD
	DATE4              // YYYYMMDD
)

// Layout returns the Go time layout of a date grammar.
func (g DateGrammar) Layout() string {
	switch g {
	case DATE2:
		return "060102"
	case DATE4:
		return "20060102"
	}
	return ""
}

// Width is the number of characters of a date in grammar g.
func (g DateGrammar) Width() int {
	return len(g.Layout())
}

func (g DateGrammar) String() string {
	switch g {
	case DATE2:
		return "DATE2"
	case DATE4:
		return "DATE4"
	}
	return "no-date"
}

// TimeGrammar is the fixed-width grammar of time components of a layout.
type TimeGrammar int8

// Time grammars
const (
	NoTime TimeGrammar = iota
	TIME2              // HHmm
	TIME3              // HHmmss
)

// Layout returns the Go time layout of a time grammar.
func (g TimeGrammar) Layout() string {
	switch g {
	case TIME2:
		return "1504"
	case TIME3:
		return "150405"
	}
	return ""
}

// Width is the number of characters of a time in grammar g.
func (g TimeGrammar) Width() int {
	return len(g.Layout())
}

func (g TimeGrammar) String() string {
	switch g {
	case TIME2:
		return "TIME2"
	case TIME3:
		return "TIME3"
	}
	return "no-time"
}

// --- Capabilities ----------------------------------------------------------

// Capability is a set of traits of a layout. Clients use it to find out
// which typed accessors make sense for a field.
type Capability uint8

// Capabilities of layouts
const (
	DateBearing Capability = 1 << iota
	AmountBearing
	CurrencyBearing
	BICBearing
	GenericQualified
	MultiLine
)

// Has checks if all capabilities of o are contained in c.
func (c Capability) Has(o Capability) bool {
	return c&o == o
}

func (c Capability) String() string {
	names := [...]string{"date", "amount", "currency", "bic", "generic", "multi-line"}
	s := "{"
	for i, n := range names {
		if c&(1<<uint(i)) != 0 {
			if len(s) > 1 {
				s += ","
			}
			s += n
		}
	}
	return s + "}"
}
