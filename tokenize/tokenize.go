/*
Package tokenize provides primitives to cut tokens out of SWIFT field values.

All functions in this package are total: they never panic on malformed input.
Tokens are returned together with a flag telling if the token exists at all;
an existing token may still be empty, e.g. the leading token of "/ACCT" split
at "/". Callers decide whether empty tokens count as null.

Tokens are counted 1…n from the start of a value, or from its end for the
*FromEnd functions. If a separator does not occur in a value, the whole
value is token #1 (and the last token), and there are no further tokens.
*/
package tokenize

import (
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Cut slices s around the first instance of sep, returning the text before
// and after sep. If sep does not appear in s, Cut returns s, "", false.
func Cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// CutLast slices s around the last instance of sep. If sep does not appear
// in s, CutLast returns s, "", false.
func CutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// Nth returns token #n (1…) of s split at sep.
func Nth(s, sep string, n int) (string, bool) {
	if s == "" || n < 1 {
		return "", false
	}
	for i := 1; i < n; i++ {
		var found bool
		if _, s, found = Cut(s, sep); !found {
			return "", false
		}
	}
	token, _, _ := Cut(s, sep)
	return token, true
}

// Rest returns token #n (1…) of s together with everything following it,
// separators included. Rest(s, sep, 1) is s.
//
// Rest is used for components which are positioned by their start, but
// extend to the end of a value of variable length.
func Rest(s, sep string, n int) (string, bool) {
	if s == "" || n < 1 {
		return "", false
	}
	for i := 1; i < n; i++ {
		var found bool
		if _, s, found = Cut(s, sep); !found {
			return "", false
		}
	}
	return s, true
}

// NthFromEnd returns token #n of s split at sep, counted from the end, i.e.
// NthFromEnd(s, sep, 1) is the last token, NthFromEnd(s, sep, 2) the one
// before the last.
func NthFromEnd(s, sep string, n int) (string, bool) {
	if s == "" || n < 1 {
		return "", false
	}
	for i := 1; i < n; i++ {
		var found bool
		if s, _, found = CutLast(s, sep); !found {
			return "", false
		}
	}
	if _, last, found := CutLast(s, sep); found {
		return last, true
	}
	return s, true
}

// Last returns the last token of s split at sep.
func Last(s, sep string) (string, bool) {
	return NthFromEnd(s, sep, 1)
}

// Count returns the number of tokens of s split at sep. An empty string has
// no tokens.
func Count(s, sep string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, sep) + 1
}

// --- Letters and digits ----------------------------------------------------

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// AlphaPrefix splits s into its longest leading run of ASCII letters and
// the rest.
func AlphaPrefix(s string) (alpha, rest string) {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// NumericPrefix splits s into its longest leading run of ASCII digits and
// the rest.
func NumericPrefix(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// CurrencyLen is the length of an ISO 4217 currency code.
const CurrencyLen = 3

// CodeAndCurrency splits a run of letters preceding an amount.
// A run of exactly three letters is a currency; a shorter run is a code
// without currency; from a longer run the trailing three letters are the
// currency and the letters in front of them are the code.
func CodeAndCurrency(alpha string) (code, currency string) {
	switch {
	case len(alpha) == CurrencyLen:
		return "", alpha
	case len(alpha) < CurrencyLen:
		return alpha, ""
	}
	cut := len(alpha) - CurrencyLen
	T().Debugf("splitting %q into code and currency", alpha)
	return alpha[:cut], alpha[cut:]
}

// --- Lines -----------------------------------------------------------------

// Lines splits a multi-line value into lines. Lines may be separated by
// CRLF or by a single LF. An empty value has no lines.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
