package codec

import (
	"strings"

	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/tokenize"
)

// parseFixed cuts successive slices of fixed widths from value, starting at
// component #from. A width of 0 takes the rest of the value. A component is
// set only if the value reaches its slice boundary; the first slice which does
// not fit stops parsing. It returns the unconsumed rest of the value.
func parseFixed(widths []int, value string, c *swiftmt.Components, from int) string {
	pos := 0
	for i, w := range widths {
		if pos >= len(value) {
			break
		}
		if w == 0 {
			c.Set(from+i, value[pos:])
			return ""
		}
		if pos+w > len(value) {
			CT().Debugf("value %q too short for slice #%d [%d:%d]", value, from+i, pos, pos+w)
			break
		}
		c.Set(from+i, value[pos:pos+w])
		pos += w
	}
	return value[pos:]
}

// serializeFixed concatenates the non-null components #from…to.
func serializeFixed(b *strings.Builder, c *swiftmt.Components, from, to int) {
	for i := from; i <= to; i++ {
		b.WriteString(c.Value(i))
	}
}

// parseAlphaNumeric parses values consisting of fixed-width components,
// followed by a run of letters and a number, e.g. "USD1234,56".
func parseAlphaNumeric(g swiftmt.Grammar, value string, c *swiftmt.Components) {
	n := len(g.Widths)
	rest := parseFixed(g.Widths, value, c, 1)
	if n > 0 && !c.IsSet(n) {
		return // prefix did not fit
	}
	splitSpan(rest, g.Span, c, n+1)
}

// splitSpan splits a token at the boundary between its leading letters and the
// rest, starting at component #at. For a span of 3 the letters are further
// divided into a code and a currency.
func splitSpan(token string, span int, c *swiftmt.Components, at int) {
	alpha, rest := tokenize.AlphaPrefix(token)
	switch span {
	case 2:
		c.Set(at, alpha)
		c.Set(at+1, rest)
	case 3:
		code, cur := tokenize.CodeAndCurrency(alpha)
		c.Set(at, code)
		c.Set(at+1, cur)
		c.Set(at+2, rest)
	default:
		c.Set(at, token)
	}
}
