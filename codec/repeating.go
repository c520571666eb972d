package codec

import (
	"strings"

	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/tokenize"
)

// parseRepeating splits a value at every delimiter. Tokens are stored 1:1 into
// components; tokens exceeding the number of components are stored into the
// last component, together with the token in its place and the delimiters
// between them.
func parseRepeating(delim string, value string, c *swiftmt.Components) {
	n := c.Len()
	if count := tokenize.Count(value, delim); count > n {
		CT().Debugf("%d tokens for %d components, last component absorbs overflow", count, n)
	}
	for i := 1; i < n; i++ {
		token, ok := tokenize.Nth(value, delim, i)
		if !ok {
			return
		}
		c.Set(i, token)
	}
	if rest, ok := tokenize.Rest(value, delim, n); ok {
		c.Set(n, rest)
	}
}

// serializeRepeating joins the components up to the last non-null one with
// the delimiter.
func serializeRepeating(b *strings.Builder, delim string, c *swiftmt.Components) {
	last := 0
	for i := c.Len(); i > 0; i-- {
		if c.IsSet(i) {
			last = i
			break
		}
	}
	for i := 1; i <= last; i++ {
		if i > 1 {
			b.WriteString(delim)
		}
		b.WriteString(c.Value(i))
	}
}
