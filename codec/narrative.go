package codec

import (
	"strings"

	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/tokenize"
)

// parseNarrative parses multi-line values. The first line is split into
// segments if it starts with the grammar's marker (or unconditionally if
// there is no marker). Every following line goes into a component of its own,
// up to the grammar's line count. Lines exceeding the line count are dropped.
func parseNarrative(name string, g swiftmt.Grammar, value string, c *swiftmt.Components) {
	lines := tokenize.Lines(value)
	head := arity(g.Segments)
	if head > 0 && len(lines) > 0 && strings.HasPrefix(lines[0], g.Marker) {
		w := borrowWalker(lines[0], c)
		w.segments(g.Segments)
		w.release()
		lines = lines[1:]
	}
	for i, line := range lines {
		if i >= g.Lines {
			CT().Infof("%s: dropping %d lines exceeding the maximum of %d", name, len(lines)-g.Lines, g.Lines)
			break
		}
		c.Set(head+1+i, line)
	}
}

// serializeNarrative writes the head line, if any, followed by all non-null
// lines, separated by CRLF. A head line always starts with the grammar's
// marker. If component #1 is null and its place does not produce the marker,
// the marker is written in its place.
func serializeNarrative(b *strings.Builder, g swiftmt.Grammar, c *swiftmt.Components) {
	head := arity(g.Segments)
	if head > 0 {
		var line strings.Builder
		serializeSegments(&line, g.Segments, c, 1, head)
		if line.Len() > 0 && !c.IsSet(1) && !strings.HasPrefix(line.String(), g.Marker) {
			b.WriteString(g.Marker)
		}
		b.WriteString(line.String())
	}
	for i := head + 1; i <= c.Len(); i++ {
		if !c.IsSet(i) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(swiftmt.CRLF)
		}
		b.WriteString(c.Value(i))
	}
}
