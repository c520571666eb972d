/*
Package codec splits SWIFT field values into components and puts them back
together.

The engine is generic: it knows nothing about individual field types.
A layout's Grammar selects one of a closed set of strategies and carries the
data the strategy needs (widths, segments, markers, line counts). Parse and
Serialize dispatch on the strategy.

Parsing is lenient. It never returns an error and never panics on malformed
input; a component which cannot be cut from a value is left null. Serializing
is the inverse of parsing for every value the parser is able to produce,
with the exception of layouts flagged with NoSerializer.

BSD License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package codec

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/swiftmt"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Parse splits a value into components, according to the grammar of layout l.
// An empty value results in all components being null.
func Parse(l *swiftmt.Layout, value string) *swiftmt.Components {
	c := swiftmt.NewComponents(l.ComponentCount())
	ParseInto(l, value, c)
	return c
}

// ParseInto splits a value into an existing list of components. All previous
// values of c are overwritten. c must have been created for layout l.
func ParseInto(l *swiftmt.Layout, value string, c *swiftmt.Components) {
	if c.Len() != l.ComponentCount() {
		panic(fmt.Errorf("%w: %d components cannot hold a value of field %s", swiftmt.ErrInvalidArgument,
			c.Len(), l.Name))
	}
	c.Reset()
	if value == "" {
		return
	}
	g := l.Grammar
	switch g.Strategy {
	case swiftmt.FixedWidth:
		parseFixed(g.Widths, value, c, 1)
	case swiftmt.Delimited:
		w := borrowWalker(value, c)
		w.segments(g.Segments)
		w.release()
	case swiftmt.AlphaNumeric:
		parseAlphaNumeric(g, value, c)
	case swiftmt.Narrative:
		parseNarrative(l.Name, g, value, c)
	case swiftmt.Repeating:
		parseRepeating(g.Delim, value, c)
	default:
		CT().Errorf("layout %s has no splitting strategy", l.Name)
	}
	CT().Debugf("%s: %q => %v", l.Name, value, c)
}

// Serialize renders the components c into the wire format of layout l.
// For layouts flagged with NoSerializer, Serialize returns ErrNoSerializer.
// If all components are null, the result is the empty string.
func Serialize(l *swiftmt.Layout, c *swiftmt.Components) (string, error) {
	if l.NoSerializer {
		return "", fmt.Errorf("%w: %s", swiftmt.ErrNoSerializer, l.Name)
	}
	if c.Len() != l.ComponentCount() {
		return "", fmt.Errorf("%w: %d components do not fit field %s", swiftmt.ErrInvalidArgument,
			c.Len(), l.Name)
	}
	var b strings.Builder
	g := l.Grammar
	switch g.Strategy {
	case swiftmt.FixedWidth:
		serializeFixed(&b, c, 1, len(g.Widths))
	case swiftmt.Delimited:
		serializeSegments(&b, g.Segments, c, 1, c.Len())
	case swiftmt.AlphaNumeric:
		serializeFixed(&b, c, 1, c.Len())
	case swiftmt.Narrative:
		serializeNarrative(&b, g, c)
	case swiftmt.Repeating:
		serializeRepeating(&b, g.Delim, c)
	default:
		return "", fmt.Errorf("%w: layout %s has no splitting strategy", swiftmt.ErrInvalidArgument, l.Name)
	}
	return b.String(), nil
}
