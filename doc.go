/*
Package swiftmt is about SWIFT MT fields and their component layouts.

Description

A SWIFT MT message is a sequence of tags, each carrying a single text value.
Every tag name ("20", "32A", "98E", …) denotes a field type with a fixed
layout: the value is made up of a small number of subfields, called
components, which are separated by markers like ':', '//', '/' or ',',
cut at fixed widths, or told apart by the boundary between letters and
digits. Some fields span several lines of narrative text, a few are plain
repetitions of a group.

Field types are numerous, but there are only a handful of ways their values
are put together. This package therefore does not model every field type as
code. It models a field type as data, a Layout, and leaves it to sub-package
codec to split a value into Components and to put it back together.

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

Contents

Base package swiftmt holds the types every other package works on:

   Components   the ordered list of nullable component values of one field
   Layout       the immutable description of a field type
   Grammar      how a layout's value is split, one of a closed set of strategies
   Kind         the semantic type letter of a component (S, N, I, D, T, W, C, B, c)

Sub-packages:

   tokenize   primitives to cut tokens out of a value
   codec      the parse and serialize engines
   convert    typed conversions of component values (amounts, dates, currencies, …)
   display    locale-aware display of component values
   pattern    well-formedness of SWIFT format notation ("4!c//8!n6!n")
   field      field instances, the catalogue of layouts, JSON

Splitting Strategies

Every layout uses exactly one strategy, fixed at the time the catalogue is
generated:

   FixedWidth     successive slices of fixed length
   Delimited      segments cut at literal markers, possibly with embedded
                  fixed widths or letter/digit boundaries
   AlphaNumeric   a run of letters followed by a number, e.g. "USD1234,56"
   Narrative      a head line followed by lines of free text
   Repeating      a group repeated with a delimiter, overflow going to the
                  last component

Parsing never fails on malformed input. Components which cannot be cut from
a value are left empty (null).
*/
package swiftmt

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrInvalidArgument flags an invalid argument, e.g. a component index out of
// range or a tag not matching a field type.
// ErrUnknownField is returned for field names without a layout.
// ErrNoSerializer is returned for layouts which can be parsed, but for which no
// serialization is defined.
var (
	ErrInvalidArgument = errors.New("swiftmt: invalid argument")
	ErrUnknownField    = errors.New("swiftmt: unknown field type")
	ErrNoSerializer    = errors.New("swiftmt: no serializer defined for layout")
)

// CRLF is the line separator of the wire format.
const CRLF = "\r\n"
