/*
Package pattern checks SWIFT format notation.

Layouts carry a validator pattern in the notation of the SWIFT user handbook,
e.g. ":4!c//8!n6!n[,3n][/[N]2!n[2!n]]". Package pattern tells if such a
pattern is well-formed: every length is followed by a character set, groups
in brackets are balanced and non-empty.

Patterns are tokenized by a Scanner and parsed by an Earley parser for the
grammar

   Pattern  →  Items
   Items    →  Items Item  |  Item
   Item     →  FORMAT  |  LITERAL  |  ':'  |  '/'  |  ','  |  '$'  |  '[' Items ']'

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
package pattern

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrMalformed is returned for patterns which are not well-formed.
var ErrMalformed = errors.New("pattern: malformed format notation")

// --- Initialization --------------------------------------------------------

var globalPatternGrammar *lr.LRAnalysis

var initGrammar sync.Once

func getParser() *earley.Parser {
	initGrammar.Do(func() {
		globalPatternGrammar = NewPatternGrammar()
	})
	parser := earley.NewParser(globalPatternGrammar, earley.GenerateTree(false))
	if parser == nil {
		panic("could not create format notation parser")
	}
	return parser
}

// NewPatternGrammar creates the grammar of the format notation. It is usually
// not called by clients directly, but rather used transparently with a call
// to Check.
func NewPatternGrammar() *lr.LRAnalysis {
	b := lr.NewGrammarBuilder("SWIFT format notation")
	b.LHS("Pattern").N("Items").End()
	b.LHS("Items").N("Items").N("Item").End()
	b.LHS("Items").N("Item").End()
	b.LHS("Item").T(tok(FORMAT)).End()
	b.LHS("Item").T(tok(LITERAL)).End()
	b.LHS("Item").T(tok(COLON)).End()
	b.LHS("Item").T(tok(SLASH)).End()
	b.LHS("Item").T(tok(COMMA)).End()
	b.LHS("Item").T(tok(NEWLINE)).End()
	b.LHS("Item").T(tok(LBRACK)).N("Items").T(tok(RBRACK)).End() // optional group
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return lr.Analysis(g)
}

func tok(t int) (string, int) {
	return TokenString(t), t
}

// Check tests if a pattern in SWIFT format notation is well-formed.
// It returns an error wrapping ErrMalformed if it is not.
func Check(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty pattern", ErrMalformed)
	}
	sc := NewScanner(p)
	parser := getParser()
	accept, err := parser.Parse(sc, nil)
	if sc.Err() != nil {
		T().Errorf("pattern %q: %v", p, sc.Err())
		return sc.Err()
	}
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrMalformed, p, err)
	}
	if !accept {
		T().Debugf("pattern %q not accepted after %d tokens", p, sc.tokens)
		return fmt.Errorf("%w: %q", ErrMalformed, p)
	}
	return nil
}
