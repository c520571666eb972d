package pattern

import (
	"fmt"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// Token values of the format notation. Values are chosen to not collide with
// the special token values of package scanner.
const (
	FORMAT  int = iota + 10 // length and character set, e.g. "4!c", "15d", "4*35x"
	LITERAL                 // uppercase literal text, e.g. "N", "ISIN"
	LBRACK                  // '[' opens an optional group
	RBRACK                  // ']' closes an optional group
	COLON                   // ':'
	SLASH                   // '/'
	COMMA                   // ','
	NEWLINE                 // '$' separates lines
)

var tokenNames = [...]string{"FORMAT", "LITERAL", "[", "]", ":", "/", ",", "$"}

// TokenString returns a printable name for a token value.
func TokenString(tok int) string {
	if tok >= FORMAT && tok <= NEWLINE {
		return tokenNames[tok-FORMAT]
	}
	if tok == scanner.EOF {
		return "EOF"
	}
	return fmt.Sprintf("token(%d)", tok)
}

// Charsets lists the character set letters of the format notation:
//
//   n  digits
//   a  uppercase letters
//   c  uppercase letters and digits
//   d  decimals, with a comma as decimal separator
//   h  uppercase hexadecimal digits
//   x  SWIFT X character set
//   y  EDIFACT level A character set
//   z  SWIFT Z character set
//   e  space
//
const Charsets = "nacdhxyze"

// Scanner implements the scanner.Tokenizer interface for SWIFT format notation.
type Scanner struct {
	input  string      // the pattern to scan
	pos    int         // position in input string
	errh   func(error) // error handler, may be nil
	err    error       // first error encountered
	tokens int         // number of tokens returned
}

// NewScanner creates a scanner for a format notation pattern.
func NewScanner(p string) *Scanner {
	return &Scanner{input: p}
}

// Err returns the first lexical error the scanner encountered, if any.
func (sc *Scanner) Err() error {
	return sc.err
}

// NextToken reads the next token of the pattern. Token values are the
// lexemes. After a lexical error, the scanner reports EOF.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if sc.err != nil || sc.pos >= len(sc.input) {
		return scanner.EOF, "", uint64(sc.pos), 0
	}
	start := sc.pos
	tok := 0
	c := sc.input[sc.pos]
	switch {
	case c == '[':
		tok = LBRACK
		sc.pos++
	case c == ']':
		tok = RBRACK
		sc.pos++
	case c == ':':
		tok = COLON
		sc.pos++
	case c == '/':
		tok = SLASH
		sc.pos++
	case c == ',':
		tok = COMMA
		sc.pos++
	case c == '$':
		tok = NEWLINE
		sc.pos++
	case c >= '0' && c <= '9':
		tok = sc.format()
	case c >= 'A' && c <= 'Z':
		for sc.pos < len(sc.input) && sc.input[sc.pos] >= 'A' && sc.input[sc.pos] <= 'Z' {
			sc.pos++
		}
		tok = LITERAL
	}
	if tok == 0 {
		sc.error(fmt.Errorf("illegal character %q at position %d in %q", c, start, sc.input))
		return scanner.EOF, "", uint64(start), 0
	}
	lexeme := sc.input[start:sc.pos]
	sc.tokens++
	T().Debugf("scanned token '%s' as %s", lexeme, TokenString(tok))
	return tok, lexeme, uint64(start), uint64(len(lexeme))
}

// format scans a length and a character set: digits, optionally followed by
// '!' (fixed length) or by '*' and digits (lines times length), followed by a
// character set letter.
func (sc *Scanner) format() int {
	start := sc.pos
	sc.digits()
	if sc.pos < len(sc.input) {
		switch sc.input[sc.pos] {
		case '!':
			sc.pos++
		case '*':
			sc.pos++
			if sc.digits() == 0 {
				sc.error(fmt.Errorf("missing length after '*' in %q", sc.input[start:sc.pos]))
				return 0
			}
		}
	}
	if sc.pos >= len(sc.input) || !isCharset(sc.input[sc.pos]) {
		sc.error(fmt.Errorf("missing character set in %q at position %d", sc.input, sc.pos))
		return 0
	}
	sc.pos++
	return FORMAT
}

func (sc *Scanner) digits() int {
	n := 0
	for sc.pos < len(sc.input) && sc.input[sc.pos] >= '0' && sc.input[sc.pos] <= '9' {
		sc.pos++
		n++
	}
	return n
}

func (sc *Scanner) error(err error) {
	if sc.err != nil {
		return
	}
	sc.err = fmt.Errorf("%w: %v", ErrMalformed, err)
	if sc.errh != nil {
		sc.errh(sc.err)
	}
}

// SetErrorHandler sets an error handler function, which receives lexical
// errors.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.errh = h
}

func isCharset(c byte) bool {
	for i := 0; i < len(Charsets); i++ {
		if Charsets[i] == c {
			return true
		}
	}
	return false
}
