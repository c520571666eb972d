/*
Package fielddef reads field definition files.

A field definition file lists one layout per line, with fields separated by
semicolons. Comments start with '#' and run to the end of the line.

   # name; grammar; types; labels; optional; flags; parser pattern; validator pattern
   98A; delimited :* //*; SD; Qualifier|Date; ; generic DATE4; :S//<DATE4>; :4!c//8!n

Fields are

   1  tag name
   2  grammar, in the notation of swiftmt.Grammar.String()
   3  types pattern, one kind letter per component
   4  labels, separated by '|'; aliases follow a label, each prefixed by '~';
      an empty field denotes unlabeled components
   5  optional components, as indices or ranges ("3 4", "2-6")
   6  flags: DATE2, DATE4, TIME2, TIME3, generic, noserializer, cq=N, dss=N
   7  parser pattern
   8  validator pattern

Lines are scanned by a chain of step functions, modeled after the scanner of
Unicode Character Database files.
*/
package fielddef

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/tokenize"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FieldCount is the number of fields of a definition line.
const FieldCount = 8

// Token is the result of scanning a single line of a definition file.
type Token struct {
	LineNo  int      // line number, starting at 1
	Fields  []string // trimmed fields of the line
	Comment string   // rest-of-line comment, if any
	Error   error    // error condition, if any
}

func newToken(line int) *Token {
	return &Token{LineNo: line, Fields: []string{}}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#v]", token.LineNo, token.Fields)
}

// Field gets field #i (1…n) of a definition line. Missing fields are "".
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// --- Line level scanner ----------------------------------------------------

// scanner operates by calling step functions in a chain. Each step inspects
// the current line and branches to a subsequent step, or returns nil to
// accept the line.
type scanner struct {
	lines     *bufio.Scanner
	lineNo    int
	text      string      // rest of the current line
	step      scannerStep // next step to execute
	LastError error       // last error, if any
	Token     *Token      // last token produced
}

type scannerStep func(*Token) (*Token, scannerStep)

func newScanner(r io.Reader) (*scanner, error) {
	if r == nil {
		return nil, errors.New("no input present")
	}
	return &scanner{lines: bufio.NewScanner(r)}, nil
}

// Parse iterates over each definition line of r and calls f on it. Blank
// lines and comment lines are skipped. Parse stops at the first malformed
// line.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := newScanner(r)
	if err != nil {
		return err
	}
	for sc.next() {
		f(sc.Token)
	}
	return sc.LastError
}

func (sc *scanner) next() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		sc.text = sc.lines.Text()
		sc.Token = newToken(sc.lineNo)
		sc.step = sc.scanLine
		for sc.step != nil {
			sc.Token, sc.step = sc.step(sc.Token)
		}
		if sc.Token == nil {
			continue
		}
		if sc.Token.Error != nil {
			sc.LastError = sc.Token.Error
			return false
		}
		T().Debugf("fielddef: %s", sc.Token)
		return true
	}
	if err := sc.lines.Err(); err != nil && sc.LastError == nil {
		sc.LastError = err
	}
	return false
}

// scanLine strips a comment. Lines without content are dropped.
//
//    line:
//      -> blank:  drop
//      -> other:  scanFields
//
func (sc *scanner) scanLine(token *Token) (*Token, scannerStep) {
	if body, comment, found := tokenize.Cut(sc.text, "#"); found {
		token.Comment = strings.TrimSpace(comment)
		sc.text = body
	}
	if strings.TrimSpace(sc.text) == "" {
		return nil, nil
	}
	return token, sc.scanFields
}

func (sc *scanner) scanFields(token *Token) (*Token, scannerStep) {
	for _, f := range strings.Split(sc.text, ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	if len(token.Fields) != FieldCount {
		token.Error = fmt.Errorf("line %d: expected %d fields, have %d", token.LineNo,
			FieldCount, len(token.Fields))
		return token, nil
	}
	return token, sc.scanName
}

func (sc *scanner) scanName(token *Token) (*Token, scannerStep) {
	name := token.Field(1)
	if name == "" {
		token.Error = fmt.Errorf("line %d: missing tag name", token.LineNo)
		return token, nil
	}
	for _, r := range name {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'Z') {
			token.Error = fmt.Errorf("line %d: illegal tag name %q", token.LineNo, name)
			return token, nil
		}
	}
	return token, nil
}

// --- Building layouts ------------------------------------------------------

// Build creates a layout from a definition line and checks it for
// consistency.
func Build(token *Token) (*swiftmt.Layout, error) {
	g, err := swiftmt.ParseGrammar(token.Field(2))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", token.LineNo, err)
	}
	kinds, err := swiftmt.KindsOf(token.Field(3))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", token.LineNo, err)
	}
	l := &swiftmt.Layout{
		Name:             token.Field(1),
		Components:       make([]swiftmt.ComponentSpec, len(kinds)),
		Grammar:          g,
		ParserPattern:    token.Field(7),
		ValidatorPattern: token.Field(8),
	}
	for i, k := range kinds {
		l.Components[i].Kind = k
	}
	if labels := token.Field(4); labels != "" {
		parts := strings.Split(labels, "|")
		if len(parts) != len(kinds) {
			return nil, fmt.Errorf("line %d: %d labels for %d components", token.LineNo,
				len(parts), len(kinds))
		}
		for i, p := range parts {
			names := strings.Split(p, "~")
			l.Components[i].Label = strings.TrimSpace(names[0])
			for _, a := range names[1:] {
				l.Components[i].Aliases = append(l.Components[i].Aliases, strings.TrimSpace(a))
			}
		}
	}
	opt, err := Indices(token.Field(5))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", token.LineNo, err)
	}
	for _, i := range opt {
		if i < 1 || i > len(kinds) {
			return nil, fmt.Errorf("line %d: optional component %d out of range", token.LineNo, i)
		}
		l.Components[i-1].Optional = true
	}
	if err = setFlags(l, token.Field(6)); err != nil {
		return nil, fmt.Errorf("line %d: %w", token.LineNo, err)
	}
	if err = l.Check(); err != nil {
		return nil, fmt.Errorf("line %d: %w", token.LineNo, err)
	}
	return l, nil
}

// Indices reads a space separated list of indices and ranges, e.g. "1 3-5".
func Indices(s string) ([]int, error) {
	var indices []int
	for _, w := range strings.Fields(s) {
		from, to, isRange := tokenize.Cut(w, "-")
		a, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("illegal index %q", w)
		}
		b := a
		if isRange {
			if b, err = strconv.Atoi(to); err != nil || b < a {
				return nil, fmt.Errorf("illegal range %q", w)
			}
		}
		for i := a; i <= b; i++ {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

func setFlags(l *swiftmt.Layout, flags string) error {
	for _, f := range strings.Fields(flags) {
		key, value, hasValue := tokenize.Cut(f, "=")
		switch key {
		case "DATE2":
			l.Dates = swiftmt.DATE2
		case "DATE4":
			l.Dates = swiftmt.DATE4
		case "TIME2":
			l.Times = swiftmt.TIME2
		case "TIME3":
			l.Times = swiftmt.TIME3
		case "generic":
			l.Generic = true
		case "noserializer":
			l.NoSerializer = true
		case "cq", "dss":
			n, err := strconv.Atoi(value)
			if !hasValue || err != nil {
				return fmt.Errorf("flag %q needs an index", f)
			}
			if key == "cq" {
				l.CondQualifier = n
			} else {
				l.DSS = n
			}
		default:
			return fmt.Errorf("unknown flag %q", f)
		}
	}
	return nil
}

// Layouts reads all definitions of r and builds a layout for each of them.
func Layouts(r io.Reader) ([]*swiftmt.Layout, error) {
	var layouts []*swiftmt.Layout
	var buildErr error
	err := Parse(r, func(token *Token) {
		if buildErr != nil {
			return
		}
		l, err := Build(token)
		if err != nil {
			buildErr = err
			return
		}
		layouts = append(layouts, l)
	})
	if err != nil {
		return nil, err
	}
	return layouts, buildErr
}
