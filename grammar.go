package swiftmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Strategy is one of a closed set of ways to split a field value into
// components.
type Strategy int8

// Splitting strategies. Every layout uses exactly one of them.
const (
	NoStrategy   Strategy = iota
	FixedWidth            // successive fixed-length slices
	Delimited             // segments cut at literal markers
	AlphaNumeric          // letters followed by a number, e.g. "USD1234,56"
	Narrative             // a head line followed by lines of text
	Repeating             // a group repeated with a delimiter
)

func (s Strategy) String() string {
	switch s {
	case FixedWidth:
		return "fixed"
	case Delimited:
		return "delimited"
	case AlphaNumeric:
		return "alnum"
	case Narrative:
		return "narrative"
	case Repeating:
		return "repeating"
	}
	return "no-strategy"
}

// StrategyFromString returns the strategy for a name as returned by
// Strategy.String().
func StrategyFromString(name string) (Strategy, bool) {
	for s := FixedWidth; s <= Repeating; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return NoStrategy, false
}

// Segment describes how one or more components are cut from the input
// of a delimited layout.
type Segment struct {
	Sep       string // literal marker preceding the segment, may be empty
	Width     int    // fixed width; 0 = up to the next marker or the end of input
	Span      int    // number of components covered; 2 or 3 split at the letter/digit boundary
	Bracketed bool   // the marker is part of an optional group and omitted with it
	FromEnd   bool   // the segment is anchored to the end of the input
}

// Arity is the number of components a segment covers.
func (seg Segment) Arity() int {
	if seg.Span < 1 {
		return 1
	}
	return seg.Span
}

func (seg Segment) String() string {
	var b strings.Builder
	if seg.Bracketed {
		b.WriteByte('[')
	}
	b.WriteString(strings.ReplaceAll(seg.Sep, " ", "_"))
	if seg.Width > 0 {
		fmt.Fprintf(&b, "%d", seg.Width)
	} else {
		b.WriteByte('*')
	}
	if seg.Span > 1 {
		fmt.Fprintf(&b, "x%d", seg.Span)
	}
	if seg.FromEnd {
		b.WriteByte('<')
	}
	if seg.Bracketed {
		b.WriteByte(']')
	}
	return b.String()
}

// Grammar is the data part of a splitting strategy. Which of the fields are
// meaningful depends on the strategy:
//
//   FixedWidth     Widths (0 = rest of input)
//   Delimited      Segments
//   AlphaNumeric   Widths (fixed-width prefix components), Span
//   Narrative      Segments (head line, may be empty), Marker, Lines
//   Repeating      Delim
//
type Grammar struct {
	Strategy Strategy
	Widths   []int
	Segments []Segment
	Span     int
	Marker   string
	Lines    int
	Delim    string
}

// Arity returns the number of components a grammar fills, or -1 if the
// grammar may fill any number of components (Repeating).
func (g Grammar) Arity() int {
	switch g.Strategy {
	case FixedWidth:
		return len(g.Widths)
	case Delimited:
		return segmentsArity(g.Segments)
	case AlphaNumeric:
		return len(g.Widths) + g.Span
	case Narrative:
		return segmentsArity(g.Segments) + g.Lines
	case Repeating:
		return -1
	}
	return 0
}

func segmentsArity(segs []Segment) int {
	n := 0
	for _, seg := range segs {
		n += seg.Arity()
	}
	return n
}

// Check tests a grammar for consistency. It will not detect every ambiguity,
// but catches the ones which would make parsing guess.
func (g Grammar) Check() error {
	switch g.Strategy {
	case FixedWidth:
		if len(g.Widths) == 0 {
			return fmt.Errorf("%w: fixed-width grammar without widths", ErrInvalidArgument)
		}
		for i, w := range g.Widths {
			if w < 0 || (w == 0 && i != len(g.Widths)-1) {
				return fmt.Errorf("%w: illegal width %d at #%d", ErrInvalidArgument, w, i+1)
			}
		}
	case Delimited:
		if len(g.Segments) == 0 {
			return fmt.Errorf("%w: delimited grammar without segments", ErrInvalidArgument)
		}
		return checkSegments(g.Segments)
	case AlphaNumeric:
		if g.Span != 2 && g.Span != 3 {
			return fmt.Errorf("%w: letter/digit span must be 2 or 3, is %d", ErrInvalidArgument, g.Span)
		}
		for i, w := range g.Widths {
			if w <= 0 {
				return fmt.Errorf("%w: illegal width %d at #%d", ErrInvalidArgument, w, i+1)
			}
		}
	case Narrative:
		if g.Lines <= 0 {
			return fmt.Errorf("%w: narrative grammar without lines", ErrInvalidArgument)
		}
		if len(g.Segments) > 0 {
			return checkSegments(g.Segments)
		}
	case Repeating:
		if g.Delim == "" {
			return fmt.Errorf("%w: repeating grammar without delimiter", ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: grammar has no strategy", ErrInvalidArgument)
	}
	return nil
}

func checkSegments(segs []Segment) error {
	fromEnd := false
	for i, seg := range segs {
		if seg.Span < 0 || seg.Span > 3 {
			return fmt.Errorf("%w: segment #%d has illegal span %d", ErrInvalidArgument, i+1, seg.Span)
		}
		if seg.Width < 0 {
			return fmt.Errorf("%w: segment #%d has negative width", ErrInvalidArgument, i+1)
		}
		if seg.FromEnd {
			if seg.Sep == "" {
				return fmt.Errorf("%w: segment #%d is anchored to the end, but has no marker",
					ErrInvalidArgument, i+1)
			}
			fromEnd = true
		} else if fromEnd {
			return fmt.Errorf("%w: segment #%d follows a segment anchored to the end",
				ErrInvalidArgument, i+1)
		}
		if i > 0 && seg.Sep == "" && segs[i-1].Width == 0 {
			return fmt.Errorf("%w: segments #%d and #%d cannot be told apart", ErrInvalidArgument, i, i+1)
		}
	}
	return nil
}

func (g Grammar) String() string {
	var b strings.Builder
	b.WriteString(g.Strategy.String())
	switch g.Strategy {
	case FixedWidth, AlphaNumeric:
		for _, w := range g.Widths {
			if w == 0 {
				b.WriteString(" *")
			} else {
				fmt.Fprintf(&b, " %d", w)
			}
		}
		if g.Strategy == AlphaNumeric {
			fmt.Fprintf(&b, " x%d", g.Span)
		}
	case Delimited:
		for _, seg := range g.Segments {
			b.WriteByte(' ')
			b.WriteString(seg.String())
		}
	case Narrative:
		if g.Marker != "" {
			fmt.Fprintf(&b, " %q", g.Marker)
		}
		for _, seg := range g.Segments {
			b.WriteByte(' ')
			b.WriteString(seg.String())
		}
		fmt.Fprintf(&b, " +%d", g.Lines)
	case Repeating:
		fmt.Fprintf(&b, " %q", g.Delim)
	}
	return b.String()
}

// ParseGrammar reads a grammar in the notation of Grammar.String(), e.g.
//
//   fixed 6 3 *
//   alnum 3 3 x3
//   delimited :* //8 6 [,*] [/*]
//   narrative "/" [/1] [/*] +1
//   repeating "/"
//
// Markers of narrative and repeating grammars are quoted Go strings and must
// not contain spaces.
func ParseGrammar(s string) (Grammar, error) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return Grammar{}, fmt.Errorf("%w: empty grammar", ErrInvalidArgument)
	}
	strategy, ok := StrategyFromString(words[0])
	if !ok {
		return Grammar{}, fmt.Errorf("%w: unknown strategy %q", ErrInvalidArgument, words[0])
	}
	g := Grammar{Strategy: strategy}
	words = words[1:]
	var err error
	switch strategy {
	case FixedWidth, AlphaNumeric:
		if strategy == AlphaNumeric {
			if len(words) == 0 || !strings.HasPrefix(words[len(words)-1], "x") {
				return g, fmt.Errorf("%w: grammar %q lacks a letter/digit span", ErrInvalidArgument, s)
			}
			if g.Span, err = strconv.Atoi(words[len(words)-1][1:]); err != nil {
				return g, fmt.Errorf("%w: illegal span in %q", ErrInvalidArgument, s)
			}
			words = words[:len(words)-1]
		}
		for _, w := range words {
			width := 0
			if w != "*" {
				if width, err = strconv.Atoi(w); err != nil {
					return g, fmt.Errorf("%w: illegal width %q in %q", ErrInvalidArgument, w, s)
				}
			}
			g.Widths = append(g.Widths, width)
		}
	case Delimited:
		g.Segments, err = parseSegments(words)
	case Narrative:
		if len(words) == 0 || !strings.HasPrefix(words[len(words)-1], "+") {
			return g, fmt.Errorf("%w: grammar %q lacks a line count", ErrInvalidArgument, s)
		}
		if g.Lines, err = strconv.Atoi(words[len(words)-1][1:]); err != nil {
			return g, fmt.Errorf("%w: illegal line count in %q", ErrInvalidArgument, s)
		}
		words = words[:len(words)-1]
		if len(words) > 0 && strings.HasPrefix(words[0], `"`) {
			if g.Marker, err = strconv.Unquote(words[0]); err != nil {
				return g, fmt.Errorf("%w: illegal marker in %q", ErrInvalidArgument, s)
			}
			words = words[1:]
		}
		g.Segments, err = parseSegments(words)
	case Repeating:
		if len(words) != 1 {
			return g, fmt.Errorf("%w: grammar %q needs exactly one delimiter", ErrInvalidArgument, s)
		}
		if g.Delim, err = strconv.Unquote(words[0]); err != nil {
			return g, fmt.Errorf("%w: illegal delimiter in %q", ErrInvalidArgument, s)
		}
	}
	return g, err
}

func parseSegments(words []string) ([]Segment, error) {
	var segs []Segment
	for _, w := range words {
		seg, err := parseSegment(w)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// parseSegment reads the notation of Segment.String().
func parseSegment(w string) (Segment, error) {
	var seg Segment
	s := w
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return seg, fmt.Errorf("%w: unbalanced brackets in segment %q", ErrInvalidArgument, w)
		}
		seg.Bracketed = true
		s = s[1 : len(s)-1]
	}
	if strings.HasSuffix(s, "<") {
		seg.FromEnd = true
		s = s[:len(s)-1]
	}
	if i := strings.LastIndexByte(s, 'x'); i >= 0 {
		span, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return seg, fmt.Errorf("%w: illegal span in segment %q", ErrInvalidArgument, w)
		}
		seg.Span = span
		s = s[:i]
	}
	switch {
	case strings.HasSuffix(s, "*"):
		s = s[:len(s)-1]
	default:
		i := len(s)
		for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
			i--
		}
		if i == len(s) {
			return seg, fmt.Errorf("%w: segment %q has no width", ErrInvalidArgument, w)
		}
		seg.Width, _ = strconv.Atoi(s[i:])
		s = s[:i]
	}
	seg.Sep = strings.ReplaceAll(s, "_", " ")
	return seg, nil
}
