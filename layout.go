package swiftmt

import (
	"fmt"
	"strings"
	"sync"
)

// ComponentSpec describes a single component slot of a layout.
type ComponentSpec struct {
	Label    string   // human readable label; may be empty for unnamed slots
	Aliases  []string // deprecated labels, still accepted on input
	Kind     Kind     // semantic type
	Optional bool     // may the component be absent in a valid value?
}

// Layout is the description of a field type. It is the same for all field
// instances of this type and must not be modified after it has been
// registered with a catalogue.
//
// For generic fields, component 1 is a qualifier. CondQualifier and DSS are
// 1-based component indices, 0 meaning absent.
type Layout struct {
	Name             string          // tag name, e.g. "98E"
	Components       []ComponentSpec // one entry per component
	ParserPattern    string          // documentation only, e.g. ":S//<DATE4><TIME3>"
	ValidatorPattern string          // SWIFT format notation, e.g. ":4!c//8!n6!n"
	Grammar          Grammar         // how to split values
	Dates            DateGrammar     // width of D components
	Times            TimeGrammar     // width of T components
	Generic          bool            // component 1 is a qualifier
	CondQualifier    int             // index of the conditional qualifier, if any
	DSS              int             // index of the data source scheme, if any
	NoSerializer     bool            // values can be parsed but not serialized

	labelsOnce sync.Once
	labels     map[string]int
}

// ComponentCount returns the fixed number of components of the layout.
func (l *Layout) ComponentCount() int {
	return len(l.Components)
}

func (l *Layout) check(i int) {
	if i < 1 || i > len(l.Components) {
		panic(fmt.Errorf("%w: component index of field %s out of bounds, [%d] in [1:%d]",
			ErrInvalidArgument, l.Name, i, len(l.Components)))
	}
}

// IsOptional checks if component #i (1…n) is optional.
// IsOptional will panic if i is out of range.
func (l *Layout) IsOptional(i int) bool {
	l.check(i)
	return l.Components[i-1].Optional
}

// Kind returns the kind of component #i (1…n).
func (l *Layout) Kind(i int) Kind {
	l.check(i)
	return l.Components[i-1].Kind
}

// Label returns the label of component #i (1…n), possibly "".
func (l *Layout) Label(i int) string {
	l.check(i)
	return l.Components[i-1].Label
}

// TypesPattern returns one kind letter per component, e.g. "SDT".
func (l *Layout) TypesPattern() string {
	b := make([]byte, len(l.Components))
	for i, c := range l.Components {
		b[i] = byte(c.Kind)
	}
	return string(b)
}

// Labels returns the component labels in order. Unnamed slots are "".
func (l *Layout) Labels() []string {
	labels := make([]string, len(l.Components))
	for i, c := range l.Components {
		labels[i] = c.Label
	}
	return labels
}

// LabelMap maps lower-cased labels and aliases to component indices (1…n).
// The map is computed once per layout; clients must not modify it.
func (l *Layout) LabelMap() map[string]int {
	l.labelsOnce.Do(func() {
		m := make(map[string]int, 2*len(l.Components))
		for i, c := range l.Components {
			for _, a := range c.Aliases {
				m[strings.ToLower(a)] = i + 1
			}
		}
		for i, c := range l.Components {
			if c.Label != "" {
				m[strings.ToLower(c.Label)] = i + 1
			}
		}
		l.labels = m
	})
	return l.labels
}

// IndexOf returns the index of the component with a given label or alias,
// ignoring case. It returns 0 if no component matches.
func (l *Layout) IndexOf(label string) int {
	return l.LabelMap()[strings.ToLower(label)]
}

// IndexOfKind returns the index of the first component of kind k, or 0.
func (l *Layout) IndexOfKind(k Kind) int {
	for i, c := range l.Components {
		if c.Kind == k {
			return i + 1
		}
	}
	return 0
}

// Capabilities derives the traits of a layout from its component kinds and
// its grammar.
func (l *Layout) Capabilities() Capability {
	var c Capability
	for _, spec := range l.Components {
		switch spec.Kind {
		case Date, Time, Offset:
			c |= DateBearing
		case Amount:
			c |= AmountBearing
		case Currency:
			c |= CurrencyBearing
		case BIC:
			c |= BICBearing
		}
	}
	if l.Generic {
		c |= GenericQualified
	}
	if l.Grammar.Strategy == Narrative {
		c |= MultiLine
	}
	return c
}

// Check tests a layout for consistency: a name, valid kinds, a grammar which
// fills exactly the layout's components, and qualifier indices in range.
func (l *Layout) Check() error {
	if l.Name == "" {
		return fmt.Errorf("%w: layout without name", ErrInvalidArgument)
	}
	if len(l.Components) == 0 {
		return fmt.Errorf("%w: layout %s has no components", ErrInvalidArgument, l.Name)
	}
	for i, c := range l.Components {
		if !c.Kind.IsValid() {
			return fmt.Errorf("%w: layout %s has illegal kind %q at #%d", ErrInvalidArgument,
				l.Name, byte(c.Kind), i+1)
		}
	}
	if err := l.Grammar.Check(); err != nil {
		return fmt.Errorf("layout %s: %w", l.Name, err)
	}
	if a := l.Grammar.Arity(); a >= 0 && a != len(l.Components) {
		return fmt.Errorf("%w: grammar of %s fills %d components, layout has %d",
			ErrInvalidArgument, l.Name, a, len(l.Components))
	}
	if l.CondQualifier < 0 || l.CondQualifier > len(l.Components) ||
		l.DSS < 0 || l.DSS > len(l.Components) {
		return fmt.Errorf("%w: qualifier index of %s out of range", ErrInvalidArgument, l.Name)
	}
	if !l.Generic && (l.CondQualifier > 0 || l.DSS > 0) {
		return fmt.Errorf("%w: layout %s is not generic, but has qualifiers", ErrInvalidArgument, l.Name)
	}
	if l.IndexOfKind(Date) > 0 && l.Dates == NoDate {
		return fmt.Errorf("%w: layout %s has dates without a date grammar", ErrInvalidArgument, l.Name)
	}
	if l.IndexOfKind(Time) > 0 && l.Times == NoTime {
		return fmt.Errorf("%w: layout %s has times without a time grammar", ErrInvalidArgument, l.Name)
	}
	return nil
}

func (l *Layout) String() string {
	return fmt.Sprintf("layout[%s %s %s]", l.Name, l.TypesPattern(), l.Grammar)
}
