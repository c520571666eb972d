package field

import (
	"fmt"
	"strings"

	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/codec"
	"github.com/npillmayer/swiftmt/convert"
	"github.com/npillmayer/swiftmt/display"
)

// Field is an instance of a field type: a list of components together with
// the layout which gives them meaning. The layout is shared between all
// fields of the same type; the components are owned by the field.
//
// Fields are not safe for concurrent modification.
type Field struct {
	layout *swiftmt.Layout
	comps  *swiftmt.Components
}

// New creates an empty field of a registered field type. If there is no
// layout for name, New returns an error wrapping swiftmt.ErrUnknownField.
func New(name string) (*Field, error) {
	l, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", swiftmt.ErrUnknownField, name)
	}
	return NewWithLayout(l), nil
}

// NewWithLayout creates an empty field for layout l, which does not have to
// be registered.
func NewWithLayout(l *swiftmt.Layout) *Field {
	return &Field{
		layout: l,
		comps:  swiftmt.NewComponents(l.ComponentCount()),
	}
}

// Parse creates a field of type name and parses value into it.
func Parse(name string, value string) (*Field, error) {
	f, err := New(name)
	if err != nil {
		return nil, err
	}
	f.Parse(value)
	return f, nil
}

// Name returns the tag name of the field type, e.g. "98E".
func (f *Field) Name() string {
	return f.layout.Name
}

// Layout returns the layout of the field type.
func (f *Field) Layout() *swiftmt.Layout {
	return f.layout
}

// Components returns the components of f. They are not copied.
func (f *Field) Components() *swiftmt.Components {
	return f.comps
}

// Capabilities returns the capabilities of the field's layout.
func (f *Field) Capabilities() swiftmt.Capability {
	return f.layout.Capabilities()
}

// Parse overwrites all components of f with the components of value.
// Parsing never fails; parts of value which do not fit the layout leave
// their components null.
func (f *Field) Parse(value string) {
	codec.ParseInto(f.layout, value, f.comps)
}

// Serialize renders f into its wire format. Layouts without a serializer
// return an error wrapping swiftmt.ErrNoSerializer.
func (f *Field) Serialize() (string, error) {
	return codec.Serialize(f.layout, f.comps)
}

// Value returns the wire format of f, or "" if f cannot be serialized.
func (f *Field) Value() string {
	v, err := f.Serialize()
	if err != nil {
		T().Debugf("field %s has no value: %v", f.Name(), err)
		return ""
	}
	return v
}

// Tag returns f as a tag, with the serialized value.
func (f *Field) Tag() (Tag, error) {
	v, err := f.Serialize()
	if err != nil {
		return Tag{}, err
	}
	return Tag{Name: f.Name(), Value: v}, nil
}

// Component returns component #i (1…n) and a flag telling if it is set.
// Component will panic if i is out of range.
func (f *Field) Component(i int) (string, bool) {
	return f.comps.Get(i)
}

// SetComponent sets component #i (1…n); an empty value clears it.
// SetComponent will panic if i is out of range.
func (f *Field) SetComponent(i int, value string) {
	f.comps.Set(i, value)
}

// ComponentByLabel returns the component with a given label or alias,
// ignoring case.
func (f *Field) ComponentByLabel(label string) (string, bool) {
	i := f.layout.IndexOf(label)
	if i == 0 {
		return "", false
	}
	return f.comps.Get(i)
}

// SetComponentByLabel sets the component with a given label or alias.
func (f *Field) SetComponentByLabel(label string, value string) error {
	i := f.layout.IndexOf(label)
	if i == 0 {
		return fmt.Errorf("%w: field %s has no component %q", swiftmt.ErrInvalidArgument,
			f.Name(), label)
	}
	f.comps.Set(i, value)
	return nil
}

// IsEmpty is true if no component of f is set.
func (f *Field) IsEmpty() bool {
	return f.comps.IsEmpty()
}

// Lines returns the non-null components of a multi-line field, one per line
// of its wire format. The components of the head line are joined with their
// markers. For other fields Lines returns nil.
func (f *Field) Lines() []string {
	if !f.Capabilities().Has(swiftmt.MultiLine) {
		return nil
	}
	v := f.Value()
	if v == "" {
		return nil
	}
	return strings.Split(v, swiftmt.CRLF)
}

// Display renders component #i (1…n) for human readers, using locale loc.
// It returns false for null components. Display will panic if i is out
// of range.
func (f *Field) Display(i int, loc *display.Locale) (string, bool) {
	k := f.layout.Kind(i)
	v, ok := f.comps.Get(i)
	if !ok {
		return "", false
	}
	return loc.Format(k, v, f.layout.Dates, f.layout.Times), true
}

// Validate checks that all mandatory components of f are set and that every
// component conforms to its kind. conv may be nil, in which case
// convert.Default is used.
func (f *Field) Validate(conv *convert.Converter) error {
	if conv == nil {
		conv = convert.Default
	}
	for i := 1; i <= f.comps.Len(); i++ {
		v, ok := f.comps.Get(i)
		if !ok {
			if !f.layout.IsOptional(i) {
				return fmt.Errorf("%w: field %s: mandatory component %d (%s) is missing",
					swiftmt.ErrInvalidArgument, f.Name(), i, f.layout.Label(i))
			}
			continue
		}
		if !conv.Valid(f.layout.Kind(i), v, f.layout.Dates, f.layout.Times) {
			return fmt.Errorf("%w: field %s: component %d is not a valid %s: %q",
				swiftmt.ErrInvalidArgument, f.Name(), i, f.layout.Kind(i), v)
		}
	}
	return nil
}

// Copy returns an independent copy of f, sharing the layout.
func (f *Field) Copy() *Field {
	return &Field{layout: f.layout, comps: f.comps.Copy()}
}

// Equal is true if g is of the same field type and has the same components.
func (f *Field) Equal(g *Field) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f.layout.Name == g.layout.Name && f.comps.Equal(g.comps)
}

func (f *Field) String() string {
	return fmt.Sprintf("%s%v", f.Name(), f.comps)
}
