package field

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/swiftmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// JSONKey derives the JSON key of a component label: words are separated at
// any character which is neither a letter nor a digit and joined in camel
// case, e.g. "D/C Mark" ⇒ "dCMark", "UTC Indicator" ⇒ "utcIndicator".
func JSONKey(label string) string {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return ""
	}
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)
	var b strings.Builder
	b.WriteString(lower.String(words[0]))
	for _, w := range words[1:] {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// componentKey is the JSON key of component #i of layout l.
func componentKey(l *swiftmt.Layout, i int) string {
	if key := JSONKey(l.Label(i)); key != "" {
		return key
	}
	return "component" + strconv.Itoa(i)
}

// KeyValue is a single entry of a field's JSON object.
type KeyValue struct {
	Key   string
	Value string
}

// JSONFields returns the non-null components of f as ordered key/value
// pairs.
func (f *Field) JSONFields() []KeyValue {
	var kv []KeyValue
	for i := 1; i <= f.comps.Len(); i++ {
		if v, ok := f.comps.Get(i); ok {
			kv = append(kv, KeyValue{Key: componentKey(f.layout, i), Value: v})
		}
	}
	return kv
}

// MarshalJSON writes f as a flat JSON object, with keys in component order.
// Null components are omitted.
func (f *Field) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, kv := range f.JSONFields() {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON sets the components of f from a flat JSON object of strings.
// f must have been created for a layout, e.g. with New. Keys of deprecated
// labels are read first, in their order of declaration, and the key of the
// current label last; the current label therefore always wins. Components
// without a key are left untouched, a JSON null clears a component.
func (f *Field) UnmarshalJSON(data []byte) error {
	if f.layout == nil {
		return fmt.Errorf("%w: field has no layout", swiftmt.ErrInvalidArgument)
	}
	var obj map[string]*string
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: field %s: not a flat JSON object of strings: %v",
			swiftmt.ErrInvalidArgument, f.Name(), err)
	}
	if obj == nil {
		return fmt.Errorf("%w: field %s: JSON input is null", swiftmt.ErrInvalidArgument, f.Name())
	}
	set := func(i int, key string) {
		if v, found := obj[key]; found {
			if v == nil {
				f.comps.Clear(i)
			} else {
				f.comps.Set(i, *v)
			}
		}
	}
	for i := 1; i <= f.comps.Len(); i++ {
		for _, alias := range f.layout.Components[i-1].Aliases {
			set(i, JSONKey(alias))
		}
		set(i, componentKey(f.layout, i))
	}
	return nil
}

// FromJSON creates a field of type name from a JSON object.
func FromJSON(name string, data []byte) (*Field, error) {
	f, err := New(name)
	if err != nil {
		return nil, err
	}
	if err := f.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return f, nil
}
