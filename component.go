package swiftmt

import (
	"fmt"
	"strings"
)

// Components is the ordered list of component values of a single field.
// Components are 1-indexed. Every component is nullable; an empty string is
// not distinguished from an absent value.
//
// The number of components is fixed at construction time. Parsing a value
// into a Components overwrites all previous values.
type Components struct {
	slots []slot
}

type slot struct {
	value string
	set   bool
}

// NewComponents creates a list of n null components.
func NewComponents(n int) *Components {
	if n <= 0 {
		panic(fmt.Sprintf("components must have a positive size, have %d", n))
	}
	return &Components{slots: make([]slot, n)}
}

// Len returns the fixed number of components.
func (c *Components) Len() int {
	return len(c.slots)
}

func (c *Components) check(i int) {
	if i < 1 || i > len(c.slots) {
		panic(fmt.Errorf("%w: component index out of bounds, [%d] in [1:%d]",
			ErrInvalidArgument, i, len(c.slots)))
	}
}

// Get returns component #i (1…n) and a flag telling if it is set.
// Get will panic if i is out of range.
func (c *Components) Get(i int) (string, bool) {
	c.check(i)
	s := c.slots[i-1]
	return s.value, s.set
}

// Value returns component #i (1…n), or "" if it is null.
func (c *Components) Value(i int) string {
	v, _ := c.Get(i)
	return v
}

// IsSet checks if component #i is non-null.
func (c *Components) IsSet(i int) bool {
	_, ok := c.Get(i)
	return ok
}

// Set sets component #i (1…n). Setting an empty string clears the component.
func (c *Components) Set(i int, value string) {
	c.check(i)
	if value == "" {
		c.slots[i-1] = slot{}
		return
	}
	c.slots[i-1] = slot{value: value, set: true}
}

// Clear sets component #i to null.
func (c *Components) Clear(i int) {
	c.check(i)
	c.slots[i-1] = slot{}
}

// Reset sets all components to null.
func (c *Components) Reset() {
	for i := range c.slots {
		c.slots[i] = slot{}
	}
}

// IsEmpty is true if no component is set.
func (c *Components) IsEmpty() bool {
	for _, s := range c.slots {
		if s.set {
			return false
		}
	}
	return true
}

// AnySetFrom checks if any of the components #i…n is set.
func (c *Components) AnySetFrom(i int) bool {
	if i < 1 {
		i = 1
	}
	for j := i - 1; j < len(c.slots); j++ {
		if c.slots[j].set {
			return true
		}
	}
	return false
}

// Equal compares two component lists, component by component.
func (c *Components) Equal(other *Components) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.slots) != len(other.slots) {
		return false
	}
	for i := range c.slots {
		if c.slots[i] != other.slots[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of c.
func (c *Components) Copy() *Components {
	cc := &Components{slots: make([]slot, len(c.slots))}
	copy(cc.slots, c.slots)
	return cc
}

// Values returns the component values, with "" for null components.
func (c *Components) Values() []string {
	v := make([]string, len(c.slots))
	for i, s := range c.slots {
		v[i] = s.value
	}
	return v
}

// Simple stringer for debugging purposes.
func (c *Components) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range c.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.set {
			fmt.Fprintf(&b, "%q", s.value)
		} else {
			b.WriteString("<nil>")
		}
	}
	b.WriteByte(']')
	return b.String()
}
