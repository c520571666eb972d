package field

import (
	"fmt"

	"github.com/npillmayer/swiftmt"
)

// Tag is a single name/value pair of a message, e.g. "32A" and
// "240131EUR1234,56".
type Tag struct {
	Name  string
	Value string
}

func (t Tag) String() string {
	return ":" + t.Name + ":" + t.Value
}

// TagSource is anything holding tags, usually a block of a message.
type TagSource interface {
	TagByName(name string) (Tag, bool) // first tag with a given name
	TagsByName(name string) []Tag      // all tags with a given name, in order
}

// Message is a SWIFT message, of which only the text block is of interest
// here.
type Message interface {
	Block() TagSource
}

// Block is an ordered list of tags.
type Block []Tag

// TagByName returns the first tag of b with the given name.
func (b Block) TagByName(name string) (Tag, bool) {
	for _, t := range b {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// TagsByName returns all tags of b with the given name.
func (b Block) TagsByName(name string) []Tag {
	var tags []Tag
	for _, t := range b {
		if t.Name == name {
			tags = append(tags, t)
		}
	}
	return tags
}

// Add appends the tag of field f to b.
func (b Block) Add(f *Field) (Block, error) {
	t, err := f.Tag()
	if err != nil {
		return b, err
	}
	return append(b, t), nil
}

// FromTag creates a field of the type named by a tag and parses the tag's
// value into it.
func FromTag(t Tag) (*Field, error) {
	return Parse(t.Name, t.Value)
}

// FromTagAs creates a field of type name from a tag. If the tag has a
// different name, FromTagAs returns an error wrapping
// swiftmt.ErrInvalidArgument.
func FromTagAs(name string, t Tag) (*Field, error) {
	if t.Name != name {
		return nil, fmt.Errorf("%w: cannot create field %s from tag %s", swiftmt.ErrInvalidArgument,
			name, t.Name)
	}
	return Parse(name, t.Value)
}

// FromBlock creates a field from the first tag named name of a tag source.
// If there is no such tag, FromBlock returns an error wrapping
// swiftmt.ErrInvalidArgument.
func FromBlock(src TagSource, name string) (*Field, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: tag source is nil", swiftmt.ErrInvalidArgument)
	}
	t, ok := src.TagByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: no tag %s present", swiftmt.ErrInvalidArgument, name)
	}
	return FromTagAs(name, t)
}

// AllFromBlock creates a field for every tag named name of a tag source.
// The result is empty if there is no such tag.
func AllFromBlock(src TagSource, name string) ([]*Field, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: tag source is nil", swiftmt.ErrInvalidArgument)
	}
	l, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", swiftmt.ErrUnknownField, name)
	}
	tags := src.TagsByName(name)
	fields := make([]*Field, len(tags))
	for i, t := range tags {
		fields[i] = NewWithLayout(l)
		fields[i].Parse(t.Value)
	}
	return fields, nil
}

// FromMessage creates a field from the first tag named name of a message's
// text block.
func FromMessage(m Message, name string) (*Field, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: message is nil", swiftmt.ErrInvalidArgument)
	}
	return FromBlock(m.Block(), name)
}
