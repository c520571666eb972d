package field

import (
	"fmt"
	"time"

	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/convert"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Typed accessors operate on the first component of a given kind. Getters
// return false if the layout has no such component, if it is null, or if it
// does not conform to its kind. Setters return an error wrapping
// swiftmt.ErrInvalidArgument if the layout has no such component.

func (f *Field) indexOfKind(k swiftmt.Kind) (int, error) {
	i := f.layout.IndexOfKind(k)
	if i == 0 {
		return 0, fmt.Errorf("%w: field %s has no %s component", swiftmt.ErrInvalidArgument,
			f.Name(), k)
	}
	return i, nil
}

func (f *Field) valueOfKind(k swiftmt.Kind) (string, bool) {
	i := f.layout.IndexOfKind(k)
	if i == 0 {
		return "", false
	}
	return f.comps.Get(i)
}

func (f *Field) setKind(k swiftmt.Kind, value string) error {
	i, err := f.indexOfKind(k)
	if err != nil {
		return err
	}
	f.comps.Set(i, value)
	return nil
}

// Long returns component #i (1…n) as an integer.
// Long will panic if i is out of range.
func (f *Field) Long(i int) (int64, bool) {
	v, ok := f.comps.Get(i)
	if !ok {
		return 0, false
	}
	return convert.Long(v)
}

// SetLong sets component #i (1…n) to a number.
// SetLong will panic if i is out of range.
func (f *Field) SetLong(i int, n int64) {
	f.comps.Set(i, convert.FormatLong(n))
}

// Amount returns the amount of f.
func (f *Field) Amount() (decimal.Decimal, bool) {
	v, ok := f.valueOfKind(swiftmt.Amount)
	if !ok {
		return decimal.Zero, false
	}
	return convert.Amount(v)
}

// SetAmount sets the amount of f. The sign of d is dropped.
func (f *Field) SetAmount(d decimal.Decimal) error {
	return f.setKind(swiftmt.Amount, convert.FormatAmount(d))
}

// Currency returns the currency of f.
func (f *Field) Currency() (currency.Unit, bool) {
	v, ok := f.valueOfKind(swiftmt.Currency)
	if !ok {
		return currency.Unit{}, false
	}
	return convert.Currency(v)
}

// SetCurrency sets the currency of f.
func (f *Field) SetCurrency(u currency.Unit) error {
	return f.setKind(swiftmt.Currency, u.String())
}

// Date returns the date of f, without a time of day.
func (f *Field) Date() (time.Time, bool) {
	v, ok := f.valueOfKind(swiftmt.Date)
	if !ok {
		return time.Time{}, false
	}
	return convert.Date(v, f.layout.Dates)
}

// SetDate sets the date of f, in the date grammar of the layout.
func (f *Field) SetDate(t time.Time) error {
	return f.setKind(swiftmt.Date, convert.FormatDate(t, f.layout.Dates))
}

// Time returns the time of day of f. The date part is January 1, year 0.
func (f *Field) Time() (time.Time, bool) {
	v, ok := f.valueOfKind(swiftmt.Time)
	if !ok {
		return time.Time{}, false
	}
	return convert.Time(v, f.layout.Times)
}

// SetTime sets the time of day of f, in the time grammar of the layout.
func (f *Field) SetTime(t time.Time) error {
	return f.setKind(swiftmt.Time, convert.FormatTime(t, f.layout.Times))
}

// DateTime combines the date and the time of day of f. If the time is
// absent, the result is the start of the day. Dates and times are UTC
// unless the field carries an offset, in which case the result is in a
// fixed zone of that offset.
func (f *Field) DateTime() (time.Time, bool) {
	d, ok := f.Date()
	if !ok {
		return time.Time{}, false
	}
	loc := time.UTC
	if off, ok := f.Offset(); ok {
		loc = time.FixedZone(convert.FormatOffset(off, convert.PlusMinus), int(off/time.Second))
	}
	if t, ok := f.Time(); ok {
		return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), true
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc), true
}

// Offset returns the time offset of f.
func (f *Field) Offset() (time.Duration, bool) {
	v, ok := f.valueOfKind(swiftmt.Offset)
	if !ok {
		return 0, false
	}
	return convert.Offset(v)
}

// SetOffset sets the time offset of f. Generic fields write negative offsets
// with a leading 'N', other fields use '+' and '-'.
func (f *Field) SetOffset(d time.Duration) error {
	notation := convert.PlusMinus
	if f.layout.Generic {
		notation = convert.NSign
	}
	return f.setKind(swiftmt.Offset, convert.FormatOffset(d, notation))
}

// BIC returns the business identifier code of f.
func (f *Field) BIC() (convert.BIC, bool) {
	v, ok := f.valueOfKind(swiftmt.BIC)
	if !ok {
		return convert.BIC{}, false
	}
	return convert.ParseBIC(v)
}

// SetBIC sets the business identifier code of f.
func (f *Field) SetBIC(bic convert.BIC) error {
	return f.setKind(swiftmt.BIC, bic.String())
}
