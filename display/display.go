/*
Package display renders component values for human readers.

A Locale decides how numbers are grouped and which decimal separator is
used. Dates are always shown in ISO notation, times as hours and minutes
(and seconds, if present). Values which do not conform to the grammar of their
kind are displayed verbatim.

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
package display

import (
	"fmt"
	"time"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/convert"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Locale represents information about the user's environment.
type Locale struct {
	Tag     language.Tag // the locale's language tag
	printer *message.Printer
}

// English is the locale used if no other locale can be determined.
var English = NewLocale(language.AmericanEnglish)

// NewLocale creates a locale for a language tag.
func NewLocale(tag language.Tag) *Locale {
	return &Locale{
		Tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// FromEnvironment detects the user's locale from the environment.
// If detection fails, English is returned.
func FromEnvironment() *Locale {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		T().Infof("display falls back to default user locale %v", English.Tag)
		return English
	}
	T().Infof("display detected user locale %v", userLocale)
	tag, err := language.Parse(userLocale)
	if err != nil {
		T().Errorf("cannot parse user locale %q: %v", userLocale, err)
		return English
	}
	return NewLocale(tag)
}

func (loc *Locale) String() string {
	return fmt.Sprintf("locale[%s]", loc.Tag)
}

// Format renders a non-null component value of kind k. Date and time
// components are interpreted with grammars dg and tg.
func (loc *Locale) Format(k swiftmt.Kind, value string, dg swiftmt.DateGrammar, tg swiftmt.TimeGrammar) string {
	if loc == nil {
		loc = English
	}
	switch k {
	case swiftmt.Number:
		if n, ok := convert.Long(value); ok {
			return loc.printer.Sprint(number.Decimal(n))
		}
	case swiftmt.Amount:
		if d, ok := convert.Amount(value); ok {
			scale := 0
			if exp := d.Exponent(); exp < 0 {
				scale = int(-exp)
			}
			f, _ := d.Float64()
			return loc.printer.Sprint(number.Decimal(f, number.Scale(scale)))
		}
	case swiftmt.Date:
		if t, ok := convert.Date(value, dg); ok {
			return t.Format("2006-01-02")
		}
	case swiftmt.Time:
		if t, ok := convert.Time(value, tg); ok {
			if tg == swiftmt.TIME3 {
				return t.Format("15:04:05")
			}
			return t.Format("15:04")
		}
	case swiftmt.Offset:
		if d, ok := convert.Offset(value); ok {
			return formatOffset(d)
		}
	case swiftmt.Currency:
		if u, ok := convert.Currency(value); ok {
			return u.String()
		}
	}
	return value
}

// formatOffset renders an offset as ±hh:mm.
func formatOffset(d time.Duration) string {
	s := convert.FormatOffset(d, convert.PlusMinus)
	return s[:3] + ":" + s[3:]
}
