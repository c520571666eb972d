/*
Package convert converts component values to and from typed Go values.

Getters never fail with an error. A null component or a value not conforming
to the textual grammar of its kind results in the zero value and false:

   if amount, ok := convert.Amount("1234,56"); ok {
       ...
   }

The write side formats Go values in SWIFT notation, where amounts use a comma as
the decimal separator and carry no trailing zero decimals:

   convert.FormatAmount(decimal.RequireFromString("1234.00"))  // "1234,"

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
package convert

import (
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/tokenize"
	"github.com/shopspring/decimal"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// --- Numbers ---------------------------------------------------------------

// Long converts an integer-like number, e.g. a session number "0123".
func Long(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if digits, rest := tokenize.NumericPrefix(s); digits == "" || rest != "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		T().Debugf("number %q out of range: %v", s, err)
		return 0, false
	}
	return n, true
}

// FormatLong formats n without leading zeros.
func FormatLong(n int64) string {
	return strconv.FormatInt(n, 10)
}

// Amount converts a decimal amount with a comma as decimal separator.
// "1234,56", "1234," and ",5" are valid amounts; signs, dots and more than one
// comma are not.
func Amount(s string) (decimal.Decimal, bool) {
	intpart, frac, found := tokenize.Cut(s, ",")
	if strings.Contains(frac, ",") || (intpart == "" && frac == "") {
		return decimal.Zero, false
	}
	if !allDigits(intpart) || !allDigits(frac) {
		return decimal.Zero, false
	}
	if intpart == "" {
		intpart = "0"
	}
	if found && frac != "" {
		intpart += "." + frac
	}
	d, err := decimal.NewFromString(intpart)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatAmount formats an amount in SWIFT notation. Trailing zero decimals are
// truncated, but the decimal comma is always kept, e.g.
//
//    1234.00  =>  "1234,"
//    1234.56  =>  "1234,56"
//
// Amounts are unsigned in SWIFT notation. The sign of d is dropped; fields
// carry signs in a component of their own.
func FormatAmount(d decimal.Decimal) string {
	s := d.Abs().String()
	if strings.Contains(s, ".") {
		return strings.Replace(s, ".", ",", 1)
	}
	return s + ","
}

func allDigits(s string) bool {
	digits, rest := tokenize.NumericPrefix(s)
	return len(digits) == len(s) && rest == ""
}

// --- Dates and times -------------------------------------------------------

// Date converts a date in date grammar g, i.e. "YYMMDD" for DATE2 or "YYYYMMDD"
// for DATE4. Two-digit years 69…99 are read as 19xx, 00…68 as 20xx.
func Date(s string, g swiftmt.DateGrammar) (time.Time, bool) {
	if g == swiftmt.NoDate || len(s) != g.Width() || !allDigits(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(g.Layout(), s)
	if err != nil {
		T().Debugf("invalid date %q: %v", s, err)
		return time.Time{}, false
	}
	return t, true
}

// FormatDate formats a date in date grammar g.
func FormatDate(t time.Time, g swiftmt.DateGrammar) string {
	if g == swiftmt.NoDate {
		return ""
	}
	return t.Format(g.Layout())
}

// Time converts a time of day in time grammar g, i.e. "HHmm" for TIME2 or
// "HHmmss" for TIME3. The date part of the result is January 1, year 0.
func Time(s string, g swiftmt.TimeGrammar) (time.Time, bool) {
	if g == swiftmt.NoTime || len(s) != g.Width() || !allDigits(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(g.Layout(), s)
	if err != nil {
		T().Debugf("invalid time %q: %v", s, err)
		return time.Time{}, false
	}
	return t, true
}

// FormatTime formats a time of day in time grammar g.
func FormatTime(t time.Time, g swiftmt.TimeGrammar) string {
	if g == swiftmt.NoTime {
		return ""
	}
	return t.Format(g.Layout())
}

// OffsetNotation selects the way the sign of an offset is written.
type OffsetNotation int8

// Offset notations
const (
	NSign     OffsetNotation = iota // "N" for negative offsets, nothing for positive ones
	PlusMinus                       // "+" or "-"
)

// Offset converts a signed time offset: an optional sign ('N' or '-' for
// negative, '+' for positive), 1 or 2 digits of hours and optional 2 digits
// of minutes, e.g. "N0230", "+0100", "02".
func Offset(s string) (time.Duration, bool) {
	neg := false
	if s != "" {
		switch s[0] {
		case 'N', '-':
			neg, s = true, s[1:]
		case '+':
			s = s[1:]
		}
	}
	if !allDigits(s) {
		return 0, false
	}
	var h, m string
	switch len(s) {
	case 1, 2:
		h = s
	case 3, 4:
		h, m = s[:len(s)-2], s[len(s)-2:]
	default:
		return 0, false
	}
	hours, _ := strconv.Atoi(h)
	minutes := 0
	if m != "" {
		minutes, _ = strconv.Atoi(m)
	}
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if neg {
		d = -d
	}
	return d, true
}

// FormatOffset formats a time offset with 2 digits of hours and 2 digits of
// minutes.
func FormatOffset(d time.Duration, notation OffsetNotation) string {
	sign := ""
	if d < 0 {
		d = -d
		if notation == PlusMinus {
			sign = "-"
		} else {
			sign = "N"
		}
	} else if notation == PlusMinus {
		sign = "+"
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	return sign + pad2(hours) + pad2(minutes)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
