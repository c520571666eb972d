package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/swiftmt"
)

func spec(label string, k swiftmt.Kind, opt bool) swiftmt.ComponentSpec {
	return swiftmt.ComponentSpec{Label: label, Kind: k, Optional: opt}
}

var layout255 = &swiftmt.Layout{
	Name: "255",
	Components: []swiftmt.ComponentSpec{
		spec("LT Address", swiftmt.String, false),
		spec("Session Number", swiftmt.Number, false),
		spec("Message Type", swiftmt.Number, false),
		spec("Date", swiftmt.Date, false),
		spec("Time", swiftmt.Time, true),
		spec("Sequence Number", swiftmt.Number, true),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.FixedWidth, Widths: []int{12, 4, 3, 6, 4, 6}},
	Dates:   swiftmt.DATE2,
	Times:   swiftmt.TIME2,
}

var layout98E = &swiftmt.Layout{
	Name: "98E",
	Components: []swiftmt.ComponentSpec{
		spec("Qualifier", swiftmt.String, false),
		spec("Date", swiftmt.Date, false),
		spec("Time", swiftmt.Time, false),
		spec("Decimals", swiftmt.Number, true),
		spec("UTC Indicator", swiftmt.Offset, true),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.Delimited, Segments: []swiftmt.Segment{
		{Sep: ":"}, {Sep: "//", Width: 8}, {Width: 6},
		{Sep: ",", Bracketed: true}, {Sep: "/", Bracketed: true},
	}},
	Dates:   swiftmt.DATE4,
	Times:   swiftmt.TIME3,
	Generic: true,
}

var layout22F = &swiftmt.Layout{
	Name: "22F",
	Components: []swiftmt.ComponentSpec{
		spec("Qualifier", swiftmt.String, false),
		spec("Data Source Scheme", swiftmt.String, true),
		spec("Indicator", swiftmt.String, false),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.Delimited, Segments: []swiftmt.Segment{
		{Sep: ":"}, {Sep: "/"}, {Sep: "/"},
	}},
	Generic: true,
	DSS:     2,
}

var layout19A = &swiftmt.Layout{
	Name: "19A",
	Components: []swiftmt.ComponentSpec{
		spec("Qualifier", swiftmt.String, false),
		spec("Sign", swiftmt.String, true),
		spec("Currency", swiftmt.Currency, false),
		spec("Amount", swiftmt.Amount, false),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.Delimited, Segments: []swiftmt.Segment{
		{Sep: ":"}, {Sep: "//", Span: 3},
	}},
	Generic: true,
}

var layout13C = &swiftmt.Layout{
	Name: "13C",
	Components: []swiftmt.ComponentSpec{
		spec("Code", swiftmt.String, false),
		spec("Time Indication", swiftmt.Time, false),
		spec("Time Offset", swiftmt.Offset, false),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.Delimited, Segments: []swiftmt.Segment{
		{Sep: "/"}, {Sep: "/", Width: 4}, {},
	}},
	Times: swiftmt.TIME2,
}

var layout33B = &swiftmt.Layout{
	Name: "33B",
	Components: []swiftmt.ComponentSpec{
		spec("Currency", swiftmt.Currency, false),
		spec("Amount", swiftmt.Amount, false),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.AlphaNumeric, Span: 2},
}

var layout33K = &swiftmt.Layout{
	Name: "33K",
	Components: []swiftmt.ComponentSpec{
		spec("Day/Month", swiftmt.Number, false),
		spec("Number of Days/Months", swiftmt.Number, false),
		spec("Code", swiftmt.String, true),
		spec("Currency", swiftmt.Currency, false),
		spec("Amount", swiftmt.Amount, false),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.AlphaNumeric, Widths: []int{3, 3}, Span: 3},
}

var layout70C = &swiftmt.Layout{
	Name: "70C",
	Components: []swiftmt.ComponentSpec{
		spec("Qualifier", swiftmt.String, false),
		spec("Narrative", swiftmt.String, false),
		spec("Narrative 2", swiftmt.String, true),
		spec("Narrative 3", swiftmt.String, true),
		spec("Narrative 4", swiftmt.String, true),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.Narrative, Lines: 3, Segments: []swiftmt.Segment{
		{Sep: ":"}, {Sep: "//"},
	}},
	Generic: true,
}

var layout52A = &swiftmt.Layout{
	Name: "52A",
	Components: []swiftmt.ComponentSpec{
		spec("D/C Mark", swiftmt.Code, true),
		spec("Account", swiftmt.String, true),
		spec("BIC", swiftmt.BIC, false),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.Narrative, Marker: "/", Lines: 1, Segments: []swiftmt.Segment{
		{Sep: "/", Width: 1, Bracketed: true}, {Sep: "/", Bracketed: true},
	}},
}

var layout35B = &swiftmt.Layout{
	Name: "35B",
	Components: []swiftmt.ComponentSpec{
		spec("Identification Type", swiftmt.String, true),
		spec("ISIN", swiftmt.String, true),
		spec("Description", swiftmt.String, true),
		spec("Description 2", swiftmt.String, true),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.Narrative, Marker: "ISIN", Lines: 2, Segments: []swiftmt.Segment{
		{Width: 4}, {Sep: " "},
	}},
}

// Account and BIC on one line, both anchored to the end.
var layout57Z = &swiftmt.Layout{
	Name: "57Z",
	Components: []swiftmt.ComponentSpec{
		spec("Party", swiftmt.String, false),
		spec("Account", swiftmt.String, true),
		spec("BIC", swiftmt.BIC, false),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.Delimited, Segments: []swiftmt.Segment{
		{Sep: ":"}, {Sep: "/", FromEnd: true, Bracketed: true}, {Sep: "/", FromEnd: true},
	}},
}

var layout72 = &swiftmt.Layout{
	Name: "72",
	Components: []swiftmt.ComponentSpec{
		spec("Narrative", swiftmt.String, false),
		spec("Narrative 2", swiftmt.String, true),
		spec("Narrative 3", swiftmt.String, true),
		spec("Narrative 4", swiftmt.String, true),
		spec("Narrative 5", swiftmt.String, true),
		spec("Narrative 6", swiftmt.String, true),
	},
	Grammar: swiftmt.Grammar{Strategy: swiftmt.Narrative, Lines: 6},
}

func layout422() *swiftmt.Layout {
	l := &swiftmt.Layout{
		Name:         "422",
		Grammar:      swiftmt.Grammar{Strategy: swiftmt.Repeating, Delim: "/"},
		NoSerializer: true,
	}
	for i := 0; i < 24; i++ {
		l.Components = append(l.Components, spec("", swiftmt.String, true))
	}
	return l
}

func allLayouts() []*swiftmt.Layout {
	return []*swiftmt.Layout{layout255, layout98E, layout22F, layout19A, layout13C,
		layout33B, layout33K, layout70C, layout52A, layout57Z, layout35B, layout72, layout422()}
}

func expect(t *testing.T, c *swiftmt.Components, values ...string) {
	t.Helper()
	if c.Len() != len(values) {
		t.Fatalf("expected %d components, have %d", len(values), c.Len())
	}
	for i, v := range values {
		got, ok := c.Get(i + 1)
		if v == "" && ok {
			t.Errorf("expected component #%d to be null, is %q", i+1, got)
		} else if v != "" && got != v {
			t.Errorf("expected component #%d to be %q, is %q", i+1, v, got)
		}
	}
}

// --- Tests -----------------------------------------------------------------

func TestLayoutsCheck(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, l := range allLayouts() {
		if err := l.Check(); err != nil {
			t.Errorf("test layout %s does not check: %v", l.Name, err)
		}
	}
}

func TestNullSafety(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, l := range allLayouts() {
		c := Parse(l, "")
		if c.Len() != l.ComponentCount() || !c.IsEmpty() {
			t.Errorf("expected empty value to parse into %d nulls for %s, have %v", l.ComponentCount(), l.Name, c)
		}
	}
}

func TestFixedWidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	c := Parse(layout255, "BANKBEBBSESS0123456240101")
	expect(t, c, "BANKBEBBSESS", "0123", "456", "240101", "", "")
	c = Parse(layout255, "BANKBEBBSESS01234562401011200000042")
	expect(t, c, "BANKBEBBSESS", "0123", "456", "240101", "1200", "000042")
	c = Parse(layout255, "BANKBEBB")
	if !c.IsEmpty() {
		t.Errorf("expected short value to leave all components null, have %v", c)
	}
}

func TestDelimited(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	expect(t, Parse(layout98E, ":SETT//20240101123000,5/N0100"), "SETT", "20240101", "123000", "5", "N0100")
	expect(t, Parse(layout98E, ":SETT//20240101123000/N0100"), "SETT", "20240101", "123000", "", "N0100")
	expect(t, Parse(layout98E, ":SETT//20240101123000"), "SETT", "20240101", "123000", "", "")
	expect(t, Parse(layout98E, ":SETT//2024"), "SETT", "", "", "", "")
	expect(t, Parse(layout22F, ":STCO//NPAR"), "STCO", "", "NPAR")
	expect(t, Parse(layout22F, ":STCO/SCHEME/NPAR"), "STCO", "SCHEME", "NPAR")
	expect(t, Parse(layout19A, ":SETT//NEUR1234,56"), "SETT", "N", "EUR", "1234,56")
	expect(t, Parse(layout19A, ":SETT//EUR1234,56"), "SETT", "", "EUR", "1234,56")
	expect(t, Parse(layout13C, "/CLSTIME/0915+0100"), "CLSTIME", "0915", "+0100")
}

func TestAlphaNumeric(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	expect(t, Parse(layout33B, "USD1234,56"), "USD", "1234,56")
	expect(t, Parse(layout33B, "1234,56"), "", "1234,56")
	expect(t, Parse(layout33K, "001012DMEUR100,"), "001", "012", "DM", "EUR", "100,")
	expect(t, Parse(layout33K, "001012EUR100,"), "001", "012", "", "EUR", "100,")
	expect(t, Parse(layout33K, "001012FM100,"), "001", "012", "FM", "", "100,")
	expect(t, Parse(layout33K, "0010"), "001", "", "", "", "")
}

func TestNarrative(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	expect(t, Parse(layout70C, ":ADTX//LINE 1\r\nLINE 2\r\nLINE 3"), "ADTX", "LINE 1", "LINE 2", "LINE 3", "")
	expect(t, Parse(layout70C, ":ADTX//A\r\nB\r\nC\r\nD\r\nE\r\nF"), "ADTX", "A", "B", "C", "D")
	expect(t, Parse(layout52A, "/D/12345\r\nBANKDEFFXXX"), "D", "12345", "BANKDEFFXXX")
	expect(t, Parse(layout52A, "/12345\r\nBANKDEFFXXX"), "", "12345", "BANKDEFFXXX")
	expect(t, Parse(layout52A, "BANKDEFFXXX"), "", "", "BANKDEFFXXX")
	expect(t, Parse(layout52A, "/D/ACC/123\r\nBANKDEFFXXX"), "D", "ACC/123", "BANKDEFFXXX")
	expect(t, Parse(layout52A, "/ACC/123\r\nBANKDEFFXXX"), "", "ACC/123", "BANKDEFFXXX")
	expect(t, Parse(layout52A, "/ACCT/SUB\r\nBANKDEFFXXX"), "", "ACCT/SUB", "BANKDEFFXXX")
	expect(t, Parse(layout52A, "/C/\r\nBANKDEFFXXX"), "C", "", "BANKDEFFXXX")
	expect(t, Parse(layout35B, "ISIN US0378331005\r\nAPPLE INC"), "ISIN", "US0378331005", "APPLE INC", "")
	expect(t, Parse(layout35B, "APPLE INC"), "", "", "APPLE INC", "")
	lines := strings.Repeat("X\r\n", 7) + "X"
	c := Parse(layout72, lines)
	expect(t, c, "X", "X", "X", "X", "X", "X")
}

func TestAccountWithSlashes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	c := swiftmt.NewComponents(3)
	c.Set(2, "ACC/123")
	c.Set(3, "BANKDEFFXXX")
	wire, err := Serialize(layout52A, c)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cc := Parse(layout52A, wire); !cc.Equal(c) {
		t.Errorf("expected account-only model to survive %q, have %v", wire, cc)
	}
	expect(t, Parse(layout57Z, ":P/Q/ACCT/BANKDEFF"), "P/Q", "ACCT", "BANKDEFF")
	expect(t, Parse(layout57Z, ":PARTY/BANKDEFF"), "PARTY", "", "BANKDEFF")
	expect(t, Parse(layout57Z, "BANKDEFF"), "", "", "BANKDEFF")
}

func TestRepeatingOverflow(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tokens := make([]string, 26)
	for i := range tokens {
		tokens[i] = "t" + string(rune('a'+i))
	}
	l := layout422()
	c := Parse(l, strings.Join(tokens, "/"))
	if c.Value(1) != "ta" || c.Value(23) != "tw" {
		t.Errorf("expected tokens to map 1:1, have %v", c)
	}
	if c.Value(24) != "tx/ty/tz" {
		t.Errorf("expected last component to absorb overflow, is %q", c.Value(24))
	}
	c = Parse(l, "a/b")
	expect(t, c, append([]string{"a", "b"}, make([]string, 22)...)...)
	if _, err := Serialize(l, c); !errors.Is(err, swiftmt.ErrNoSerializer) {
		t.Errorf("expected serializing 422 to fail with ErrNoSerializer, is %v", err)
	}
}

func TestSerialize(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var inputs = []struct {
		l      *swiftmt.Layout
		values []string
		wire   string
	}{
		{layout98E, []string{"SETT", "20240101", "123000", "", "N0100"}, ":SETT//20240101123000/N0100"},
		{layout98E, []string{"SETT", "20240101", "123000", "5", ""}, ":SETT//20240101123000,5"},
		{layout98E, []string{"SETT", "", "", "", ""}, ":SETT"},
		{layout22F, []string{"STCO", "", "NPAR"}, ":STCO//NPAR"},
		{layout22F, []string{"STCO", "XYZ", "NPAR"}, ":STCO/XYZ/NPAR"},
		{layout19A, []string{"SETT", "N", "EUR", "12,"}, ":SETT//NEUR12,"},
		{layout33K, []string{"001", "012", "DM", "EUR", "100,"}, "001012DMEUR100,"},
		{layout255, []string{"BANKBEBBSESS", "0123", "456", "240101", "", ""}, "BANKBEBBSESS0123456240101"},
		{layout70C, []string{"ADTX", "A", "", "C", ""}, ":ADTX//A\r\nC"},
		{layout52A, []string{"", "12345", "BANKDEFFXXX"}, "/12345\r\nBANKDEFFXXX"},
		{layout52A, []string{"", "", "BANKDEFFXXX"}, "BANKDEFFXXX"},
		{layout52A, []string{"", "ACC/123", "BANKDEFFXXX"}, "/ACC/123\r\nBANKDEFFXXX"},
		{layout52A, []string{"C", "ACC/123", "BANKDEFFXXX"}, "/C/ACC/123\r\nBANKDEFFXXX"},
		{layout35B, []string{"ISIN", "US0378331005", "", ""}, "ISIN US0378331005"},
		{layout35B, []string{"", "US0378331005", "APPLE INC", ""}, "ISIN US0378331005\r\nAPPLE INC"},
		{layout35B, []string{"", "", "APPLE INC", ""}, "APPLE INC"},
		{layout57Z, []string{"PARTY", "", "BANKDEFF"}, ":PARTY/BANKDEFF"},
		{layout72, []string{"A", "B", "", "", "", ""}, "A\r\nB"},
	}
	for i, input := range inputs {
		c := swiftmt.NewComponents(input.l.ComponentCount())
		for j, v := range input.values {
			c.Set(j+1, v)
		}
		wire, err := Serialize(input.l, c)
		if err != nil {
			t.Fatalf("test #%d: unexpected error %v", i, err)
		}
		if wire != input.wire {
			t.Errorf("test #%d: expected %s to serialize to %q, is %q", i, input.l.Name, input.wire, wire)
		}
	}
	if wire, _ := Serialize(layout98E, swiftmt.NewComponents(5)); wire != "" {
		t.Errorf("expected all-null components to serialize to empty string, is %q", wire)
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var inputs = []struct {
		l    *swiftmt.Layout
		wire string
	}{
		{layout255, "BANKBEBBSESS01234562401011200000042"},
		{layout98E, ":SETT//20240101123000,5/N0100"},
		{layout98E, ":SETT//20240101123000/N0100"},
		{layout22F, ":STCO//NPAR"},
		{layout19A, ":SETT//NEUR1234,56"},
		{layout13C, "/CLSTIME/0915+0100"},
		{layout33B, "USD1234,56"},
		{layout33K, "001012DMEUR100,"},
		{layout70C, ":ADTX//LINE 1\r\nLINE 2"},
		{layout52A, "/D/12345\r\nBANKDEFFXXX"},
		{layout52A, "/D/ACC/123\r\nBANKDEFFXXX"},
		{layout52A, "/ACC/123\r\nBANKDEFFXXX"},
		{layout35B, "ISIN US0378331005\r\nAPPLE INC"},
		{layout57Z, ":P/Q/ACCT/BANKDEFF"},
		{layout72, "A\r\nB\r\nC"},
	}
	for _, input := range inputs {
		m := Parse(input.l, input.wire)
		wire, err := Serialize(input.l, m)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", input.l.Name, err)
		}
		if wire != input.wire {
			t.Errorf("expected %s to serialize to %q, is %q", input.l.Name, input.wire, wire)
		}
		if mm := Parse(input.l, wire); !mm.Equal(m) {
			t.Errorf("expected %s to round-trip, have %v and %v", input.l.Name, m, mm)
		}
	}
}

func TestParseIntoOverwrites(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	c := Parse(layout98E, ":SETT//20240101123000,5/N0100")
	ParseInto(layout98E, ":PREP//20230101000000", c)
	expect(t, c, "PREP", "20230101", "000000", "", "")
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected ParseInto to panic for components of wrong size")
		}
	}()
	ParseInto(layout98E, ":SETT", swiftmt.NewComponents(2))
}
