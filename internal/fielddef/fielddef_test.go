package fielddef

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/internal/testdata"
)

const defs = `# comment line

98E; delimited :* //8 6 [,*] [/*]; SDTNW; Qualifier|Date|Time|Decimals|UTC Indicator; 4 5; generic DATE4 TIME3; :S//<DATE4><TIME3>; :4!c//8!n6!n[,3n][/[N]2!n[2!n]]
95P; delimited :* //*; SB; Qualifier|Identifier Code~BIC; ; generic; :S//<BIC>; :4!c//4!a2!a2!c[3!c]  # with alias
422; repeating "/"; SSS; ; 1-3; noserializer; S; 35x
`

func TestScanner(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var tokens []*Token
	err := Parse(strings.NewReader(defs), func(token *Token) {
		tokens = append(tokens, token)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 definitions, have %d", len(tokens))
	}
	if tokens[0].LineNo != 3 || tokens[0].Field(1) != "98E" || tokens[0].Field(8) != ":4!c//8!n6!n[,3n][/[N]2!n[2!n]]" {
		t.Errorf("unexpected first token %v", tokens[0])
	}
	if tokens[1].Comment != "with alias" || tokens[1].Field(8) != ":4!c//4!a2!a2!c[3!c]" {
		t.Errorf("expected trailing comment to be split off, have %v %q", tokens[1], tokens[1].Comment)
	}
	if tokens[2].Field(9) != "" || tokens[2].Field(0) != "" {
		t.Errorf("fields outside 1…8 should be empty")
	}
}

func TestScannerErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	inputs := []string{
		"20; delimited *; S",
		"2x; delimited *; S; Reference; ; ; S; 16x",
		"; delimited *; S; Reference; ; ; S; 16x",
	}
	for _, input := range inputs {
		if err := Parse(strings.NewReader(input), func(*Token) {}); err == nil {
			t.Errorf("expected %q to be rejected", input)
		}
	}
	if err := Parse(nil, func(*Token) {}); err == nil {
		t.Errorf("expected nil reader to be rejected")
	}
}

func TestBuild(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	layouts, err := Layouts(strings.NewReader(defs))
	if err != nil {
		t.Fatal(err)
	}
	l := layouts[0]
	if l.Name != "98E" || l.TypesPattern() != "SDTNW" || !l.Generic ||
		l.Dates != swiftmt.DATE4 || l.Times != swiftmt.TIME3 {
		t.Errorf("unexpected layout %v", l)
	}
	if !l.IsOptional(4) || !l.IsOptional(5) || l.IsOptional(1) {
		t.Errorf("optional components of 98E not set correctly")
	}
	if l.Grammar.String() != "delimited :* //8 6 [,*] [/*]" {
		t.Errorf("unexpected grammar %s", l.Grammar)
	}
	if l = layouts[1]; l.IndexOf("BIC") != 2 || l.Label(2) != "Identifier Code" {
		t.Errorf("expected alias BIC for component 2 of 95P")
	}
	if l = layouts[2]; !l.NoSerializer || l.Label(1) != "" || !l.IsOptional(3) {
		t.Errorf("unexpected layout %v", l)
	}
	bad := []string{
		"20; delimited *; SS; Reference; ; ; S; 16x",                   // grammar arity
		"20; delimited *; S; Reference|Other; ; ; S; 16x",              // label count
		"20; delimited *; S; Reference; 2; ; S; 16x",                   // optional index
		"20; delimited *; S; Reference; ; fancy; S; 16x",               // flag
		"20; delimited *; S; Reference; ; cq=1; S; 16x",                // not generic
		"20; delimited *; X; Reference; ; ; S; 16x",                    // kind
		"20; scattered *; S; Reference; ; ; S; 16x",                    // strategy
		"98A; delimited :* //*; SD; Qualifier|Date; ; generic; S; 16x", // date grammar
	}
	for _, input := range bad {
		if _, err := Layouts(strings.NewReader(input)); err == nil {
			t.Errorf("expected %q to be rejected", input)
		}
	}
}

func TestIndices(t *testing.T) {
	indices, err := Indices("1 3-5 7")
	if err != nil || len(indices) != 5 || indices[1] != 3 || indices[3] != 5 {
		t.Errorf("unexpected indices %v (%v)", indices, err)
	}
	for _, bad := range []string{"a", "3-1", "2-x"} {
		if _, err := Indices(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestFieldsFile(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r, err := testdata.FieldsReader()
	if err != nil {
		t.Fatal(err)
	}
	layouts, err := Layouts(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(layouts) != 27 {
		t.Errorf("expected 27 field definitions, have %d", len(layouts))
	}
}
