/*
Package generator is a generator for the catalogue of field layouts.

Layouts are generated from a field definition file: "fields.txt". Every line
describes one field type: its grammar, the kinds and labels of its components
and its patterns. See package internal/fielddef for the format.

Usage

The generator has just one option, a "verbose" flag.

   generator [-v]

This reads "fields.txt" and creates a file "catalogue.go" in the current
directory. It is designed to be called from the "field" directory, usually
with go generate.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/internal/fielddef"
	"github.com/npillmayer/swiftmt/pattern"
)

var logger = log.New(os.Stderr, "catalogue generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// Load the field definitions, sorted by tag name.
func loadFieldDefinitions(name string) ([]*swiftmt.Layout, error) {
	if verbose {
		logger.Printf("reading %s", name)
	}
	defer timeTrack(time.Now(), "loading "+name)
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	layouts := arraylist.New()
	var buildErr error
	err = fielddef.Parse(f, func(token *fielddef.Token) {
		l, err := fielddef.Build(token)
		if err != nil {
			if buildErr == nil {
				buildErr = err
			}
			return
		}
		if l.ValidatorPattern != "" {
			if err := pattern.Check(l.ValidatorPattern); err != nil {
				if buildErr == nil {
					buildErr = fmt.Errorf("line %d: field %s: %w", token.LineNo, l.Name, err)
				}
				return
			}
		}
		layouts.Add(l)
	})
	if err != nil {
		return nil, err
	}
	if buildErr != nil {
		return nil, buildErr
	}
	layouts.Sort(func(a, b interface{}) int {
		return strings.Compare(a.(*swiftmt.Layout).Name, b.(*swiftmt.Layout).Name)
	})
	result := make([]*swiftmt.Layout, 0, layouts.Size())
	it := layouts.Iterator()
	for it.Next() {
		l := it.Value().(*swiftmt.Layout)
		if n := len(result); n > 0 && result[n-1].Name == l.Name {
			return nil, fmt.Errorf("duplicate definition of field %s", l.Name)
		}
		result = append(result, l)
	}
	return result, nil
}

// --- Templates --------------------------------------------------------

var header = `// Code generated by field/internal/generator from fields.txt. DO NOT EDIT.

package field

import "github.com/npillmayer/swiftmt"

// catalogue returns the layouts of all predefined field types, sorted by name.
func catalogue() []*swiftmt.Layout {
	return []*swiftmt.Layout{
`

var templateLayout = `{
	Name: {{quote .Name}},
	Components: []swiftmt.ComponentSpec{
{{range .Components}}		{{spec .}},
{{end}}	},
	Grammar:          {{grammar .Grammar}},
	ParserPattern:    {{quote .ParserPattern}},
	ValidatorPattern: {{quote .ValidatorPattern}},
{{if .Dates}}	Dates: swiftmt.{{.Dates}},
{{end}}{{if .Times}}	Times: swiftmt.{{.Times}},
{{end}}{{if .Generic}}	Generic: true,
{{end}}{{if .CondQualifier}}	CondQualifier: {{.CondQualifier}},
{{end}}{{if .DSS}}	DSS: {{.DSS}},
{{end}}{{if .NoSerializer}}	NoSerializer: true,
{{end}}},
`

var footer = `	}
}
`

var kindNames = map[swiftmt.Kind]string{
	swiftmt.String:   "String",
	swiftmt.Number:   "Number",
	swiftmt.Amount:   "Amount",
	swiftmt.Date:     "Date",
	swiftmt.Time:     "Time",
	swiftmt.Offset:   "Offset",
	swiftmt.Currency: "Currency",
	swiftmt.BIC:      "BIC",
	swiftmt.Code:     "Code",
}

var strategyNames = map[swiftmt.Strategy]string{
	swiftmt.FixedWidth:   "FixedWidth",
	swiftmt.Delimited:    "Delimited",
	swiftmt.AlphaNumeric: "AlphaNumeric",
	swiftmt.Narrative:    "Narrative",
	swiftmt.Repeating:    "Repeating",
}

// Helper functions for templates
var funcMap = template.FuncMap{
	"quote": strconv.Quote,
	"spec": func(c swiftmt.ComponentSpec) string {
		var parts []string
		if c.Label != "" {
			parts = append(parts, "Label: "+strconv.Quote(c.Label))
		}
		if len(c.Aliases) > 0 {
			q := make([]string, len(c.Aliases))
			for i, a := range c.Aliases {
				q[i] = strconv.Quote(a)
			}
			parts = append(parts, "Aliases: []string{"+strings.Join(q, ", ")+"}")
		}
		parts = append(parts, "Kind: swiftmt."+kindNames[c.Kind])
		if c.Optional {
			parts = append(parts, "Optional: true")
		}
		return "{" + strings.Join(parts, ", ") + "}"
	},
	"grammar": func(g swiftmt.Grammar) string {
		parts := []string{"Strategy: swiftmt." + strategyNames[g.Strategy]}
		if len(g.Widths) > 0 {
			w := make([]string, len(g.Widths))
			for i, width := range g.Widths {
				w[i] = strconv.Itoa(width)
			}
			parts = append(parts, "Widths: []int{"+strings.Join(w, ", ")+"}")
		}
		if len(g.Segments) > 0 {
			s := make([]string, len(g.Segments))
			for i, seg := range g.Segments {
				s[i] = segmentLiteral(seg)
			}
			parts = append(parts, "Segments: []swiftmt.Segment{"+strings.Join(s, ", ")+"}")
		}
		if g.Span > 0 {
			parts = append(parts, "Span: "+strconv.Itoa(g.Span))
		}
		if g.Marker != "" {
			parts = append(parts, "Marker: "+strconv.Quote(g.Marker))
		}
		if g.Lines > 0 {
			parts = append(parts, "Lines: "+strconv.Itoa(g.Lines))
		}
		if g.Delim != "" {
			parts = append(parts, "Delim: "+strconv.Quote(g.Delim))
		}
		return "swiftmt.Grammar{" + strings.Join(parts, ", ") + "}"
	},
}

func segmentLiteral(seg swiftmt.Segment) string {
	var parts []string
	if seg.Sep != "" {
		parts = append(parts, "Sep: "+strconv.Quote(seg.Sep))
	}
	if seg.Width > 0 {
		parts = append(parts, "Width: "+strconv.Itoa(seg.Width))
	}
	if seg.Span > 0 {
		parts = append(parts, "Span: "+strconv.Itoa(seg.Span))
	}
	if seg.Bracketed {
		parts = append(parts, "Bracketed: true")
	}
	if seg.FromEnd {
		parts = append(parts, "FromEnd: true")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func generateCatalogue(layouts []*swiftmt.Layout) []byte {
	defer timeTrack(time.Now(), "generate catalogue")
	var b bytes.Buffer
	b.WriteString(header)
	t := makeTemplate("layout", templateLayout)
	for _, l := range layouts {
		checkFatal(t.Execute(&b, l))
	}
	b.WriteString(footer)
	src, err := format.Source(b.Bytes())
	checkFatal(err)
	return src
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	layouts, err := loadFieldDefinitions("fields.txt")
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d field layouts\n", len(layouts))
	}
	f, ioerr := os.Create("catalogue.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	_, err = w.Write(generateCatalogue(layouts))
	checkFatal(err)
	checkFatal(w.Flush())
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
