package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/signadot/cfgdiff"
	"github.com/signadot/cfgdiff/change"
	"github.com/signadot/cfgdiff/pathdiff"
	"github.com/signadot/cfgdiff/textdiff"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

const (
	xmlLeft   = `<cfg><port id="1" speed="1G"/><port id="2"/></cfg>`
	xmlRight  = `<cfg><port id="1" speed="10G"/><port id="3"/></cfg>`
	jsonLeft  = `{"a":{"b":1}}`
	jsonRight = `{"a":{"b":2,"c":3}}`
	textLeft  = "one\ntwo\nthree"
	textRight = "one\nthree\nfour"
)

func compare(t *testing.T, left, right string) *cfgdiff.Result {
	t.Helper()
	res, err := cfgdiff.Compare(left, right)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

type textTest struct {
	name        string
	left, right string
	want        string
}

var textTests = []textTest{
	{
		name:  "tree",
		left:  xmlLeft,
		right: xmlRight,
		want: `=== CONFIG COMPARISON SUMMARY ===
Removed Elements : 1
Added Elements   : 1
Field Changes    : 1
Total Differences: 3

=== REMOVED ELEMENTS (1) ===

[-] cfg/port[2]
    <port id="2"/>

=== ADDED ELEMENTS (1) ===

[+] cfg/port[3]
    <port id="3"/>

=== FIELD CHANGES (1) ===

  cfg/port[1]
    [~] @speed  was: 1G  now: 10G
`,
	},
	{
		name:  "paths",
		left:  jsonLeft,
		right: jsonRight,
		want: `=== CONFIG COMPARISON SUMMARY ===
Added            : 1
Removed          : 0
Modified         : 1
Unchanged        : 0
Total Differences: 2

[~] a.b (number)  was: 1  now: 2
[+] a.c (number)  now: 3
`,
	},
	{
		name:  "lines",
		left:  textLeft,
		right: textRight,
		want: `  one
- two
  three
+ four
`,
	},
	{
		name:  "fallback",
		left:  "<a>",
		right: "<a/>",
		want: `=== COMPARED AS TEXT: left document is text, right document is xml ===

- <a>
+ <a/>
`,
	},
}

func TestText(t *testing.T) {
	for _, tc := range textTests {
		buf := &bytes.Buffer{}
		if err := Text(buf, compare(t, tc.left, tc.right), nil); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
			t.Errorf("%s: report mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestTextNoColors(t *testing.T) {
	res := compare(t, xmlLeft, xmlRight)
	plain, colored := &bytes.Buffer{}, &bytes.Buffer{}
	if err := Text(plain, res, nil); err != nil {
		t.Fatal(err)
	}
	if err := Text(colored, res, NoColors()); err != nil {
		t.Fatal(err)
	}
	if plain.String() != colored.String() {
		t.Errorf("NoColors changed the report")
	}
}

func TestCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := CSV(buf, compare(t, xmlLeft, xmlRight)); err != nil {
		t.Fatal(err)
	}
	want := "Kind,Scope,Path,Field,Old Value,New Value\r\n" +
		"changed,attribute,cfg/port[1],speed,1G,10G\r\n" +
		`removed,element,cfg/port[2],,"<port id=""2""/>",` + "\r\n" +
		`added,element,cfg/port[3],,,"<port id=""3""/>"` + "\r\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := CSV(buf, compare(t, jsonLeft, jsonRight)); err != nil {
		t.Fatal(err)
	}
	want = "Path,Type,Value (left),Value (right),Status\r\n" +
		"a.b,number,1,2,modified\r\n" +
		"a.c,number,,3,added\r\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := CSV(buf, compare(t, textLeft, textRight)); err != nil {
		t.Fatal(err)
	}
	want = "Kind,Left Line,Left,Right Line,Right\r\n" +
		"unchanged,1,one,1,one\r\n" +
		"deletion,2,two,,\r\n" +
		"unchanged,3,three,2,three\r\n" +
		"addition,,,3,four\r\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestSideBySide(t *testing.T) {
	buf := &bytes.Buffer{}
	rows := textdiff.Align(textLeft, textRight)
	if err := SideBySide(buf, rows, 33, nil); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"   1 " + "one       " + " | " + "   1 " + "one",
		"   2 " + "two       " + " < " + "     ",
		"   3 " + "three     " + " | " + "   2 " + "three",
		"     " + "          " + " > " + "   3 " + "four",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("side by side mismatch (-want +got):\n%s", diff)
	}
}

func TestSideBySideCut(t *testing.T) {
	buf := &bytes.Buffer{}
	rows := []change.Line{
		change.Both(change.Modification, 1, "0123456789abc", 1, "0123456789abd"),
		change.Both(change.Unchanged, 2, "é\tx", 2, "é\tx"),
	}
	if err := SideBySide(buf, rows, 33, nil); err != nil {
		t.Fatal(err)
	}
	want := "   1 0123456789 |    1 0123456789\n" +
		"   2 é    x     |    2 é    x\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("side by side mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := JSON(buf, compare(t, jsonLeft, jsonRight)); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Format  string          `json:"format"`
		Counts  change.Counts   `json:"counts"`
		Changes []change.Change `json:"changes"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Format != "json" {
		t.Errorf("format %q", doc.Format)
	}
	if diff := cmp.Diff(change.Counts{Added: 1, Changed: 1}, doc.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	want := []change.Change{
		change.Modify(change.ValueScope, "a.b", nil, "1", "2"),
		change.Add(change.ValueScope, "a.c", nil, "3"),
	}
	if diff := cmp.Diff(want, doc.Changes); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := YAML(buf, compare(t, xmlLeft, xmlRight)); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Format string        `yaml:"format"`
		Counts change.Counts `yaml:"counts"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Format != "xml" {
		t.Errorf("format %q", doc.Format)
	}
	if diff := cmp.Diff(change.Counts{Added: 1, Removed: 1, Changed: 1}, doc.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries(t *testing.T) {
	es := []pathdiff.Entry{
		{Path: "a.b", Type: pathdiff.ScalarType, Scalar: "number", Value: "1"},
		{Path: "name", Type: pathdiff.ScalarType, Scalar: "string", Value: "x"},
	}
	buf := &bytes.Buffer{}
	if err := Entries(buf, es, nil); err != nil {
		t.Fatal(err)
	}
	want := "a.b   number  1\nname  string  \"x\"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	buf.Reset()
	if err := EntriesCSV(buf, es); err != nil {
		t.Fatal(err)
	}
	want = "Path,Type,Value\r\na.b,number,1\r\nname,string,\"\"\"x\"\"\"\r\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONKeepsMarkup(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := JSON(buf, compare(t, xmlLeft, xmlRight)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, `"oldValue": "<port id=\"2\"/>"`) {
		t.Errorf("removed element payload not exported as written:\n%s", got)
	}
	if strings.Contains(got, `\u003c`) {
		t.Errorf("markup escaped:\n%s", got)
	}
}
