package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"krypt.co/gwt/common/gwt"
	. "krypt.co/gwt/common/persistance"
	"krypt.co/gwt/common/render"
)

func init() {
	color.NoColor = true
}

const intCall = "7|0|6|http://example.com/app|rpcMethodName|com.example.Service|doSomething|I|java.lang.String|1|2|3|4|1|5|5|42"

const personCall = "7|0|8|http://example.com/app|rpcMethodName|com.example.Service|doSomething" +
	"|com.example.Person/123|Bob|java.lang.Integer/3438268394|java.lang.String" +
	"|1|2|3|4|1|5|5|6|7|30|"

func testOptions(verbosity gwt.Verbosity, shapes gwt.TypeShapes) options {
	if shapes == nil {
		shapes = gwt.TypeShapes{}
	}
	return options{verbosity: verbosity, shapes: shapes, format: render.FORMAT_TEXT}
}

func TestParseOver(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := parseOver(intCall, testOptions(gwt.DEFAULT, nil), strings.NewReader(""), stdout, stderr)
	if err != nil {
		t.Fatal(err)
	}
	want := `Version: 7
Flags: []
URL: http://example.com/app
Name: rpcMethodName
Method: com.example.Service.doSomething
Parameters:
{
    "I": 42
}
`
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOverAsksOracle(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	opts := testOptions(gwt.DEFAULT, nil)
	err := parseOver(personCall, opts, strings.NewReader("2\n"), stdout, stderr)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "How many parameters does com.example.Person have?") {
		t.Fatalf("no prompt on stderr: %q", stderr.String())
	}
	if opts.shapes["com.example.Person"] != 2 {
		t.Fatalf("shape not learned: %v", opts.shapes)
	}
	if !strings.Contains(stdout.String(), `"java.lang.String": "Bob"`) {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}
}

func TestParseOverSilentFailure(t *testing.T) {
	err := parseOver(personCall, testOptions(gwt.SILENT, nil), strings.NewReader("2\n"), &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "com.example.Person") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseOverSavesShapes(t *testing.T) {
	dir, err := ioutil.TempDir("", "gwtparse")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fp := FilePersister{Dir: dir}
	opts := testOptions(gwt.DEFAULT, nil)
	opts.save = true
	opts.persister = fp
	if err = parseOver(personCall, opts, strings.NewReader("2\n"), &bytes.Buffer{}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	stdout := &bytes.Buffer{}
	if err = printClasses(fp, stdout); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), `"com.example.Person": 2`) {
		t.Fatalf("unexpected classes:\n%s", stdout.String())
	}
}

func TestParseClasses(t *testing.T) {
	shapes, err := parseClasses(`{"com.example.Person": 2}`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(gwt.TypeShapes{"com.example.Person": 2}, shapes); diff != "" {
		t.Fatalf("shapes mismatch (-want +got):\n%s", diff)
	}
	for _, bad := range []string{`[1]`, `{"a": "b"}`, `{"a": -2}`, `{`} {
		if _, err = parseClasses(bad); err == nil {
			t.Fatalf("parseClasses(%s) accepted", bad)
		}
	}
	if shapes, err = parseClasses(""); err != nil || len(shapes) != 0 {
		t.Fatalf("empty classes = %v, %v", shapes, err)
	}
}

func TestBatchOver(t *testing.T) {
	in := strings.NewReader(personCall + "\n\n" + personCall + "\nnot a call\n" + intCall + "\n")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	opts := testOptions(gwt.SILENT, gwt.TypeShapes{"com.example.Person": 2})
	opts.format = render.FORMAT_JSON

	err := batchOver(in, opts, nil, stdout, stderr)
	if err == nil || !strings.Contains(err.Error(), "1 of 4") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(stderr.String(), "line 4:") {
		t.Fatalf("failure not reported: %q", stderr.String())
	}
	if got := strings.Count(stdout.String(), `"method": "doSomething"`); got != 3 {
		t.Fatalf("decoded %d calls, want 3:\n%s", got, stdout.String())
	}
}

func TestBatchOverCarriesShapes(t *testing.T) {
	in := strings.NewReader(personCall + "\n" + personCall + "\n")
	opts := testOptions(gwt.DEFAULT, nil)
	stderr := &bytes.Buffer{}

	err := batchOver(in, opts, strings.NewReader("2\n"), &bytes.Buffer{}, stderr)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(stderr.String(), "How many parameters"); got != 1 {
		t.Fatalf("asked %d times, want 1", got)
	}
}
