package gwt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPromptOracle(t *testing.T) {
	out := &bytes.Buffer{}
	oracle := NewPromptOracle(strings.NewReader("3\ny\nn\nfour\n"), out)

	count, err := oracle.FieldCount("com.example.Person")
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("count = %d", count)
	}
	if !strings.Contains(out.String(), "How many parameters does com.example.Person have?") {
		t.Fatalf("unexpected prompt %q", out.String())
	}

	isObject, err := oracle.IsObject("com.example.Address/2")
	if err != nil || !isObject {
		t.Fatalf("IsObject = %v, %v", isObject, err)
	}
	isObject, err = oracle.IsObject("Main St")
	if err != nil || isObject {
		t.Fatalf("IsObject = %v, %v", isObject, err)
	}

	if _, err = oracle.FieldCount("com.example.Address"); err == nil {
		t.Fatal("non-integer answer accepted")
	}
}

func TestPromptOracleDrivesParse(t *testing.T) {
	out := &bytes.Buffer{}
	oracle := NewPromptOracle(strings.NewReader("2\ny\n1\n"), out)
	record, err := Parse(nestedCall, TypeShapes{}, DEFAULT, oracle)
	if err != nil {
		t.Fatal(err)
	}
	if len(record.Parameters) != 1 || len(record.Parameters[0].Children) != 2 {
		t.Fatalf("unexpected parameters %v", record.Parameters)
	}
}

func TestPromptOracleEOF(t *testing.T) {
	oracle := NewPromptOracle(strings.NewReader(""), &bytes.Buffer{})
	_, err := Parse(personCall, TypeShapes{}, VERBOSE, oracle)
	if !errors.Is(err, ErrOracle) {
		t.Fatalf("err = %v, want ErrOracle", err)
	}
}

func TestMapOracle(t *testing.T) {
	oracle := MapOracle{"com.example.Person": 2, "com.example.Address": 1}
	record, err := Parse(nestedCall, TypeShapes{}, VERBOSE, oracle)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Parameter{nested}, record.Parameters); diff != "" {
		t.Fatalf("parameters mismatch (-want +got):\n%s", diff)
	}
	if _, err = oracle.FieldCount("com.example.Missing"); err == nil {
		t.Fatal("missing type answered")
	}
}
