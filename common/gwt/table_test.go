package gwt

import (
	"errors"
	"strconv"
	"testing"
)

func TestStringTableLookup(t *testing.T) {
	table := StringTable{"http://example.com/app", "rpcMethodName", "com.example.Service", "doSomething"}
	for i := 1; i <= len(table); i++ {
		entry, err := table.Lookup(strconv.Itoa(i))
		if err != nil {
			t.Fatal(err)
		}
		if entry != table[i-1] {
			t.Fatalf("Lookup(%d) = %q, want %q", i, entry, table[i-1])
		}
	}
	for _, ref := range []string{"0", strconv.Itoa(len(table) + 1), "-1", "x", ""} {
		if _, err := table.Lookup(ref); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Lookup(%q) err = %v, want ErrIndexOutOfRange", ref, err)
		}
		if table.Resolvable(ref) {
			t.Fatalf("Resolvable(%q) = true", ref)
		}
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		mask int
		want []Flag
	}{
		{0, []Flag{}},
		{1, []Flag{ELIDE_TYPE_NAMES}},
		{2, []Flag{RPC_TOKEN_INCLUDED}},
		{3, []Flag{ELIDE_TYPE_NAMES, RPC_TOKEN_INCLUDED}},
		{4, []Flag{}},
		{0x7, []Flag{ELIDE_TYPE_NAMES, RPC_TOKEN_INCLUDED}},
	}
	for _, tt := range tests {
		got := ParseFlags(tt.mask)
		if len(got) != len(tt.want) {
			t.Fatalf("ParseFlags(%d) = %v, want %v", tt.mask, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("ParseFlags(%d) = %v, want %v", tt.mask, got, tt.want)
			}
		}
	}
	if ELIDE_TYPE_NAMES.String() != "ELIDE_TYPE_NAMES" {
		t.Fatal("wrong flag name")
	}
}

func TestTypePrefix(t *testing.T) {
	if got := typePrefix("com.example.Person/2147218381"); got != "com.example.Person" {
		t.Fatalf("typePrefix = %q", got)
	}
	if got := typePrefix("plain"); got != "plain" {
		t.Fatalf("typePrefix = %q", got)
	}
}
