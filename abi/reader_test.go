package abi

import (
	"strings"
	"testing"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		in   string
		want Type
	}{
		{"bool", Bool()},
		{"string", StringT()},
		{"address", AddressT()},
		{"bytes", BytesT()},
		{"bytes1", FixedBytesT(1)},
		{"bytes32", FixedBytesT(32)},
		{"int", Int(256)},
		{"uint", Uint(256)},
		{"int8", Int(8)},
		{"uint64", Uint(64)},
		{"uint256", Uint(256)},
		{"bool[]", ArrayOf(Bool())},
		{"address[5]", FixedArrayOf(AddressT(), 5)},
		{"bool[2][]", ArrayOf(FixedArrayOf(Bool(), 2))},
		{"bool[][2]", FixedArrayOf(ArrayOf(Bool()), 2)},
		{"bytes32[][]", ArrayOf(ArrayOf(FixedBytesT(32)))},
		{"()", TupleOf()},
		{"(bool)", TupleOf(Bool())},
		{"(bool,string)", TupleOf(Bool(), StringT())},
		{"(bool,(uint8,bytes))[2]", FixedArrayOf(TupleOf(Bool(), TupleOf(Uint(8), BytesT())), 2)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseType(tc.in)
			if err != nil {
				t.Fatalf("ParseType(%q): %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseType(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	cases := []string{
		"",
		"boolean",
		"bytes0",
		"bytes33",
		"uint0",
		"uint7",
		"uint257",
		"int12x",
		"[]",
		"bool[",
		"bool[x]",
		"bool[-1]",
		"(bool",
		"(bool,(string)",
		"bool]",
	}
	for _, in := range cases {
		if _, err := ParseType(in); err == nil {
			t.Errorf("ParseType(%q): expected error", in)
		}
	}
}

func TestParseTypeDepthLimit(t *testing.T) {
	deep := "bool" + strings.Repeat("[]", MaxTypeDepth+1)
	if _, err := ParseType(deep); err == nil {
		t.Fatal("expected nesting depth error")
	}
	ok := "bool" + strings.Repeat("[]", MaxTypeDepth-1)
	if _, err := ParseType(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Canonical names survive a parse/print cycle.
func TestParseTypeCanonicalRoundTrip(t *testing.T) {
	names := []string{
		"bool", "uint256", "int8", "bytes32", "bytes", "string", "address",
		"bool[]", "address[5]", "bool[2][]", "(bool,string)", "(uint256,(bytes,address[]))[3]",
	}
	for _, name := range names {
		typ, err := ParseType(name)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", name, err)
		}
		if got := typ.String(); got != name {
			t.Errorf("round trip %q -> %q", name, got)
		}
	}
}

func FuzzParseType(f *testing.F) {
	f.Add("bool[2][]")
	f.Add("(uint256,(bytes,address[]))[3]")
	f.Add("bytes32")
	f.Fuzz(func(t *testing.T, name string) {
		typ, err := ParseType(name)
		if err != nil {
			return
		}
		// A successfully parsed type must print a name that parses back
		// to the same shape.
		again, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("reparse %q: %v", typ.String(), err)
		}
		if !again.Equal(typ) {
			t.Fatalf("reparse %q changed shape", typ.String())
		}
	})
}
