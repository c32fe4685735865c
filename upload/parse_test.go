package upload

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseCSV_FirstColumnRegardlessOfHeader(t *testing.T) {
	t.Parallel()

	in := "customer,other\nc1,x\n,y\nc2,z\n"
	f, err := ParseCSV(strings.NewReader(in), "ids.CSV", "shopper_id")
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	if f.ColumnName != "shopper_id" {
		t.Fatalf("column name must come from caller, got %q", f.ColumnName)
	}
	if !reflect.DeepEqual(f.ColumnSelectedValues, []string{"c1", "c2"}) {
		t.Fatalf("unexpected values %v", f.ColumnSelectedValues)
	}
	if !f.HasBeenModified {
		t.Fatalf("expected modified")
	}
}

func TestParseCSV_RejectsExtension(t *testing.T) {
	t.Parallel()

	_, err := ParseCSV(strings.NewReader("id\n1\n"), "ids.xlsx", "interaction_id")
	if !errors.Is(err, ErrNotCSV) {
		t.Fatalf("expected ErrNotCSV, got %v", err)
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	t.Parallel()

	f, err := ParseCSV(strings.NewReader("interaction_id\n"), "ids.csv", "interaction_id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.HasBeenModified || len(f.ColumnSelectedValues) != 0 {
		t.Fatalf("expected empty unmodified filter, got %+v", f)
	}
}

func TestParsePasted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []string
	}{
		{in: "a,b, c", want: []string{"a", "b", " c"}},
		{in: "a b\nc", want: []string{"a", "b", "c"}},
		{in: "a,,a", want: []string{"a", "", "a"}},
		{in: "", want: []string{}},
	}
	for _, tc := range cases {
		f := ParsePasted(tc.in, "interaction_id")
		if !reflect.DeepEqual(f.ColumnSelectedValues, tc.want) {
			t.Fatalf("ParsePasted(%q) = %q, want %q", tc.in, f.ColumnSelectedValues, tc.want)
		}
		if f.HasBeenModified != (len(tc.want) > 0) {
			t.Fatalf("ParsePasted(%q) modified=%v", tc.in, f.HasBeenModified)
		}
	}
}

func TestParseNamedValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want []string
	}{
		{raw: `["a","b"]`, want: []string{"a", "b"}},
		{raw: `"a,b,c"`, want: []string{"a", "b", "c"}},
		{raw: `[1, 2]`, want: []string{"1", "2"}},
		{raw: `null`, want: []string{}},
		{raw: `""`, want: []string{}},
	}
	for _, tc := range cases {
		got, err := ParseNamedValues(json.RawMessage(tc.raw))
		if err != nil {
			t.Fatalf("ParseNamedValues(%s) error: %v", tc.raw, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseNamedValues(%s) = %v, want %v", tc.raw, got, tc.want)
		}
	}

	if _, err := ParseNamedValues(json.RawMessage(`{"a":1}`)); err == nil {
		t.Fatalf("expected error for object payload")
	}
}
