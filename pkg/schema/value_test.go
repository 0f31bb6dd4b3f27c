package schema

import (
	"encoding/json"
	"testing"
)

func TestValueString(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{StringValue("hello"), "hello"},
		{IntValue(-42), "-42"},
		{FloatValue(2.5), "2.5"},
		{RGBValue(255, 128, 0), "(255, 128, 0)"},
	}
	for _, tc := range cases {
		if got := tc.value.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestValueMarshalJSON(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{StringValue("hello"), `"hello"`},
		{IntValue(7), `7`},
		{FloatValue(0.5), `0.5`},
		{RGBValue(1, 2, 3), `[1,2,3]`},
	}
	for _, tc := range cases {
		got, err := json.Marshal(tc.value)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(got) != tc.want {
			t.Fatalf("Marshal = %s, want %s", got, tc.want)
		}
	}
}

func TestValuesAreComparable(t *testing.T) {
	if StringValue("a") == StringValue("b") {
		t.Fatal("distinct values compared equal")
	}
	if IntValue(1) != IntValue(1) {
		t.Fatal("equal values compared unequal")
	}
}
