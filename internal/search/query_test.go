package search

import (
	"reflect"
	"testing"
)

func TestParseYear(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "2015", want: 2015, ok: true},
		{in: " 1999 ", want: 1999, ok: true},
		{in: "2015-04-01", want: 2015, ok: true},
		{in: "2015/04", want: 2015, ok: true},
		{in: "", ok: false},
		{in: "n/a", ok: false},
		{in: "-2015", ok: false},
		{in: "20a5", ok: false},
		{in: "12345678901", ok: false},
	}
	for _, tc := range cases {
		got, ok := ParseYear(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseYear(%q) = %d,%v want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestKeywords(t *testing.T) {
	got := Keywords("  Go  backend GO\tRemote ")
	want := []string{"go", "backend", "remote"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if got := Keywords(""); len(got) != 0 {
		t.Fatalf("expected no keywords, got %v", got)
	}
}

func TestNormalizeQuery(t *testing.T) {
	if got := NormalizeQuery("  Software  Dev "); got != "software  dev" {
		t.Fatalf("got %q", got)
	}
}
