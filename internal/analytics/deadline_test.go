package analytics

import (
	"strconv"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func millis(t time.Time) string { return strconv.FormatInt(t.UnixMilli(), 10) }

func TestDaysRemaining_Properties(t *testing.T) {
	if _, ok := DaysRemaining("", fixedNow); ok {
		t.Fatalf("blank deadline must report no value")
	}
	if _, ok := DaysRemaining("not-a-date", fixedNow); ok {
		t.Fatalf("garbage deadline must report no value")
	}
	if d, ok := DaysRemaining(millis(fixedNow.Add(48*time.Hour)), fixedNow); !ok || d != 2 {
		t.Fatalf("expected 2 days, got %d ok=%v", d, ok)
	}
	if d, ok := DaysRemaining(millis(fixedNow.Add(-24*time.Hour)), fixedNow); !ok || d != -1 {
		t.Fatalf("expected -1 days, got %d ok=%v", d, ok)
	}
}

func TestDaysRemaining_Formats(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "20/06/2024", want: 4},
		{in: "20/06/2024 18:30", want: 5},
		{in: "20/6/2024", want: 4},
		{in: "5/7/2024", want: 19},
		{in: "05/07/2024", want: 19},
		{in: "20/6/2024 18:30", want: 5},
		{in: "2024-06-20T12:00:00Z", want: 5},
		{in: "2024-06-20T12:00:00.250Z", want: 5},
		{in: "2024-06-20T17:45:00+05:45", want: 5},
		{in: "2024-06-20T11:59:59", want: 4},
		{in: "2024-06-20 12:00:00", want: 5},
		{in: "2024-06-17", want: 1},
		{in: "  2024-06-16  ", want: 0},
	}
	for _, tc := range cases {
		got, ok := DaysRemaining(tc.in, fixedNow)
		if !ok || got != tc.want {
			t.Fatalf("DaysRemaining(%q) = %d,%v want %d", tc.in, got, ok, tc.want)
		}
	}
}

func TestDaysRemaining_FloorsPartialPastDays(t *testing.T) {
	d, ok := DaysRemaining(millis(fixedNow.Add(-time.Hour)), fixedNow)
	if !ok || d != -1 {
		t.Fatalf("an hour ago should be -1 day, got %d", d)
	}
	d, ok = DaysRemaining(millis(fixedNow.Add(23*time.Hour)), fixedNow)
	if !ok || d != 0 {
		t.Fatalf("23h ahead should be 0 days, got %d", d)
	}
}

func TestDaysRemaining_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("NPT", 5*3600+45*60)
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, loc)
	d, ok := DaysRemaining("2024-06-16", now)
	if !ok || d != 1 {
		t.Fatalf("expected 1 day in local zone, got %d ok=%v", d, ok)
	}
}

func TestParseDeadline_States(t *testing.T) {
	if _, st := ParseDeadline("   ", nil); st != DeadlineNone {
		t.Fatalf("expected none, got %s", st)
	}
	if _, st := ParseDeadline("31/31/2024", nil); st != DeadlineInvalid {
		t.Fatalf("expected invalid, got %s", st)
	}
	at, st := ParseDeadline("1718452800000", nil)
	if st != DeadlineActive || !at.Equal(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected epoch parse: %v %s", at, st)
	}
}

func TestDeadline_Label(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: "No deadline"},
		{in: "soon", want: "Invalid date"},
		{in: millis(fixedNow.Add(-72 * time.Hour)), want: "Expired"},
		{in: millis(fixedNow), want: "0 days left"},
		{in: millis(fixedNow.Add(36 * time.Hour)), want: "1 day left"},
		{in: millis(fixedNow.Add(10 * 24 * time.Hour)), want: "10 days left"},
	}
	for _, tc := range cases {
		if got := EvaluateDeadline(tc.in, fixedNow).Label(); got != tc.want {
			t.Fatalf("label(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}
