package analytics

import (
	"math"
	"testing"

	"jobboard/internal/domain/metrics"
)

const tolerance = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= tolerance }

func TestDeriveRates_Scenario(t *testing.T) {
	got := DeriveRates(metrics.JobMetrics{TotalApplications: 50, Shortlisted: 20, Rejected: 10, Hired: 5})
	if !approx(got.ConversionRate, 10) || !approx(got.ShortlistRate, 40) || !approx(got.RejectionRate, 20) {
		t.Fatalf("unexpected rates: %+v", got)
	}
}

func TestComputeConversionMetrics_ZeroTotal(t *testing.T) {
	for _, total := range []int{0, -3} {
		got := ComputeConversionMetrics(total, 4, 2, 1)
		if got != (DerivedRates{}) {
			t.Fatalf("total=%d expected zero rates, got %+v", total, got)
		}
		if math.IsNaN(got.ConversionRate) || math.IsInf(got.ConversionRate, 0) {
			t.Fatalf("rate must be finite")
		}
	}
}

func TestComputeConversionMetrics_Exact(t *testing.T) {
	cases := []struct{ hired, total int }{
		{1, 3}, {2, 7}, {0, 9}, {13, 13}, {1, 1000},
	}
	for _, tc := range cases {
		got := ComputeConversionMetrics(tc.total, 0, 0, tc.hired).ConversionRate
		want := float64(tc.hired) / float64(tc.total) * 100
		if !approx(got, want) {
			t.Fatalf("hired=%d total=%d got %v want %v", tc.hired, tc.total, got, want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	cases := map[float64]string{
		10:           "10.0%",
		33.333333333: "33.3%",
		66.66:        "66.7%",
		0:            "0.0%",
	}
	for in, want := range cases {
		if got := FormatRate(in); got != want {
			t.Fatalf("FormatRate(%v) = %q want %q", in, got, want)
		}
	}
}
