package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func dp(y int, m time.Month, day int) *time.Time {
	t := d(y, m, day)
	return &t
}

func TestPriceInterval_ContainsDate(t *testing.T) {
	closed := PriceInterval{EffectiveDate: d(2024, time.January, 1), ToDate: dp(2024, time.June, 30)}

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"before start", d(2023, time.December, 31), false},
		{"on start", d(2024, time.January, 1), true},
		{"inside", d(2024, time.May, 15), true},
		{"on end", d(2024, time.June, 30), true},
		{"after end", d(2024, time.July, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := closed.ContainsDate(tc.date); got != tc.want {
				t.Fatalf("ContainsDate(%v) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}

	t.Run("time of day is ignored", func(t *testing.T) {
		if !closed.ContainsDate(time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC)) {
			t.Fatalf("expected last day to qualify regardless of clock time")
		}
	})

	t.Run("open ended", func(t *testing.T) {
		open := PriceInterval{EffectiveDate: d(2024, time.July, 1)}
		if open.ContainsDate(d(2024, time.June, 30)) {
			t.Fatalf("expected date before start to be excluded")
		}
		if !open.ContainsDate(d(2030, time.January, 1)) {
			t.Fatalf("expected far future date to qualify")
		}
	})
}

func TestPriceInterval_Overlaps(t *testing.T) {
	a := PriceInterval{EffectiveDate: d(2024, time.January, 1), ToDate: dp(2024, time.June, 30)}

	cases := []struct {
		name  string
		other PriceInterval
		want  bool
	}{
		{"disjoint after", PriceInterval{EffectiveDate: d(2024, time.July, 1), ToDate: dp(2024, time.December, 31)}, false},
		{"disjoint before", PriceInterval{EffectiveDate: d(2023, time.January, 1), ToDate: dp(2023, time.December, 31)}, false},
		{"shared boundary day", PriceInterval{EffectiveDate: d(2024, time.June, 30), ToDate: dp(2024, time.December, 31)}, true},
		{"contained", PriceInterval{EffectiveDate: d(2024, time.February, 1), ToDate: dp(2024, time.March, 1)}, true},
		{"open ended overlapping", PriceInterval{EffectiveDate: d(2024, time.March, 1)}, true},
		{"open ended after", PriceInterval{EffectiveDate: d(2024, time.July, 1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(tc.other); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			if got := tc.other.Overlaps(a); got != tc.want {
				t.Fatalf("Overlaps is not symmetric: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTicket_ComputeTotal(t *testing.T) {
	ticket := Ticket{
		WeightIn:  decimal.RequireFromString("10.500"),
		WeightOut: decimal.RequireFromString("2.500"),
		UnitPrice: decimal.RequireFromString("50.00"),
	}

	if net := ticket.NetWeight(); !net.Equal(decimal.RequireFromString("8")) {
		t.Fatalf("unexpected net weight: %s", net)
	}
	if total := ticket.ComputeTotal(); !total.Equal(decimal.RequireFromString("400.00")) {
		t.Fatalf("unexpected total: %s", total)
	}

	t.Run("rounds to cents", func(t *testing.T) {
		ticket := Ticket{
			WeightIn:  decimal.RequireFromString("1.333"),
			WeightOut: decimal.Zero,
			UnitPrice: decimal.RequireFromString("10.00"),
		}
		if total := ticket.ComputeTotal(); !total.Equal(decimal.RequireFromString("13.33")) {
			t.Fatalf("unexpected rounded total: %s", total)
		}
	})
}
