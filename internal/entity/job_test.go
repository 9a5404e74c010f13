package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/DimaSavchenko/brokerage/internal/entity"
)

func TestDepositCeiling(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name        string
		outstanding string
		wantCeiling string
	}{
		{
			name:        "zero outstanding means zero ceiling",
			outstanding: "0",
			wantCeiling: "0",
		},
		{
			name:        "quarter of outstanding",
			outstanding: "1000",
			wantCeiling: "250",
		},
		{
			name:        "small outstanding",
			outstanding: "0.40",
			wantCeiling: "0.10",
		},
		{
			name:        "truncates to cents",
			outstanding: "100.10",
			wantCeiling: "25.02",
		},
		{
			name:        "big outstanding",
			outstanding: "1000000000.99",
			wantCeiling: "250000000.24",
		},
		{
			name:        "negative outstanding clamps to zero",
			outstanding: "-10",
			wantCeiling: "0",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outstanding := decimal.RequireFromString(tt.outstanding)
			want := decimal.RequireFromString(tt.wantCeiling)

			got := entity.DepositCeiling(outstanding)
			if !got.Equal(want) {
				t.Errorf("DepositCeiling(%s) = %s, want %s", outstanding, got, want)
			}
		})
	}
}

func TestDepositCeiling_NeverExceedsQuarter(t *testing.T) {
	t.Parallel()

	// Outstanding sums whose exact quarter falls on a half cent. The
	// ceiling must stay at or below the exact quarter, so an amount one
	// truncation step above it is always over the limit.
	for _, outstanding := range []string{"100.10", "0.10", "0.02", "333.34", "999999.98"} {
		out := decimal.RequireFromString(outstanding)

		exact := out.Mul(decimal.New(25, 0)).Div(decimal.New(100, 0))
		ceiling := entity.DepositCeiling(out)

		if ceiling.GreaterThan(exact) {
			t.Errorf("DepositCeiling(%s) = %s, above the exact quarter %s", out, ceiling, exact)
		}

		overCap := ceiling.Add(decimal.New(1, -2))
		if !overCap.GreaterThan(exact) {
			t.Errorf("amount %s should exceed the exact quarter %s of %s", overCap, exact, out)
		}
	}
}
