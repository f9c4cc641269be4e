package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	tests := []string{"0", "100", "-575", "1425.50", "0.01", "-0.01", "2000"}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			d := decimal.RequireFromString(tt)

			got := numericToDecimal(decimalToNumeric(d))
			if !got.Equal(d) {
				t.Fatalf("round trip of %s = %s", d, got)
			}
		})
	}
}

func TestNumericToDecimalInvalid(t *testing.T) {
	var got = numericToDecimal(decimalToNumeric(decimal.Decimal{}))
	if !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero, got %s", got)
	}
}

func TestNumericToDecimalNaN(t *testing.T) {
	got := numericToDecimal(pgtype.Numeric{Valid: true, NaN: true})
	if !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero for NaN, got %s", got)
	}
}

func TestTimeToPgTimestamptz(t *testing.T) {
	now := time.Now().UTC()

	ts := timeToPgTimestamptz(now)
	if !ts.Valid {
		t.Fatal("expected valid timestamp")
	}

	if !ts.Time.Equal(now) {
		t.Fatalf("timestamp = %v, want %v", ts.Time, now)
	}
}
