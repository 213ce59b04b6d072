package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in     string
		symbol string
		want   string
	}{
		{"0", "€", "0.00 €"},
		{"1234.5", "€", "1,234.50 €"},
		{"-1234.5", "€", "-1,234.50 €"},
		{"1000000", "", "1,000,000.00"},
		{"33.333", "€", "33.33 €"},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.in)
		if got := FormatMoney(d, tc.symbol); got != tc.want {
			t.Errorf("FormatMoney(%s, %q) = %q, want %q", tc.in, tc.symbol, got, tc.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(decimal.RequireFromString("50"), "€"); got != "+50.00 €" {
		t.Errorf("positive amounts carry an explicit sign, got %q", got)
	}
	if got := FormatSignedMoney(decimal.RequireFromString("-50"), "€"); got != "-50.00 €" {
		t.Errorf("negative amounts keep their sign, got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.925); got != "92.5%" {
		t.Errorf("FormatPercent(0.925) = %q, want 92.5%%", got)
	}
	if got := FormatPercent(0); got != "0.0%" {
		t.Errorf("FormatPercent(0) = %q, want 0.0%%", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}
