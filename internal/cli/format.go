// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with thousands grouping, two decimals, and a
// trailing currency symbol. e.g., 1234.5 -> "1,234.50 €"
func FormatMoney(d decimal.Decimal, symbol string) string {
	s := FormatAmount(d)
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// FormatAmount renders an amount with grouping and two decimals, no symbol.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	out := groupThousands(whole) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatSignedMoney is FormatMoney with an explicit sign on positive values,
// for transfer legs and deltas.
func FormatSignedMoney(d decimal.Decimal, symbol string) string {
	s := FormatMoney(d, symbol)
	if d.Sign() > 0 {
		return "+" + s
	}
	return s
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
