package utils

import (
	"fmt"
	"math"
	"strings"
)

// RoundCurrency rounds a monetary amount to 2 decimal places. Internal
// calculations keep full precision; only values leaving for display go
// through here.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatCurrency formats a float64 value as a dollar string with thousands
// separators. Example: 1234.5 -> "$1,234.50"
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", RoundCurrency(amount))

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return sign + "$" + strings.Join(groups, ",") + "." + decimalPart
}
