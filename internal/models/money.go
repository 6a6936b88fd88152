package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in minor units. All arithmetic stays in
// integers; amounts only meet a decimal separator at display time.
type Cents int64

// ParseAmount converts a decimal string such as "20.00" or "5,5" into
// minor units. An empty or unparseable amount is an error; callers that
// want lenient behavior decide their own fallback.
func ParseAmount(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	// Accept both "." and "," as the decimal separator in config files.
	s = strings.ReplaceAll(s, ",", ".")

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	total := units*100 + frac
	if neg {
		total = -total
	}
	return Cents(total), nil
}

// Format renders the amount with the given currency symbol and decimal
// separator, e.g. Cents(5500).Format("€", ",") == "€ 55,00".
func (c Cents) Format(symbol, decimalSep string) string {
	neg := c < 0
	v := int64(c)
	if neg {
		v = -v
	}
	out := fmt.Sprintf("%s %d%s%02d", symbol, v/100, decimalSep, v%100)
	if neg {
		return "-" + out
	}
	return out
}
