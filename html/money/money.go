// Package money formats minor-unit amounts for display.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatter renders an amount given in minor currency units (cents).
type Formatter interface {
	Format(cents int64) string
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(cents int64) string

func (f FormatterFunc) Format(cents int64) string { return f(cents) }

// Fallback prints dollars with two decimals, e.g. "$12.50".
var Fallback Formatter = FormatterFunc(func(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
})

// Or returns f, or Fallback when f is nil.
func Or(f Formatter) Formatter {
	if f == nil {
		return Fallback
	}
	return f
}

// Template formats with a storefront money_format string such as "${{amount}}" or
// "{{amount_with_comma_separator}} €".
type Template string

const (
	placeholderAmount          = "amount"
	placeholderNoDecimals      = "amount_no_decimals"
	placeholderComma           = "amount_with_comma_separator"
	placeholderNoDecimalsComma = "amount_no_decimals_with_comma_separator"
	placeholderApostrophe      = "amount_with_apostrophe_separator"
)

// ParseTemplate returns a Template for format. A blank format yields nil so callers
// fall back to Fallback; a format without a placeholder is rejected.
func ParseTemplate(format string) (Formatter, error) {
	format = strings.TrimSpace(format)
	if format == "" {
		return nil, nil
	}
	if _, _, ok := findPlaceholder(format); !ok {
		return nil, fmt.Errorf("money: format %q has no {{amount}} placeholder", format)
	}
	return Template(format), nil
}

func (t Template) Format(cents int64) string {
	s := string(t)
	start, end, ok := findPlaceholder(s)
	if !ok {
		return Fallback.Format(cents)
	}
	name := strings.TrimSpace(s[start+2 : end-2])
	return s[:start] + formatAmount(cents, name) + s[end:]
}

func findPlaceholder(s string) (start, end int, ok bool) {
	start = strings.Index(s, "{{")
	if start < 0 {
		return 0, 0, false
	}
	rel := strings.Index(s[start:], "}}")
	if rel < 0 {
		return 0, 0, false
	}
	end = start + rel + 2
	if !strings.HasPrefix(strings.TrimSpace(s[start+2:end-2]), placeholderAmount) {
		return 0, 0, false
	}
	return start, end, true
}

func formatAmount(cents int64, name string) string {
	switch name {
	case placeholderNoDecimals:
		return withDelimiters(cents, 0, ",", ".")
	case placeholderComma:
		return withDelimiters(cents, 2, ".", ",")
	case placeholderNoDecimalsComma:
		return withDelimiters(cents, 0, ".", ",")
	case placeholderApostrophe:
		return withDelimiters(cents, 2, "'", ".")
	default:
		return withDelimiters(cents, 2, ",", ".")
	}
}

// withDelimiters rounds cents to precision decimals and groups thousands.
func withDelimiters(cents int64, precision int, thousands, decimal string) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100
	if precision == 0 && frac >= 50 {
		whole++
	}

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(thousands)
		}
		b.WriteRune(r)
	}
	if precision > 0 {
		b.WriteString(decimal)
		b.WriteString(fmt.Sprintf("%02d", frac))
	}
	return b.String()
}
