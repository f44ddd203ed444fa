// Package vnd holds the fixed-locale money and date helpers used by the
// booking flow. Amounts are Vietnamese đồng; label dates are the
// "<label> DD/MM/YYYY" strings the mobile clients send.
package vnd

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout     = "02/01/2006"
	hourDateLayout = "15:04 02/01/2006"
)

var (
	ErrEmptyDate     = errors.New("date string is empty")
	ErrMalformedDate = errors.New("malformed date string")
)

// Format renders an amount the way vi-VN currency formatting does:
// dot-grouped integer đồng with a trailing ₫ sign, e.g. "250.000 ₫".
// Fractional đồng are rounded away; there is no subunit.
func Format(amount float64) string {
	rounded := int64(math.Round(amount))

	neg := rounded < 0
	if neg {
		rounded = -rounded
	}

	digits := strconv.FormatInt(rounded, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteString(" ₫")
	return b.String()
}

// ParseLabelDate parses strings shaped like "Mở cửa 01/06/2024": any
// leading label is discarded and the trailing DD/MM/YYYY token is read
// as a calendar date at midnight. A bare "01/06/2024" also parses.
func ParseLabelDate(text string) (time.Time, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return time.Time{}, ErrEmptyDate
	}

	t, err := time.Parse(dateLayout, fields[len(fields)-1])
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}

// ParseHourDate parses the hourly-mode shape "HH:mm DD/MM/YYYY".
func ParseHourDate(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, ErrEmptyDate
	}

	t, err := time.Parse(hourDateLayout, trimmed)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}
