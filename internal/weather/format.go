package weather

import (
	"strings"
	"time"
)

// Offset from an uppercase ASCII letter to its Unicode regional indicator.
// Two indicators in a row render as a country flag emoji.
const regionalIndicatorOffset = 127397

// CountryFlag converts a two-letter ISO country code into the
// regional-indicator pair that renders as the country's flag.
func CountryFlag(countryCode string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(countryCode) {
		b.WriteRune(r + regionalIndicatorOffset)
	}
	return b.String()
}

// DayLabel labels a forecast entry: the first entry is always "Today"
// regardless of its calendar date, the rest get abbreviated weekday names.
// An unparsable date falls back to the raw string.
func DayLabel(index int, date string) string {
	if index == 0 {
		return "Today"
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Weekday().String()[:3]
}
