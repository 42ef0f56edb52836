package themes

import (
	"strings"
	"time"
)

// Months lists the twelve month theme slugs in calendar order.
var Months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthName returns the month theme slug for the given time.
func MonthName(t time.Time) string {
	return strings.ToLower(t.Month().String())
}

// IsMonth reports whether name is one of the twelve month slugs.
func IsMonth(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, month := range Months {
		if name == month {
			return true
		}
	}
	return false
}
