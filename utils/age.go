package utils

import (
	"errors"
	"fmt"
	"time"
)

// AgeInMonths returns the whole months elapsed since birthdate.
func AgeInMonths(birthdate, now time.Time) (int, error) {
	if birthdate.After(now) {
		return 0, errors.New("birthdate is in the future")
	}

	months := (now.Year()-birthdate.Year())*12 + int(now.Month()) - int(birthdate.Month())
	if now.Day() < birthdate.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months, nil
}

// AgeLabel formats an age in months the way the dashboard displays it.
func AgeLabel(months int) string {
	switch {
	case months < 1:
		return "newborn"
	case months < 24:
		return fmt.Sprintf("%d months", months)
	default:
		years := months / 12
		rest := months % 12
		if rest == 0 {
			return fmt.Sprintf("%d years", years)
		}
		return fmt.Sprintf("%d years %d months", years, rest)
	}
}
