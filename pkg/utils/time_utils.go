// utils/timeutil.go
package utils

import (
	"fmt"
	"time"
)

// DateLayout is how trip dates travel over the API.
const DateLayout = "2006-01-02"

// Brazil time location (BRT, -03:00)
var brLoc = func() *time.Location {
	if loc, err := time.LoadLocation("America/Sao_Paulo"); err == nil {
		return loc
	}
	return time.FixedZone("BRT", -3*3600)
}()

var now = time.Now

// TodayBR is midnight of the current calendar day in Brazil.
func TodayBR() time.Time {
	n := now().In(brLoc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, brLoc)
}

// ParseDateBR reads a DateLayout day as midnight in Brazil.
func ParseDateBR(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, brLoc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must look like 2025-01-31", ErrInvalidInput, s)
	}
	return t, nil
}

func FormatDateBR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(brLoc).Format(DateLayout)
}

// AddDaysBR keeps the wall clock across DST changes.
func AddDaysBR(t time.Time, days int) time.Time {
	return t.In(brLoc).AddDate(0, 0, days)
}
