package outing

import (
	"fmt"
	"strings"
	"time"
)

const clockLayout = "15:04"

// ParseClock converts an HH:MM wall-clock string into minutes since midnight.
// Both fields must be two digits.
func ParseClock(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) != len(clockLayout) {
		return 0, fmt.Errorf("%w: %q (expected HH:MM)", ErrParse, value)
	}
	parsed, err := time.Parse(clockLayout, trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (expected HH:MM)", ErrParse, value)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Duration returns the minutes between departure and return. Records without
// a return contribute zero. A return earlier than the departure yields a
// negative value; there is no overnight handling.
func Duration(r Record) (int, error) {
	departure, err := ParseClock(r.Departure)
	if err != nil {
		return 0, fmt.Errorf("departure: %w", err)
	}
	if !r.HasReturn() {
		return 0, nil
	}
	back, err := ParseClock(r.Return)
	if err != nil {
		return 0, fmt.Errorf("return: %w", err)
	}
	return back - departure, nil
}

// UsedMinutes sums Duration over records in order.
func UsedMinutes(records []Record) (int, error) {
	total := 0
	for i, r := range records {
		d, err := Duration(r)
		if err != nil {
			return 0, fmt.Errorf("record %d: %w", i+1, err)
		}
		total += d
	}
	return total, nil
}

// Split breaks minutes into hours and minutes using floor division, so the
// minute part is always in [0, 60) and hours*60+mins == minutes.
func Split(minutes int) (hours, mins int) {
	hours = minutes / 60
	mins = minutes % 60
	if mins < 0 {
		hours--
		mins += 60
	}
	return hours, mins
}
