package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var slotRe = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})$`)

// Slot holds the clock time parsed from a booking time-slot label.
type Slot struct {
	Hour   int
	Minute int
}

// ParseSlot extracts the slot start time from a "HH:MM" label.
func ParseSlot(label string) (Slot, error) {
	m := slotRe.FindStringSubmatch(label)
	if m == nil {
		return Slot{}, fmt.Errorf("time slot %q is not in HH:MM format", label)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return Slot{}, fmt.Errorf("time slot %q is not a valid clock time", label)
	}

	return Slot{Hour: hour, Minute: minute}, nil
}

// ParseDate parses a date-only "2006-01-02" string into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD format", s)
	}
	return d.UTC(), nil
}

// NormalizeDate truncates t to UTC midnight, dropping any time component.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SlotStart returns the instant the slot begins on the given date.
func SlotStart(date time.Time, label string) (time.Time, error) {
	slot, err := ParseSlot(label)
	if err != nil {
		return time.Time{}, err
	}
	d := NormalizeDate(date)
	return d.Add(time.Duration(slot.Hour)*time.Hour + time.Duration(slot.Minute)*time.Minute), nil
}

// SlotEnd returns the effective end instant of the slot: its start plus the
// fixed slot duration. This value is derived, never stored, and is the sole
// input to expiry.
func SlotEnd(date time.Time, label string, duration time.Duration) (time.Time, error) {
	start, err := SlotStart(date, label)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(duration), nil
}
