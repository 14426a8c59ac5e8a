package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekdays is a set of days of the week stored as a bitmask.
type Weekdays uint8

func NewWeekdays(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w |= 1 << uint(d)
	}

	return w
}

// ParseWeekdays accepts full English weekday names or their three letter
// abbreviations, case-insensitively.
func ParseWeekdays(names []string) (Weekdays, error) {
	var w Weekdays

	for _, name := range names {
		d, err := parseWeekday(name)
		if err != nil {
			return 0, err
		}

		w |= 1 << uint(d)
	}

	return w, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidWeekday)
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if n == full || n == full[:3] {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrInvalidWeekday, name)
}

func (w Weekdays) Contains(d time.Weekday) bool {
	return w&(1<<uint(d)) != 0
}

func (w Weekdays) IsEmpty() bool {
	return w == 0
}

func (w Weekdays) Count() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Contains(d) {
			n++
		}
	}

	return n
}

// Names returns the weekday names in Sunday-first order.
func (w Weekdays) Names() []string {
	names := make([]string, 0, w.Count())
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Contains(d) {
			names = append(names, d.String())
		}
	}

	return names
}
