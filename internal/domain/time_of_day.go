package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, at second precision.
type TimeOfDay struct {
	offset time.Duration
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	return TimeOfDay{
		offset: time.Duration(hour)*time.Hour +
			time.Duration(minute)*time.Minute +
			time.Duration(second)*time.Second,
	}, nil
}

func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}

	return t
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return NewTimeOfDay(parsed.Hour(), parsed.Minute(), parsed.Second())
		}
	}

	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

// TimeOfDayFromDuration converts an offset since midnight, as stored in a
// time column, back into a TimeOfDay.
func TimeOfDayFromDuration(d time.Duration) (TimeOfDay, error) {
	if d < 0 || d >= 24*time.Hour {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	return TimeOfDay{offset: d.Truncate(time.Second)}, nil
}

func (t TimeOfDay) Hour() int {
	return int(t.offset / time.Hour)
}

func (t TimeOfDay) Minute() int {
	return int(t.offset % time.Hour / time.Minute)
}

func (t TimeOfDay) Second() int {
	return int(t.offset % time.Minute / time.Second)
}

func (t TimeOfDay) SinceMidnight() time.Duration {
	return t.offset
}

// On returns the instant at this time of day on the UTC calendar date of day.
func (t TimeOfDay) On(day time.Time) time.Time {
	d := day.UTC()

	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Add(t.offset)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
