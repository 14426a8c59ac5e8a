package domain

import (
	"fmt"
	"time"
)

// Expand lists the instants in [windowStart, windowEnd) at which scheduleTime
// fires, bounded by the schedule's start and end dates. Calendar dates are
// taken in UTC and every date touched by the window is scanned once.
func Expand(schedule *Schedule, scheduleTime ScheduleTime, windowStart, windowEnd time.Time) ([]time.Time, error) {
	matches, err := frequencyMatcher(schedule.Frequency(), schedule.DaysOfWeek())
	if err != nil {
		return nil, err
	}

	windowStart = windowStart.UTC()
	windowEnd = windowEnd.UTC()

	startDate := schedule.StartDate()
	endDate := schedule.EndDate()

	first := midnight(windowStart)
	last := midnight(windowEnd)

	var instants []time.Time

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		candidate := scheduleTime.TimeOfDay().On(day)

		if candidate.Before(windowStart) || !candidate.Before(windowEnd) {
			continue
		}

		if candidate.Before(startDate) {
			continue
		}

		if endDate != nil && candidate.After(*endDate) {
			continue
		}

		if !matches(candidate.Weekday()) {
			continue
		}

		instants = append(instants, candidate)
	}

	return instants, nil
}

func frequencyMatcher(frequency Frequency, days Weekdays) (func(time.Weekday) bool, error) {
	switch frequency {
	case FrequencyDaily:
		return func(time.Weekday) bool { return true }, nil
	case FrequencyWeekly, FrequencySpecificDays:
		return days.Contains, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFrequency, frequency)
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
