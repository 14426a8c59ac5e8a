package domain

import (
	"fmt"
	"strings"
)

type Frequency string

const (
	FrequencyDaily        Frequency = "Daily"
	FrequencyWeekly       Frequency = "Weekly"
	FrequencySpecificDays Frequency = "SpecificDays"
)

// Frequencies lists every frequency the expander handles. A value added here
// without a branch in Expand fails TestExpandHandlesEveryFrequency.
func Frequencies() []Frequency {
	return []Frequency{
		FrequencyDaily,
		FrequencyWeekly,
		FrequencySpecificDays,
	}
}

func NewFrequency(f string) (Frequency, error) {
	for _, known := range Frequencies() {
		if strings.EqualFold(f, string(known)) {
			return known, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedFrequency, f)
}

func (f Frequency) RequiresDaysOfWeek() bool {
	return f == FrequencyWeekly || f == FrequencySpecificDays
}

func (f Frequency) String() string {
	return string(f)
}
