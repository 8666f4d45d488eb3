package onboarding

import "strings"

// Duration is the learning period picked on the onboarding screen. The set is
// closed: the zero value is Week, so a Duration is never unset.
type Duration int

const (
	Week Duration = iota
	Month
	Year
)

var durationNames = [...]string{
	Week:  "Week",
	Month: "Month",
	Year:  "Year",
}

// Durations returns every duration in display order.
func Durations() []Duration {
	return []Duration{Week, Month, Year}
}

// String returns the display literal used in pills and submit messages.
func (d Duration) String() string {
	if !d.Valid() {
		return durationNames[Week]
	}
	return durationNames[d]
}

// Valid reports whether d is one of the declared durations.
func (d Duration) Valid() bool {
	return d >= Week && d <= Year
}

// Next returns the following duration, wrapping Year back to Week.
func (d Duration) Next() Duration {
	return Duration((int(d.normalize()) + 1) % len(durationNames))
}

// Prev returns the preceding duration, wrapping Week back to Year.
func (d Duration) Prev() Duration {
	n := len(durationNames)
	return Duration((int(d.normalize()) + n - 1) % n)
}

// Index returns the zero-based position of d in Durations().
func (d Duration) Index() int {
	return int(d.normalize())
}

func (d Duration) normalize() Duration {
	if !d.Valid() {
		return Week
	}
	return d
}

// ParseDuration converts user input into a Duration. Matching is
// case-insensitive and accepts single-letter shortcuts (w, m, y).
func ParseDuration(input string) (Duration, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "week", "w":
		return Week, nil
	case "month", "m":
		return Month, nil
	case "year", "y":
		return Year, nil
	default:
		return Week, newDurationError(input)
	}
}
