package nic

import (
	"fmt"
	"strings"
	"time"
)

// Gender is derived from the day-of-year window, never from the suffix letter.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Record holds the semantic fields decoded from an accepted NIC number. A
// Record is only ever returned fully populated; decoding failures return nil.
type Record struct {
	// Year is the four-digit birth year as written in the identifier.
	Year int `json:"year"`

	// DayOfYear is the birth day within Year, 1-366, with the female offset
	// of 500 already removed.
	DayOfYear int `json:"day_of_year"`

	// Gender is GenderMale for day segments 1-366 and GenderFemale for
	// 501-866.
	Gender Gender `json:"gender"`

	// Serial is the trailing serial segment: two digits in the old format,
	// five in the new. Kept as a string to preserve leading zeros.
	Serial string `json:"serial"`

	// Suffix is "V" or "X" for old-format numbers and empty for new-format
	// ones. It is carried verbatim and never validated beyond its position.
	Suffix string `json:"suffix,omitempty"`

	// Format records which layout the identifier used.
	Format Format `json:"format"`
}

// BirthDate resolves Year and DayOfYear into a civil date (UTC midnight).
// It returns ErrDayNotInYear when the day number does not exist in the birth
// year, which can only happen for day 366 of a non-leap year.
func (r *Record) BirthDate() (time.Time, error) {
	d := time.Date(r.Year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, r.DayOfYear-1)
	if d.Year() != r.Year {
		return time.Time{}, fmt.Errorf("%w: day %d of %d", ErrDayNotInYear, r.DayOfYear, r.Year)
	}
	return d, nil
}

// Age returns the holder's age in completed years at the given instant.
func (r *Record) Age(at time.Time) (int, error) {
	born, err := r.BirthDate()
	if err != nil {
		return 0, err
	}
	age := at.Year() - born.Year()
	if born.AddDate(age, 0, 0).After(at) {
		age--
	}
	return age, nil
}

// Mask renders a redacted form that hides the birth-derived prefix while
// keeping the serial and suffix, e.g. "*******45V". The result has the same
// length as the original identifier.
func (r *Record) Mask() string {
	return strings.Repeat("*", 7) + r.Serial + r.Suffix
}

// String renders the decoded fields in one line, e.g.
// "1998 day 123 male, serial 45, old format (V)".
func (r *Record) String() string {
	s := fmt.Sprintf("%d day %d %s, serial %s, %s format", r.Year, r.DayOfYear, r.Gender, r.Serial, r.Format)
	if r.Suffix != "" {
		s += fmt.Sprintf(" (%s)", r.Suffix)
	}
	return s
}
