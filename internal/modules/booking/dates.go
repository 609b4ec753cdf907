package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateInput is a visit date as the client sent it: D/M/YYYY text, an ISO-8601
// date or date-time, or a JSON number of epoch milliseconds.
type DateInput struct {
	text    string
	millis  int64
	numeric bool
	set     bool
}

func TextDate(s string) DateInput {
	return DateInput{text: s, set: true}
}

func MillisDate(ms int64) DateInput {
	return DateInput{millis: ms, numeric: true, set: true}
}

func (d DateInput) IsZero() bool {
	return !d.set
}

func (d DateInput) String() string {
	if d.numeric {
		return strconv.FormatInt(d.millis, 10)
	}
	return d.text
}

func (d *DateInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = DateInput{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = TextDate(s)
		return nil
	}

	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("date must be a string or epoch milliseconds")
	}
	*d = MillisDate(ms)
	return nil
}

var dayMonthYear = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// Layouts without a zone are read in the booking location.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseVisitDate normalizes every accepted input form to a UTC instant.
// Anything else, including impossible calendar dates like 31/02/2026,
// is an ErrValidation.
func ParseVisitDate(in DateInput, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if in.IsZero() {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if in.numeric {
		if in.millis <= 0 {
			return time.Time{}, fmt.Errorf("%w: invalid date %d", ErrValidation, in.millis)
		}
		return time.UnixMilli(in.millis).UTC(), nil
	}

	s := strings.TrimSpace(in.text)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrValidation)
	}

	if m := dayMonthYear.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		// time.Date normalizes overflow, so 31/02 comes back as March.
		if t.Day() != day || int(t.Month()) != month || t.Year() != year {
			return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
		}
		return t.UTC(), nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: invalid date %q, expected DD/MM/YYYY or YYYY-MM-DD", ErrValidation, s)
}

// isBeforeToday compares calendar days in loc, so a visit later today is allowed.
func isBeforeToday(t, now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	ty, tm, td := t.In(loc).Date()
	ny, nm, nd := now.In(loc).Date()
	return time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).Before(time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC))
}
