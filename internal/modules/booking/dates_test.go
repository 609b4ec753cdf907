package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVisitDate_Accepted(t *testing.T) {
	almaty := time.FixedZone("UTC+5", 5*60*60)

	cases := []struct {
		name string
		in   DateInput
		loc  *time.Location
		want time.Time
	}{
		{"day month year", TextDate("05/07/2026"), time.UTC, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)},
		{"single digits", TextDate("5/7/2026"), time.UTC, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)},
		{"day month year in location", TextDate("05/07/2026"), almaty, time.Date(2026, 7, 4, 19, 0, 0, 0, time.UTC)},
		{"iso date", TextDate("2026-07-05"), time.UTC, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", TextDate("2026-07-05T10:30:00Z"), almaty, time.Date(2026, 7, 5, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 offset", TextDate("2026-07-05T10:30:00+02:00"), time.UTC, time.Date(2026, 7, 5, 8, 30, 0, 0, time.UTC)},
		{"local datetime", TextDate("2026-07-05T10:30:00"), time.UTC, time.Date(2026, 7, 5, 10, 30, 0, 0, time.UTC)},
		{"epoch millis", MillisDate(time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC).UnixMilli()), time.UTC, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParseVisitDate(tc.in, tc.loc)
		require.NoError(t, err, tc.name)
		assert.True(t, tc.want.Equal(got), "%s: got %s", tc.name, got)
		assert.Equal(t, time.UTC, got.Location(), tc.name)
	}
}

func TestParseVisitDate_Rejected(t *testing.T) {
	inputs := []DateInput{
		{},
		TextDate(""),
		TextDate("   "),
		TextDate("31/02/2026"),
		TextDate("13/13/2026"),
		TextDate("05-07-2026"),
		TextDate("tomorrow"),
		TextDate("2026/07/05"),
		TextDate("5/7/26"),
		MillisDate(-1),
	}

	for _, in := range inputs {
		_, err := ParseVisitDate(in, time.UTC)
		assert.ErrorIs(t, err, ErrValidation, "input %q", in.String())
	}
}

func TestDateInput_UnmarshalJSON(t *testing.T) {
	var req struct {
		Date DateInput `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"05/07/2026"}`), &req))
	assert.Equal(t, "05/07/2026", req.Date.String())

	require.NoError(t, json.Unmarshal([]byte(`{"date":1783209600000}`), &req))
	assert.Equal(t, "1783209600000", req.Date.String())
	assert.False(t, req.Date.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &req))
	assert.True(t, req.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":true}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"date":1.5}`), &req))
}

func TestIsBeforeToday(t *testing.T) {
	now := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)

	assert.False(t, isBeforeToday(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), now, time.UTC))
	assert.True(t, isBeforeToday(time.Date(2026, 5, 31, 23, 59, 0, 0, time.UTC), now, time.UTC))
	assert.False(t, isBeforeToday(time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), now, time.UTC))
}
