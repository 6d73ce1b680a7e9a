// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package expand_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahale/icalgo/expand"
	"github.com/ahale/icalgo/model"
	"github.com/ahale/icalgo/rrule"
)

func mustRRule(t *testing.T, s string) *rrule.RRule {
	t.Helper()
	r, err := rrule.ParseRRule(s)
	require.NoError(t, err)
	return r
}

func TestExpandWeeklyCount(t *testing.T) {
	dtstart := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC) // Tuesday
	r := mustRRule(t, "FREQ=WEEKLY;COUNT=10;BYDAY=TU,TH")

	got := expand.Expand(dtstart, r, time.Time{})
	require.Len(t, got, 10)
	assert.True(t, got[0].Equal(dtstart))
	for _, d := range got {
		wd := d.Weekday()
		assert.True(t, wd == time.Tuesday || wd == time.Thursday)
	}
}

func TestExpandMonthlyLastFriday(t *testing.T) {
	dtstart := time.Date(2024, 1, 26, 17, 0, 0, 0, time.UTC) // last Friday of Jan 2024
	r := mustRRule(t, "FREQ=MONTHLY;BYDAY=-1FR;UNTIL=20240601T000000Z")

	got := expand.Expand(dtstart, r, time.Time{})
	for _, d := range got {
		assert.Equal(t, time.Friday, d.Weekday())
	}
	require.NotEmpty(t, got)
}

func TestExpandYearlyFeb29(t *testing.T) {
	dtstart := time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)
	r := mustRRule(t, "FREQ=YEARLY;UNTIL=20300101T000000Z")

	got := expand.Expand(dtstart, r, time.Time{})
	for _, d := range got {
		assert.Equal(t, time.February, d.Month())
		assert.Equal(t, 29, d.Day())
	}
	// Leap years only: 2020, 2024, 2028.
	assert.Len(t, got, 3)
}

func TestOccurrencesRDateAndEXDate(t *testing.T) {
	dtstart := model.DateTimeValue(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), model.FormUTC, "")
	r, err := rrule.ParseRRule("FREQ=DAILY;COUNT=5")
	require.NoError(t, err)

	exdate := model.DateTimeValue(time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), model.FormUTC, "")
	rdate := model.DateTimeValue(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), model.FormUTC, "")

	occ := expand.Occurrences(expand.Recurring{
		DTStart: dtstart,
		RRules:  []model.Value{{Kind: model.KindRecur, Recur: r}},
		RDates:  []model.Value{rdate},
		EXDates: []model.Value{exdate},
	}, time.Time{})

	require.Len(t, occ, 5) // 5 from DAILY minus the excluded day, plus the RDATE
	for _, o := range occ {
		assert.False(t, o.Time.Equal(exdate.Time))
	}
	assert.True(t, occ[len(occ)-1].Time.Equal(rdate.Time))
}

func TestExpandBySetPosLastWorkday(t *testing.T) {
	dtstart := time.Date(2024, 1, 31, 17, 0, 0, 0, time.UTC) // last workday of Jan 2024
	r := mustRRule(t, "FREQ=MONTHLY;COUNT=3;BYDAY=MO,TU,WE,TH,FR;BYSETPOS=-1")

	got := expand.Expand(dtstart, r, time.Time{})
	require.Len(t, got, 3)
	for _, d := range got {
		wd := d.Weekday()
		assert.True(t, wd >= time.Monday && wd <= time.Friday)
	}
}

func TestExpandDailyCount(t *testing.T) {
	dtstart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	r := mustRRule(t, "FREQ=DAILY;COUNT=3")
	got := expand.Expand(dtstart, r, time.Time{})
	require.Len(t, got, 3)
	assert.Equal(t, dtstart, got[0])
	assert.Equal(t, dtstart.AddDate(0, 0, 1), got[1])
	assert.Equal(t, dtstart.AddDate(0, 0, 2), got[2])
}
