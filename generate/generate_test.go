// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package generate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahale/icalgo/generate"
	"github.com/ahale/icalgo/parse"
)

const sampleCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//icalgo//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:event-1@example.com\r\n" +
	"DTSTAMP:20240101T120000Z\r\n" +
	"DTSTART:20240102T090000Z\r\n" +
	"DTEND:20240102T100000Z\r\n" +
	"SUMMARY:Team standup\r\n" +
	"RRULE:FREQ=WEEKLY;COUNT=5;BYDAY=TU\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestRoundTripParseGenerateParse(t *testing.T) {
	cal, _, err := parse.String(sampleCalendar, nil)
	require.NoError(t, err)
	require.Len(t, cal.Events, 1)

	out := generate.Calendar(cal)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))

	reparsed, _, err := parse.String(out, nil)
	require.NoError(t, err)
	require.Len(t, reparsed.Events, 1)

	want := cal.Events[0]
	got := reparsed.Events[0]
	assert.Equal(t, want.UID, got.UID)
	assert.Equal(t, want.Summary, got.Summary)
	assert.True(t, want.DTStart.Time.Equal(got.DTStart.Time))
	assert.True(t, want.DTEnd.Time.Equal(got.DTEnd.Time))
	require.Len(t, got.RRule, 1)
	require.NotNil(t, got.RRule[0].Recur)
	assert.Equal(t, want.RRule[0].Recur.Frequency, got.RRule[0].Recur.Frequency)
	assert.Equal(t, want.RRule[0].Recur.Count, got.RRule[0].Recur.Count)
}

func TestFoldLongLine(t *testing.T) {
	cal, _, err := parse.String(sampleCalendar, nil)
	require.NoError(t, err)
	cal.Events[0].Description = strings.Repeat("a very long description word ", 10)

	out := generate.Calendar(cal)
	for _, line := range strings.Split(strings.TrimRight(out, "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), 75)
	}
}
