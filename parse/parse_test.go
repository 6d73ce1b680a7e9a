// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/model"
	"github.com/ahale/icalgo/parse"
	"github.com/ahale/icalgo/rrule"
)

func TestStringParsesMinimalCalendar(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:abc@example.com\r\n" +
		"DTSTAMP:20240101T000000Z\r\n" +
		"DTSTART:20240101T090000Z\r\n" +
		"SUMMARY:Kickoff\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, bus, err := parse.String(input, nil)
	require.NoError(t, err)
	require.Len(t, cal.Events, 1)
	assert.Equal(t, "abc@example.com", cal.Events[0].UID)
	assert.Equal(t, "Kickoff", cal.Events[0].Summary)
	assert.True(t, bus.Compliant())
}

func TestMissingUIDIsSynthesizedAndWarned(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"DTSTAMP:20240101T000000Z\r\n" +
		"DTSTART:20240101T090000Z\r\n" +
		"SUMMARY:No UID here\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, bus, err := parse.String(input, nil)
	require.NoError(t, err)
	require.Len(t, cal.Events, 1)
	assert.NotEmpty(t, cal.Events[0].UID)
	assert.False(t, bus.Compliant())
}

func TestDTEndAndDurationConflictPrefersDTEnd(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:conflict@example.com\r\n" +
		"DTSTAMP:20240101T000000Z\r\n" +
		"DTSTART:20240101T090000Z\r\n" +
		"DTEND:20240101T100000Z\r\n" +
		"DURATION:PT1H\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, bus, err := parse.String(input, nil)
	require.NoError(t, err)
	event := cal.Events[0]
	assert.True(t, event.HasDTEnd)
	assert.False(t, event.HasDuration)
	assert.False(t, bus.Compliant())
}

func TestDTEndBeforeDTStartRepairsDTEndOnly(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:swap@example.com\r\n" +
		"DTSTAMP:20240101T000000Z\r\n" +
		"DTSTART:20240102T090000Z\r\n" +
		"DTEND:20240101T090000Z\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, _, err := parse.String(input, nil)
	require.NoError(t, err)
	event := cal.Events[0]
	assert.True(t, event.DTStart.Time.Equal(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)))
	assert.True(t, event.DTEnd.Time.Equal(event.DTStart.Time))
}

func TestUnrecognizedPropertyBucketsIntoIANAProp(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:iana@example.com\r\n" +
		"DTSTAMP:20240101T000000Z\r\n" +
		"DTSTART:20240101T090000Z\r\n" +
		"RESOURCES:PROJECTOR\r\n" +
		"X-CUSTOM-PROP:hello\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, bus, err := parse.String(input, nil)
	require.NoError(t, err)
	event := cal.Events[0]
	assert.Equal(t, "PROJECTOR", event.IANAProp["RESOURCES"])
	assert.Equal(t, "hello", event.XProp["X-CUSTOM-PROP"])
	assert.True(t, bus.Compliant())
}

func TestAlarmMustBeInsideEventOrTodo(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VALARM\r\n" +
		"ACTION:DISPLAY\r\n" +
		"END:VALARM\r\n" +
		"END:VCALENDAR\r\n"

	_, _, err := parse.String(input, nil)
	require.Error(t, err)
	var fatal *parse.FatalError
	assert.ErrorAs(t, err, &fatal)
}

func TestUnmatchedEndIsFatal(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	_, _, err := parse.String(input, nil)
	assert.ErrorIs(t, err, parse.ErrUnexpectedEnd)
}

func TestVAlarmWithinEventIsAttached(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:alarm@example.com\r\n" +
		"DTSTAMP:20240101T000000Z\r\n" +
		"DTSTART:20240101T090000Z\r\n" +
		"BEGIN:VALARM\r\n" +
		"ACTION:DISPLAY\r\n" +
		"DESCRIPTION:Reminder\r\n" +
		"TRIGGER:-PT15M\r\n" +
		"END:VALARM\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, _, err := parse.String(input, nil)
	require.NoError(t, err)
	require.Len(t, cal.Events[0].Alarms, 1)
	assert.Equal(t, model.AlarmActionDisplay, cal.Events[0].Alarms[0].Action)
}

func TestMultipleRRuleFirstWinsAndDiagnoses(t *testing.T) {
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:multi@example.com\r\n" +
		"DTSTAMP:20240101T000000Z\r\n" +
		"DTSTART:20240101T090000Z\r\n" +
		"RRULE:FREQ=DAILY;COUNT=3\r\n" +
		"RRULE:FREQ=WEEKLY;COUNT=5\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	cal, bus, err := parse.String(input, nil)
	require.NoError(t, err)
	event := cal.Events[0]
	require.Len(t, event.RRule, 1)
	require.NotNil(t, event.RRule[0].Recur)
	assert.Equal(t, rrule.FrequencyDaily, event.RRule[0].Recur.Frequency)
	assert.False(t, bus.Compliant())

	entries := bus.Entries()
	require.NotEmpty(t, entries)
	found := false
	for _, e := range entries {
		if e.Tag == "SCM-3.8.5.3_MULTI" {
			found = true
		}
	}
	assert.True(t, found, "expected SCM-3.8.5.3_MULTI diagnostic, got %+v", entries)
}

func TestCallerSuppliedBusReceivesDiagnostics(t *testing.T) {
	bus := diag.NewBus()
	input := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"DTSTAMP:20240101T000000Z\r\n" +
		"DTSTART:20240101T090000Z\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	_, _, err := parse.String(input, bus)
	require.NoError(t, err)
	assert.Greater(t, bus.Len(), 0)
}
