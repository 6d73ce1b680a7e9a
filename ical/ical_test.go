// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ical_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahale/icalgo/ical"
)

const sample = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//icalgo//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:daily-standup@example.com\r\n" +
	"DTSTAMP:20240101T120000Z\r\n" +
	"DTSTART:20240101T090000Z\r\n" +
	"DTEND:20240101T093000Z\r\n" +
	"SUMMARY:Daily standup\r\n" +
	"RRULE:FREQ=DAILY;COUNT=3\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestLoadValidateStrict(t *testing.T) {
	cal, err := ical.Load(strings.NewReader(sample))
	require.NoError(t, err)
	assert.True(t, cal.ValidateStrict())
	require.Len(t, cal.Events(), 1)
}

func TestEnumerate(t *testing.T) {
	cal, err := ical.Load(strings.NewReader(sample))
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	occs, err := cal.Enumerate(start, end)
	require.NoError(t, err)
	require.Len(t, occs, 3)
	for _, o := range occs {
		assert.Equal(t, "daily-standup@example.com", o.UID)
		assert.Equal(t, "Daily standup", o.Summary)
	}
}

func TestUpdateEvent(t *testing.T) {
	cal, err := ical.Load(strings.NewReader(sample))
	require.NoError(t, err)

	newSummary := "Daily standup (async)"
	err = cal.UpdateEvent("daily-standup@example.com", ical.EventPatch{Summary: &newSummary})
	require.NoError(t, err)
	assert.Equal(t, newSummary, cal.Events()[0].Summary)
	assert.Equal(t, 1, cal.Events()[0].Sequence)

	err = cal.UpdateEvent("no-such-uid", ical.EventPatch{})
	assert.ErrorIs(t, err, ical.ErrEventNotFound)
}

const missingUIDSample = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//icalgo//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"DTSTAMP:20240101T120000Z\r\n" +
	"DTSTART:20240101T090000Z\r\n" +
	"SUMMARY:No UID\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestValidateStrictDefaultRejectsRepairedDiagnostics(t *testing.T) {
	cal, err := ical.Load(strings.NewReader(missingUIDSample))
	require.NoError(t, err)
	assert.False(t, cal.Diagnostics.Compliant())
	assert.False(t, cal.ValidateStrict())
}

func TestValidateStrictWithConformanceEscalatesMissingUID(t *testing.T) {
	cal, err := ical.Load(strings.NewReader(missingUIDSample), ical.WithConformance())
	require.NoError(t, err)
	assert.True(t, cal.Diagnostics.HasFatal())
	assert.False(t, cal.ValidateStrict())
}

func TestValidateStrictWithConformancePassesCleanCalendar(t *testing.T) {
	cal, err := ical.Load(strings.NewReader(sample), ical.WithConformance())
	require.NoError(t, err)
	assert.True(t, cal.ValidateStrict())
}

func TestSerializeRoundTrip(t *testing.T) {
	cal, err := ical.Load(strings.NewReader(sample))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, cal.Serialize(&b))

	reloaded, err := ical.Load(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, reloaded.Events(), 1)
	assert.Equal(t, "daily-standup@example.com", reloaded.Events()[0].UID)
}
