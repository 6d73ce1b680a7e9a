// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahale/icalgo/rrule"
)

func TestParseRRuleValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"daily with count", "FREQ=DAILY;COUNT=5"},
		{"weekly byday", "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE,FR"},
		{"monthly last friday", "FREQ=MONTHLY;BYDAY=-1FR"},
		{"yearly until", "FREQ=YEARLY;UNTIL=20301231T000000Z"},
		{"yearly byweekno", "FREQ=YEARLY;BYWEEKNO=20;BYDAY=MO"},
		{"bysetpos", "FREQ=MONTHLY;BYDAY=MO,TU,WE,TH,FR;BYSETPOS=-1"},
		{"vendor extension ignored", "FREQ=DAILY;COUNT=2;X-VENDOR=FOO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := rrule.ParseRRule(tt.input)
			require.NoError(t, err)
			assert.NotEmpty(t, r.Frequency)
		})
	}
}

func TestParseRRuleInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"freq not first", "COUNT=5;FREQ=DAILY"},
		{"no freq at all", "COUNT=5"},
		{"count and until", "FREQ=DAILY;COUNT=5;UNTIL=20301231T000000Z"},
		{"zero interval", "FREQ=DAILY;INTERVAL=0"},
		{"byyearday with weekly", "FREQ=WEEKLY;BYYEARDAY=100"},
		{"byweekno with monthly", "FREQ=MONTHLY;BYWEEKNO=10"},
		{"duplicate part", "FREQ=DAILY;COUNT=5;COUNT=10"},
		{"bad byday", "FREQ=WEEKLY;BYDAY=ZZ"},
		{"bymonth out of range", "FREQ=YEARLY;BYMONTH=13"},
		{"zero bymonthday", "FREQ=MONTHLY;BYMONTHDAY=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rrule.ParseRRule(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestRRuleStringRoundTrip(t *testing.T) {
	r, err := rrule.ParseRRule("FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE,FR;COUNT=10")
	require.NoError(t, err)

	reparsed, err := rrule.ParseRRule(r.String())
	require.NoError(t, err)
	assert.Equal(t, r.Frequency, reparsed.Frequency)
	assert.Equal(t, r.Interval, reparsed.Interval)
	assert.Equal(t, *r.Count, *reparsed.Count)
	assert.Equal(t, r.Weekday, reparsed.Weekday)
}

func TestWeekdayGoConversion(t *testing.T) {
	for _, w := range []rrule.Weekday{
		rrule.WeekdayMonday, rrule.WeekdayTuesday, rrule.WeekdayWednesday,
		rrule.WeekdayThursday, rrule.WeekdayFriday, rrule.WeekdaySaturday, rrule.WeekdaySunday,
	} {
		assert.Equal(t, w, rrule.FromGoWeekday(w.GoWeekday()))
	}
}
