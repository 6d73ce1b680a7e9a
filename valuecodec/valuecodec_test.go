// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package valuecodec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/model"
	"github.com/ahale/icalgo/valuecodec"
)

func TestEncodeDecodeTextRoundTrip(t *testing.T) {
	in := "line one\nwith a; semicolon, a comma and a \\backslash"
	encoded := valuecodec.EncodeText(in)
	assert.Equal(t, in, valuecodec.DecodeText(encoded))
}

func TestSplitTextList(t *testing.T) {
	got := valuecodec.SplitTextList(`a,b\,c,d`)
	assert.Equal(t, []string{"a", "b\\,c", "d"}, got)
}

func TestDecodeDateTimeUTCAndZoned(t *testing.T) {
	bus := diag.NewBus()

	utc, err := valuecodec.DecodeDateTime("20240102T150405Z", "", bus, 1)
	require.NoError(t, err)
	assert.Equal(t, model.FormUTC, utc.Form)
	assert.True(t, utc.Time.Equal(time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)))

	zoned, err := valuecodec.DecodeDateTime("20240102T150405", "America/New_York", bus, 2)
	require.NoError(t, err)
	assert.Equal(t, model.FormZoned, zoned.Form)
	assert.Equal(t, "America/New_York", zoned.TZID)

	floating, err := valuecodec.DecodeDateTime("20240102T150405", "", bus, 3)
	require.NoError(t, err)
	assert.Equal(t, model.FormFloating, floating.Form)
}

func TestDecodeDateTimeZAndTZIDConflictWarns(t *testing.T) {
	bus := diag.NewBus()
	v, err := valuecodec.DecodeDateTime("20240102T150405Z", "America/New_York", bus, 1)
	require.NoError(t, err)
	assert.Equal(t, model.FormUTC, v.Form)
	assert.Equal(t, 1, bus.Len())
}

func TestDecodePeriodStartEnd(t *testing.T) {
	bus := diag.NewBus()
	v, err := valuecodec.DecodePeriod("20240101T000000Z/20240102T000000Z", "", bus, 1)
	require.NoError(t, err)
	assert.Equal(t, model.KindPeriod, v.Kind)
	assert.True(t, v.PeriodEnd.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestDecodePeriodStartDuration(t *testing.T) {
	bus := diag.NewBus()
	v, err := valuecodec.DecodePeriod("20240101T000000Z/PT1H", "", bus, 1)
	require.NoError(t, err)
	assert.True(t, v.HasPeriodDuration)
	assert.Equal(t, time.Hour, v.PeriodDuration)
}

func TestDecodeDurationLenientYEmitsDiagnostic(t *testing.T) {
	bus := diag.NewBus()
	v, err := valuecodec.DecodeDuration("P1Y", bus, 1)
	require.NoError(t, err)
	assert.Equal(t, 365*24*time.Hour, v.Duration)
	assert.Equal(t, 1, bus.Len())
}

func TestDecodeRecur(t *testing.T) {
	v, err := valuecodec.DecodeRecur("FREQ=DAILY;COUNT=3")
	require.NoError(t, err)
	assert.Equal(t, model.KindRecur, v.Kind)
	require.NotNil(t, v.Recur)
	assert.Equal(t, 3, *v.Recur.Count)
}

func TestFormatDateTimeRoundTrip(t *testing.T) {
	v := model.DateTimeValue(time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC), model.FormUTC, "")
	assert.Equal(t, "20240601T083000Z", valuecodec.FormatDateTime(v))

	d := model.DateValue(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "20240601", valuecodec.FormatDateTime(d))
}
