// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ahale/icalgo/model"
)

func TestValueEqualDateVsDateTimeKindMismatch(t *testing.T) {
	date := model.DateValue(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	dt := model.DateTimeValue(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), model.FormUTC, "")
	assert.False(t, date.Equal(dt))
}

func TestValueEqualUTCMatchesSameInstant(t *testing.T) {
	a := model.DateTimeValue(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), model.FormUTC, "")
	b := model.DateTimeValue(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), model.FormUTC, "")
	assert.True(t, a.Equal(b))
}

func TestValueEqualUTCAndZonedAreNeverEqual(t *testing.T) {
	utc := model.DateTimeValue(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), model.FormUTC, "")
	zoned := model.DateTimeValue(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), model.FormZoned, "America/New_York")
	assert.False(t, utc.Equal(zoned))
	assert.False(t, zoned.Equal(utc))
}

func TestValueEqualZonedRequiresSameTZID(t *testing.T) {
	nyc := model.DateTimeValue(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), model.FormZoned, "America/New_York")
	la := model.DateTimeValue(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), model.FormZoned, "America/Los_Angeles")
	assert.False(t, nyc.Equal(la))
}

func TestValueEqualFloatingIgnoresZoneFields(t *testing.T) {
	a := model.DateTimeValue(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), model.FormFloating, "")
	b := model.DateTimeValue(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), model.FormFloating, "")
	assert.True(t, a.Equal(b))
}

func TestValueEqualDurationKindNeverEqual(t *testing.T) {
	a := model.Value{Kind: model.KindDuration, Duration: time.Hour}
	b := model.Value{Kind: model.KindDuration, Duration: time.Hour}
	assert.False(t, a.Equal(b))
}
