// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/ahale/icalgo/rrule"
)

// ValueKind tags the RFC 5545 value type carried by a Value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3
type ValueKind int

const (
	KindText ValueKind = iota
	KindInteger
	KindDate
	KindDateTime
	KindDuration
	KindPeriod
	KindRecur
	KindCalAddress
	KindURI
	KindList
)

// DateTimeForm distinguishes the three mutually-exclusive DATE-TIME
// variants described in spec.md §9 and RFC 5545 §3.3.5.
type DateTimeForm int

const (
	// FormFloating is a DATE-TIME with no zone information (local wall-clock).
	FormFloating DateTimeForm = iota
	// FormUTC is a DATE-TIME with a trailing 'Z'.
	FormUTC
	// FormZoned is a DATE-TIME accompanied by a TZID parameter.
	FormZoned
)

// Value is a discriminated union over the RFC 5545 property value types.
// Only the fields relevant to Kind are meaningful; callers should switch
// on Kind before reading.
type Value struct {
	Kind ValueKind

	// KindText
	Text string

	// KindInteger
	Int int

	// KindDate / KindDateTime
	Time time.Time
	// IsDate is true when this is a bare DATE (no time-of-day component).
	IsDate bool
	// Form applies only when !IsDate: floating, UTC, or zoned.
	Form DateTimeForm
	// TZID is set when Form == FormZoned.
	TZID string

	// KindDuration
	Duration time.Duration

	// KindPeriod: Time/IsDate/Form/TZID above hold the period start.
	PeriodEnd         time.Time
	PeriodDuration    time.Duration
	HasPeriodDuration bool

	// KindRecur
	Recur *rrule.RRule

	// KindCalAddress / KindURI
	URI string

	// KindList
	List []Value
}

// Equal reports whether two Values denote the same occurrence point, used
// for RDATE/EXDATE matching (spec.md §4.6.3 step 6): value-type and
// zone-label aware, per spec.md §9's deferral of true zone conversion —
// a UTC-marked and a TZID-marked value are never equal without a zone
// database, matching spec.md §9's "non-comparable" rule.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindDate, KindDateTime:
		if v.IsDate != other.IsDate {
			return false
		}
		if !v.IsDate && v.Form != other.Form {
			return false
		}
		if !v.IsDate && v.Form == FormZoned && v.TZID != other.TZID {
			return false
		}
		return v.Time.Equal(other.Time)
	default:
		return false
	}
}

// DateValue constructs a bare DATE Value.
func DateValue(t time.Time) Value {
	return Value{Kind: KindDate, Time: t, IsDate: true}
}

// DateTimeValue constructs a DATE-TIME Value of the given form.
func DateTimeValue(t time.Time, form DateTimeForm, tzid string) Value {
	return Value{Kind: KindDateTime, Time: t, Form: form, TZID: tzid}
}
