// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"errors"
	"fmt"

	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/model"
)

// FatalError reports a structural failure: the content-line stream could
// not be assembled into a Calendar at all, as opposed to a diag.Bus entry
// recorded against an individual property or component.
type FatalError struct {
	// Tag is the RFC section this failure relates to, e.g. "3.6".
	Tag string
	// Line is the 1-indexed content line the failure occurred at, or 0.
	Line int
	Err  error
}

func (e *FatalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.Tag, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

var (
	// Structural errors
	ErrUnexpectedEnd      = errors.New("END does not match the currently open component")
	ErrUnexpectedBegin    = errors.New("component not permitted inside its enclosing component")
	ErrUnterminated       = errors.New("component was not closed with END")
	ErrNoCalendar         = errors.New("no VCALENDAR component found")
	ErrPropertyOutsideAny = errors.New("property outside any component")

	// Calendar-level errors
	errMissingVersion = errors.New("VERSION is required")
	errMissingProdID  = errors.New("PRODID is required")

	// Property-setter errors
	ErrDuplicateProperty = errors.New("property set more than once in component")

	// Component-specific
	errInvalidAlarmProperty = errors.New("unrecognized VALARM property")

	errEventMissingUID     = errors.New("VEVENT is missing UID")
	errEventBothEndAndDur  = errors.New("VEVENT has both DTEND and DURATION")
	errEventMissingDTStart = errors.New("VEVENT is missing DTSTART")
	errTodoBothDueAndDur   = errors.New("VTODO has both DUE and DURATION")
	errAlarmMissingAction  = errors.New("VALARM is missing ACTION")
	errAlarmMissingTrigger = errors.New("VALARM is missing TRIGGER")
	errMultipleRRule       = errors.New("component has more than one RRULE; only the first is used")
)

// tagMultipleRRule is the diagnostic tag recorded when a component's second
// (or later) RRULE is dropped. https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.5.3
const tagMultipleRRule = "SCM-3.8.5.3_MULTI"

// appendRRule enforces "first RRULE wins": *dst is set from v only if it is
// still empty; any subsequent RRULE is diagnosed and discarded rather than
// unioned into the recurrence set.
func appendRRule(dst *[]model.Value, v model.Value, bus *diag.Bus, line int) {
	if len(*dst) > 0 {
		bus.Warn(tagMultipleRRule, line, "", errMultipleRRule.Error())
		return
	}
	*dst = append(*dst, v)
}

const errDuplicatePropertyFormat = "%w: %s set twice in %s"
