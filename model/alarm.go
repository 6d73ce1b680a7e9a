// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// AlarmAction is the ACTION property of a VALARM.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.1
type AlarmAction string

const (
	AlarmActionAudio   AlarmAction = "AUDIO"
	AlarmActionDisplay AlarmAction = "DISPLAY"
	AlarmActionEmail   AlarmAction = "EMAIL"
)

// Alarm is a VALARM component. Trigger is parsed structurally but, per
// spec.md's non-goal, never scheduled or fired.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.6
type Alarm struct {
	Action AlarmAction

	// Trigger is either a Duration relative to DTSTART/DTEND (the common
	// case) or an absolute DateTime when VALUE=DATE-TIME is given.
	Trigger Value
	// TriggerRelatedEnd is true when the TRIGGER's RELATED parameter is
	// END rather than the default START.
	TriggerRelatedEnd bool

	Description string
	Summary     string
	Attendees   []Attendee
	Attach      []Attach

	Repeat      int
	HasRepeat   bool
	Duration    Value
	HasDuration bool
}
