// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Event is a VEVENT component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
type Event struct {
	BaseComponent

	Summary     string
	Description string
	Location    string
	Status      string
	Transp      string
	Organizer   *Organizer
	Attendees   []Attendee
	Contact     []Contact
	Categories  []string
	Geo         *[2]float64
	Priority    int

	DTStart Value
	// DTEnd and Duration are mutually exclusive; exactly one determines the
	// event's span (spec.md §4.5 DTEND xor DURATION invariant).
	DTEnd    Value
	HasDTEnd bool
	Duration Value
	HasDuration bool

	// StartValueKind/EndValueKind record whether DTStart/DTEnd carried
	// VALUE=DATE (KindDate) or the default DATE-TIME, since both DTEnd and
	// DTStart must agree on this per RFC 5545 §3.8.2.2.
	StartValueKind ValueKind
	EndValueKind   ValueKind

	Alarms []Alarm

	XProp    map[string]string
	IANAProp map[string]string
}
