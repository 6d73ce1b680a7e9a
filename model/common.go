// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Organizer identifies the organizer of a scheduled component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
type Organizer struct {
	CommonName string
	// CalAddress is the mailto: or other URI identifying the organizer.
	CalAddress string
	Directory  string
}

// Attendee identifies a participant in a scheduled component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
type Attendee struct {
	CalAddress string
	CommonName string
	Role       string
	PartStat   string
	RSVP       bool
}

// Attach is the value of an ATTACH property: either a URI or inline binary
// content, never both.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.1
type Attach struct {
	URI       string
	FormatType string
	Binary    []byte
	IsInline  bool
}

// BaseComponent holds the properties common to every scheduling component
// (VEVENT, VTODO, VJOURNAL): a stamp of when the information was last
// revised, and the UID correlating recurrence instances of the same
// recurring item.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6
type BaseComponent struct {
	UID      string
	DTStamp  Value
	Sequence int
	Class    string
	Created  Value
	LastMod  Value
	URL      string
	Comment  []string
	Attach   []Attach

	// RecurrenceID identifies a single overridden instance of a recurring
	// component; zero Value (Kind == 0 and Time.IsZero()) means "not set".
	RecurrenceID Value
	HasRecurrenceID bool

	// RRule holds at most one KindRecur Value. RFC 5545 permits a component
	// to carry more than one RRULE, but per spec.md's Open Question
	// decision only the first is kept; the parser diagnoses and discards
	// any subsequent RRULE rather than unioning its expansion in.
	RRule  []Value
	RDate  []Value
	EXDate []Value
}

// Contact is a free-text contact reference.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
type Contact = string

// Sequence is the revision count of a component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.7.4
type Sequence = int
