// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Todo is a VTODO component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
type Todo struct {
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
	HasDTStart bool

	// Due and Duration are mutually exclusive, mirroring Event's DTEnd xor
	// Duration rule.
	Due         Value
	HasDue      bool
	Duration    Value
	HasDuration bool

	Completed       Value
	HasCompleted    bool
	PercentComplete int

	Alarms []Alarm

	XProp    map[string]string
	IANAProp map[string]string
}
