// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Journal is a VJOURNAL component.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.3
type Journal struct {
	BaseComponent

	Summary     string
	Description []string
	Status      string
	Organizer   *Organizer
	Attendees   []Attendee
	Contact     []Contact
	Categories  []string

	DTStart    Value
	HasDTStart bool

	XProp    map[string]string
	IANAProp map[string]string
}
