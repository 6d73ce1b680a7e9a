// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// Calendar is the root VCALENDAR object: a PRODID/VERSION pair plus the
// scheduling components it carries.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.4
type Calendar struct {
	Version  string
	ProdID   string
	CalScale string
	Method   string

	TimeZones []TimeZone
	Events    []Event
	Todos     []Todo
	Journals  []Journal
	FreeBusy  []FreeBusy

	// XProp and IANAProp hold vendor/IANA extension properties attached
	// directly to VCALENDAR, keyed by property name.
	XProp    map[string]string
	IANAProp map[string]string
}
