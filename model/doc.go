// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package model contains the typed in-memory object model produced by the
// parse package: Calendar, its sub-components (VEVENT, VTODO, VJOURNAL,
// VFREEBUSY, VTIMEZONE), and the RFC 5545 Value union each property
// decodes into.
package model
