// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ical

import "errors"

var (
	// ErrEventNotFound is returned by UpdateEvent when no VEVENT in the
	// calendar carries the given UID.
	ErrEventNotFound = errors.New("no VEVENT with that UID")
	// ErrUnboundedWindow is returned by Enumerate when a recurring event has
	// neither COUNT nor UNTIL on every RRULE and the caller's window is zero.
	ErrUnboundedWindow = errors.New("recurrence window must be bounded")
)
