// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ical

import "github.com/ahale/icalgo/model"

// EventPatch carries the fields an UpdateEvent call should replace. A nil
// pointer field is left untouched; a non-nil one overwrites the event's
// current value.
type EventPatch struct {
	Summary     *string
	Description *string
	Location    *string
	Status      *string
	DTStart     *model.Value
	DTEnd       *model.Value
}

// UpdateEvent replaces the named fields of the VEVENT identified by uid,
// grounded on the original's updateEvent (property replace-or-add by UID).
// Sequence is bumped on any successful patch, per RFC 5545 §3.8.7.4's
// revision-counter semantics.
func (c *Calendar) UpdateEvent(uid string, patch EventPatch) error {
	event, err := c.findEvent(uid)
	if err != nil {
		return err
	}

	if patch.Summary != nil {
		event.Summary = *patch.Summary
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
	if patch.DTStart != nil {
		event.DTStart = *patch.DTStart
	}
	if patch.DTEnd != nil {
		event.DTEnd = *patch.DTEnd
		event.HasDTEnd = true
	}

	event.Sequence++
	return nil
}
