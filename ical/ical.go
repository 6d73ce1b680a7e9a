// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ical

import (
	"fmt"
	"io"

	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/generate"
	"github.com/ahale/icalgo/model"
	"github.com/ahale/icalgo/parse"
)

// Calendar wraps a parsed model.Calendar together with the diagnostic bus
// accumulated while loading it.
type Calendar struct {
	model       *model.Calendar
	Diagnostics *diag.Bus
	conformance bool
}

// Option configures Load/LoadFile.
type Option func(*loadOptions)

type loadOptions struct {
	conformance bool
}

// WithConformance turns on the diagnostic bus's conformance mode (spec.md
// §4.4/§7): selected rule-violation/repair warnings are recorded with Fatal
// severity instead of Warning, so Diagnostics.HasFatal reports them. The
// set of recorded diagnostics, and so ValidateStrict's result, is the same
// in both modes.
func WithConformance() Option {
	return func(o *loadOptions) { o.conformance = true }
}

// Load parses iCalendar data from r. Structural failures are returned as
// *parse.FatalError; non-fatal non-conformance is recorded on
// Calendar.Diagnostics and does not abort the load.
func Load(r io.Reader, opts ...Option) (*Calendar, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	bus := diag.NewBus()
	bus.Conformance = o.conformance
	cal, bus, err := parse.Reader(r, bus)
	if err != nil {
		return nil, err
	}
	return &Calendar{model: cal, Diagnostics: bus, conformance: o.conformance}, nil
}

// LoadFile parses iCalendar data from the named file.
func LoadFile(path string, opts ...Option) (*Calendar, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	bus := diag.NewBus()
	bus.Conformance = o.conformance
	cal, bus, err := parse.File(path, bus)
	if err != nil {
		return nil, err
	}
	return &Calendar{model: cal, Diagnostics: bus, conformance: o.conformance}, nil
}

// ValidateStrict reports the calendar's strict-mode compliance, matching
// the original's isCalendarStringCompliant/isCalendarFileCompliant: it is
// true iff the diagnostic log is empty, whether or not the calendar was
// loaded WithConformance.
func (c *Calendar) ValidateStrict() bool {
	return c.Diagnostics.Compliant()
}

// Serialize writes the calendar back out in RFC 5545 wire form.
func (c *Calendar) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, generate.Calendar(c.model))
	return err
}

// Model exposes the underlying typed calendar for callers that need direct
// field access beyond this façade's surface.
func (c *Calendar) Model() *model.Calendar {
	return c.model
}

// Events returns the calendar's VEVENT components.
func (c *Calendar) Events() []model.Event {
	return c.model.Events
}

func (c *Calendar) findEvent(uid string) (*model.Event, error) {
	for i := range c.model.Events {
		if c.model.Events[i].UID == uid {
			return &c.model.Events[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEventNotFound, uid)
}
