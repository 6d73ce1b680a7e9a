// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ical

import (
	"sort"
	"time"

	"github.com/ahale/icalgo/expand"
	"github.com/ahale/icalgo/model"
)

// Occurrence is one emission point produced by Enumerate: a single event
// instance, or one of its multi-slot expansion points (spec.md §4.6.4).
type Occurrence struct {
	UID     string
	Summary string
	Start   model.Value
}

const defaultSlot = 24 * time.Hour

// Enumerate expands every VEVENT in the calendar over [start, end) and
// returns the occurrences in ascending start-time order. slot sets the
// multi-slot expansion granularity (default one day); occurrences whose
// effective duration exceeds it yield additional emission points.
func (c *Calendar) Enumerate(start, end time.Time, slot ...time.Duration) ([]Occurrence, error) {
	slotDur := defaultSlot
	if len(slot) > 0 && slot[0] > 0 {
		slotDur = slot[0]
	}

	var out []Occurrence
	for _, e := range c.model.Events {
		if e.DTStart.Time.IsZero() {
			continue
		}
		dur := eventDuration(e)
		if end.IsZero() {
			for _, rr := range e.RRule {
				if rr.Recur != nil && rr.Recur.Count == nil && rr.Recur.Until == nil {
					return nil, ErrUnboundedWindow
				}
			}
		}

		occs := expand.Occurrences(expand.Recurring{
			DTStart: e.DTStart,
			RRules:  e.RRule,
			RDates:  e.RDate,
			EXDates: e.EXDate,
		}, end)

		for _, o := range occs {
			appendInWindow(&out, e, o, start, end)
			for _, extra := range expand.SlotPoints(o.Time, dur, slotDur) {
				ev := o
				ev.Time = extra
				appendInWindow(&out, e, ev, start, end)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Time.Before(out[j].Start.Time) })
	return out, nil
}

func appendInWindow(out *[]Occurrence, e model.Event, v model.Value, start, end time.Time) {
	if v.Time.Before(start) || !v.Time.Before(end) {
		return
	}
	*out = append(*out, Occurrence{UID: e.UID, Summary: e.Summary, Start: v})
}

func eventDuration(e model.Event) time.Duration {
	switch {
	case e.HasDTEnd:
		return e.DTEnd.Time.Sub(e.DTStart.Time)
	case e.HasDuration:
		return e.Duration.Duration
	default:
		return 0
	}
}
