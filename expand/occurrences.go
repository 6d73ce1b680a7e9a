// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package expand

import (
	"sort"
	"time"

	"github.com/ahale/icalgo/model"
)

// Recurring describes the recurrence-set inputs of one component: its
// anchor, its at-most-one RRULE (the parser keeps only the first one seen
// and diagnoses the rest, per spec.md's first-wins decision), its explicit
// RDATEs, and the EXDATEs subtracted from the result. RRules is a slice
// only to mirror the parser's storage shape; Occurrences only ever
// consults RRules[0].
type Recurring struct {
	DTStart model.Value
	RRules  []model.Value // at most one element, Kind == model.KindRecur
	RDates  []model.Value
	EXDates []model.Value
}

// Occurrences computes the full recurrence set for r, bounded by
// windowEnd when any RRULE present has neither COUNT nor UNTIL (zero
// windowEnd means unbounded and should only be passed when every RRULE is
// itself bounded).
//
// Per spec decisions: DTSTART is always a member of the set unless it is
// itself named by an EXDATE; invalid calendar dates produced by a BY-part
// combination (e.g. BYMONTHDAY=30 in February) are silently dropped and do
// not count against COUNT; RDATE/EXDATE matching is value-type and zone
// aware (model.Value.Equal), never normalized through a timezone
// database.
func Occurrences(r Recurring, windowEnd time.Time) []model.Value {
	seen := make(map[int64]model.Value)
	add := func(t time.Time) {
		key := t.UnixNano()
		if _, ok := seen[key]; !ok {
			seen[key] = sameKindAs(r.DTStart, t)
		}
	}

	add(r.DTStart.Time)

	if len(r.RRules) > 0 {
		rv := r.RRules[0]
		if rv.Kind == model.KindRecur && rv.Recur != nil {
			for _, t := range Expand(r.DTStart.Time, rv.Recur, windowEnd) {
				add(t)
			}
		}
	}

	for _, rd := range r.RDates {
		t := rd.Time
		if rd.Kind == model.KindPeriod {
			t = rd.Time
		}
		add(t)
	}

	out := make([]model.Value, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}

	for _, ex := range r.EXDates {
		out = excludeValue(out, ex)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

// sameKindAs builds an occurrence Value carrying t, matching the
// Kind/IsDate/Form/TZID of template (DTSTART), so every emitted occurrence
// is comparable against EXDATE entries with model.Value.Equal.
func sameKindAs(template model.Value, t time.Time) model.Value {
	v := template
	v.Time = t
	v.Kind = model.KindDateTime
	if template.IsDate {
		v.Kind = model.KindDate
	}
	return v
}

func excludeValue(occurrences []model.Value, ex model.Value) []model.Value {
	out := occurrences[:0:0]
	for _, o := range occurrences {
		if o.Equal(ex) {
			continue
		}
		out = append(out, o)
	}
	return out
}
