// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package expand

import (
	"time"

	"github.com/ahale/icalgo/rrule"
)

// weekOneStart returns the start (on wkst's weekday) of the year's first
// week, defined per RFC 5545 §3.3.10/§4.6.5 as the week containing the
// year's first wkst-to-wkst week with at least four days in January —
// equivalently, the wkst-aligned week containing January 4th.
func weekOneStart(year int, wkst time.Weekday, loc *time.Location) time.Time {
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, loc)
	d := jan4
	for d.Weekday() != wkst {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// weeksInYear returns the number of wkst-aligned weeks in year.
func weeksInYear(year int, wkst time.Weekday, loc *time.Location) int {
	start := weekOneStart(year, wkst, loc)
	nextStart := weekOneStart(year+1, wkst, loc)
	return int(nextStart.Sub(start).Hours() / 24 / 7)
}

// expandWeekNo applies BYWEEKNO (optionally refined by BYDAY) for the
// given year.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
func expandWeekNo(year int, weeknos []int, wkst rrule.Weekday, byday []rrule.ByDay, loc *time.Location) []time.Time {
	wkstGo := wkst.GoWeekday()
	total := weeksInYear(year, wkstGo, loc)

	var out []time.Time
	for _, wn := range weeknos {
		n := wn
		if n < 0 {
			n = total + n + 1
		}
		if n < 1 || n > total {
			continue
		}
		weekStart := weekOneStart(year, wkstGo, loc).AddDate(0, 0, 7*(n-1))
		weekEnd := weekStart.AddDate(0, 0, 7)

		if len(byday) == 0 {
			out = append(out, daysInRange(weekStart, weekEnd)...)
			continue
		}
		out = append(out, filterByWeekdayMembership(daysInRange(weekStart, weekEnd), byday)...)
	}
	return dedupSortTimes(out)
}
