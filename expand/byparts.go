// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package expand

import (
	"sort"
	"time"

	"github.com/ahale/icalgo/rrule"
)

// daysInRange returns start and each following day before end, keeping
// start's time of day and location.
func daysInRange(start, end time.Time) []time.Time {
	var out []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// matchesAnyWeekday reports whether d's weekday is named by any rule,
// ignoring ordinals.
func matchesAnyWeekday(d time.Time, rules []rrule.ByDay) bool {
	for _, r := range rules {
		if r.Weekday.GoWeekday() == d.Weekday() {
			return true
		}
	}
	return false
}

func filterByWeekdayMembership(days []time.Time, rules []rrule.ByDay) []time.Time {
	out := days[:0:0]
	for _, d := range days {
		if matchesAnyWeekday(d, rules) {
			out = append(out, d)
		}
	}
	return out
}

// expandByDayOrdinal applies the RFC 5545 §3.3.10 BYDAY ordinal selection
// (e.g. "-1FR" = the last Friday) scoped to [rangeStart, rangeEnd). An
// ordinal of 0 means every matching weekday in range.
func expandByDayOrdinal(rangeStart, rangeEnd time.Time, rules []rrule.ByDay) []time.Time {
	var out []time.Time
	for _, rule := range rules {
		var matches []time.Time
		for d := rangeStart; d.Before(rangeEnd); d = d.AddDate(0, 0, 1) {
			if d.Weekday() == rule.Weekday.GoWeekday() {
				matches = append(matches, d)
			}
		}
		switch {
		case rule.Ordinal == 0:
			out = append(out, matches...)
		case rule.Ordinal > 0:
			if rule.Ordinal <= len(matches) {
				out = append(out, matches[rule.Ordinal-1])
			}
		default:
			idx := len(matches) + rule.Ordinal
			if idx >= 0 && idx < len(matches) {
				out = append(out, matches[idx])
			}
		}
	}
	return dedupSortTimes(out)
}

// expandMonthDay applies BYMONTHDAY within [monthStart, monthEnd). Negative
// values count from the end of the month; a value whose magnitude exceeds
// the month's length yields nothing for that month.
func expandMonthDay(monthStart, monthEnd time.Time, days []int) []time.Time {
	lastDay := monthEnd.AddDate(0, 0, -1).Day()
	var out []time.Time
	for _, md := range days {
		day := md
		if day < 0 {
			day = lastDay + day + 1
		}
		if day < 1 || day > lastDay {
			continue
		}
		out = append(out, time.Date(monthStart.Year(), monthStart.Month(), day, 0, 0, 0, 0, monthStart.Location()))
	}
	return dedupSortTimes(out)
}

// expandYearDay applies BYYEARDAY within the given year. Negative values
// count from the end of the year.
func expandYearDay(year int, yeardays []int, loc *time.Location) []time.Time {
	jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, loc)
	isLeap := jan1.AddDate(1, 0, -1).YearDay() == 366
	total := 365
	if isLeap {
		total = 366
	}
	var out []time.Time
	for _, yd := range yeardays {
		day := yd
		if day < 0 {
			day = total + day + 1
		}
		if day < 1 || day > total {
			continue
		}
		out = append(out, jan1.AddDate(0, 0, day-1))
	}
	return dedupSortTimes(out)
}

// applyTimeOfDay expands (or limits, when no BY-part is given) the
// hour/minute/second components over a set of date candidates, using
// dtstart's own time-of-day as the default when a BY-part is absent.
func applyTimeOfDay(dates []time.Time, r *rrule.RRule, dtstart time.Time) []time.Time {
	hours := r.Hour
	if len(hours) == 0 {
		hours = []int{dtstart.Hour()}
	}
	minutes := r.Minute
	if len(minutes) == 0 {
		minutes = []int{dtstart.Minute()}
	}
	seconds := r.Second
	if len(seconds) == 0 {
		seconds = []int{dtstart.Second()}
	}

	out := make([]time.Time, 0, len(dates)*len(hours)*len(minutes)*len(seconds))
	for _, d := range dates {
		for _, h := range hours {
			for _, m := range minutes {
				for _, s := range seconds {
					out = append(out, time.Date(d.Year(), d.Month(), d.Day(), h, m, s, 0, d.Location()))
				}
			}
		}
	}
	return out
}

func dedupSortTimes(in []time.Time) []time.Time {
	if len(in) == 0 {
		return in
	}
	sort.Slice(in, func(i, j int) bool { return in[i].Before(in[j]) })
	out := in[:1]
	for _, t := range in[1:] {
		if !t.Equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}

// applySetPos selects the BYSETPOS-numbered entries of an already-sorted
// occurrence list for a single period. An empty setpos list is a no-op.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
func applySetPos(candidates []time.Time, setpos []int) []time.Time {
	if len(setpos) == 0 {
		return candidates
	}
	n := len(candidates)
	var out []time.Time
	for _, pos := range setpos {
		idx := pos
		if idx > 0 {
			idx--
		} else {
			idx = n + idx
		}
		if idx >= 0 && idx < n {
			out = append(out, candidates[idx])
		}
	}
	return dedupSortTimes(out)
}
