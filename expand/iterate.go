// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package expand

import (
	"time"

	"github.com/ahale/icalgo/rrule"
)

// maxPeriods bounds the number of FREQ periods walked for a single rule,
// guarding against pathological COUNT-less, UNTIL-less, window-less input.
const maxPeriods = 200000

// dateCandidates generates the date-level (midnight) candidates for the
// period starting at cur, applying the FREQ-appropriate BY-part
// expand/limit rules from the RFC 5545 §3.3.10 matrix.
func dateCandidates(cur time.Time, r *rrule.RRule, dtstart time.Time) []time.Time {
	switch r.Frequency {
	case rrule.FrequencyYearly:
		return yearCandidates(cur.Year(), r, dtstart)
	case rrule.FrequencyMonthly:
		return monthCandidates(cur, r, dtstart)
	case rrule.FrequencyWeekly:
		return weekCandidates(cur, r, dtstart)
	default: // DAILY, and the coarse date part of HOURLY/MINUTELY/SECONDLY
		if !passesDateLimits(cur, r) {
			return nil
		}
		return []time.Time{time.Date(cur.Year(), cur.Month(), cur.Day(), 0, 0, 0, 0, cur.Location())}
	}
}

// passesDateLimits applies BYMONTH/BYMONTHDAY/BYDAY as pure filters, the
// role they play for FREQ values finer than MONTHLY.
func passesDateLimits(d time.Time, r *rrule.RRule) bool {
	if len(r.Month) > 0 {
		ok := false
		for _, m := range r.Month {
			if time.Month(m) == d.Month() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(r.Monthday) > 0 {
		lastDay := time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, d.Location()).AddDate(0, 0, -1).Day()
		ok := false
		for _, md := range r.Monthday {
			day := md
			if day < 0 {
				day = lastDay + day + 1
			}
			if day == d.Day() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(r.Weekday) > 0 && !matchesAnyWeekday(d, r.Weekday) {
		return false
	}
	return true
}

func yearCandidates(year int, r *rrule.RRule, dtstart time.Time) []time.Time {
	loc := dtstart.Location()

	if len(r.YearDay) > 0 {
		return expandYearDay(year, r.YearDay, loc)
	}
	if len(r.WeekNo) > 0 {
		return expandWeekNo(year, r.WeekNo, r.WeekStart, r.Weekday, loc)
	}

	months := r.Month
	if len(months) == 0 {
		months = []int{int(dtstart.Month())}
	}

	var out []time.Time
	for _, m := range months {
		monthStart := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, loc)
		monthEnd := monthStart.AddDate(0, 1, 0)

		switch {
		case len(r.Monthday) > 0:
			days := expandMonthDay(monthStart, monthEnd, r.Monthday)
			if len(r.Weekday) > 0 {
				days = filterByWeekdayMembership(days, r.Weekday)
			}
			out = append(out, days...)
		case len(r.Weekday) > 0:
			out = append(out, expandByDayOrdinal(monthStart, monthEnd, r.Weekday)...)
		default:
			d := time.Date(year, time.Month(m), dtstart.Day(), 0, 0, 0, 0, loc)
			if d.Month() == time.Month(m) {
				out = append(out, d)
			}
		}
	}
	return dedupSortTimes(out)
}

func monthCandidates(cur time.Time, r *rrule.RRule, dtstart time.Time) []time.Time {
	loc := dtstart.Location()
	if len(r.Month) > 0 {
		ok := false
		for _, m := range r.Month {
			if time.Month(m) == cur.Month() {
				ok = true
				break
			}
		}
		if !ok {
			return nil
		}
	}

	monthStart := time.Date(cur.Year(), cur.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	switch {
	case len(r.Monthday) > 0:
		days := expandMonthDay(monthStart, monthEnd, r.Monthday)
		if len(r.Weekday) > 0 {
			days = filterByWeekdayMembership(days, r.Weekday)
		}
		return days
	case len(r.Weekday) > 0:
		return expandByDayOrdinal(monthStart, monthEnd, r.Weekday)
	default:
		d := time.Date(cur.Year(), cur.Month(), dtstart.Day(), 0, 0, 0, 0, loc)
		if d.Month() != cur.Month() {
			return nil
		}
		return []time.Time{d}
	}
}

func weekCandidates(cur time.Time, r *rrule.RRule, dtstart time.Time) []time.Time {
	wkst := r.WeekStart.GoWeekday()
	weekStart := cur
	for weekStart.Weekday() != wkst {
		weekStart = weekStart.AddDate(0, 0, -1)
	}
	weekEnd := weekStart.AddDate(0, 0, 7)
	days := daysInRange(weekStart, weekEnd)

	if len(r.Weekday) > 0 {
		return filterByWeekdayMembership(days, r.Weekday)
	}
	out := make([]time.Time, 0, 1)
	for _, d := range days {
		if d.Weekday() == dtstart.Weekday() {
			out = append(out, d)
		}
	}
	return out
}

// advancePeriod steps cur forward by one interval of the rule's FREQ.
func advancePeriod(cur time.Time, freq rrule.Frequency, interval int) time.Time {
	switch freq {
	case rrule.FrequencyYearly:
		return cur.AddDate(interval, 0, 0)
	case rrule.FrequencyMonthly:
		// Step from the 1st so a day past the next month's end (e.g. the
		// 31st) does not roll over into the month after it.
		first := time.Date(cur.Year(), cur.Month(), 1, cur.Hour(), cur.Minute(), cur.Second(), cur.Nanosecond(), cur.Location())
		return first.AddDate(0, interval, 0)
	case rrule.FrequencyWeekly:
		return cur.AddDate(0, 0, 7*interval)
	case rrule.FrequencyDaily:
		return cur.AddDate(0, 0, interval)
	case rrule.FrequencyHourly:
		return cur.Add(time.Duration(interval) * time.Hour)
	case rrule.FrequencyMinutely:
		return cur.Add(time.Duration(interval) * time.Minute)
	default:
		return cur.Add(time.Duration(interval) * time.Second)
	}
}

// needsTimeOfDayExpansion reports whether occurrences of this FREQ need the
// BYHOUR/BYMINUTE/BYSECOND expansion pass (true for DAILY and above).
func needsTimeOfDayExpansion(freq rrule.Frequency) bool {
	switch freq {
	case rrule.FrequencyYearly, rrule.FrequencyMonthly, rrule.FrequencyWeekly, rrule.FrequencyDaily:
		return true
	default:
		return false
	}
}

// passesSubDayLimits applies BYHOUR/BYMINUTE/BYSECOND as filters for
// HOURLY/MINUTELY/SECONDLY frequencies, where they are Limit rather than
// Expand parts relative to their own granularity.
func passesSubDayLimits(t time.Time, r *rrule.RRule) bool {
	if len(r.Hour) > 0 {
		ok := false
		for _, h := range r.Hour {
			if h == t.Hour() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(r.Minute) > 0 {
		ok := false
		for _, m := range r.Minute {
			if m == t.Minute() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(r.Second) > 0 {
		ok := false
		for _, s := range r.Second {
			if s == t.Second() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// Expand computes the occurrences of a single RRULE anchored at dtstart,
// stopping at the rule's own COUNT or UNTIL, or else at windowEnd (which
// must be non-zero when the rule has neither).
func Expand(dtstart time.Time, r *rrule.RRule, windowEnd time.Time) []time.Time {
	var results []time.Time
	count := 0
	cur := dtstart

	for periods := 0; periods < maxPeriods; periods++ {
		if r.Count != nil && count >= *r.Count {
			break
		}
		if r.Until != nil && cur.After(*r.Until) {
			break
		}
		if r.Count == nil && r.Until == nil && !windowEnd.IsZero() && cur.After(windowEnd) {
			break
		}

		var periodResults []time.Time
		if needsTimeOfDayExpansion(r.Frequency) {
			dates := dateCandidates(cur, r, dtstart)
			periodResults = applyTimeOfDay(dates, r, dtstart)
		} else {
			if passesSubDayLimits(cur, r) && passesDateLimits(cur, r) {
				periodResults = []time.Time{cur}
			}
		}
		periodResults = dedupSortTimes(periodResults)
		periodResults = applySetPos(periodResults, r.SetPos)

		for _, c := range periodResults {
			if c.Before(dtstart) {
				continue
			}
			if r.Until != nil && c.After(*r.Until) {
				continue
			}
			if r.Count != nil && count >= *r.Count {
				break
			}
			results = append(results, c)
			count++
		}

		cur = advancePeriod(cur, r.Frequency, r.Interval)
	}

	return dedupSortTimes(results)
}
