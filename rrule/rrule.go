// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rrule implements the recurrence rule (RECUR) representation
// defined in RFC 5545 §3.3.10: parsing, round-trip serialization, and the
// per-part domain validation from §4.6.1. It does not itself expand a
// RECUR into an occurrence set — that is the expand package's job.
package rrule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ahale/icalgo/icaldur"
)

type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
)

func isValidFrequency(f Frequency) bool {
	switch f {
	case FrequencySecondly, FrequencyMinutely, FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

type Weekday string

const (
	WeekdayMonday    Weekday = "MO"
	WeekdayTuesday   Weekday = "TU"
	WeekdayWednesday Weekday = "WE"
	WeekdayThursday  Weekday = "TH"
	WeekdayFriday    Weekday = "FR"
	WeekdaySaturday  Weekday = "SA"
	WeekdaySunday    Weekday = "SU"
)

// weekdayOrder is Monday-first, matching ISO 8601 and time.Weekday's Go
// quirk (Sunday=0) worked around via this table.
var weekdayOrder = map[Weekday]int{
	WeekdayMonday:    0,
	WeekdayTuesday:   1,
	WeekdayWednesday: 2,
	WeekdayThursday:  3,
	WeekdayFriday:    4,
	WeekdaySaturday:  5,
	WeekdaySunday:    6,
}

// GoWeekday returns the standard library's time.Weekday equivalent.
func (w Weekday) GoWeekday() time.Weekday {
	switch w {
	case WeekdayMonday:
		return time.Monday
	case WeekdayTuesday:
		return time.Tuesday
	case WeekdayWednesday:
		return time.Wednesday
	case WeekdayThursday:
		return time.Thursday
	case WeekdayFriday:
		return time.Friday
	case WeekdaySaturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}

// FromGoWeekday converts a time.Weekday to the RFC 5545 two-letter form.
func FromGoWeekday(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return WeekdayMonday
	case time.Tuesday:
		return WeekdayTuesday
	case time.Wednesday:
		return WeekdayWednesday
	case time.Thursday:
		return WeekdayThursday
	case time.Friday:
		return WeekdayFriday
	case time.Saturday:
		return WeekdaySaturday
	default:
		return WeekdaySunday
	}
}

func isValidWeekday(w Weekday) bool {
	_, ok := weekdayOrder[w]
	return ok
}

// ByDay is one BYDAY rule-part entry: an optional ordinal (meaningful only
// for FREQ=MONTHLY or FREQ=YEARLY) and a weekday.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
type ByDay struct {
	Weekday Weekday
	// Ordinal is the signed ordinal prefix (e.g. -1 for "last"), or 0 when
	// none was given.
	Ordinal int
}

// RRule is the parsed representation of an RFC 5545 RECUR value.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
type RRule struct {
	Frequency Frequency
	Interval  int
	Count     *int
	Until     *time.Time
	// WeekStart is the WKST rule part, defaulting to Monday.
	WeekStart Weekday

	Weekday  []ByDay
	Month    []int
	Monthday []int
	YearDay  []int
	WeekNo   []int
	Hour     []int
	Minute   []int
	Second   []int
	SetPos   []int
}

// ParseRRule parses an RFC 5545 RECUR value string (the part after
// "RRULE:") into an RRule.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
func ParseRRule(s string) (*RRule, error) {
	rule := &RRule{Interval: 1, WeekStart: WeekdayMonday}
	seen := make(map[string]bool)
	first := true

	for part := range strings.SplitSeq(s, ";") {
		tag, value, found := strings.Cut(part, "=")
		if !found {
			return nil, errInvalidRRuleString
		}
		if tag != "FREQ" && first {
			return nil, errFrequencyNotFirst
		}
		first = false
		if seen[tag] {
			return nil, fmt.Errorf("%w: %s", errDuplicateRulePart, tag)
		}
		seen[tag] = true

		var err error
		switch tag {
		case "FREQ":
			rule.Frequency = Frequency(value)
			if !isValidFrequency(rule.Frequency) {
				return nil, fmt.Errorf("%w: %s", errInvalidFrequency, value)
			}
		case "INTERVAL":
			rule.Interval, err = strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
		case "COUNT":
			var count int
			count, err = strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			rule.Count = &count
		case "UNTIL":
			var until time.Time
			if len(value) == len("20060102") {
				until, err = time.Parse("20060102", value)
			} else {
				until, err = icaldur.ParseIcalTime(value)
			}
			if err != nil {
				return nil, err
			}
			rule.Until = &until
		case "WKST":
			rule.WeekStart = Weekday(value)
			if !isValidWeekday(rule.WeekStart) {
				return nil, fmt.Errorf("%w: WKST=%s", errInvalidByDayString, value)
			}
		case "BYDAY":
			rule.Weekday, err = parseByDayList(value)
		case "BYMONTH":
			rule.Month, err = parseIntList(value, 1, 12, false)
		case "BYMONTHDAY":
			rule.Monthday, err = parseIntList(value, 1, 31, true)
		case "BYYEARDAY":
			rule.YearDay, err = parseIntList(value, 1, 366, true)
		case "BYWEEKNO":
			rule.WeekNo, err = parseIntList(value, 1, 53, true)
		case "BYHOUR":
			rule.Hour, err = parseIntList(value, 0, 23, false)
		case "BYMINUTE":
			rule.Minute, err = parseIntList(value, 0, 59, false)
		case "BYSECOND":
			rule.Second, err = parseIntList(value, 0, 60, false)
		case "BYSETPOS":
			rule.SetPos, err = parseIntList(value, 1, 366, true)
		default:
			// Unrecognized rule parts (vendor extensions) are ignored rather
			// than rejected, matching the lexer's X- leniency elsewhere.
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	if err := validateRRule(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// validateRRule enforces spec.md §4.5/§4.6.1: FREQ required, COUNT xor
// UNTIL, positive INTERVAL, and the BYYEARDAY/BYWEEKNO FREQ restrictions.
func validateRRule(r *RRule) error {
	if r.Frequency == "" {
		return errFrequencyRequired
	}
	if r.Count != nil && r.Until != nil {
		return errCountAndUntilBothSet
	}
	if r.Interval <= 0 {
		return errInvalidInterval
	}
	if len(r.YearDay) > 0 {
		switch r.Frequency {
		case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
			return errByYearDayForbidden
		}
	}
	if len(r.WeekNo) > 0 && r.Frequency != FrequencyYearly {
		return errByWeekNoNotYearly
	}
	return nil
}

// parseIntList parses a comma-separated list of signed integers, each
// validated against [min, max] (or [-max, max] \ {0} when allowNegative).
func parseIntList(s string, min, max int, allowNegative bool) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			return nil, fmt.Errorf("%w: %d", errOutOfRange, v)
		}
		abs := v
		if abs < 0 {
			if !allowNegative {
				return nil, fmt.Errorf("%w: %d", errOutOfRange, v)
			}
			abs = -abs
		}
		if abs < min || abs > max {
			return nil, fmt.Errorf("%w: %d", errOutOfRange, v)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseByDayList parses a comma-separated BYDAY value into ByDay entries.
func parseByDayList(s string) ([]ByDay, error) {
	parts := strings.Split(s, ",")
	out := make([]ByDay, 0, len(parts))
	for _, p := range parts {
		ordinal, weekday, err := parseByDay(p)
		if err != nil {
			return nil, err
		}
		out = append(out, ByDay{Weekday: weekday, Ordinal: ordinal})
	}
	return out, nil
}

// parseByDay parses a single BYDAY token ("20MO", "-1FR", "TU") into its
// ordinal (0 when absent) and weekday.
func parseByDay(s string) (int, Weekday, error) {
	if s == "" {
		return 0, "", errInvalidByDayString
	}
	digitEnd := 0
	for i, c := range s {
		if c == '-' && i == 0 {
			digitEnd = 1
			continue
		}
		if c < '0' || c > '9' {
			digitEnd = i
			break
		}
		digitEnd = i + 1
	}
	// digitEnd only reflects a numeric prefix if at least one digit (beyond
	// a possible leading '-') was consumed.
	numericPrefix := digitEnd > 0 && (s[digitEnd-1] >= '0' && s[digitEnd-1] <= '9')

	if !numericPrefix {
		weekday := Weekday(s)
		if !isValidWeekday(weekday) {
			return 0, "", errInvalidByDayString
		}
		return 0, weekday, nil
	}

	ordinal, err := strconv.Atoi(s[:digitEnd])
	if err != nil {
		return 0, "", errInvalidByDayString
	}
	if ordinal == 0 || ordinal < -53 || ordinal > 53 {
		return 0, "", fmt.Errorf("%w: %d", errOutOfRange, ordinal)
	}
	weekday := Weekday(s[digitEnd:])
	if !isValidWeekday(weekday) {
		return 0, "", errInvalidByDayString
	}
	return ordinal, weekday, nil
}

// String re-serializes the rule to its RFC 5545 wire form (FREQ first,
// remaining parts in a fixed, deterministic order), used by the generate
// package for round-trip output.
func (r *RRule) String() string {
	var b strings.Builder
	b.WriteString("FREQ=")
	b.WriteString(string(r.Frequency))
	if r.Interval != 1 {
		fmt.Fprintf(&b, ";INTERVAL=%d", r.Interval)
	}
	if r.Count != nil {
		fmt.Fprintf(&b, ";COUNT=%d", *r.Count)
	}
	if r.Until != nil {
		b.WriteString(";UNTIL=")
		b.WriteString(icaldur.FormatIcalTime(*r.Until))
	}
	if r.WeekStart != "" && r.WeekStart != WeekdayMonday {
		b.WriteString(";WKST=")
		b.WriteString(string(r.WeekStart))
	}
	writeIntList(&b, "BYMONTH", r.Month)
	writeIntList(&b, "BYWEEKNO", r.WeekNo)
	writeIntList(&b, "BYYEARDAY", r.YearDay)
	writeIntList(&b, "BYMONTHDAY", r.Monthday)
	if len(r.Weekday) > 0 {
		b.WriteString(";BYDAY=")
		for i, d := range r.Weekday {
			if i > 0 {
				b.WriteByte(',')
			}
			if d.Ordinal != 0 {
				fmt.Fprintf(&b, "%d", d.Ordinal)
			}
			b.WriteString(string(d.Weekday))
		}
	}
	writeIntList(&b, "BYHOUR", r.Hour)
	writeIntList(&b, "BYMINUTE", r.Minute)
	writeIntList(&b, "BYSECOND", r.Second)
	writeIntList(&b, "BYSETPOS", r.SetPos)
	return b.String()
}

func writeIntList(b *strings.Builder, tag string, vals []int) {
	if len(vals) == 0 {
		return
	}
	b.WriteByte(';')
	b.WriteString(tag)
	b.WriteByte('=')
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "%d", v)
	}
}
