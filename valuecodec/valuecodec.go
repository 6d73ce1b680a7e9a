// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package valuecodec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/icaldur"
	"github.com/ahale/icalgo/model"
	"github.com/ahale/icalgo/rrule"
)

const (
	dateLayout         = "20060102"
	dateTimeLayout     = "20060102T150405"
	dateTimeUTCLayout  = "20060102T150405Z"
)

// DecodeText unescapes an RFC 5545 TEXT value: \\, \;, \,, \N and \n all
// decode to their literal counterpart (the last two both to a newline).
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.11
func DecodeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\':
				b.WriteByte('\\')
			case ';':
				b.WriteByte(';')
			case ',':
				b.WriteByte(',')
			case 'n', 'N':
				b.WriteByte('\n')
			default:
				b.WriteByte(s[i+1])
			}
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EncodeText escapes a literal string into its RFC 5545 TEXT wire form.
func EncodeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case ';':
			b.WriteString(`\;`)
		case ',':
			b.WriteString(`\,`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitTextList splits a comma-separated TEXT list on unescaped commas.
func SplitTextList(s string) []string {
	var out []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			cur.WriteByte(s[i])
			cur.WriteByte(s[i+1])
			i++
			continue
		}
		if s[i] == ',' {
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(s[i])
	}
	out = append(out, cur.String())
	return out
}

// DecodeInteger decodes an RFC 5545 INTEGER value.
func DecodeInteger(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInteger, s)
	}
	return v, nil
}

// DecodeDate decodes a bare DATE value (YYYYMMDD).
func DecodeDate(s string) (model.Value, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	return model.DateValue(t), nil
}

// DecodeDateTime decodes a DATE-TIME value, honoring the TZID parameter and
// a trailing 'Z'. line and bus are used only to record the diagnostic when
// both a 'Z' suffix and a TZID parameter are present (mutually exclusive
// per RFC 5545 §3.3.5); the 'Z' suffix wins and the value is treated as
// UTC.
func DecodeDateTime(s string, tzid string, bus *diag.Bus, line int) (model.Value, error) {
	isUTC := strings.HasSuffix(s, "Z")
	layout := dateTimeLayout
	if isUTC {
		layout = dateTimeUTCLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidDateTime, s)
	}

	if isUTC && tzid != "" {
		if bus != nil {
			bus.Warn("3.3.5_1", line, s, "DATE-TIME has both a Z suffix and a TZID parameter; Z takes precedence")
		}
		return model.DateTimeValue(t, model.FormUTC, ""), nil
	}
	if isUTC {
		return model.DateTimeValue(t, model.FormUTC, ""), nil
	}
	if tzid != "" {
		return model.DateTimeValue(t, model.FormZoned, tzid), nil
	}
	return model.DateTimeValue(t, model.FormFloating, ""), nil
}

// DecodeDateOrDateTime decodes a value that may be either DATE or
// DATE-TIME depending on the VALUE parameter (valueParam == "DATE" selects
// DATE; anything else, including absence, defaults to DATE-TIME).
func DecodeDateOrDateTime(s, valueParam, tzid string, bus *diag.Bus, line int) (model.Value, error) {
	if valueParam == "DATE" {
		return DecodeDate(s)
	}
	return DecodeDateTime(s, tzid, bus, line)
}

// DecodeDuration decodes a DURATION value, surfacing a diagnostic when the
// lenient Y/date-level-M extension was used.
func DecodeDuration(s string, bus *diag.Bus, line int) (model.Value, error) {
	d, nonStandard, err := icaldur.ParseICalDuration(s)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %s: %v", ErrInvalidDuration, s, err)
	}
	if nonStandard && bus != nil {
		bus.Warn("3.3.6_1", line, s, "DURATION uses a Y or date-level M designator, which RFC 5545 forbids")
	}
	return model.Value{Kind: model.KindDuration, Duration: d}, nil
}

// DecodePeriod decodes a PERIOD value: either "start/end" or
// "start/duration".
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.9
func DecodePeriod(s, tzid string, bus *diag.Bus, line int) (model.Value, error) {
	start, rest, found := strings.Cut(s, "/")
	if !found {
		return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, s)
	}
	startVal, err := DecodeDateTime(start, tzid, bus, line)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, s)
	}
	if len(rest) > 0 && rest[0] == 'P' {
		dv, err := DecodeDuration(rest, bus, line)
		if err != nil {
			return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, s)
		}
		startVal.Kind = model.KindPeriod
		startVal.PeriodDuration = dv.Duration
		startVal.HasPeriodDuration = true
		return startVal, nil
	}
	endVal, err := DecodeDateTime(rest, tzid, bus, line)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, s)
	}
	startVal.Kind = model.KindPeriod
	startVal.PeriodEnd = endVal.Time
	return startVal, nil
}

// DecodeRecur decodes a RECUR value.
func DecodeRecur(s string) (model.Value, error) {
	r, err := rrule.ParseRRule(s)
	if err != nil {
		return model.Value{}, err
	}
	return model.Value{Kind: model.KindRecur, Recur: r}, nil
}

// DecodeCalAddress decodes a CAL-ADDRESS value (typically a mailto: URI).
func DecodeCalAddress(s string) model.Value {
	return model.Value{Kind: model.KindCalAddress, URI: s}
}

// DecodeURI decodes a URI value.
func DecodeURI(s string) model.Value {
	return model.Value{Kind: model.KindURI, URI: s}
}

// DecodeList decodes a comma-separated list of identically-typed values
// using decodeElem for each element.
func DecodeList(s string, decodeElem func(string) (model.Value, error)) (model.Value, error) {
	elems := SplitTextList(s)
	out := make([]model.Value, 0, len(elems))
	for _, e := range elems {
		v, err := decodeElem(e)
		if err != nil {
			return model.Value{}, err
		}
		out = append(out, v)
	}
	return model.Value{Kind: model.KindList, List: out}, nil
}

// FormatDateTime renders a DATE or DATE-TIME Value back to its wire form
// (without any VALUE= or TZID= parameter, which the caller must attach).
func FormatDateTime(v model.Value) string {
	if v.IsDate {
		return v.Time.Format(dateLayout)
	}
	switch v.Form {
	case model.FormUTC:
		return v.Time.UTC().Format(dateTimeUTCLayout)
	default:
		return v.Time.Format(dateTimeLayout)
	}
}
