// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package generate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahale/icalgo/model"
	"github.com/ahale/icalgo/valuecodec"
)

const foldLimit = 75

// Calendar renders cal as a complete RFC 5545 document, CRLF-terminated
// and folded at the 75-octet soft limit.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.1
func Calendar(cal *model.Calendar) string {
	var b strings.Builder

	version := cal.Version
	if version == "" {
		version = "2.0"
	}
	prodID := cal.ProdID
	if prodID == "" {
		prodID = "-//icalgo//icalgo//EN"
	}

	writeLine(&b, "BEGIN", "VCALENDAR")
	writeLine(&b, "VERSION", version)
	writeLine(&b, "PRODID", prodID)
	if cal.CalScale != "" {
		writeLine(&b, "CALSCALE", cal.CalScale)
	}
	if cal.Method != "" {
		writeLine(&b, "METHOD", cal.Method)
	}
	for k, v := range cal.XProp {
		writeLine(&b, k, v)
	}

	for _, tz := range cal.TimeZones {
		writeTimeZone(&b, tz)
	}
	for _, e := range cal.Events {
		writeEvent(&b, e)
	}
	for _, td := range cal.Todos {
		writeTodo(&b, td)
	}
	for _, j := range cal.Journals {
		writeJournal(&b, j)
	}
	for _, f := range cal.FreeBusy {
		writeFreeBusy(&b, f)
	}

	writeLine(&b, "END", "VCALENDAR")
	return b.String()
}

func writeEvent(b *strings.Builder, e model.Event) {
	writeLine(b, "BEGIN", "VEVENT")
	writeBaseComponent(b, e.BaseComponent, "VEVENT")
	if e.Summary != "" {
		writeLine(b, "SUMMARY", valuecodec.EncodeText(e.Summary))
	}
	if e.Description != "" {
		writeLine(b, "DESCRIPTION", valuecodec.EncodeText(e.Description))
	}
	if e.Location != "" {
		writeLine(b, "LOCATION", valuecodec.EncodeText(e.Location))
	}
	if e.Status != "" {
		writeLine(b, "STATUS", e.Status)
	}
	if e.Organizer != nil {
		writeOrganizer(b, *e.Organizer)
	}
	writeDateTimeProperty(b, "DTSTART", e.DTStart)
	if e.HasDTEnd {
		writeDateTimeProperty(b, "DTEND", e.DTEnd)
	}
	if e.HasDuration {
		writeLine(b, "DURATION", formatDuration(e.Duration.Duration))
	}
	for _, rr := range e.RRule {
		if rr.Recur != nil {
			writeLine(b, "RRULE", rr.Recur.String())
		}
	}
	writeLine(b, "END", "VEVENT")
}

func writeTodo(b *strings.Builder, td model.Todo) {
	writeLine(b, "BEGIN", "VTODO")
	writeBaseComponent(b, td.BaseComponent, "VTODO")
	if td.Summary != "" {
		writeLine(b, "SUMMARY", valuecodec.EncodeText(td.Summary))
	}
	if td.Status != "" {
		writeLine(b, "STATUS", td.Status)
	}
	if td.HasDTStart {
		writeDateTimeProperty(b, "DTSTART", td.DTStart)
	}
	if td.HasDue {
		writeDateTimeProperty(b, "DUE", td.Due)
	}
	for _, rr := range td.RRule {
		if rr.Recur != nil {
			writeLine(b, "RRULE", rr.Recur.String())
		}
	}
	writeLine(b, "END", "VTODO")
}

func writeJournal(b *strings.Builder, j model.Journal) {
	writeLine(b, "BEGIN", "VJOURNAL")
	writeBaseComponent(b, j.BaseComponent, "VJOURNAL")
	if j.Summary != "" {
		writeLine(b, "SUMMARY", valuecodec.EncodeText(j.Summary))
	}
	for _, d := range j.Description {
		writeLine(b, "DESCRIPTION", valuecodec.EncodeText(d))
	}
	if j.HasDTStart {
		writeDateTimeProperty(b, "DTSTART", j.DTStart)
	}
	writeLine(b, "END", "VJOURNAL")
}

func writeFreeBusy(b *strings.Builder, f model.FreeBusy) {
	writeLine(b, "BEGIN", "VFREEBUSY")
	writeLine(b, "UID", f.UID)
	writeDateTimeProperty(b, "DTSTAMP", f.DTStamp)
	writeDateTimeProperty(b, "DTSTART", f.DTStart)
	writeDateTimeProperty(b, "DTEND", f.DTEnd)
	writeLine(b, "END", "VFREEBUSY")
}

func writeTimeZone(b *strings.Builder, tz model.TimeZone) {
	writeLine(b, "BEGIN", "VTIMEZONE")
	writeLine(b, "TZID", tz.TZID)
	for _, obs := range tz.Observances {
		name := "STANDARD"
		if obs.IsDaylight {
			name = "DAYLIGHT"
		}
		writeLine(b, "BEGIN", name)
		writeDateTimeProperty(b, "DTSTART", obs.DTStart)
		if obs.TZOffsetFrom != "" {
			writeLine(b, "TZOFFSETFROM", obs.TZOffsetFrom)
		}
		if obs.TZOffsetTo != "" {
			writeLine(b, "TZOFFSETTO", obs.TZOffsetTo)
		}
		for _, n := range obs.TZName {
			writeLine(b, "TZNAME", valuecodec.EncodeText(n))
		}
		writeLine(b, "END", name)
	}
	writeLine(b, "END", "VTIMEZONE")
}

func writeBaseComponent(b *strings.Builder, base model.BaseComponent, componentType string) {
	uid := base.UID
	if uid == "" {
		uid = uuid.NewString() + "@icalgo"
	}
	writeLine(b, "UID", uid)

	stamp := base.DTStamp
	if stamp.Time.IsZero() {
		stamp = model.DateTimeValue(time.Now().UTC(), model.FormUTC, "")
	}
	writeDateTimeProperty(b, "DTSTAMP", stamp)

	if base.Sequence != 0 {
		writeLine(b, "SEQUENCE", fmt.Sprintf("%d", base.Sequence))
	}
	_ = componentType
}

func writeOrganizer(b *strings.Builder, org model.Organizer) {
	if org.CommonName != "" {
		writeLine(b, "ORGANIZER;CN="+org.CommonName, org.CalAddress)
		return
	}
	writeLine(b, "ORGANIZER", org.CalAddress)
}

func writeDateTimeProperty(b *strings.Builder, name string, v model.Value) {
	if v.IsDate {
		writeLine(b, name+";VALUE=DATE", valuecodec.FormatDateTime(v))
		return
	}
	if v.Form == model.FormZoned && v.TZID != "" {
		writeLine(b, name+";TZID="+v.TZID, valuecodec.FormatDateTime(v))
		return
	}
	writeLine(b, name, valuecodec.FormatDateTime(v))
}

func formatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	days := total / 86400
	total %= 86400
	hours := total / 3600
	total %= 3600
	minutes := total / 60
	seconds := total % 60

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('P')
	if days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}
	if hours > 0 || minutes > 0 || seconds > 0 {
		b.WriteByte('T')
		if hours > 0 {
			fmt.Fprintf(&b, "%dH", hours)
		}
		if minutes > 0 {
			fmt.Fprintf(&b, "%dM", minutes)
		}
		if seconds > 0 {
			fmt.Fprintf(&b, "%dS", seconds)
		}
	}
	if days == 0 && hours == 0 && minutes == 0 && seconds == 0 {
		b.WriteString("T0S")
	}
	return b.String()
}

// writeLine writes one folded, CRLF-terminated content line.
func writeLine(b *strings.Builder, name, value string) {
	b.WriteString(fold(name + ":" + value))
	b.WriteString("\r\n")
}

// fold wraps s so that every physical line, including a continuation's
// single leading space, is at most foldLimit octets, per RFC 5545 §3.1.
func fold(s string) string {
	if len(s) <= foldLimit {
		return s
	}
	var b strings.Builder
	first := true
	for len(s) > 0 {
		limit := foldLimit
		if !first {
			limit--
		}
		n := limit
		if n > len(s) {
			n = len(s)
		}
		if !first {
			b.WriteString("\r\n ")
		}
		b.WriteString(s[:n])
		s = s[n:]
		first = false
	}
	return b.String()
}
