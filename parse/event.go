// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"strings"

	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/lex"
	"github.com/ahale/icalgo/model"
	"github.com/ahale/icalgo/valuecodec"
)

func parseEventProperty(ctx *parseContext, line lex.ContentLine, event *model.Event) error {
	switch model.EventToken(line.Name) {
	case model.EventTokenUID:
		return setOnceProperty(&event.UID, line.Value, "UID", "VEVENT")
	case model.EventTokenDTStamp:
		v, err := valuecodec.DecodeDateTime(line.Value, tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		event.DTStamp = v
		return nil
	case model.EventTokenSummary:
		return setOnceProperty(&event.Summary, valuecodec.DecodeText(line.Value), "SUMMARY", "VEVENT")
	case model.EventTokenDescription:
		return setOnceProperty(&event.Description, valuecodec.DecodeText(line.Value), "DESCRIPTION", "VEVENT")
	case model.EventTokenLocation:
		return setOnceProperty(&event.Location, valuecodec.DecodeText(line.Value), "LOCATION", "VEVENT")
	case model.EventTokenStatus:
		return setOnceProperty(&event.Status, line.Value, "STATUS", "VEVENT")
	case model.EventTokenTransp:
		return setOnceProperty(&event.Transp, line.Value, "TRANSP", "VEVENT")
	case model.EventTokenClass:
		return setOnceProperty(&event.Class, line.Value, "CLASS", "VEVENT")
	case model.EventTokenURL:
		return setOnceProperty(&event.URL, line.Value, "URL", "VEVENT")
	case model.EventTokenSequence:
		n, err := valuecodec.DecodeInteger(line.Value)
		if err != nil {
			return err
		}
		return setOnceProperty(&event.Sequence, n, "SEQUENCE", "VEVENT")
	case model.EventTokenPriority:
		n, err := valuecodec.DecodeInteger(line.Value)
		if err != nil {
			return err
		}
		return setOnceProperty(&event.Priority, n, "PRIORITY", "VEVENT")
	case model.EventTokenContact:
		event.Contact = append(event.Contact, valuecodec.DecodeText(line.Value))
		return nil
	case model.EventTokenComment:
		event.Comment = append(event.Comment, valuecodec.DecodeText(line.Value))
		return nil
	case model.EventTokenCategories:
		for _, c := range valuecodec.SplitTextList(line.Value) {
			event.Categories = append(event.Categories, valuecodec.DecodeText(c))
		}
		return nil
	case model.EventTokenCreated:
		v, err := valuecodec.DecodeDateTime(line.Value, "", ctx.bus, line.Line)
		if err != nil {
			return err
		}
		event.Created = v
		return nil
	case model.EventTokenLastModified:
		v, err := valuecodec.DecodeDateTime(line.Value, "", ctx.bus, line.Line)
		if err != nil {
			return err
		}
		event.LastMod = v
		return nil
	case model.EventTokenRecurrenceID:
		v, err := valuecodec.DecodeDateOrDateTime(line.Value, valueOverrideOf(line), tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		event.RecurrenceID = v
		event.HasRecurrenceID = true
		return nil
	case model.EventTokenOrganizer:
		org, err := parseOrganizer(line)
		if err != nil {
			return err
		}
		event.Organizer = org
		return nil
	case model.EventTokenAttendee:
		event.Attendees = append(event.Attendees, parseAttendee(line))
		return nil
	case model.EventTokenAttach:
		event.Attach = append(event.Attach, parseAttach(line))
		return nil
	case model.EventTokenDtstart:
		v, err := valuecodec.DecodeDateOrDateTime(line.Value, valueOverrideOf(line), tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		event.DTStart = v
		event.StartValueKind = v.Kind
		return nil
	case model.EventTokenDtend:
		v, err := valuecodec.DecodeDateOrDateTime(line.Value, valueOverrideOf(line), tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		event.DTEnd = v
		event.EndValueKind = v.Kind
		event.HasDTEnd = true
		return nil
	case model.EventTokenDuration:
		v, err := valuecodec.DecodeDuration(line.Value, ctx.bus, line.Line)
		if err != nil {
			return err
		}
		event.Duration = v
		event.HasDuration = true
		return nil
	case model.EventTokenRRule:
		v, err := valuecodec.DecodeRecur(line.Value)
		if err != nil {
			return err
		}
		appendRRule(&event.RRule, v, ctx.bus, line.Line)
		return nil
	case model.EventTokenRDate:
		return appendDateList(&event.RDate, line, ctx.bus)
	case model.EventTokenExDate:
		return appendDateList(&event.EXDate, line, ctx.bus)
	default:
		if strings.HasPrefix(line.Name, "X-") {
			if event.XProp == nil {
				event.XProp = make(map[string]string)
			}
			event.XProp[line.Name] = line.Value
			return nil
		}
		if event.IANAProp == nil {
			event.IANAProp = make(map[string]string)
		}
		event.IANAProp[line.Name] = line.Value
		return nil
	}
}

// appendDateList decodes a comma-separated RDATE/EXDATE value (each
// element DATE, DATE-TIME, or PERIOD depending on the VALUE parameter) and
// appends every element to *dst.
func appendDateList(dst *[]model.Value, line lex.ContentLine, bus *diag.Bus) error {
	valueParam := valueOverrideOf(line)
	tzid := tzidOf(line)
	for _, elem := range valuecodec.SplitTextList(line.Value) {
		var v model.Value
		var err error
		switch valueParam {
		case "PERIOD":
			v, err = valuecodec.DecodePeriod(elem, tzid, bus, line.Line)
		case "DATE":
			v, err = valuecodec.DecodeDate(elem)
		default:
			v, err = valuecodec.DecodeDateTime(elem, tzid, bus, line.Line)
		}
		if err != nil {
			return err
		}
		*dst = append(*dst, v)
	}
	return nil
}

// finalizeEvent repairs and flags the VEVENT-level invariants from
// spec.md §4.5: UID is synthesized when absent, DTEND/DURATION mutual
// exclusion is reported, and a DTEND preceding DTSTART is repaired by
// pulling DTEND up to DTSTART (DTSTART itself is never touched).
func finalizeEvent(event *model.Event, bus *diag.Bus, line int) {
	if event.UID == "" {
		event.UID = synthesizeUID()
		bus.Warn("3.8.4.7_1", line, "", errEventMissingUID.Error())
	}
	if event.HasDTEnd && event.HasDuration {
		bus.Warn("3.6.1_1", line, "", errEventBothEndAndDur.Error())
		event.HasDuration = false
	}
	if event.DTStart.Kind == 0 && event.DTStart.Time.IsZero() {
		bus.Warn("3.6.1_2", line, "", errEventMissingDTStart.Error())
	}
	if event.HasDTEnd && !event.DTEnd.Time.IsZero() && !event.DTStart.Time.IsZero() && event.DTEnd.Time.Before(event.DTStart.Time) {
		bus.Warn("3.8.2.2_1", line, "", "DTEND precedes DTSTART; setting DTEND = DTSTART")
		event.DTEnd = event.DTStart
	}
}
