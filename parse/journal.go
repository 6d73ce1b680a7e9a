// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"strings"

	"github.com/ahale/icalgo/lex"
	"github.com/ahale/icalgo/model"
	"github.com/ahale/icalgo/valuecodec"
)

func parseJournalProperty(ctx *parseContext, line lex.ContentLine, journal *model.Journal) error {
	switch model.JournalToken(line.Name) {
	case model.JournalTokenUID:
		return setOnceProperty(&journal.UID, line.Value, "UID", "VJOURNAL")
	case model.JournalTokenDTStamp:
		v, err := valuecodec.DecodeDateTime(line.Value, tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		journal.DTStamp = v
		return nil
	case model.JournalTokenSummary:
		return setOnceProperty(&journal.Summary, valuecodec.DecodeText(line.Value), "SUMMARY", "VJOURNAL")
	case model.JournalTokenDescription:
		journal.Description = append(journal.Description, valuecodec.DecodeText(line.Value))
		return nil
	case model.JournalTokenStatus:
		return setOnceProperty(&journal.Status, line.Value, "STATUS", "VJOURNAL")
	case model.JournalTokenClass:
		return setOnceProperty(&journal.Class, line.Value, "CLASS", "VJOURNAL")
	case model.JournalTokenURL:
		return setOnceProperty(&journal.URL, line.Value, "URL", "VJOURNAL")
	case model.JournalTokenContact:
		journal.Contact = append(journal.Contact, valuecodec.DecodeText(line.Value))
		return nil
	case model.JournalTokenComment:
		journal.Comment = append(journal.Comment, valuecodec.DecodeText(line.Value))
		return nil
	case model.JournalTokenCategories:
		for _, c := range valuecodec.SplitTextList(line.Value) {
			journal.Categories = append(journal.Categories, valuecodec.DecodeText(c))
		}
		return nil
	case model.JournalTokenCreated:
		v, err := valuecodec.DecodeDateTime(line.Value, "", ctx.bus, line.Line)
		if err != nil {
			return err
		}
		journal.Created = v
		return nil
	case model.JournalTokenLastModified:
		v, err := valuecodec.DecodeDateTime(line.Value, "", ctx.bus, line.Line)
		if err != nil {
			return err
		}
		journal.LastMod = v
		return nil
	case model.JournalTokenRecurrenceID:
		v, err := valuecodec.DecodeDateOrDateTime(line.Value, valueOverrideOf(line), tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		journal.RecurrenceID = v
		journal.HasRecurrenceID = true
		return nil
	case model.JournalTokenOrganizer:
		org, err := parseOrganizer(line)
		if err != nil {
			return err
		}
		journal.Organizer = org
		return nil
	case model.JournalTokenAttendee:
		journal.Attendees = append(journal.Attendees, parseAttendee(line))
		return nil
	case model.JournalTokenAttach:
		journal.Attach = append(journal.Attach, parseAttach(line))
		return nil
	case model.JournalTokenDTStart:
		v, err := valuecodec.DecodeDateOrDateTime(line.Value, valueOverrideOf(line), tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		journal.DTStart = v
		journal.HasDTStart = true
		return nil
	case model.JournalTokenRRule:
		v, err := valuecodec.DecodeRecur(line.Value)
		if err != nil {
			return err
		}
		appendRRule(&journal.RRule, v, ctx.bus, line.Line)
		return nil
	case model.JournalTokenRdate:
		return appendDateList(&journal.RDate, line, ctx.bus)
	case model.JournalTokenExceptionDates:
		return appendDateList(&journal.EXDate, line, ctx.bus)
	default:
		if strings.HasPrefix(line.Name, "X-") {
			if journal.XProp == nil {
				journal.XProp = make(map[string]string)
			}
			journal.XProp[line.Name] = line.Value
			return nil
		}
		if journal.IANAProp == nil {
			journal.IANAProp = make(map[string]string)
		}
		journal.IANAProp[line.Name] = line.Value
		return nil
	}
}
