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

func parseTodoProperty(ctx *parseContext, line lex.ContentLine, todo *model.Todo) error {
	switch model.TodoToken(line.Name) {
	case model.TodoTokenUID:
		return setOnceProperty(&todo.UID, line.Value, "UID", "VTODO")
	case model.TodoTokenDTStamp:
		v, err := valuecodec.DecodeDateTime(line.Value, tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		todo.DTStamp = v
		return nil
	case model.TodoTokenSummary:
		return setOnceProperty(&todo.Summary, valuecodec.DecodeText(line.Value), "SUMMARY", "VTODO")
	case model.TodoTokenDescription:
		return setOnceProperty(&todo.Description, valuecodec.DecodeText(line.Value), "DESCRIPTION", "VTODO")
	case model.TodoTokenLocation:
		return setOnceProperty(&todo.Location, valuecodec.DecodeText(line.Value), "LOCATION", "VTODO")
	case model.TodoTokenStatus:
		return setOnceProperty(&todo.Status, line.Value, "STATUS", "VTODO")
	case model.TodoTokenTransp:
		return setOnceProperty(&todo.Transp, line.Value, "TRANSP", "VTODO")
	case model.TodoTokenClass:
		return setOnceProperty(&todo.Class, line.Value, "CLASS", "VTODO")
	case model.TodoTokenURL:
		return setOnceProperty(&todo.URL, line.Value, "URL", "VTODO")
	case model.TodoTokenSequence:
		n, err := valuecodec.DecodeInteger(line.Value)
		if err != nil {
			return err
		}
		return setOnceProperty(&todo.Sequence, n, "SEQUENCE", "VTODO")
	case model.TodoTokenPriority:
		n, err := valuecodec.DecodeInteger(line.Value)
		if err != nil {
			return err
		}
		return setOnceProperty(&todo.Priority, n, "PRIORITY", "VTODO")
	case model.TodoTokenPercentComplete:
		n, err := valuecodec.DecodeInteger(line.Value)
		if err != nil {
			return err
		}
		return setOnceProperty(&todo.PercentComplete, n, "PERCENT-COMPLETE", "VTODO")
	case model.TodoTokenContact:
		todo.Contact = append(todo.Contact, valuecodec.DecodeText(line.Value))
		return nil
	case model.TodoTokenComment:
		todo.Comment = append(todo.Comment, valuecodec.DecodeText(line.Value))
		return nil
	case model.TodoTokenCategories:
		for _, c := range valuecodec.SplitTextList(line.Value) {
			todo.Categories = append(todo.Categories, valuecodec.DecodeText(c))
		}
		return nil
	case model.TodoTokenCreated:
		v, err := valuecodec.DecodeDateTime(line.Value, "", ctx.bus, line.Line)
		if err != nil {
			return err
		}
		todo.Created = v
		return nil
	case model.TodoTokenLastModified:
		v, err := valuecodec.DecodeDateTime(line.Value, "", ctx.bus, line.Line)
		if err != nil {
			return err
		}
		todo.LastMod = v
		return nil
	case model.TodoTokenRecurrenceID:
		v, err := valuecodec.DecodeDateOrDateTime(line.Value, valueOverrideOf(line), tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		todo.RecurrenceID = v
		todo.HasRecurrenceID = true
		return nil
	case model.TodoTokenOrganizer:
		org, err := parseOrganizer(line)
		if err != nil {
			return err
		}
		todo.Organizer = org
		return nil
	case model.TodoTokenAttendee:
		todo.Attendees = append(todo.Attendees, parseAttendee(line))
		return nil
	case model.TodoTokenAttach:
		todo.Attach = append(todo.Attach, parseAttach(line))
		return nil
	case model.TodoTokenDTStart:
		v, err := valuecodec.DecodeDateOrDateTime(line.Value, valueOverrideOf(line), tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		todo.DTStart = v
		todo.HasDTStart = true
		return nil
	case model.TodoTokenDue:
		v, err := valuecodec.DecodeDateOrDateTime(line.Value, valueOverrideOf(line), tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		todo.Due = v
		todo.HasDue = true
		return nil
	case model.TodoTokenDuration:
		v, err := valuecodec.DecodeDuration(line.Value, ctx.bus, line.Line)
		if err != nil {
			return err
		}
		todo.Duration = v
		todo.HasDuration = true
		return nil
	case model.TodoTokenCompleted:
		v, err := valuecodec.DecodeDateTime(line.Value, "", ctx.bus, line.Line)
		if err != nil {
			return err
		}
		todo.Completed = v
		todo.HasCompleted = true
		return nil
	case model.TodoTokenRRule:
		v, err := valuecodec.DecodeRecur(line.Value)
		if err != nil {
			return err
		}
		appendRRule(&todo.RRule, v, ctx.bus, line.Line)
		return nil
	case model.TodoTokenRdate:
		return appendDateList(&todo.RDate, line, ctx.bus)
	case model.TodoTokenExceptionDates:
		return appendDateList(&todo.EXDate, line, ctx.bus)
	default:
		if strings.HasPrefix(line.Name, "X-") {
			if todo.XProp == nil {
				todo.XProp = make(map[string]string)
			}
			todo.XProp[line.Name] = line.Value
			return nil
		}
		if todo.IANAProp == nil {
			todo.IANAProp = make(map[string]string)
		}
		todo.IANAProp[line.Name] = line.Value
		return nil
	}
}

// finalizeTodo mirrors finalizeEvent's repairs for the VTODO component.
func finalizeTodo(todo *model.Todo, bus *diag.Bus, line int) {
	if todo.UID == "" {
		todo.UID = synthesizeUID()
		bus.Warn("3.8.4.7_1", line, "", errEventMissingUID.Error())
	}
	if todo.HasDue && todo.HasDuration {
		bus.Warn("3.6.2_1", line, "", errTodoBothDueAndDur.Error())
		todo.HasDuration = false
	}
}
