// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"fmt"
	"strings"

	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/lex"
	"github.com/ahale/icalgo/model"
)

type component int

const (
	compCalendar component = iota
	compEvent
	compTodo
	compJournal
	compFreeBusy
	compTimezone
	compStandard
	compDaylight
	compAlarm
	compUnknown
)

// frame is one entry of the BEGIN/END pushdown stack: exactly one of its
// component pointers is non-nil, selected by kind.
type frame struct {
	kind component

	event      *model.Event
	todo       *model.Todo
	journal    *model.Journal
	freebusy   *model.FreeBusy
	timezone   *model.TimeZone
	observance *model.TimeZoneProp
	alarm      *model.Alarm

	// unknownToken is set when kind == compUnknown, so the matching END can
	// be recognized even though the component itself is ignored.
	unknownToken string
}

// parseContext threads the component stack and diagnostic bus through the
// per-component property dispatch functions.
type parseContext struct {
	bus   *diag.Bus
	cal   *model.Calendar
	stack []*frame
}

func newParseContext(bus *diag.Bus) *parseContext {
	return &parseContext{bus: bus, cal: &model.Calendar{}}
}

func (ctx *parseContext) top() *frame {
	if len(ctx.stack) == 0 {
		return nil
	}
	return ctx.stack[len(ctx.stack)-1]
}

func (ctx *parseContext) parent() *frame {
	if len(ctx.stack) < 2 {
		return nil
	}
	return ctx.stack[len(ctx.stack)-2]
}

// Parse runs the full content-line list through the automaton and returns
// the assembled Calendar.
func Parse(lines []lex.ContentLine, bus *diag.Bus) (*model.Calendar, error) {
	ctx := newParseContext(bus)

	for _, line := range lines {
		name := strings.ToUpper(line.Name)
		switch name {
		case "BEGIN":
			if err := ctx.begin(strings.ToUpper(line.Value), line); err != nil {
				return nil, &FatalError{Tag: "3.6", Line: line.Line, Err: err}
			}
		case "END":
			if err := ctx.end(strings.ToUpper(line.Value), line); err != nil {
				return nil, &FatalError{Tag: "3.6", Line: line.Line, Err: err}
			}
		default:
			ctx.dispatchProperty(line)
		}
	}

	if len(ctx.stack) != 0 {
		top := ctx.stack[len(ctx.stack)-1]
		return nil, &FatalError{Tag: "3.6", Err: fmt.Errorf("%w: %s", ErrUnterminated, top.unknownToken)}
	}
	if ctx.cal.Version == "" && ctx.cal.ProdID == "" && len(ctx.cal.Events) == 0 {
		return nil, &FatalError{Tag: "3.4", Err: ErrNoCalendar}
	}
	return ctx.cal, nil
}

func (ctx *parseContext) begin(token string, line lex.ContentLine) error {
	parentKind := compUnknown
	if f := ctx.top(); f != nil {
		parentKind = f.kind
	} else {
		parentKind = -1 // no parent yet
	}

	switch model.SectionToken(token) {
	case model.SectionTokenVCalendar:
		if len(ctx.stack) != 0 {
			return fmt.Errorf("%w: VCALENDAR", ErrUnexpectedBegin)
		}
		ctx.stack = append(ctx.stack, &frame{kind: compCalendar})
	case model.SectionTokenVEvent:
		if parentKind != compCalendar {
			return fmt.Errorf("%w: VEVENT", ErrUnexpectedBegin)
		}
		ctx.stack = append(ctx.stack, &frame{kind: compEvent, event: &model.Event{}})
	case model.SectionTokenVTodo:
		if parentKind != compCalendar {
			return fmt.Errorf("%w: VTODO", ErrUnexpectedBegin)
		}
		ctx.stack = append(ctx.stack, &frame{kind: compTodo, todo: &model.Todo{}})
	case model.SectionTokenVJournal:
		if parentKind != compCalendar {
			return fmt.Errorf("%w: VJOURNAL", ErrUnexpectedBegin)
		}
		ctx.stack = append(ctx.stack, &frame{kind: compJournal, journal: &model.Journal{}})
	case model.SectionTokenVFreebusy:
		if parentKind != compCalendar {
			return fmt.Errorf("%w: VFREEBUSY", ErrUnexpectedBegin)
		}
		ctx.stack = append(ctx.stack, &frame{kind: compFreeBusy, freebusy: &model.FreeBusy{}})
	case model.SectionTokenVTimezone:
		if parentKind != compCalendar {
			return fmt.Errorf("%w: VTIMEZONE", ErrUnexpectedBegin)
		}
		ctx.stack = append(ctx.stack, &frame{kind: compTimezone, timezone: &model.TimeZone{}})
	case model.SectionTokenStandard:
		if parentKind != compTimezone {
			return fmt.Errorf("%w: STANDARD", ErrUnexpectedBegin)
		}
		ctx.stack = append(ctx.stack, &frame{kind: compStandard, observance: &model.TimeZoneProp{IsDaylight: false}})
	case model.SectionTokenDaylight:
		if parentKind != compTimezone {
			return fmt.Errorf("%w: DAYLIGHT", ErrUnexpectedBegin)
		}
		ctx.stack = append(ctx.stack, &frame{kind: compDaylight, observance: &model.TimeZoneProp{IsDaylight: true}})
	case model.SectionTokenVAlarm:
		if parentKind != compEvent && parentKind != compTodo {
			return fmt.Errorf("%w: VALARM", ErrUnexpectedBegin)
		}
		ctx.stack = append(ctx.stack, &frame{kind: compAlarm, alarm: &model.Alarm{}})
	default:
		ctx.bus.Warn("3.6_1", line.Line, line.Raw, "unrecognized component "+token+"; its properties will be ignored")
		ctx.stack = append(ctx.stack, &frame{kind: compUnknown, unknownToken: token})
	}
	return nil
}

func (ctx *parseContext) end(token string, line lex.ContentLine) error {
	f := ctx.top()
	if f == nil {
		return fmt.Errorf("%w: %s", ErrUnexpectedEnd, token)
	}

	var expected string
	switch f.kind {
	case compCalendar:
		expected = string(model.SectionTokenVCalendar)
	case compEvent:
		expected = string(model.SectionTokenVEvent)
	case compTodo:
		expected = string(model.SectionTokenVTodo)
	case compJournal:
		expected = string(model.SectionTokenVJournal)
	case compFreeBusy:
		expected = string(model.SectionTokenVFreebusy)
	case compTimezone:
		expected = string(model.SectionTokenVTimezone)
	case compStandard:
		expected = string(model.SectionTokenStandard)
	case compDaylight:
		expected = string(model.SectionTokenDaylight)
	case compAlarm:
		expected = string(model.SectionTokenVAlarm)
	case compUnknown:
		expected = f.unknownToken
	}
	if token != expected {
		return fmt.Errorf("%w: expected END:%s, got END:%s", ErrUnexpectedEnd, expected, token)
	}

	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	parent := ctx.top()

	switch f.kind {
	case compCalendar:
		// nothing to attach; this is the root.
	case compEvent:
		finalizeEvent(f.event, ctx.bus, line.Line)
		ctx.cal.Events = append(ctx.cal.Events, *f.event)
	case compTodo:
		finalizeTodo(f.todo, ctx.bus, line.Line)
		ctx.cal.Todos = append(ctx.cal.Todos, *f.todo)
	case compJournal:
		ctx.cal.Journals = append(ctx.cal.Journals, *f.journal)
	case compFreeBusy:
		ctx.cal.FreeBusy = append(ctx.cal.FreeBusy, *f.freebusy)
	case compTimezone:
		ctx.cal.TimeZones = append(ctx.cal.TimeZones, *f.timezone)
	case compStandard, compDaylight:
		if parent != nil && parent.timezone != nil {
			parent.timezone.Observances = append(parent.timezone.Observances, *f.observance)
		}
	case compAlarm:
		finalizeAlarm(f.alarm, ctx.bus, line.Line)
		if parent != nil {
			switch {
			case parent.event != nil:
				parent.event.Alarms = append(parent.event.Alarms, *f.alarm)
			case parent.todo != nil:
				parent.todo.Alarms = append(parent.todo.Alarms, *f.alarm)
			}
		}
	case compUnknown:
		// discarded
	}
	return nil
}

func (ctx *parseContext) dispatchProperty(line lex.ContentLine) {
	f := ctx.top()
	if f == nil {
		ctx.bus.Warn("3.6_2", line.Line, line.Raw, "property outside any component")
		return
	}

	var err error
	switch f.kind {
	case compCalendar:
		err = parseCalendarProperty(ctx, line, ctx.cal)
	case compEvent:
		err = parseEventProperty(ctx, line, f.event)
	case compTodo:
		err = parseTodoProperty(ctx, line, f.todo)
	case compJournal:
		err = parseJournalProperty(ctx, line, f.journal)
	case compFreeBusy:
		err = parseFreeBusyProperty(ctx, line, f.freebusy)
	case compTimezone:
		err = parseTimezoneProperty(ctx, line, f.timezone)
	case compStandard, compDaylight:
		err = parseObservanceProperty(ctx, line, f.observance)
	case compAlarm:
		err = parseAlarmProperty(ctx, line, f.alarm)
	case compUnknown:
		return
	}
	if err != nil {
		ctx.bus.Warn(string(f.kind2tag()), line.Line, line.Raw, err.Error())
	}
}

func (k component) kind2tag() string {
	switch k {
	case compCalendar:
		return "3.7"
	case compEvent:
		return "3.6.1"
	case compTodo:
		return "3.6.2"
	case compJournal:
		return "3.6.3"
	case compFreeBusy:
		return "3.6.4"
	case compTimezone:
		return "3.6.5"
	default:
		return "3.6.6"
	}
}
