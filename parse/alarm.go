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
	"github.com/ahale/icalgo/valuecodec"
)

func parseAlarmProperty(ctx *parseContext, line lex.ContentLine, alarm *model.Alarm) error {
	switch model.AlarmToken(line.Name) {
	case model.AlarmTokenAction:
		if alarm.Action != "" {
			return fmt.Errorf(errDuplicatePropertyFormat, ErrDuplicateProperty, "ACTION", "VALARM")
		}
		alarm.Action = model.AlarmAction(line.Value)
		return nil
	case model.AlarmTokenDescription:
		return setOnceProperty(&alarm.Description, valuecodec.DecodeText(line.Value), "DESCRIPTION", "VALARM")
	case model.AlarmTokenSummary:
		return setOnceProperty(&alarm.Summary, valuecodec.DecodeText(line.Value), "SUMMARY", "VALARM")
	case model.AlarmTokenAttendee:
		alarm.Attendees = append(alarm.Attendees, parseAttendee(line))
		return nil
	case model.AlarmTokenAttach:
		alarm.Attach = append(alarm.Attach, parseAttach(line))
		return nil
	case model.AlarmTokenRepeat:
		n, err := valuecodec.DecodeInteger(line.Value)
		if err != nil {
			return err
		}
		alarm.Repeat = n
		alarm.HasRepeat = true
		return nil
	case model.AlarmTokenDuration:
		v, err := valuecodec.DecodeDuration(line.Value, ctx.bus, line.Line)
		if err != nil {
			return err
		}
		alarm.Duration = v
		alarm.HasDuration = true
		return nil
	case model.AlarmTokenTrigger:
		v, err := parseTrigger(line, ctx)
		if err != nil {
			return err
		}
		alarm.Trigger = v
		alarm.TriggerRelatedEnd = strings.EqualFold(paramValue(line, "RELATED"), "END")
		return nil
	default:
		return fmt.Errorf("%w: %s", errInvalidAlarmProperty, line.Name)
	}
}

// parseTrigger decodes a TRIGGER property value: a DURATION relative to
// the anchor (the default), or an absolute DATE-TIME when VALUE=DATE-TIME.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.6.3
func parseTrigger(line lex.ContentLine, ctx *parseContext) (model.Value, error) {
	if strings.EqualFold(valueOverrideOf(line), "DATE-TIME") {
		return valuecodec.DecodeDateTime(line.Value, tzidOf(line), ctx.bus, line.Line)
	}
	return valuecodec.DecodeDuration(line.Value, ctx.bus, line.Line)
}

// finalizeAlarm reports the VALARM invariants: ACTION and TRIGGER are both
// REQUIRED and MUST NOT occur more than once.
func finalizeAlarm(alarm *model.Alarm, bus *diag.Bus, line int) {
	if alarm.Action == "" {
		bus.Warn("3.6.6_1", line, "", errAlarmMissingAction.Error())
	}
	if alarm.Trigger.Kind == 0 && alarm.Trigger.Duration == 0 && alarm.Trigger.Time.IsZero() {
		bus.Warn("3.6.6_2", line, "", errAlarmMissingTrigger.Error())
	}
}
