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

func parseTimezoneProperty(ctx *parseContext, line lex.ContentLine, tz *model.TimeZone) error {
	switch model.TimezoneToken(line.Name) {
	case model.TimezoneTokenTimeZoneID:
		return setOnceProperty(&tz.TZID, line.Value, "TZID", "VTIMEZONE")
	case model.TimezoneTokenTimeZoneURL:
		return setOnceProperty(&tz.TZURL, line.Value, "TZURL", "VTIMEZONE")
	case model.TimezoneTokenLastMod:
		v, err := valuecodec.DecodeDateTime(line.Value, "", ctx.bus, line.Line)
		if err != nil {
			return err
		}
		tz.LastMod = v
		tz.HasLastMod = true
		return nil
	default:
		if strings.HasPrefix(line.Name, "X-") {
			if tz.XProp == nil {
				tz.XProp = make(map[string]string)
			}
			tz.XProp[line.Name] = line.Value
			return nil
		}
		if tz.IANAProp == nil {
			tz.IANAProp = make(map[string]string)
		}
		tz.IANAProp[line.Name] = line.Value
		return nil
	}
}

// parseObservanceProperty decodes properties inside a STANDARD or DAYLIGHT
// sub-component. These are parsed structurally only: spec.md's non-goal
// excludes interpreting TZOFFSETFROM/TZOFFSETTO against a real time zone
// database.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.3
func parseObservanceProperty(ctx *parseContext, line lex.ContentLine, obs *model.TimeZoneProp) error {
	switch line.Name {
	case "DTSTART":
		v, err := valuecodec.DecodeDateTime(line.Value, "", ctx.bus, line.Line)
		if err != nil {
			return err
		}
		obs.DTStart = v
		return nil
	case "TZOFFSETFROM":
		obs.TZOffsetFrom = line.Value
		return nil
	case "TZOFFSETTO":
		obs.TZOffsetTo = line.Value
		return nil
	case "TZNAME":
		obs.TZName = append(obs.TZName, valuecodec.DecodeText(line.Value))
		return nil
	case "COMMENT":
		obs.Comment = append(obs.Comment, valuecodec.DecodeText(line.Value))
		return nil
	case "RRULE":
		v, err := valuecodec.DecodeRecur(line.Value)
		if err != nil {
			return err
		}
		appendRRule(&obs.RRule, v, ctx.bus, line.Line)
		return nil
	case "RDATE":
		return appendDateList(&obs.RDate, line, ctx.bus)
	default:
		return nil
	}
}
