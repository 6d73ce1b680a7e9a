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

func parseFreeBusyProperty(ctx *parseContext, line lex.ContentLine, fb *model.FreeBusy) error {
	switch model.FreeBusyToken(line.Name) {
	case model.FreeBusyTokenUID:
		return setOnceProperty(&fb.UID, line.Value, "UID", "VFREEBUSY")
	case model.FreeBusyTokenDTStamp:
		v, err := valuecodec.DecodeDateTime(line.Value, tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		fb.DTStamp = v
		return nil
	case model.FreeBusyTokenURL:
		return setOnceProperty(&fb.URL, line.Value, "URL", "VFREEBUSY")
	case model.FreeBusyTokenContact:
		return setOnceProperty(&fb.Contact, valuecodec.DecodeText(line.Value), "CONTACT", "VFREEBUSY")
	case model.FreeBusyTokenOrganizer:
		org, err := parseOrganizer(line)
		if err != nil {
			return err
		}
		fb.Organizer = org
		return nil
	case model.FreeBusyTokenDTStart:
		v, err := valuecodec.DecodeDateTime(line.Value, tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		fb.DTStart = v
		return nil
	case model.FreeBusyTokenDTEnd:
		v, err := valuecodec.DecodeDateTime(line.Value, tzidOf(line), ctx.bus, line.Line)
		if err != nil {
			return err
		}
		fb.DTEnd = v
		return nil
	case model.FreeBusyTokenFreeBusy:
		return parseFreeBusyTime(line, fb)
	default:
		if strings.HasPrefix(line.Name, "X-") {
			if fb.XProp == nil {
				fb.XProp = make(map[string]string)
			}
			fb.XProp[line.Name] = line.Value
			return nil
		}
		if fb.IANAProp == nil {
			fb.IANAProp = make(map[string]string)
		}
		fb.IANAProp[line.Name] = line.Value
		return nil
	}
}

// parseFreeBusyTime decodes a FREEBUSY property's comma-separated list of
// PERIOD values, tagging each with the FBTYPE parameter (default BUSY).
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.6
func parseFreeBusyTime(line lex.ContentLine, fb *model.FreeBusy) error {
	status := model.FreeBusyStatus(paramValue(line, "FBTYPE"))
	if status == "" {
		status = model.FreeBusyStatusBusy
	}
	for _, elem := range valuecodec.SplitTextList(line.Value) {
		v, err := valuecodec.DecodePeriod(elem, "", nil, line.Line)
		if err != nil {
			return err
		}
		fb.FreeBusy = append(fb.FreeBusy, model.FreeBusyTime{
			Start:  v,
			End:    model.Value{Kind: model.KindDateTime, Time: v.PeriodEnd},
			Status: status,
		})
	}
	return nil
}
