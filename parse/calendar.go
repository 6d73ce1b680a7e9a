// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/lex"
	"github.com/ahale/icalgo/model"
)

func parseCalendarProperty(ctx *parseContext, line lex.ContentLine, cal *model.Calendar) error {
	switch line.Name {
	case "VERSION":
		return setOnceProperty(&cal.Version, line.Value, "VERSION", "VCALENDAR")
	case "PRODID":
		return setOnceProperty(&cal.ProdID, line.Value, "PRODID", "VCALENDAR")
	case "CALSCALE":
		return setOnceProperty(&cal.CalScale, line.Value, "CALSCALE", "VCALENDAR")
	case "METHOD":
		return setOnceProperty(&cal.Method, line.Value, "METHOD", "VCALENDAR")
	default:
		if len(line.Name) > 2 && (line.Name[:2] == "X-") {
			if cal.XProp == nil {
				cal.XProp = make(map[string]string)
			}
			cal.XProp[line.Name] = line.Value
			return nil
		}
		if cal.IANAProp == nil {
			cal.IANAProp = make(map[string]string)
		}
		cal.IANAProp[line.Name] = line.Value
		return nil
	}
}

// validateCalendar checks the VCALENDAR-level invariants from RFC 5545
// §3.4: VERSION and PRODID are both REQUIRED, MUST NOT occur more than
// once.
func validateCalendar(cal *model.Calendar, bus *diag.Bus) {
	if cal.Version == "" {
		bus.Warn("3.4_1", 0, "", errMissingVersion.Error())
	}
	if cal.ProdID == "" {
		bus.Warn("3.4_2", 0, "", errMissingProdID.Error())
	}
}
