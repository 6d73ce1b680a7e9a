// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ahale/icalgo/lex"
	"github.com/ahale/icalgo/model"
)

// synthesizeUID mints a UID for a component that omitted the REQUIRED UID
// property (spec.md §4.5).
func synthesizeUID() string {
	return uuid.NewString() + "@icalgo"
}

// parseOrganizer decodes an ORGANIZER property line into a model.Organizer.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
func parseOrganizer(line lex.ContentLine) (*model.Organizer, error) {
	return &model.Organizer{
		CommonName: paramValue(line, "CN"),
		CalAddress: line.Value,
		Directory:  paramValue(line, "DIR"),
	}, nil
}

// parseAttendee decodes an ATTENDEE property line.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.1
func parseAttendee(line lex.ContentLine) model.Attendee {
	rsvp := strings.EqualFold(paramValue(line, "RSVP"), "TRUE")
	return model.Attendee{
		CalAddress: line.Value,
		CommonName: paramValue(line, "CN"),
		Role:       paramValue(line, "ROLE"),
		PartStat:   paramValue(line, "PARTSTAT"),
		RSVP:       rsvp,
	}
}

// parseAttach decodes an ATTACH property line: a URI, or inline binary
// content when ENCODING=BASE64/VALUE=BINARY is present.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.1
func parseAttach(line lex.ContentLine) model.Attach {
	if strings.EqualFold(valueOverrideOf(line), "BINARY") {
		return model.Attach{
			Binary:     []byte(line.Value),
			FormatType: paramValue(line, "FMTTYPE"),
			IsInline:   true,
		}
	}
	return model.Attach{URI: line.Value, FormatType: paramValue(line, "FMTTYPE")}
}
