// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import "github.com/ahale/icalgo/lex"

// paramValue returns the first value of the named parameter, or "".
func paramValue(line lex.ContentLine, name string) string {
	p, ok := line.Param(name)
	if !ok || len(p.Values) == 0 {
		return ""
	}
	return p.Values[0]
}

func tzidOf(line lex.ContentLine) string {
	return paramValue(line, "TZID")
}

func valueOverrideOf(line lex.ContentLine) string {
	return paramValue(line, "VALUE")
}
