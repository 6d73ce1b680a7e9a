// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package parse

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ahale/icalgo/diag"
	"github.com/ahale/icalgo/lex"
	"github.com/ahale/icalgo/model"
)

// Reader unfolds and parses iCalendar data from r into a Calendar,
// collecting diagnostics onto bus (a fresh diag.NewBus() is created if bus
// is nil).
func Reader(r io.Reader, bus *diag.Bus) (*model.Calendar, *diag.Bus, error) {
	if bus == nil {
		bus = diag.NewBus()
	}
	lines, err := lex.Unfold(r, bus)
	if err != nil {
		if errors.Is(err, lex.ErrLineTooLong) {
			return nil, bus, &FatalError{Tag: "3.1", Err: err}
		}
		return nil, bus, err
	}
	cal, err := Parse(lines, bus)
	if err != nil {
		return nil, bus, err
	}
	validateCalendar(cal, bus)
	return cal, bus, nil
}

// String parses iCalendar data held in a string.
func String(s string, bus *diag.Bus) (*model.Calendar, *diag.Bus, error) {
	return Reader(strings.NewReader(s), bus)
}

// File parses iCalendar data from the named file.
func File(name string, bus *diag.Bus) (*model.Calendar, *diag.Bus, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, bus, err
	}
	defer f.Close()
	return Reader(f, bus)
}
