// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package ical is the façade over lex, parse, expand, and generate: load a
// calendar, validate it strictly, enumerate its occurrences in a window,
// patch an event, and serialize the result back out.
package ical
