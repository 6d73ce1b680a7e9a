// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package parse turns unfolded iCalendar content lines (see the lex
// package) into a model.Calendar: a pushdown automaton walks the
// BEGIN/END nesting, dispatching each property line to the handler for
// whatever component is currently open, then a validation pass repairs
// and flags the structural invariants from RFC 5545 §3.6.
package parse
