// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package expand computes the recurrence set of a recurring component: the
// RFC 5545 §3.3.10 FREQ/INTERVAL base iteration, the BY-part
// expand-then-limit pipeline applied in a fixed canonical order, BYSETPOS
// as a final positional filter, RDATE union and EXDATE subtraction, and
// the COUNT/UNTIL bound. It never interprets a VTIMEZONE's rules — zoned
// occurrences are produced in the DTSTART's own wall-clock, tagged with
// their TZID, exactly as spec.md's non-goal requires.
package expand
