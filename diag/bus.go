// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package diag implements the diagnostic bus shared by the lexer, parser,
// and validator: an accumulating, RFC-tagged log of non-conformance
// findings keyed by source line.
package diag

import "fmt"

// Severity classifies a diagnostic's effect on the surrounding operation.
type Severity int

const (
	// Warning is recorded but never aborts parsing; the offending value is
	// repaired or defaulted by the caller.
	Warning Severity = iota
	// Fatal means the stream is structurally unparseable; the operation
	// that produced it should stop.
	Fatal
	// Silent is used for internal tracing that should not surface to a
	// conformance report.
	Silent
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Fatal:
		return "fatal"
	case Silent:
		return "silent"
	default:
		return "unknown"
	}
}

// Entry is a single diagnostic record.
type Entry struct {
	// Tag is the RFC section/paragraph identifier this diagnostic relates
	// to, e.g. "3.1_1" or "8.3.2_1".
	Tag string
	// Line is the 1-indexed source content-line number the diagnostic
	// applies to, or 0 when it is not line-addressable.
	Line int
	// Raw is the verbatim offending content line, if any.
	Raw string
	// Severity classifies the entry.
	Severity Severity
	// Annotation is a short human-readable explanation.
	Annotation string
}

func (e Entry) String() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s (%s)", e.Severity, e.Line, e.Annotation, e.Raw)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Tag, e.Annotation)
}

// Bus accumulates diagnostics in order and indexes them by line number.
// A Bus is owned exclusively by a single Calendar; it is not safe for
// concurrent use.
type Bus struct {
	// Conformance makes Warn record entries whose tag is in strictTags with
	// Fatal severity instead of Warning; which entries are recorded does not
	// change.
	Conformance bool

	entries  []Entry
	byLine   map[int][]int
	fatalSet bool
}

// NewBus returns an empty diagnostic bus.
func NewBus() *Bus {
	return &Bus{byLine: make(map[int][]int)}
}

// Add records a diagnostic entry.
func (b *Bus) Add(e Entry) {
	idx := len(b.entries)
	b.entries = append(b.entries, e)
	if e.Line > 0 {
		b.byLine[e.Line] = append(b.byLine[e.Line], idx)
	}
	if e.Severity == Fatal {
		b.fatalSet = true
	}
}

// strictTags are the RFC rule-violation/repair tags that Conformance mode
// escalates to Fatal: missing-required-property, cardinality, and
// cross-field repairs. Tags for leniency the spec explicitly keeps
// error-free regardless of mode (undocumented/vendor-prefixed components
// and properties, e.g. "3.6_1"/"3.6_2") are never escalated.
var strictTags = map[string]bool{
	"3.4_1":             true, // VERSION required
	"3.4_2":             true, // PRODID required
	"3.6.1_1":           true, // DTEND and DURATION both present
	"3.6.1_2":           true, // DTSTART missing
	"3.6.2_1":           true, // DUE and DURATION both present
	"3.6.6_1":           true, // VALARM missing ACTION
	"3.6.6_2":           true, // VALARM missing TRIGGER
	"3.8.2.2_1":         true, // DTEND precedes DTSTART
	"3.8.4.7_1":         true, // UID missing
	"SCM-3.8.5.3_MULTI": true, // more than one RRULE
	"3.3.5_1":           true, // DATE-TIME Z/TZID conflict
	"3.3.6_1":           true, // non-standard Y/M duration designator
}

// Warn records a diagnostic entry. Its severity is Warning, unless the bus
// is in Conformance mode and tag names a rule the mode escalates, in which
// case the entry is recorded as Fatal instead.
func (b *Bus) Warn(tag string, line int, raw, annotation string) {
	severity := Warning
	if b.Conformance && strictTags[tag] {
		severity = Fatal
	}
	b.Add(Entry{Tag: tag, Line: line, Raw: raw, Severity: severity, Annotation: annotation})
}

// Fatalf is a convenience for recording a Fatal-severity entry.
func (b *Bus) Fatalf(tag string, line int, raw, annotation string) {
	b.Add(Entry{Tag: tag, Line: line, Raw: raw, Severity: Fatal, Annotation: annotation})
}

// Entries returns the full ordered log.
func (b *Bus) Entries() []Entry {
	return b.entries
}

// ForLine returns the diagnostics recorded against a given source line.
func (b *Bus) ForLine(line int) []Entry {
	idxs := b.byLine[line]
	out := make([]Entry, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, b.entries[i])
	}
	return out
}

// HasFatal reports whether any Fatal-severity entry was recorded.
func (b *Bus) HasFatal() bool {
	return b.fatalSet
}

// Compliant reports whether the log is empty, i.e. ValidateStrict's
// definition: true iff no diagnostics (of any severity) were recorded.
func (b *Bus) Compliant() bool {
	return len(b.entries) == 0
}

// Len returns the number of recorded diagnostics.
func (b *Bus) Len() int {
	return len(b.entries)
}
