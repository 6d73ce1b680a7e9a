// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package lex implements the RFC 5545 content-line lexer: line-ending
// normalization, unfolding of continuation lines, octet-length checks,
// and the property/parameter/value split.
package lex

import (
	"bufio"
	"io"
	"strings"

	"github.com/ahale/icalgo/diag"
)

// softLimitOctets is the warning threshold for a folded physical line.
const softLimitOctets = 75

// hardLimitOctets is the fatal threshold for a physical line.
const hardLimitOctets = 1000

// Param is a single ";NAME=token1,token2" parameter on a property line.
type Param struct {
	Name   string
	Values []string
}

// ContentLine is one logical RFC 5545 line after unfolding and splitting.
type ContentLine struct {
	// Line is the 1-indexed logical line number (counting from the first
	// physical line that began this content line).
	Line int
	// Raw is the verbatim, re-folded-removed logical line (for diagnostics).
	Raw string
	// Name is the upper-cased property (or BEGIN/END) name.
	Name string
	// Params are the parameters found between the name and the value.
	Params []Param
	// Value is the raw, still-escaped value string.
	Value string
}

// Param looks up the first parameter with the given name (case-sensitive,
// as RFC 5545 parameter names are already upper-cased by convention).
func (c ContentLine) Param(name string) (Param, bool) {
	for _, p := range c.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Unfold reads an iCalendar byte stream and produces its sequence of
// logical content lines, splitting each into name/parameters/value.
// Diagnostics (non-CRLF line endings, over-length lines, dangling
// continuations, missing separators) are recorded on bus; only a
// line exceeding hardLimitOctets aborts the scan and is returned as an
// error.
func Unfold(r io.Reader, bus *diag.Bus) ([]ContentLine, error) {
	physical, err := splitPhysicalLines(r, bus)
	if err != nil {
		return nil, err
	}

	var logical []string
	var lineNumbers []int
	for i, p := range physical {
		if len(p) > 0 && (p[0] == ' ' || p[0] == '\t') {
			if len(logical) == 0 {
				bus.Warn("3.1_1", i+1, p, "continuation line with no preceding content line")
				continue
			}
			logical[len(logical)-1] += p[1:]
			continue
		}
		logical = append(logical, p)
		lineNumbers = append(lineNumbers, i+1)
	}

	lines := make([]ContentLine, 0, len(logical))
	for i, raw := range logical {
		if raw == "" {
			continue
		}
		cl, ok := splitContentLine(raw, lineNumbers[i], bus)
		if !ok {
			continue
		}
		lines = append(lines, cl)
	}
	return lines, nil
}

// splitPhysicalLines normalizes CRLF/LF/CR terminators into a slice of
// physical lines (folding-prefix still attached), diagnosing non-CRLF
// input and over-length lines.
func splitPhysicalLines(r io.Reader, bus *diag.Bus) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(raw)

	sawBareLF := strings.Contains(text, "\n") && !strings.Contains(text, "\r\n")
	sawBareCR := strings.Contains(text, "\r") && !strings.Contains(text, "\r\n")

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	if sawBareLF || sawBareCR {
		bus.Warn("3.1_1", 0, "", "content lines are not terminated by CRLF")
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(normalized))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		octets := len(line)
		if octets > hardLimitOctets {
			bus.Fatalf("3.1_3", lineNo, line, "content line exceeds 1000 octets")
			return nil, ErrLineTooLong
		}
		if octets > softLimitOctets {
			bus.Warn("3.1_2", lineNo, line, "content line exceeds 75 octets")
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// splitContentLine splits one unfolded logical line into name, parameters,
// and value. Returns ok=false (after recording a diagnostic) when the line
// has no unquoted colon.
func splitContentLine(raw string, lineNo int, bus *diag.Bus) (ContentLine, bool) {
	colon := findUnquotedByte(raw, ':')
	if colon == -1 {
		bus.Warn("3.1_4", lineNo, raw, "content line missing ':' separator")
		return ContentLine{}, false
	}

	beforeColon := raw[:colon]
	value := raw[colon+1:]

	name := beforeColon
	var params []Param
	if semi := findUnquotedByte(beforeColon, ';'); semi != -1 {
		name = beforeColon[:semi]
		params = splitParams(beforeColon[semi+1:])
	}

	return ContentLine{
		Line:   lineNo,
		Raw:    raw,
		Name:   strings.ToUpper(name),
		Params: params,
		Value:  value,
	}, true
}

// splitParams splits a ";"-joined parameter string into Param records,
// respecting quoted parameter values and comma-separated value lists.
func splitParams(s string) []Param {
	var params []Param
	for _, chunk := range splitUnquoted(s, ';') {
		name, value, found := cutUnquoted(chunk, '=')
		if !found {
			continue
		}
		values := splitUnquoted(value, ',')
		for i, v := range values {
			values[i] = strings.Trim(v, `"`)
		}
		params = append(params, Param{Name: strings.ToUpper(name), Values: values})
	}
	return params
}

// splitUnquoted splits s on sep, treating double-quoted spans as opaque.
func splitUnquoted(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == sep && !inQuotes:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

// cutUnquoted is strings.Cut but skips separators inside double quotes.
func cutUnquoted(s string, sep byte) (before, after string, found bool) {
	idx := findUnquotedByte(s, sep)
	if idx == -1 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

// findUnquotedByte returns the index of the first occurrence of b in s
// that is not inside a double-quoted span, or -1.
func findUnquotedByte(s string, b byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case b:
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}
