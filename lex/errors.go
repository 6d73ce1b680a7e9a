// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package lex

import "errors"

var (
	// ErrLineTooLong is returned when a physical line exceeds the fatal
	// octet-length threshold.
	ErrLineTooLong = errors.New("content line exceeds maximum octet length")
	// ErrDanglingContinuation describes a folded continuation line with no
	// preceding logical line to continue. Unfold records that case as a
	// diagnostic on the bus and does not return this error.
	ErrDanglingContinuation = errors.New("continuation line with no preceding content line")
	// ErrMissingColon describes a logical line with no unquoted colon
	// separating name/parameters from value. Unfold records that case as a
	// diagnostic on the bus and does not return this error.
	ErrMissingColon = errors.New("content line missing ':' separator")
)
