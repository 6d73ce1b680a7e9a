// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package valuecodec

import "errors"

var (
	ErrInvalidInteger    = errors.New("invalid INTEGER value")
	ErrInvalidDate       = errors.New("invalid DATE value")
	ErrInvalidDateTime   = errors.New("invalid DATE-TIME value")
	ErrInvalidDuration   = errors.New("invalid DURATION value")
	ErrInvalidPeriod     = errors.New("invalid PERIOD value")
	ErrInvalidCalAddress = errors.New("invalid CAL-ADDRESS value")
	ErrInvalidURI        = errors.New("invalid URI value")
	ErrEmptyList         = errors.New("empty value list")
)
