// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package rrule

import "errors"

var (
	errInvalidRRuleString   = errors.New("invalid rrule string")
	errFrequencyRequired    = errors.New("frequency is required")
	errFrequencyNotFirst    = errors.New("FREQ must be the first rule part")
	errCountAndUntilBothSet = errors.New("count and until cannot both be set")
	errInvalidInterval      = errors.New("interval must be a positive integer")
	errInvalidByDayString   = errors.New("invalid BYDAY string")
	errInvalidFrequency     = errors.New("invalid frequency")
	errDuplicateRulePart    = errors.New("rule part set more than once")
	errOutOfRange           = errors.New("rule part value out of range")
	errByYearDayForbidden   = errors.New("BYYEARDAY is not allowed with this FREQ")
	errByWeekNoNotYearly    = errors.New("BYWEEKNO is only valid when FREQ=YEARLY")
)
