// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package valuecodec decodes and encodes the RFC 5545 §3.3 property value
// types (TEXT, INTEGER, DATE, DATE-TIME, DURATION, PERIOD, RECUR,
// CAL-ADDRESS, URI, and comma-separated lists of these) between their wire
// representation and the model.Value union.
package valuecodec
