// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package generate serializes a model.Calendar back to RFC 5545 content
// lines. It is intentionally thin (spec.md scopes it out except for its
// round-trip obligation with the parse package): it folds long lines and
// synthesizes PRODID/VERSION (and UID/DTSTAMP on VEVENT, VTODO and
// VJOURNAL) when a caller built a Calendar by hand and omitted them. It
// writes a fixed subset of each component's properties: RDATE, EXDATE,
// ATTENDEE, CATEGORIES, VALARM sub-components and component-level
// X-/IANA properties are not written.
package generate
