package icaldur

import "time"

// iCalDateTimeFormat represents the standard iCal UTC datetime format
// Format: YYYYMMDDTHHMMSSZ (e.g., 20250928T183000Z).
const iCalDateTimeFormat = "20060102T150405Z"

// iCalLocalDateTimeFormat is the same layout without the trailing 'Z';
// ParseIcalTime uses it for values with no trailing 'Z', such as a RECUR's
// UNTIL written as a local DATE-TIME.
const iCalLocalDateTimeFormat = "20060102T150405"

func ParseIcalTime(value string) (time.Time, error) {
	if len(value) > 0 && value[len(value)-1] == 'Z' {
		return time.Parse(iCalDateTimeFormat, value)
	}
	return time.Parse(iCalLocalDateTimeFormat, value)
}

// FormatIcalTime renders t in the UTC wire form (YYYYMMDDTHHMMSSZ).
func FormatIcalTime(t time.Time) string {
	return t.UTC().Format(iCalDateTimeFormat)
}
