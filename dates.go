package main

import (
	"strings"
	"time"
)

var monthNames = map[string]string{
	"Jan": "January",
	"Feb": "February",
	"Mar": "March",
	"Apr": "April",
	"May": "May",
	"Jun": "June",
	"Jul": "July",
	"Aug": "August",
	"Sep": "September",
	"Oct": "October",
	"Nov": "November",
	"Dec": "December",
}

// fallbackDateLayouts are tried for values with fewer than four fields. RFC 2822
// dates always have more, so they take the token path and are not listed.
var fallbackDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

const displayDateLayout = "January 02 2006"

// FormatNoteDate turns a Notes timestamp such as
// "Wed Feb 11 2026 00:03:39 GMT+0800 (Hong Kong Standard Time)" into
// "February 11 2026". Unparseable input is returned unchanged.
func FormatNoteDate(value string) string {
	parts := strings.Fields(value)

	if len(parts) >= 4 {
		month, day, year := parts[1], parts[2], parts[3]
		if full, ok := monthNames[month]; ok {
			month = full
		}
		return month + " " + day + " " + year
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(displayDateLayout)
		}
	}

	debugLog("unrecognized date %q, using it verbatim", value)
	return value
}
