package importer

import (
	"strconv"
	"strings"
	"time"
)

// Date formats accepted in spreadsheet cells, tried in order. Full
// timestamps come first so exported cells that kept a time component
// still parse before the date-only layouts.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006", // dd/MM/yyyy
	"01/02/2006", // MM/dd/yyyy
	"2006-01-02", // yyyy-MM-dd
	"02-01-2006", // dd-MM-yyyy
	"01-02-2006", // MM-dd-yyyy
}

// parseDate tries each supported layout. Unparseable or blank cells fall
// back to the current time so a bad cell never blocks the rest of the row.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().UTC(), false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Now().UTC(), false
}

// parseSalary strips currency symbols and separators before parsing, so
// "$1.500.000" and "1,500,000" both read as 1500000. Blank cells read as 0.
func parseSalary(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, true
	}

	replacer := strings.NewReplacer("$", "", "€", "", ",", "", ".", "", " ", "")
	cleaned := replacer.Replace(value)
	if cleaned == "" {
		return 0, false
	}

	parsed, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(parsed), true
}
