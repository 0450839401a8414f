package render

import "time"

// Accepted date input layouts, tried in order.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// FormatDate renders a content date as "Jan 2006". An empty value means the
// position is current and renders as "Present". Unparseable values pass
// through verbatim; rendering never fails on content data.
func FormatDate(value string) string {
	if value == "" {
		return "Present"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return value
}

// FormatDateRange renders a start/end pair as "Jan 2020 - Present".
func FormatDateRange(start, end string) string {
	return FormatDate(start) + " - " + FormatDate(end)
}
