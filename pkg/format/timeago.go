package format

import (
	"fmt"
	"time"
)

// Labels holds the localized words used by TimeAgo.
type Labels struct {
	Year, Month, Day, Hour, Minute string
	// Ago follows the count and unit, e.g. "3 day ago".
	Ago string
	// JustNow is used when less than a minute has passed.
	JustNow string
}

var (
	// EnglishLabels is the default label set.
	EnglishLabels = Labels{
		Year:    "year",
		Month:   "month",
		Day:     "day",
		Hour:    "hour",
		Minute:  "minute",
		Ago:     "ago",
		JustNow: "just now",
	}

	// IndonesianLabels renders e.g. "3 hari lalu".
	IndonesianLabels = Labels{
		Year:    "tahun",
		Month:   "bulan",
		Day:     "hari",
		Hour:    "jam",
		Minute:  "menit",
		Ago:     "lalu",
		JustNow: "baru saja",
	}
)

// Fixed unit lengths in seconds; no calendar arithmetic is applied.
const (
	secondsPerYear   = 31536000
	secondsPerMonth  = 2592000
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// LabelsFor returns the label set for a locale code ("en", "id").
// Unknown codes get EnglishLabels.
func LabelsFor(locale string) Labels {
	switch locale {
	case "id", "id-ID", "id_ID":
		return IndonesianLabels
	default:
		return EnglishLabels
	}
}

// TimeAgo describes how long ago t was, relative to now, in English.
func TimeAgo(t time.Time) string {
	return TimeAgoAt(t, time.Now(), EnglishLabels)
}

// TimeAgoAt renders the largest unit among year, month, day, hour and minute
// whose count is at least one, e.g. "2 hour ago". Under one minute, and for
// times in the future, it returns labels.JustNow.
func TimeAgoAt(t, now time.Time, labels Labels) string {
	seconds := int64(now.Sub(t) / time.Second)

	intervals := []struct {
		label   string
		seconds int64
	}{
		{labels.Year, secondsPerYear},
		{labels.Month, secondsPerMonth},
		{labels.Day, secondsPerDay},
		{labels.Hour, secondsPerHour},
		{labels.Minute, secondsPerMinute},
	}

	for _, iv := range intervals {
		if v := seconds / iv.seconds; v > 0 {
			return fmt.Sprintf("%d %s %s", v, iv.label, labels.Ago)
		}
	}
	return labels.JustNow
}
