package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultInterval is the poll interval used when input cannot be parsed.
const DefaultInterval = 2 * time.Hour

var intervalPattern = regexp.MustCompile(`(?i)^\s*(\d+)\s*(second(s)?|minute(s)?|hour(s)?|day(s)?|week(s)?|month(s)?|year(s)?|s|m|h|d|wk|mo|y)\s*$`)

// ParseInterval converts a human interval string ("2h", "2 h", "30 minutes",
// "1 day") into a duration. Letter casing is ignored. Unparsable input falls
// back to DefaultInterval rather than failing: a misconfigured interval should
// degrade the poll frequency, not the updater.
func ParseInterval(interval string) time.Duration {
	m := intervalPattern.FindStringSubmatch(interval)
	if m == nil {
		return DefaultInterval
	}

	quantity, err := strconv.Atoi(m[1])
	if err != nil || quantity <= 0 {
		return DefaultInterval
	}

	var unit time.Duration
	switch strings.ToLower(m[2])[0:1] {
	case "s":
		unit = time.Second
	case "m":
		// "mo"/"month" vs "m"/"minute"
		if lower := strings.ToLower(m[2]); lower == "mo" || strings.HasPrefix(lower, "month") {
			unit = 730*time.Hour + 29*time.Minute + 6*time.Second // mean Gregorian month
		} else {
			unit = time.Minute
		}
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	case "w":
		unit = 7 * 24 * time.Hour
	case "y":
		unit = 8766 * time.Hour // mean Gregorian year
	default:
		return DefaultInterval
	}

	return time.Duration(quantity) * unit
}
