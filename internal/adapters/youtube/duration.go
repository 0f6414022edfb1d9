package youtube

import (
	"fmt"
	"regexp"
	"strconv"
)

// durationRe matches the ISO-8601 subset the Data API emits for video
// durations, e.g. "PT4M13S", "PT1H2M3S", "P1DT2H".
var durationRe = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration converts an ISO-8601 duration into the "H:MM:SS" or "M:SS"
// form shown to users. Absent or unparsable values yield "0:00".
func FormatDuration(iso string) string {
	if iso == "" {
		return "0:00"
	}
	m := durationRe.FindStringSubmatch(iso)
	if m == nil {
		return "0:00"
	}

	days := atoi(m[1])
	hours := atoi(m[2]) + 24*days
	mins := atoi(m[3])
	secs := atoi(m[4])

	// Carry overflowing seconds/minutes; the API should not produce them
	// but the format technically allows it.
	mins += secs / 60
	secs %= 60
	hours += mins / 60
	mins %= 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
