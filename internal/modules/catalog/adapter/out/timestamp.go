package out

import "time"

func parseTimestamp(value string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05Z07:00", value)
}
