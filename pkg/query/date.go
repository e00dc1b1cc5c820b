package query

import "time"

const isoDate = "2006-01-02"

func parseISODate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(isoDate, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
