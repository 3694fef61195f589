package timezone

import "time"

const DefaultTimezone = "Asia/Kolkata"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DayKey is the calendar-day identifier used for queue counters.
func DayKey(t time.Time, tz string) string {
	return t.In(Location(tz)).Format("2006-01-02")
}

// DayBounds returns [start, end) of the calendar day containing t.
func DayBounds(t time.Time, tz string) (time.Time, time.Time) {
	loc := Location(tz)
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// ParseDay parses a YYYY-MM-DD date in the given timezone.
func ParseDay(day string, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", day, Location(tz))
}
