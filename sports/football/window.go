package football

import "time"

// WeekWindow returns the Thu 00:00 -> Tue 00:00 UTC window for the football
// week containing now. The window captures Thursday night, the Saturday/
// Sunday slates and Monday night in one slice.
func WeekWindow(now time.Time) (time.Time, time.Time) {
	now = now.UTC()

	// Monday of the current calendar week
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceMonday)

	thursday := monday.AddDate(0, 0, 3)
	nextTuesday := monday.AddDate(0, 0, 8)

	return thursday, nextTuesday
}

// WithinWindow reports whether t falls inside [start, end]
func WithinWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// SameDay reports whether t falls on the same UTC calendar day as now
func SameDay(t, now time.Time) bool {
	ty, tm, td := t.UTC().Date()
	ny, nm, nd := now.UTC().Date()
	return ty == ny && tm == nm && td == nd
}

// SeasonWeek estimates the football week number for a kickoff time: weeks
// elapsed since the season's opening Thursday (the first Thursday of
// September), clamped to at least 1.
func SeasonWeek(kickoff time.Time) int {
	kickoff = kickoff.UTC()

	seasonYear := kickoff.Year()
	if kickoff.Month() < time.August {
		seasonYear--
	}

	opening := firstThursdayOfSeptember(seasonYear)

	week := int(kickoff.Sub(opening).Hours()/(24*7)) + 1
	if week < 1 {
		week = 1
	}
	return week
}

func firstThursdayOfSeptember(year int) time.Time {
	d := time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Thursday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
