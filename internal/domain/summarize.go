package domain

import "time"

// WindowSource supplies the daylight window for a date, in the stay's zone.
type WindowSource interface {
	WindowFor(date Date) (DaylightWindow, error)
}

// WindowSourceFunc adapts a function to WindowSource.
type WindowSourceFunc func(date Date) (DaylightWindow, error)

// WindowFor calls f(date).
func (f WindowSourceFunc) WindowFor(date Date) (DaylightWindow, error) {
	return f(date)
}

// Summarize splits a stay into calendar days and accumulates daylight and night.
//
// Each date from the arrival date to the departure date is visited once, in order,
// and windows is queried exactly once for it. A window without sunrise or sunset
// counts the whole segment as night and flags the day. Any error from windows
// aborts the call; no partial summary is returned.
func Summarize(stay StayInterval, windows WindowSource) (StaySummary, error) {
	if !stay.Valid() {
		return StaySummary{}, ErrInvalidInterval
	}

	loc := stay.Location()
	dates := stay.Dates()
	summary := StaySummary{
		Duration: stay.Duration(),
		Days:     make([]DayContribution, 0, len(dates)),
	}

	for _, d := range dates {
		segStart := maxTime(stay.Arrival(), d.Start(loc))
		segEnd := minTime(stay.Departure(), d.AddDays(1).Start(loc))

		window, err := windows.WindowFor(d)
		if err != nil {
			return StaySummary{}, NewDayError(d, err)
		}
		if err := window.Validate(); err != nil {
			return StaySummary{}, NewDayError(d, err)
		}

		contribution := DayContribution{Date: d, Window: window}
		if segStart.Before(segEnd) {
			segment := segEnd.Sub(segStart)
			if window.Complete() {
				contribution.Daylight = overlap(segStart, segEnd, window.Sunrise, window.Sunset)
			} else {
				contribution.SolarDataMissing = true
			}
			contribution.Night = segment - contribution.Daylight
		} else if !window.Complete() {
			contribution.SolarDataMissing = true
		}

		summary.TotalDaylight += contribution.Daylight
		summary.TotalNight += contribution.Night
		summary.Days = append(summary.Days, contribution)
	}

	return summary, nil
}

// overlap returns the length of [aStart, aEnd) ∩ [bStart, bEnd), or zero.
func overlap(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	start := maxTime(aStart, bStart)
	end := minTime(aEnd, bEnd)
	if !start.Before(end) {
		return 0
	}
	return end.Sub(start)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
