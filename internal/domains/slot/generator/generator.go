// Package generator splits an availability window into bookable slots.
package generator

import (
	"barbershop/shared/failure"
	gModel "barbershop/shared/model"
)

const DefaultIntervalMinutes = 45

// Interval is a half-open [Start, End) slot on a single day.
type Interval struct {
	Date  gModel.Date
	Start gModel.Clock
	End   gModel.Clock
}

// Generate emits one interval per step while the cursor is strictly before end.
// The last interval is not clipped and may run past end, so a 09:00-10:00 window
// with a 45 minute step yields 09:00-09:45 and 09:45-10:30.
func Generate(date gModel.Date, start, end gModel.Clock, intervalMinutes int) ([]Interval, error) {
	if date.IsZero() || !date.IsValid() {
		return nil, failure.BadRequestFromString("date is required") // nolint:wrapcheck
	}

	if !start.Before(end) {
		return nil, failure.BadRequestFromString("start time must be before end time") // nolint:wrapcheck
	}

	if intervalMinutes <= 0 {
		return nil, failure.BadRequestFromString("slot interval must be positive") // nolint:wrapcheck
	}

	intervals := make([]Interval, 0, (end.Minutes()-start.Minutes())/intervalMinutes+1)

	for cursor := start; cursor.Before(end); {
		next, ok := cursor.AddMinutes(intervalMinutes)
		if !ok {
			return nil, failure.BadRequestFromString("last slot would run past midnight") // nolint:wrapcheck
		}

		intervals = append(intervals, Interval{Date: date, Start: cursor, End: next})
		cursor = next
	}

	return intervals, nil
}
