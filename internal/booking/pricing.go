package booking

import (
	"math"
	"time"
)

// Quote holds the derived fields of a draft: billed hours and the
// total price.  A zero Quote means "not yet computable" — the time
// window is incomplete or inverted — which is a normal editing state,
// not an error.
type Quote struct {
	Hours float64 // duration in hours, rounded to one decimal
	Total float64 // Hours * (game rate + room rate)
}

// Price derives the quote from the time window and the two hourly
// rates.  Game and room are billed independently per hour and summed:
// the customer pays for table-time and game-time together.  Hours are
// rounded half-up at the tenths digit to keep the displayed figure
// stable.  Missing or inverted windows quote zero.
func Price(start, end time.Time, gameRate, roomRate float64) Quote {
	if start.IsZero() || end.IsZero() {
		return Quote{}
	}
	diff := end.Sub(start)
	if diff <= 0 {
		return Quote{}
	}
	hours := roundTenth(diff.Hours())
	return Quote{
		Hours: hours,
		Total: hours * (gameRate + roomRate),
	}
}

// roundTenth rounds half-up at the tenths digit.  math.Round rounds
// half away from zero, which matches half-up for the non-negative
// durations seen here.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
