package booking

import (
	"math"
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 8, hour, min, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPriceEveningBooking(t *testing.T) {
	// 18:00-20:30 at 150/hr game + 100/hr room.
	q := Price(at(18, 0), at(20, 30), 150, 100)
	if !almostEqual(q.Hours, 2.5) {
		t.Fatalf("hours = %v, want 2.5", q.Hours)
	}
	if !almostEqual(q.Total, 625) {
		t.Fatalf("total = %v, want 625", q.Total)
	}
}

func TestPriceInvertedWindowQuotesZero(t *testing.T) {
	q := Price(at(20, 0), at(18, 0), 150, 100)
	if q.Hours != 0 || q.Total != 0 {
		t.Fatalf("inverted window quoted %v hours, %v total", q.Hours, q.Total)
	}
	q = Price(at(18, 0), at(18, 0), 150, 100)
	if q.Hours != 0 || q.Total != 0 {
		t.Fatalf("empty window quoted %v hours, %v total", q.Hours, q.Total)
	}
}

func TestPriceMissingEndpointsQuoteZero(t *testing.T) {
	var zero time.Time
	if q := Price(zero, at(20, 0), 150, 100); q.Hours != 0 || q.Total != 0 {
		t.Fatalf("missing start quoted %+v", q)
	}
	if q := Price(at(18, 0), zero, 150, 100); q.Hours != 0 || q.Total != 0 {
		t.Fatalf("missing end quoted %+v", q)
	}
}

func TestPriceRoundsHalfUpAtTenths(t *testing.T) {
	// 75 minutes = 1.25h -> 1.3 (half-up at the tenths digit).
	q := Price(at(18, 0), at(19, 15), 100, 0)
	if !almostEqual(q.Hours, 1.3) {
		t.Fatalf("hours = %v, want 1.3", q.Hours)
	}
	if !almostEqual(q.Total, 130) {
		t.Fatalf("total = %v, want 130", q.Total)
	}
	// 68 minutes = 1.1333h -> 1.1.
	q = Price(at(18, 0), at(19, 8), 100, 0)
	if !almostEqual(q.Hours, 1.1) {
		t.Fatalf("hours = %v, want 1.1", q.Hours)
	}
}

func TestPriceTotalIsRoundedHoursTimesSummedRates(t *testing.T) {
	cases := []struct {
		start, end         time.Time
		gameRate, roomRate float64
	}{
		{at(10, 0), at(12, 0), 150, 100},
		{at(9, 30), at(13, 45), 80, 120},
		{at(0, 1), at(23, 59), 199.5, 0.5},
		{at(14, 0), at(14, 6), 60, 40},
	}
	for _, c := range cases {
		q := Price(c.start, c.end, c.gameRate, c.roomRate)
		wantHours := math.Round(c.end.Sub(c.start).Hours()*10) / 10
		if !almostEqual(q.Hours, wantHours) {
			t.Fatalf("%v-%v: hours = %v, want %v", c.start, c.end, q.Hours, wantHours)
		}
		if want := wantHours * (c.gameRate + c.roomRate); !almostEqual(q.Total, want) {
			t.Fatalf("%v-%v: total = %v, want %v", c.start, c.end, q.Total, want)
		}
	}
}
