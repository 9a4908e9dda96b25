package service

import "math"

// Growth is the month-over-month change in percent, one decimal. With no
// prior baseline, any current activity reads as 100% growth.
func Growth(current, previous float64) float64 {
	if previous > 0 {
		return round1((current - previous) / previous * 100)
	}
	if current > 0 {
		return 100
	}
	return 0
}

// Rate is part over whole in percent, one decimal. Zero when the whole is
// empty.
func Rate(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

// RateDifference compares two rates directly; completion growth is the delta
// of the rates, not a relative change.
func RateDifference(current, previous float64) float64 {
	return round1(current - previous)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
