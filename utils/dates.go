package utils

import "time"

// SameDay reports whether two instants fall on the same calendar date
// in the local timezone. Time of day is ignored; this is the sole
// semantics for "meals on date D".
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// TrailingCutoff computes the inclusive lower bound of a trailing
// window of the given number of calendar months ending at now.
func TrailingCutoff(now time.Time, months int) time.Time {
	return now.AddDate(0, -months, 0)
}

// InTrailingWindow reports whether t is inside [cutoff, ∞). The
// boundary is inclusive: a record dated exactly at the cutoff belongs
// to the window.
func InTrailingWindow(t, cutoff time.Time) bool {
	return !t.Before(cutoff)
}
