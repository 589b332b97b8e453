package utils

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ClampGuests enforces the minimum party size of one.
func ClampGuests(guests int) int {
	if guests < 1 {
		return 1
	}
	return guests
}

// RoomsForGuests is the auto-derived room count: two guests per room,
// rounded up.
func RoomsForGuests(guests int) int {
	g := ClampGuests(guests)
	return (g + 1) / 2
}

// AdjustRooms applies the one-way relationship between guests and rooms:
// requested counts below the ceil(guests/2) floor are raised to it, anything
// above is kept as the guest asked.
func AdjustRooms(guests, requested int) int {
	floor := RoomsForGuests(guests)
	if requested < floor {
		return floor
	}
	return requested
}

// TablesForGuests derives the display-only table count: four guests per
// table, rounded up.
func TablesForGuests(guests int) int {
	g := ClampGuests(guests)
	return (g + 3) / 4
}

// Nights returns the whole-day span between the dates, zero when check-out
// is on or before check-in.
func Nights(checkIn, checkOut time.Time) int {
	d := int(checkOut.Sub(checkIn).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// BillableNights substitutes the one-night minimum used for the displayed
// cost estimate.
func BillableNights(checkIn, checkOut time.Time) int {
	n := Nights(checkIn, checkOut)
	if n == 0 {
		return 1
	}
	return n
}

// SplitAmenities turns a comma-separated input into trimmed non-empty
// tokens, preserving order.
func SplitAmenities(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinAmenities re-joins a token list into the comma-space form shown when
// a room is loaded back into the edit form.
func JoinAmenities(list []string) string {
	return strings.Join(list, ", ")
}
