package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoomsForGuests(t *testing.T) {
	assert.Equal(t, 1, RoomsForGuests(1))
	assert.Equal(t, 1, RoomsForGuests(2))
	assert.Equal(t, 2, RoomsForGuests(3))
	assert.Equal(t, 3, RoomsForGuests(5))
	// party size never drops below one
	assert.Equal(t, 1, RoomsForGuests(0))
	assert.Equal(t, 1, RoomsForGuests(-4))
}

func TestAdjustRooms(t *testing.T) {
	// raising guests pulls the room count up to the floor
	assert.Equal(t, 3, AdjustRooms(5, 1))
	// manual increase above the floor is kept
	assert.Equal(t, 4, AdjustRooms(5, 4))
	// manual decrease stops at the floor
	assert.Equal(t, 3, AdjustRooms(5, 2))
	assert.Equal(t, 1, AdjustRooms(2, 0))
}

func TestTablesForGuests(t *testing.T) {
	assert.Equal(t, 1, TablesForGuests(1))
	assert.Equal(t, 1, TablesForGuests(4))
	assert.Equal(t, 2, TablesForGuests(5))
	assert.Equal(t, 3, TablesForGuests(9))
}

func TestNightsAndBillableNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 2, Nights(day(1), day(3)))
	assert.Equal(t, 0, Nights(day(3), day(3)))
	// reversed range clamps to zero rather than going negative
	assert.Equal(t, 0, Nights(day(5), day(2)))

	// the cost estimate always bills at least one night
	assert.Equal(t, 1, BillableNights(day(3), day(3)))
	assert.Equal(t, 2, BillableNights(day(1), day(3)))
}

func TestSplitJoinAmenities(t *testing.T) {
	got := SplitAmenities(" WiFi , AC ,, Pool ")
	assert.Equal(t, []string{"WiFi", "AC", "Pool"}, got)
	assert.Equal(t, "WiFi, AC, Pool", JoinAmenities(got))

	assert.Empty(t, SplitAmenities("  ,  , "))
}
