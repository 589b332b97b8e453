package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailability(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := createUser(t, db, "guest@example.com", "pw")
	hotel := createHotel(t, db, "Grand Palace Hotel", "Chennai", 4500, 2)

	in, out, err := ParseStayDates("2026-09-10", "2026-09-12")
	require.NoError(t, err)

	available, err := svc.CheckAvailability(hotel.ID, in, out)
	require.NoError(t, err)
	assert.True(t, available)

	// fill the hotel for an overlapping range
	for i := 0; i < 2; i++ {
		_, err := svc.Create(user.ID, CreateBookingInput{
			HotelID:        hotel.ID,
			CheckIn:        "2026-09-09",
			CheckOut:       "2026-09-11",
			NumberOfGuests: 1,
			RoomsBooked:    1,
		})
		require.NoError(t, err)
	}

	available, err = svc.CheckAvailability(hotel.ID, in, out)
	require.NoError(t, err)
	assert.False(t, available)

	// a disjoint range is unaffected
	in2, out2, err := ParseStayDates("2026-09-20", "2026-09-22")
	require.NoError(t, err)
	available, err = svc.CheckAvailability(hotel.ID, in2, out2)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheckAvailabilityReversedRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	hotel := createHotel(t, db, "Grand Palace Hotel", "Chennai", 4500, 10)

	in, out, err := ParseStayDates("2026-09-12", "2026-09-10")
	require.NoError(t, err)

	available, err := svc.CheckAvailability(hotel.ID, in, out)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestCheckAvailabilityIgnoresCancelled(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := createUser(t, db, "guest@example.com", "pw")
	hotel := createHotel(t, db, "Sea View Resort", "Goa", 6000, 1)

	booking, err := svc.Create(user.ID, CreateBookingInput{
		HotelID:        hotel.ID,
		CheckIn:        "2026-09-10",
		CheckOut:       "2026-09-12",
		NumberOfGuests: 2,
		RoomsBooked:    1,
	})
	require.NoError(t, err)

	in, out, _ := ParseStayDates("2026-09-10", "2026-09-12")
	available, err := svc.CheckAvailability(hotel.ID, in, out)
	require.NoError(t, err)
	assert.False(t, available)

	require.NoError(t, db.Model(&booking).Update("status", "cancelled").Error)

	available, err = svc.CheckAvailability(hotel.ID, in, out)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCreateBookingDerivations(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := createUser(t, db, "guest@example.com", "pw")
	hotel := createHotel(t, db, "Grand Palace Hotel", "Chennai", 4500, 10)

	// five guests force three rooms even when one was requested
	booking, err := svc.Create(user.ID, CreateBookingInput{
		HotelID:        hotel.ID,
		CheckIn:        "2026-09-10",
		CheckOut:       "2026-09-12",
		NumberOfGuests: 5,
		RoomsBooked:    1,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, booking.NumberOfGuests)
	assert.Equal(t, 3, booking.RoomsBooked)
	assert.Equal(t, 2, booking.Nights)
	assert.Equal(t, 4500*2*3.0, booking.TotalCost)
	assert.Equal(t, "confirmed", booking.Status)
	assert.NotEmpty(t, booking.ReferenceCode)
	assert.Equal(t, hotel.Name, booking.Hotel.Name)
}

func TestCreateBookingSameDayBillsOneNight(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := createUser(t, db, "guest@example.com", "pw")
	hotel := createHotel(t, db, "Grand Palace Hotel", "Chennai", 4500, 10)

	booking, err := svc.Create(user.ID, CreateBookingInput{
		HotelID:        hotel.ID,
		CheckIn:        "2026-09-10",
		CheckOut:       "2026-09-10",
		NumberOfGuests: 2,
		RoomsBooked:    1,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, booking.Nights)
	// zero nights still bills the one-night minimum
	assert.Equal(t, 4500*1*1.0, booking.TotalCost)
}

func TestCreateBookingValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := createUser(t, db, "guest@example.com", "pw")
	hotel := createHotel(t, db, "Grand Palace Hotel", "Chennai", 4500, 10)

	_, err := svc.Create(user.ID, CreateBookingInput{HotelID: hotel.ID})
	assert.ErrorIs(t, err, ErrDatesRequired)

	_, err = svc.Create(user.ID, CreateBookingInput{
		HotelID: hotel.ID, CheckIn: "10/09/2026", CheckOut: "2026-09-12",
	})
	assert.ErrorIs(t, err, ErrBadDateFormat)

	_, err = svc.Create(user.ID, CreateBookingInput{
		HotelID: 999, CheckIn: "2026-09-10", CheckOut: "2026-09-12",
	})
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestListByUserNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := createUser(t, db, "guest@example.com", "pw")
	other := createUser(t, db, "other@example.com", "pw")
	hotel := createHotel(t, db, "Grand Palace Hotel", "Chennai", 4500, 50)

	for _, stay := range [][2]string{
		{"2026-09-01", "2026-09-03"},
		{"2026-10-01", "2026-10-02"},
	} {
		_, err := svc.Create(user.ID, CreateBookingInput{
			HotelID: hotel.ID, CheckIn: stay[0], CheckOut: stay[1], NumberOfGuests: 2, RoomsBooked: 1,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(other.ID, CreateBookingInput{
		HotelID: hotel.ID, CheckIn: "2026-09-05", CheckOut: "2026-09-06", NumberOfGuests: 1, RoomsBooked: 1,
	})
	require.NoError(t, err)

	bookings, err := svc.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	// hotel details ride along for the bookings page
	assert.Equal(t, hotel.Name, bookings[0].Hotel.Name)
}
