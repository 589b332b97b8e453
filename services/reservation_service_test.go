package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	user := createUser(t, db, "diner@example.com", "pw")
	restaurant := createRestaurant(t, db, "Spice Route", "Chennai", 1200)

	reservation, err := svc.Create(user.ID, CreateReservationInput{
		RestaurantID:    restaurant.ID,
		Date:            "2026-09-15",
		Time:            "19:30",
		NumberOfGuests:  6,
		SpecialRequests: "window seat",
	})
	require.NoError(t, err)

	// six guests need two four-seat tables
	assert.Equal(t, 2, reservation.Tables)
	// estimate scales average_cost_for_two by party size
	assert.Equal(t, 1200*6/2.0, reservation.EstimatedCost)
	assert.Equal(t, "19:30", reservation.ReservationTime)
	assert.Equal(t, "confirmed", reservation.Status)
	assert.NotEmpty(t, reservation.ReferenceCode)
	assert.Equal(t, restaurant.Name, reservation.Restaurant.Name)
}

func TestCreateReservationValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	user := createUser(t, db, "diner@example.com", "pw")
	restaurant := createRestaurant(t, db, "Spice Route", "Chennai", 1200)

	_, err := svc.Create(user.ID, CreateReservationInput{RestaurantID: restaurant.ID})
	assert.ErrorIs(t, err, ErrDateTimeRequired)

	_, err = svc.Create(user.ID, CreateReservationInput{
		RestaurantID: restaurant.ID, Date: "15-09-2026", Time: "19:30",
	})
	assert.ErrorIs(t, err, ErrBadDateFormat)

	_, err = svc.Create(user.ID, CreateReservationInput{
		RestaurantID: restaurant.ID, Date: "2026-09-15", Time: "25:70",
	})
	assert.ErrorIs(t, err, ErrBadTimeFormat)

	_, err = svc.Create(user.ID, CreateReservationInput{
		RestaurantID: 999, Date: "2026-09-15", Time: "19:30",
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestListReservationsByUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	user := createUser(t, db, "diner@example.com", "pw")
	other := createUser(t, db, "other@example.com", "pw")
	restaurant := createRestaurant(t, db, "Spice Route", "Chennai", 1200)

	_, err := svc.Create(user.ID, CreateReservationInput{
		RestaurantID: restaurant.ID, Date: "2026-09-15", Time: "19:30", NumberOfGuests: 2,
	})
	require.NoError(t, err)
	_, err = svc.Create(other.ID, CreateReservationInput{
		RestaurantID: restaurant.ID, Date: "2026-09-16", Time: "20:00", NumberOfGuests: 4,
	})
	require.NoError(t, err)

	reservations, err := svc.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, restaurant.Name, reservations[0].Restaurant.Name)
}
