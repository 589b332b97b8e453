package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, svc *HotelService, rsvc *RestaurantService) {
	t.Helper()
	db := svc.DB
	createHotel(t, db, "Grand Palace Hotel", "Chennai", 4500, 24)
	createHotel(t, db, "Sea View Resort", "Goa", 6000, 12)
	h := createHotel(t, db, "Palace Inn", "Chennai", 2200, 30)
	require.NoError(t, db.Model(&h).Update("badge", "Top Rated").Error)

	createRestaurant(t, rsvc.DB, "Spice Route", "Chennai", 1200)
	r := createRestaurant(t, rsvc.DB, "Ocean Grill", "Goa", 2400)
	require.NoError(t, rsvc.DB.Model(&r).Update("cuisine_type", "Seafood").Error)
}

func TestHotelListFilters(t *testing.T) {
	db := setupTestDB(t)
	hsvc := NewHotelService(db)
	rsvc := NewRestaurantService(db)
	seedCatalog(t, hsvc, rsvc)

	all, err := hsvc.List(HotelFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// "All" behaves the same as no filter
	all, err = hsvc.List(HotelFilter{City: "All"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	chennai, err := hsvc.List(HotelFilter{City: "chennai"})
	require.NoError(t, err)
	assert.Len(t, chennai, 2)

	palace, err := hsvc.List(HotelFilter{Search: "palace"})
	require.NoError(t, err)
	assert.Len(t, palace, 2)

	badged, err := hsvc.List(HotelFilter{Badge: "Top Rated"})
	require.NoError(t, err)
	require.Len(t, badged, 1)
	assert.Equal(t, "Palace Inn", badged[0].Name)
}

func TestHotelGet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHotelService(db)
	hotel := createHotel(t, db, "Grand Palace Hotel", "Chennai", 4500, 24)

	got, err := svc.Get(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, hotel.Name, got.Name)

	_, err = svc.Get(999)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestRestaurantListFilters(t *testing.T) {
	db := setupTestDB(t)
	hsvc := NewHotelService(db)
	rsvc := NewRestaurantService(db)
	seedCatalog(t, hsvc, rsvc)

	all, err := rsvc.List(RestaurantFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	seafood, err := rsvc.List(RestaurantFilter{Cuisine: "Seafood"})
	require.NoError(t, err)
	require.Len(t, seafood, 1)
	assert.Equal(t, "Ocean Grill", seafood[0].Name)

	goa, err := rsvc.List(RestaurantFilter{City: "Goa", Search: "grill"})
	require.NoError(t, err)
	assert.Len(t, goa, 1)

	_, err = rsvc.Get(999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
