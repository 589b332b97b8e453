package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Abh4y369/ServNex-App/controllers"
	"github.com/Abh4y369/ServNex-App/models"
	"github.com/Abh4y369/ServNex-App/services"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PasswordReset{},
		&models.BusinessProfile{},
		&models.Hotel{},
		&models.Restaurant{},
		&models.Booking{},
		&models.Reservation{},
	))

	resetService := services.NewPasswordResetService(db)
	resetService.SendEmail = func(email, code string) error { return nil }

	router := SetupRouter(
		controllers.NewAuthController(services.NewAuthService(db)),
		controllers.NewPasswordController(resetService),
		controllers.NewHotelController(services.NewHotelService(db)),
		controllers.NewRestaurantController(services.NewRestaurantService(db)),
		controllers.NewBookingController(services.NewBookingService(db)),
		controllers.NewReservationController(services.NewReservationService(db)),
		controllers.NewAdminController(services.NewRoomInventory()),
		nil, // no redis in tests; caching is a pass-through
	)
	return router, db
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAccount(t *testing.T, router *gin.Engine, email, accountType string) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{
		"first_name": "Test", "email": email, "password": "pw123456", "account_type": accountType,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Access string `json:"access"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Access)
	return resp.Data.Access
}

func TestHealth(t *testing.T) {
	router, _ := setupAPI(t)
	w := doJSON(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingRequiresAuth(t *testing.T) {
	router, _ := setupAPI(t)

	w := doJSON(router, http.MethodPost, "/api/bookings", "", gin.H{"hotel_id": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	router, db := setupAPI(t)
	hotel := models.Hotel{Name: "Grand Palace Hotel", City: "Chennai", Price: 4500, TotalRooms: 1}
	require.NoError(t, db.Create(&hotel).Error)

	w := doJSON(router, http.MethodGet, "/api/hotels/1/check_availability?check_in=2026-09-10&check_out=2026-09-12", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Available bool `json:"available"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Available)

	// missing dates are a 400, not a full hotel
	w = doJSON(router, http.MethodGet, "/api/hotels/1/check_availability", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingEndToEnd(t *testing.T) {
	router, db := setupAPI(t)
	hotel := models.Hotel{Name: "Grand Palace Hotel", City: "Chennai", Price: 4500, TotalRooms: 5}
	require.NoError(t, db.Create(&hotel).Error)

	token := registerAccount(t, router, "guest@example.com", "user")

	w := doJSON(router, http.MethodPost, "/api/bookings", token, gin.H{
		"hotel_id":         hotel.ID,
		"check_in":         "2026-09-10",
		"check_out":        "2026-09-12",
		"number_of_guests": 5,
		"rooms_booked":     1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			RoomsBooked int     `json:"rooms_booked"`
			Nights      int     `json:"nights"`
			TotalCost   float64 `json:"total_cost"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.RoomsBooked)
	assert.Equal(t, 2, resp.Data.Nights)
	assert.Equal(t, 4500*2*3.0, resp.Data.TotalCost)

	w = doJSON(router, http.MethodGet, "/api/bookings", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoomsGatedToBusinessAccounts(t *testing.T) {
	router, _ := setupAPI(t)

	userToken := registerAccount(t, router, "guest@example.com", "user")
	bizToken := registerAccount(t, router, "owner@example.com", "business")

	w := doJSON(router, http.MethodGet, "/api/admin/rooms", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/admin/rooms", bizToken, gin.H{
		"type": "Deluxe Room", "price": 4500, "adults": 2, "totalRooms": 8,
		"amenities": "WiFi, AC",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Room struct {
				ID        int64 `json:"id"`
				Available int   `json:"available"`
			} `json:"room"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Data.Room.Available)

	// invalid form comes back as per-field errors
	w = doJSON(router, http.MethodPost, "/api/admin/rooms", bizToken, gin.H{
		"type": "Deluxe Room", "price": 0, "adults": 2, "totalRooms": 8,
		"amenities": "WiFi, AC",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Enter a valid price")
}

func TestForgotPasswordFlowOverHTTP(t *testing.T) {
	router, db := setupAPI(t)
	_ = registerAccount(t, router, "guest@example.com", "user")

	w := doJSON(router, http.MethodPost, "/api/auth/forgot-password/send-otp", "", gin.H{
		"email": "guest@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// resetting before verification is refused
	w = doJSON(router, http.MethodPost, "/api/auth/forgot-password/reset", "", gin.H{
		"email": "guest@example.com", "password": "new", "confirm_password": "new",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var reset models.PasswordReset
	require.NoError(t, db.Where("email = ?", "guest@example.com").First(&reset).Error)
	assert.Equal(t, models.ResetStageRequested, reset.Stage)
}
