package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Abh4y369/ServNex-App/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		FirstName: "Test",
		Email:     email,
		Password:  string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createHotel(t *testing.T, db *gorm.DB, name, city string, price float64, totalRooms int) models.Hotel {
	t.Helper()
	hotel := models.Hotel{
		Name:       name,
		City:       city,
		Price:      price,
		TotalRooms: totalRooms,
		Rating:     4.2,
	}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func createRestaurant(t *testing.T, db *gorm.DB, name, city string, avgCostForTwo float64) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{
		Name:              name,
		City:              city,
		CuisineType:       "Multi-cuisine",
		AverageCostForTwo: avgCostForTwo,
		Rating:            4.0,
	}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}
