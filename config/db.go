package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Abh4y369/ServNex-App/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func amenitiesJSON(names ...string) datatypes.JSON {
	b, err := json.Marshal(names)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

// SeedDatabase ensures a demo catalog and a default business account exist
// so the list/detail endpoints return data on a fresh install.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("business123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default business password: %v", err)
		} else {
			owner := models.User{
				FirstName:   "Grand Palace Hotel",
				Email:       "owner@servnex.local",
				Phone:       "9000000000",
				Password:    string(hash),
				AccountType: models.AccountTypeBusiness,
				Role:        models.RoleHotel,
			}
			if err := DB.Create(&owner).Error; err != nil {
				log.Printf("warning: failed to create default business user: %v", err)
			} else {
				log.Println("Default business account seeded")
			}
		}
	}

	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		oldPrice := 5200.0
		hotels := []models.Hotel{
			{
				Name: "Grand Palace Hotel", City: "Chennai", Area: "T. Nagar",
				Badge: "Luxury", Price: 4500, OldPrice: &oldPrice, Rating: 4.6,
				TotalRooms: 24, Description: "Heritage property with rooftop pool and city views.",
				Amenities: amenitiesJSON("WiFi", "Pool", "Parking", "Restaurant", "AC"),
			},
			{
				Name: "Seaview Residency", City: "Chennai", Area: "Besant Nagar",
				Badge: "Popular", Price: 2800, Rating: 4.2,
				TotalRooms: 12, Description: "Beachside stay two minutes from Elliot's Beach.",
				Amenities: amenitiesJSON("WiFi", "AC", "Parking"),
			},
			{
				Name: "Lakeside Inn", City: "Bengaluru", Area: "Ulsoor",
				Badge: "Budget", Price: 1600, Rating: 3.9,
				TotalRooms: 8, Description: "Compact rooms near the lake promenade.",
				Amenities: amenitiesJSON("WiFi", "Restaurant"),
			},
		}
		if err := DB.Create(&hotels).Error; err != nil {
			log.Printf("warning: failed to seed hotels: %v", err)
		} else {
			log.Println("Hotels seeded")
		}
	}

	var restaurantCount int64
	DB.Model(&models.Restaurant{}).Count(&restaurantCount)
	if restaurantCount == 0 {
		restaurants := []models.Restaurant{
			{
				Name: "Saffron Court", City: "Chennai", Area: "Nungambakkam",
				Badge: "Fine Dining", CuisineType: "North Indian", PriceRange: "$$$",
				AverageCostForTwo: 1800, Rating: 4.5,
				Description: "Slow-cooked kebabs and dum biryanis.",
			},
			{
				Name: "Coastal Catch", City: "Chennai", Area: "Mylapore",
				Badge: "Popular", CuisineType: "Seafood", PriceRange: "$$",
				AverageCostForTwo: 1100, Rating: 4.3,
				Description: "Daily-caught seafood, Chettinad spice blends.",
			},
			{
				Name: "Verde Trattoria", City: "Bengaluru", Area: "Indiranagar",
				Badge: "New", CuisineType: "Italian", PriceRange: "$$",
				AverageCostForTwo: 1400, Rating: 4.1,
				Description: "Wood-fired pizzas and handmade pasta.",
			},
		}
		if err := DB.Create(&restaurants).Error; err != nil {
			log.Printf("warning: failed to seed restaurants: %v", err)
		} else {
			log.Println("Restaurants seeded")
		}
	}
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "servnex_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PasswordReset{},
		&models.BusinessProfile{},
		&models.Hotel{},
		&models.Restaurant{},
		&models.Booking{},
		&models.Reservation{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
