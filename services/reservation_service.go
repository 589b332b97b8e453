package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abh4y369/ServNex-App/models"
	"github.com/Abh4y369/ServNex-App/utils"
)

var (
	ErrDateTimeRequired = errors.New("Please select reservation date and time.")
	ErrBadTimeFormat    = errors.New("time must be in HH:MM format")
)

var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type CreateReservationInput struct {
	RestaurantID    uint
	Date            string
	Time            string
	NumberOfGuests  int
	SpecialRequests string
}

// Create stores a table reservation. Tables are derived at four guests per
// table; the cost shown is average_cost_for_two scaled by party size and
// never charged from here.
func (s *ReservationService) Create(userID uint, in CreateReservationInput) (models.Reservation, error) {
	if strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return models.Reservation{}, ErrDateTimeRequired
	}
	date, err := time.Parse(utils.DateLayout, in.Date)
	if err != nil {
		return models.Reservation{}, ErrBadDateFormat
	}
	if !timeRe.MatchString(in.Time) {
		return models.Reservation{}, ErrBadTimeFormat
	}

	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, in.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, ErrRestaurantNotFound
		}
		return models.Reservation{}, err
	}

	guests := utils.ClampGuests(in.NumberOfGuests)

	reservation := models.Reservation{
		ReferenceCode:   uuid.NewString(),
		UserID:          userID,
		RestaurantID:    in.RestaurantID,
		ReservationDate: date,
		ReservationTime: in.Time,
		NumberOfGuests:  guests,
		Tables:          utils.TablesForGuests(guests),
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		EstimatedCost:   restaurant.AverageCostForTwo * float64(guests) / 2,
		Status:          models.BookingStatusConfirmed,
	}
	if err := s.DB.Create(&reservation).Error; err != nil {
		return models.Reservation{}, err
	}
	reservation.Restaurant = restaurant
	return reservation, nil
}

func (s *ReservationService) ListByUser(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}
