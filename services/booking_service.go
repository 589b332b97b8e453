package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abh4y369/ServNex-App/models"
	"github.com/Abh4y369/ServNex-App/utils"
)

var (
	ErrDatesRequired = errors.New("Please select Check-in and Check-out dates.")
	ErrBadDateFormat = errors.New("dates must be in YYYY-MM-DD format")
	ErrNoRoomsLeft   = errors.New("No rooms available for these dates.")
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// ParseStayDates validates presence and format of a date pair. Order is
// not enforced here; a reversed pair just produces zero nights.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return time.Time{}, time.Time{}, ErrDatesRequired
	}
	in, err := time.Parse(utils.DateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDateFormat
	}
	out, err := time.Parse(utils.DateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDateFormat
	}
	return in, out, nil
}

// CheckAvailability reports whether the hotel can take one more room-night
// in the range. Rooms booked by overlapping non-cancelled stays are summed
// against the hotel's total; a reversed date range is simply unavailable.
func (s *BookingService) CheckAvailability(hotelID uint, checkIn, checkOut time.Time) (bool, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrHotelNotFound
		}
		return false, err
	}

	if checkOut.Before(checkIn) {
		return false, nil
	}
	// Same-day stays overlap nothing; they book as a one-night bill.
	if checkOut.Equal(checkIn) {
		return true, nil
	}

	var booked int64
	err := s.DB.Model(&models.Booking{}).
		Where("hotel_id = ? AND status <> ?", hotelID, models.BookingStatusCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Select("COALESCE(SUM(rooms_booked), 0)").
		Scan(&booked).Error
	if err != nil {
		return false, err
	}

	return booked < int64(hotel.TotalRooms), nil
}

type CreateBookingInput struct {
	HotelID        uint
	CheckIn        string
	CheckOut       string
	NumberOfGuests int
	RoomsBooked    int
}

// Create validates the stay, derives the final room count (never below
// ceil(guests/2)), re-checks availability and stores the booking with its
// illustrative cost estimate.
func (s *BookingService) Create(userID uint, in CreateBookingInput) (models.Booking, error) {
	checkIn, checkOut, err := ParseStayDates(in.CheckIn, in.CheckOut)
	if err != nil {
		return models.Booking{}, err
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, in.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrHotelNotFound
		}
		return models.Booking{}, err
	}

	available, err := s.CheckAvailability(in.HotelID, checkIn, checkOut)
	if err != nil {
		return models.Booking{}, err
	}
	if !available {
		return models.Booking{}, ErrNoRoomsLeft
	}

	guests := utils.ClampGuests(in.NumberOfGuests)
	rooms := utils.AdjustRooms(guests, in.RoomsBooked)
	nights := utils.Nights(checkIn, checkOut)

	booking := models.Booking{
		ReferenceCode:  uuid.NewString(),
		UserID:         userID,
		HotelID:        in.HotelID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: guests,
		RoomsBooked:    rooms,
		Nights:         nights,
		TotalCost:      hotel.Price * float64(utils.BillableNights(checkIn, checkOut)) * float64(rooms),
		Status:         models.BookingStatusConfirmed,
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, err
	}
	booking.Hotel = hotel
	return booking, nil
}

// ListByUser returns the caller's bookings with hotel details preloaded,
// newest first.
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
