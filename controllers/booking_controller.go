package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abh4y369/ServNex-App/middleware"
	"github.com/Abh4y369/ServNex-App/services"
	"github.com/Abh4y369/ServNex-App/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	HotelID        uint   `json:"hotel_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	NumberOfGuests int    `json:"number_of_guests"`
	RoomsBooked    int    `json:"rooms_booked"`
}

// CheckAvailability answers {"available": bool} for a hotel and date pair.
// Missing dates are a 400; a full hotel is still a 200.
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	checkIn, checkOut, err := services.ParseStayDates(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	available, err := bc.Bookings.CheckAvailability(id, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "availability check failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": available})
}

func (bc *BookingController) Create(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	booking, err := bc.Bookings.Create(middleware.UserID(c), services.CreateBookingInput{
		HotelID:        payload.HotelID,
		CheckIn:        payload.CheckIn,
		CheckOut:       payload.CheckOut,
		NumberOfGuests: payload.NumberOfGuests,
		RoomsBooked:    payload.RoomsBooked,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDatesRequired),
			errors.Is(err, services.ErrBadDateFormat):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrHotelNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrNoRoomsLeft):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "booking failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (bc *BookingController) MyBookings(c *gin.Context) {
	bookings, err := bc.Bookings.ListByUser(middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not load bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
