package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abh4y369/ServNex-App/middleware"
	"github.com/Abh4y369/ServNex-App/services"
	"github.com/Abh4y369/ServNex-App/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

type createReservationPayload struct {
	RestaurantID    uint   `json:"restaurant_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests"`
}

func (rc *ReservationController) Create(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	reservation, err := rc.Reservations.Create(middleware.UserID(c), services.CreateReservationInput{
		RestaurantID:    payload.RestaurantID,
		Date:            payload.Date,
		Time:            payload.Time,
		NumberOfGuests:  payload.NumberOfGuests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDateTimeRequired),
			errors.Is(err, services.ErrBadDateFormat),
			errors.Is(err, services.ErrBadTimeFormat):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrRestaurantNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "reservation failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

func (rc *ReservationController) MyReservations(c *gin.Context) {
	reservations, err := rc.Reservations.ListByUser(middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not load reservations")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}
