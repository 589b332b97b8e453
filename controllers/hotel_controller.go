package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Abh4y369/ServNex-App/services"
	"github.com/Abh4y369/ServNex-App/utils"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

// parseID reads a positive numeric :id path param.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (hc *HotelController) List(c *gin.Context) {
	hotels, err := hc.Hotels.List(services.HotelFilter{
		City:   c.Query("city"),
		Search: c.Query("search"),
		Badge:  c.Query("badge"),
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not load hotels")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (hc *HotelController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	hotel, err := hc.Hotels.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not load hotel")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}
