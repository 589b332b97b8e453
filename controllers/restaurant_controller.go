package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abh4y369/ServNex-App/services"
	"github.com/Abh4y369/ServNex-App/utils"
)

type RestaurantController struct {
	Restaurants *services.RestaurantService
}

func NewRestaurantController(restaurants *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants}
}

func (rc *RestaurantController) List(c *gin.Context) {
	restaurants, err := rc.Restaurants.List(services.RestaurantFilter{
		City:    c.Query("city"),
		Search:  c.Query("search"),
		Badge:   c.Query("badge"),
		Cuisine: c.Query("cuisine"),
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not load restaurants")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, restaurants)
}

func (rc *RestaurantController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	restaurant, err := rc.Restaurants.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not load restaurant")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, restaurant)
}
