package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Abh4y369/ServNex-App/middleware"
	"github.com/Abh4y369/ServNex-App/services"
	"github.com/Abh4y369/ServNex-App/utils"
)

// adminBooking is the dashboard's fixed sample row. The bookings tab shows
// illustrative data until owner-scoped bookings land.
type adminBooking struct {
	Reference string `json:"reference"`
	Guest     string `json:"guest"`
	Room      string `json:"room"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Status    string `json:"status"`
}

var dashboardBookings = []adminBooking{
	{Reference: "BX101", Guest: "Rahul Sharma", Room: "Deluxe Room", CheckIn: "2025-10-12", CheckOut: "2025-10-14", Status: "Confirmed"},
	{Reference: "BX102", Guest: "Priya Singh", Room: "Executive Suite", CheckIn: "2025-10-15", CheckOut: "2025-10-16", Status: "Pending"},
}

type AdminController struct {
	Rooms *services.RoomInventory

	mu      sync.Mutex
	gallery map[uint][]string
}

func NewAdminController(rooms *services.RoomInventory) *AdminController {
	return &AdminController{
		Rooms:   rooms,
		gallery: make(map[uint][]string),
	}
}

func parseRoomID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return 0, false
	}
	return id, true
}

func (ad *AdminController) ListRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ad.Rooms.List(middleware.UserID(c)))
}

func (ad *AdminController) AddRoom(c *gin.Context) {
	var form services.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	room, rooms, err := ad.Rooms.Add(middleware.UserID(c), form)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			utils.JSONFieldErrors(c, http.StatusBadRequest, ve.Fields)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not add room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"room": room, "rooms": rooms})
}

func (ad *AdminController) UpdateRoom(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	var form services.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	room, rooms, err := ad.Rooms.Update(middleware.UserID(c), id, form)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			utils.JSONFieldErrors(c, http.StatusBadRequest, ve.Fields)
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "could not update room")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room, "rooms": rooms})
}

func (ad *AdminController) DeleteRoom(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	rooms, err := ad.Rooms.Delete(middleware.UserID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rooms": rooms})
}

// GetRoomForm returns a room reshaped for the edit form, amenities joined
// back into one comma-separated string.
func (ad *AdminController) GetRoomForm(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	form, err := ad.Rooms.EditForm(middleware.UserID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not load room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, form)
}

func (ad *AdminController) ListBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, dashboardBookings)
}

type galleryPayload struct {
	Image string `json:"image"`
}

// Gallery images live in memory only, like the rooms tab. They preview in
// the dashboard and are gone on restart.
func (ad *AdminController) ListGallery(c *gin.Context) {
	ad.mu.Lock()
	defer ad.mu.Unlock()
	images := ad.gallery[middleware.UserID(c)]
	if images == nil {
		images = []string{}
	}
	utils.JSONSuccess(c, http.StatusOK, images)
}

func (ad *AdminController) AddGalleryImage(c *gin.Context) {
	var payload galleryPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Image == "" {
		utils.JSONError(c, http.StatusBadRequest, "image required")
		return
	}

	ownerID := middleware.UserID(c)
	ad.mu.Lock()
	ad.gallery[ownerID] = append(ad.gallery[ownerID], payload.Image)
	images := append([]string(nil), ad.gallery[ownerID]...)
	ad.mu.Unlock()

	utils.JSONSuccess(c, http.StatusCreated, images)
}

func (ad *AdminController) RemoveGalleryImage(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid index")
		return
	}

	ownerID := middleware.UserID(c)
	ad.mu.Lock()
	defer ad.mu.Unlock()

	images := ad.gallery[ownerID]
	if idx >= len(images) {
		utils.JSONError(c, http.StatusNotFound, "image not found")
		return
	}
	ad.gallery[ownerID] = append(images[:idx], images[idx+1:]...)
	utils.JSONSuccess(c, http.StatusOK, append([]string(nil), ad.gallery[ownerID]...))
}
