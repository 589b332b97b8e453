package services

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Abh4y369/ServNex-App/utils"
)

var ErrRoomNotFound = errors.New("room not found")

// AdminRoom is a dashboard-only record. The inventory is deliberately not
// persisted and no booking path touches it: `Available` is frozen at
// creation time and is a display figure, not live stock.
type AdminRoom struct {
	ID          int64    `json:"id"`
	OwnerID     uint     `json:"-"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Adults      int      `json:"adults"`
	Children    int      `json:"children"`
	TotalRooms  int      `json:"totalRooms"`
	Available   int      `json:"available"`
	BedType     string   `json:"bedType"`
	RoomSize    string   `json:"roomSize"`
	Amenities   []string `json:"amenities"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// RoomForm is the raw dashboard form, amenities still comma-separated.
type RoomForm struct {
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	TotalRooms  int     `json:"totalRooms"`
	BedType     string  `json:"bedType"`
	RoomSize    string  `json:"roomSize"`
	Amenities   string  `json:"amenities"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

var amenitiesRe = regexp.MustCompile(`^[\w\s,.-]+$`)

// ValidateRoomForm applies the dashboard rules and returns per-field
// messages; an empty map means the form passes.
func ValidateRoomForm(f RoomForm) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(f.Type) == "" {
		errs["type"] = "Room type required"
	}
	if f.Price <= 0 {
		errs["price"] = "Enter a valid price"
	}
	if f.Adults <= 0 {
		errs["adults"] = "Adults required"
	}
	if f.TotalRooms <= 0 {
		errs["totalRooms"] = "Enter valid room count"
	}

	amenities := strings.TrimSpace(f.Amenities)
	switch {
	case amenities == "":
		errs["amenities"] = "Amenities required"
	case len(amenities) < 3 || len(amenities) > 200:
		errs["amenities"] = "Amenities must be 3-200 characters"
	case !amenitiesRe.MatchString(amenities):
		errs["amenities"] = "Invalid characters in amenities"
	}

	description := strings.TrimSpace(f.Description)
	if description != "" && (len(description) < 10 || len(description) > 500) {
		errs["description"] = "Description must be 10-500 characters"
	}

	return errs
}

// RoomInventory is an explicit in-memory repository for the dashboard's
// rooms tab. Every operation returns the owner's new collection snapshot.
// Contents live for the process only.
type RoomInventory struct {
	mu    sync.Mutex
	rooms  map[uint][]AdminRoom
	lastID int64
	// now is swappable so tests can pin generated ids.
	now func() time.Time
}

func NewRoomInventory() *RoomInventory {
	return &RoomInventory{
		rooms: make(map[uint][]AdminRoom),
		now:   time.Now,
	}
}

func (inv *RoomInventory) snapshot(ownerID uint) []AdminRoom {
	out := make([]AdminRoom, len(inv.rooms[ownerID]))
	copy(out, inv.rooms[ownerID])
	return out
}

// List returns the owner's current rooms.
func (inv *RoomInventory) List(ownerID uint) []AdminRoom {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.snapshot(ownerID)
}

// Add validates and appends a room. The id is timestamp-derived and
// `available` is frozen to the submitted total.
func (inv *RoomInventory) Add(ownerID uint, f RoomForm) (AdminRoom, []AdminRoom, error) {
	if errs := ValidateRoomForm(f); len(errs) > 0 {
		return AdminRoom{}, nil, &ValidationError{Fields: errs}
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	room := roomFromForm(ownerID, f)
	room.ID = inv.now().UnixMilli()
	// two adds in the same millisecond must not share an id
	if room.ID <= inv.lastID {
		room.ID = inv.lastID + 1
	}
	inv.lastID = room.ID
	inv.rooms[ownerID] = append(inv.rooms[ownerID], room)
	return room, inv.snapshot(ownerID), nil
}

// Update validates and replaces the record with the matching id, keeping
// its position in the list.
func (inv *RoomInventory) Update(ownerID uint, id int64, f RoomForm) (AdminRoom, []AdminRoom, error) {
	if errs := ValidateRoomForm(f); len(errs) > 0 {
		return AdminRoom{}, nil, &ValidationError{Fields: errs}
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	list := inv.rooms[ownerID]
	for i := range list {
		if list[i].ID == id {
			room := roomFromForm(ownerID, f)
			room.ID = id
			list[i] = room
			return room, inv.snapshot(ownerID), nil
		}
	}
	return AdminRoom{}, nil, ErrRoomNotFound
}

// Delete removes by id.
func (inv *RoomInventory) Delete(ownerID uint, id int64) ([]AdminRoom, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	list := inv.rooms[ownerID]
	for i := range list {
		if list[i].ID == id {
			inv.rooms[ownerID] = append(list[:i], list[i+1:]...)
			return inv.snapshot(ownerID), nil
		}
	}
	return nil, ErrRoomNotFound
}

// EditForm loads a room back into form shape, re-joining the amenity list
// into the comma-space string the form edits.
func (inv *RoomInventory) EditForm(ownerID uint, id int64) (RoomForm, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for _, room := range inv.rooms[ownerID] {
		if room.ID == id {
			return RoomForm{
				Type:        room.Type,
				Price:       room.Price,
				Adults:      room.Adults,
				Children:    room.Children,
				TotalRooms:  room.TotalRooms,
				BedType:     room.BedType,
				RoomSize:    room.RoomSize,
				Amenities:   utils.JoinAmenities(room.Amenities),
				Image:       room.Image,
				Description: room.Description,
			}, nil
		}
	}
	return RoomForm{}, ErrRoomNotFound
}

func roomFromForm(ownerID uint, f RoomForm) AdminRoom {
	return AdminRoom{
		OwnerID:     ownerID,
		Type:        strings.TrimSpace(f.Type),
		Price:       f.Price,
		Adults:      f.Adults,
		Children:    f.Children,
		TotalRooms:  f.TotalRooms,
		Available:   f.TotalRooms,
		BedType:     strings.TrimSpace(f.BedType),
		RoomSize:    strings.TrimSpace(f.RoomSize),
		Amenities:   utils.SplitAmenities(f.Amenities),
		Image:       strings.TrimSpace(f.Image),
		Description: strings.TrimSpace(f.Description),
	}
}
