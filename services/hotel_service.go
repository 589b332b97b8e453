package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Abh4y369/ServNex-App/models"
)

var ErrHotelNotFound = errors.New("hotel not found")

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// HotelFilter mirrors the list page's predicates: exact city, substring
// name search, badge equality. Empty or "All" values are no-ops.
type HotelFilter struct {
	City   string
	Search string
	Badge  string
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, "All")
}

func (s *HotelService) List(f HotelFilter) ([]models.Hotel, error) {
	q := s.DB.Model(&models.Hotel{})
	if !isAll(f.City) {
		q = q.Where("LOWER(city) = ?", strings.ToLower(strings.TrimSpace(f.City)))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if !isAll(f.Badge) {
		q = q.Where("badge = ?", strings.TrimSpace(f.Badge))
	}

	var hotels []models.Hotel
	if err := q.Order("id").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (s *HotelService) Get(id uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, ErrHotelNotFound
		}
		return models.Hotel{}, err
	}
	return hotel, nil
}
