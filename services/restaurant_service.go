package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Abh4y369/ServNex-App/models"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

type RestaurantService struct {
	DB *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{DB: db}
}

// RestaurantFilter adds the cuisine predicate on top of the shared
// city/search/badge trio.
type RestaurantFilter struct {
	City    string
	Search  string
	Badge   string
	Cuisine string
}

func (s *RestaurantService) List(f RestaurantFilter) ([]models.Restaurant, error) {
	q := s.DB.Model(&models.Restaurant{})
	if !isAll(f.City) {
		q = q.Where("LOWER(city) = ?", strings.ToLower(strings.TrimSpace(f.City)))
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if !isAll(f.Badge) {
		q = q.Where("badge = ?", strings.TrimSpace(f.Badge))
	}
	if !isAll(f.Cuisine) {
		q = q.Where("cuisine_type = ?", strings.TrimSpace(f.Cuisine))
	}

	var restaurants []models.Restaurant
	if err := q.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *RestaurantService) Get(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, ErrRestaurantNotFound
		}
		return models.Restaurant{}, err
	}
	return restaurant, nil
}
