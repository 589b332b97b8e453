package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Abh4y369/ServNex-App/models"
	"github.com/Abh4y369/ServNex-App/utils"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
)

// ValidationError carries per-field messages back to the form without
// aborting the flow.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "validation failed"
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type RegisterInput struct {
	FirstName   string
	Email       string
	Password    string
	Phone       string
	AccountType string
}

func (s *AuthService) Register(in RegisterInput) (models.User, TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return models.User{}, TokenPair{}, &ValidationError{Fields: map[string]string{
			"email": "email and password are required",
		}}
	}

	accountType := in.AccountType
	if accountType != models.AccountTypeBusiness {
		accountType = models.AccountTypeUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}

	user := models.User{
		FirstName:   strings.TrimSpace(in.FirstName),
		Email:       email,
		Phone:       strings.TrimSpace(in.Phone),
		Password:    string(hash),
		AccountType: accountType,
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return models.User{}, TokenPair{}, ErrEmailExists
		}
		return models.User{}, TokenPair{}, err
	}

	pair, err := s.IssueTokenPair(user)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

func (s *AuthService) Login(email, password string) (models.User, TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.IssueTokenPair(user)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

// IssueTokenPair signs a fresh access token and rotates the stored refresh
// token hash. Last write wins: a second login replaces the first session.
func (s *AuthService) IssueTokenPair(user models.User) (TokenPair, error) {
	access, err := utils.CreateAccessToken(user)
	if err != nil {
		return TokenPair{}, err
	}
	raw, hash, err := utils.GenerateRefreshToken()
	if err != nil {
		return TokenPair{}, err
	}
	expires := time.Now().Add(7 * 24 * time.Hour)
	if err := utils.SaveRefreshToken(s.DB, user.ID, hash, expires); err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: raw}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated; the client holds it until logout.
func (s *AuthService) Refresh(raw string) (string, error) {
	rt, err := utils.ValidateRefreshToken(s.DB, raw)
	if err != nil {
		return "", err
	}
	var user models.User
	if err := s.DB.First(&user, rt.UserID).Error; err != nil {
		return "", ErrUserNotFound
	}
	return utils.CreateAccessToken(user)
}

func (s *AuthService) Logout(raw string) error {
	return utils.DeleteRefreshToken(s.DB, raw)
}

// UpdateRole switches a business account between verticals. The stubbed
// verticals accept the role value even though their catalogs are not live.
func (s *AuthService) UpdateRole(userID uint, role string) (models.User, error) {
	switch role {
	case models.RoleHotel, models.RoleRestaurant, models.RoleSaloon:
	default:
		return models.User{}, ErrInvalidRole
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return models.User{}, ErrUserNotFound
	}
	user.Role = role
	if err := s.DB.Save(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

var (
	businessNameRe = regexp.MustCompile(`^[\w\s&.,'()-]+$`)
	cityRe         = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
)

// ValidateBusinessProfile applies the onboarding form rules and returns
// per-field messages. Mirrors the web-standard validation on the form.
func ValidateBusinessProfile(name, city, area, description string) map[string]string {
	errs := map[string]string{}

	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs["name"] = "Business name required"
	case len(name) < 2 || len(name) > 80:
		errs["name"] = "Name must be 2-80 characters"
	case !businessNameRe.MatchString(name):
		errs["name"] = "Contains invalid characters"
	}

	city = strings.TrimSpace(city)
	switch {
	case city == "":
		errs["city"] = "City required"
	case len(city) < 2 || len(city) > 60:
		errs["city"] = "City must be 2-60 characters"
	case !cityRe.MatchString(city):
		errs["city"] = "Enter a valid city name"
	}

	area = strings.TrimSpace(area)
	switch {
	case area == "":
		errs["area"] = "Area/Address required"
	case len(area) < 5 || len(area) > 120:
		errs["area"] = "Address must be 5-120 characters"
	}

	description = strings.TrimSpace(description)
	switch {
	case description == "":
		errs["description"] = "Description required"
	case len(description) < 20 || len(description) > 500:
		errs["description"] = "Description must be 20-500 characters"
	}

	return errs
}

// CreateBusinessProfile validates and stores the listing for the caller.
func (s *AuthService) CreateBusinessProfile(userID uint, category, name, city, area, description string) (models.BusinessProfile, error) {
	if errs := ValidateBusinessProfile(name, city, area, description); len(errs) > 0 {
		return models.BusinessProfile{}, &ValidationError{Fields: errs}
	}

	profile := models.BusinessProfile{
		UserID:      userID,
		Category:    strings.TrimSpace(category),
		Name:        strings.TrimSpace(name),
		City:        strings.TrimSpace(city),
		Area:        strings.TrimSpace(area),
		Description: strings.TrimSpace(description),
	}
	if err := s.DB.Create(&profile).Error; err != nil {
		return models.BusinessProfile{}, err
	}
	return profile, nil
}

// isDuplicateKey recognizes unique-index violations on both MySQL (1062)
// and the sqlite driver used in tests.
func isDuplicateKey(err error) bool {
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
