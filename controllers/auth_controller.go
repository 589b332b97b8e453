package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abh4y369/ServNex-App/middleware"
	"github.com/Abh4y369/ServNex-App/services"
	"github.com/Abh4y369/ServNex-App/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type registerPayload struct {
	FirstName   string `json:"first_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	AccountType string `json:"account_type"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshPayload struct {
	Refresh string `json:"refresh"`
}

type updateRolePayload struct {
	Role string `json:"role"`
}

type businessProfilePayload struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Area        string `json:"area"`
	Description string `json:"description"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, tokens, err := ac.Auth.Register(services.RegisterInput{
		FirstName:   payload.FirstName,
		Email:       payload.Email,
		Password:    payload.Password,
		Phone:       payload.Phone,
		AccountType: payload.AccountType,
	})
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			utils.JSONFieldErrors(c, http.StatusBadRequest, ve.Fields)
		case errors.Is(err, services.ErrEmailExists):
			utils.JSONFieldErrors(c, http.StatusConflict, map[string]string{"email": err.Error()})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"user":    user,
		"access":  tokens.Access,
		"refresh": tokens.Refresh,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	user, tokens, err := ac.Auth.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user":    user,
		"access":  tokens.Access,
		"refresh": tokens.Refresh,
	})
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var payload refreshPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Refresh == "" {
		utils.JSONError(c, http.StatusBadRequest, "refresh token required")
		return
	}

	access, err := ac.Auth.Refresh(payload.Refresh)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"access": access})
}

func (ac *AuthController) Logout(c *gin.Context) {
	var payload refreshPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Refresh == "" {
		utils.JSONError(c, http.StatusBadRequest, "refresh token required")
		return
	}
	if err := ac.Auth.Logout(payload.Refresh); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "logout failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

func (ac *AuthController) UpdateRole(c *gin.Context) {
	var payload updateRolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := ac.Auth.UpdateRole(middleware.UserID(c), payload.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "role update failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}

func (ac *AuthController) CreateBusinessProfile(c *gin.Context) {
	var payload businessProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	profile, err := ac.Auth.CreateBusinessProfile(
		middleware.UserID(c),
		payload.Category, payload.Name, payload.City, payload.Area, payload.Description,
	)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			utils.JSONFieldErrors(c, http.StatusBadRequest, ve.Fields)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not save business profile")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"profile": profile})
}
