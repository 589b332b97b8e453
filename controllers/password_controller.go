package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abh4y369/ServNex-App/services"
	"github.com/Abh4y369/ServNex-App/utils"
)

type PasswordController struct {
	Reset *services.PasswordResetService
}

func NewPasswordController(reset *services.PasswordResetService) *PasswordController {
	return &PasswordController{Reset: reset}
}

type sendOTPPayload struct {
	Email string `json:"email"`
}

type verifyOTPPayload struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type resetPasswordPayload struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (pc *PasswordController) SendOTP(c *gin.Context) {
	var payload sendOTPPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := pc.Reset.SendOTP(payload.Email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "No account with this email")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not send OTP")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "OTP sent to your email"})
}

func (pc *PasswordController) VerifyOTP(c *gin.Context) {
	var payload verifyOTPPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := pc.Reset.VerifyOTP(payload.Email, payload.OTP); err != nil {
		switch {
		case errors.Is(err, services.ErrIncompleteOTP),
			errors.Is(err, services.ErrInvalidOTP),
			errors.Is(err, services.ErrOTPExpired),
			errors.Is(err, services.ErrNoResetInProgress):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "verification failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "OTP verified"})
}

func (pc *PasswordController) ResetPassword(c *gin.Context) {
	var payload resetPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := pc.Reset.ResetPassword(payload.Email, payload.Password, payload.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch),
			errors.Is(err, services.ErrOTPNotVerified),
			errors.Is(err, services.ErrOTPExpired):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "password reset failed")
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Password reset successful"})
}
