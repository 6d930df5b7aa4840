package controllers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type LoginInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	token, err := ac.Auth.Login(input.Login, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" binding:"required,min=6,max=50"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=50"`
}

func (ac *AuthController) ChangePassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	if err := ac.Auth.ChangePassword(CurrentMember(c).ID, input.OldPassword, input.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed!"})
}

type ResetRequestInput struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset always answers 200; the response does not reveal
// whether the email exists.
func (ac *AuthController) RequestPasswordReset(c *gin.Context) {
	var input ResetRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	if err := ac.Auth.RequestPasswordReset(c.Request.Context(), input.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset token has been sent"})
}

type SetNewPasswordInput struct {
	Password string `json:"password" binding:"required,min=6,max=50"`
}

// SetNewPassword takes the single-use token from the reset-token header.
func (ac *AuthController) SetNewPassword(c *gin.Context) {
	token := c.GetHeader("reset-token")
	if token == "" {
		respondError(c, models.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token"))
		return
	}

	var input SetNewPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	if err := ac.Auth.SetNewPassword(token, input.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed!"})
}
