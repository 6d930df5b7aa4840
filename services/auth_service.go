package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// AuthService covers login, password change and the reset-token flow.
type AuthService struct {
	DB       *gorm.DB
	Tokens   *utils.TokenIssuer
	Mailer   ResetMailer
	ResetTTL time.Duration
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenIssuer, mailer ResetMailer, resetTTL time.Duration) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Mailer: mailer, ResetTTL: resetTTL}
}

// Login accepts nickname or email. Unknown logins are 404, a failed password
// check is a generic 401.
func (s *AuthService) Login(login, password string) (string, error) {
	var member models.Member
	err := s.DB.Where("nickname = ? OR email = ?", login, login).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", models.NewHTTPError(http.StatusNotFound, "Cannot find member")
	}
	if err != nil {
		return "", err
	}

	var credential models.Credential
	if err := s.DB.Where("member_id = ?", member.ID).First(&credential).Error; err != nil {
		return "", err
	}

	if !utils.CheckPasswordHash(password, credential.Hash) {
		return "", models.NewHTTPError(http.StatusUnauthorized, "Wrong username/email or password")
	}

	return s.Tokens.Issue(member.ID)
}

// ChangePassword re-asserts the current password before replacing the hash.
func (s *AuthService) ChangePassword(memberID uint, oldPassword, newPassword string) error {
	var credential models.Credential
	err := s.DB.Where("member_id = ?", memberID).First(&credential).Error
	if err != nil {
		return models.NewHTTPError(http.StatusUnauthorized, "Cannot change password")
	}

	if !utils.CheckPasswordHash(oldPassword, credential.Hash) {
		return models.NewHTTPError(http.StatusUnauthorized, "Cannot change password")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	credential.Hash = hash
	return s.DB.Save(&credential).Error
}

// RequestPasswordReset issues a single-use token and mails it. The response
// to the caller is identical whether or not the email exists.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	var member models.Member
	err := s.DB.Where("email = ?", email).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := &models.ResetToken{
		Token:     utils.GenerateRandomToken(32),
		MemberID:  member.ID,
		ExpiresAt: time.Now().Add(s.ResetTTL),
	}
	if err := s.DB.Create(token).Error; err != nil {
		return err
	}

	if err := s.Mailer.SendResetEmail(ctx, member.Email, token.Token); err != nil {
		log.Printf("could not send reset email to member %d: %v", member.ID, err)
	}
	return nil
}

// SetNewPassword consumes a valid, unexpired token and replaces the hash.
func (s *AuthService) SetNewPassword(token, newPassword string) error {
	var reset models.ResetToken
	err := s.DB.Where("token = ?", token).First(&reset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}
	if err != nil {
		return err
	}

	if time.Now().After(reset.ExpiresAt) {
		s.DB.Delete(&reset)
		return models.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var credential models.Credential
		if err := tx.Where("member_id = ?", reset.MemberID).First(&credential).Error; err != nil {
			return err
		}
		credential.Hash = hash
		if err := tx.Save(&credential).Error; err != nil {
			return err
		}
		return tx.Delete(&reset).Error
	})
}
