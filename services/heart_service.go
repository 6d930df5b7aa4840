package services

import (
	"errors"
	"net/http"

	"backend/models"

	"gorm.io/gorm"
)

// HeartService manages the directed like edges between members.
type HeartService struct {
	DB *gorm.DB
}

func NewHeartService(db *gorm.DB) *HeartService {
	return &HeartService{DB: db}
}

type HeartInput struct {
	Sender    uint   `json:"sender" binding:"required"`
	Recipient uint   `json:"recipient" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

func (s *HeartService) memberExists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.Member{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Send creates a heart. A second heart for the same (sender, recipient) pair
// is a conflict; the unique index backs up the pre-check under concurrency.
func (s *HeartService) Send(input HeartInput) (*models.Heart, error) {
	for _, id := range []uint{input.Sender, input.Recipient} {
		ok, err := s.memberExists(s.DB, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, models.NewHTTPError(http.StatusNotFound, "sender/recipient not found")
		}
	}

	var existing models.Heart
	err := s.DB.Where("sender_id = ? AND recipient_id = ?", input.Sender, input.Recipient).First(&existing).Error
	if err == nil {
		return nil, models.NewHTTPError(http.StatusConflict, "Heart already sent")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	heart := &models.Heart{
		SenderID:    input.Sender,
		RecipientID: input.Recipient,
		Text:        input.Text,
	}
	if err := s.DB.Create(heart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewHTTPError(http.StatusConflict, "Heart already sent")
		}
		return nil, err
	}
	return heart, nil
}

// ListForMember returns hearts the member sent or received.
func (s *HeartService) ListForMember(memberID uint) ([]models.Heart, error) {
	var hearts []models.Heart
	err := s.DB.Where("sender_id = ? OR recipient_id = ?", memberID, memberID).
		Order("created_at desc").Find(&hearts).Error
	if err != nil {
		return nil, err
	}
	return hearts, nil
}

// Confirm marks a heart confirmed; re-confirming is a no-op.
func (s *HeartService) Confirm(id uint) (*models.Heart, error) {
	var heart models.Heart
	err := s.DB.First(&heart, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewHTTPError(http.StatusNotFound, "Heart not found")
	}
	if err != nil {
		return nil, err
	}

	if heart.Confirmed {
		return &heart, nil
	}

	heart.Confirmed = true
	if err := s.DB.Save(&heart).Error; err != nil {
		return nil, err
	}
	return &heart, nil
}

func (s *HeartService) Delete(id uint) error {
	result := s.DB.Delete(&models.Heart{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewHTTPError(http.StatusNotFound, "Heart not found")
	}
	return nil
}
