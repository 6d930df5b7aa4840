package services

import (
	"errors"
	"net/http"

	"backend/models"

	"gorm.io/gorm"
)

// MessageService handles direct messages and their thread views.
type MessageService struct {
	DB *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{DB: db}
}

type MessageInput struct {
	Sender    uint   `json:"sender" binding:"required"`
	Recipient uint   `json:"recipient" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

type MessageUpdateInput struct {
	Text *string `json:"text"`
	Read *bool   `json:"read"`
}

func (s *MessageService) Send(input MessageInput) (*models.Message, error) {
	var count int64
	err := s.DB.Model(&models.Member{}).
		Where("id IN ?", []uint{input.Sender, input.Recipient}).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	want := int64(2)
	if input.Sender == input.Recipient {
		want = 1
	}
	if count != want {
		return nil, models.NewHTTPError(http.StatusNotFound, "sender/recipient not found")
	}

	message := &models.Message{
		SenderID:    input.Sender,
		RecipientID: input.Recipient,
		Text:        input.Text,
	}
	if err := s.DB.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// Edit applies the fields present in the request, text and read only.
func (s *MessageService) Edit(id uint, input MessageUpdateInput) (*models.Message, error) {
	var message models.Message
	err := s.DB.First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewHTTPError(http.StatusNotFound, "Message not found")
	}
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		message.Text = *input.Text
	}
	if input.Read != nil {
		message.Read = *input.Read
	}

	if err := s.DB.Save(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *MessageService) Delete(id uint) error {
	result := s.DB.Delete(&models.Message{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewHTTPError(http.StatusNotFound, "Message not found")
	}
	return nil
}

func (s *MessageService) List() ([]models.Message, error) {
	var messages []models.Message
	if err := s.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListBySender returns every message the member sent.
func (s *MessageService) ListBySender(senderID uint) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.Where("sender_id = ?", senderID).Order("created_at desc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Inbox groups the member's received messages into threads: the newest
// message per distinct sender, newest thread first.
func (s *MessageService) Inbox(memberID uint) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.Where("recipient_id = ?", memberID).Order("created_at desc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return newestPerCounterpart(messages, func(m models.Message) uint { return m.SenderID }), nil
}

// Outbox is the mirror view: the newest sent message per distinct recipient.
func (s *MessageService) Outbox(memberID uint) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.Where("sender_id = ?", memberID).Order("created_at desc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return newestPerCounterpart(messages, func(m models.Message) uint { return m.RecipientID }), nil
}

// newestPerCounterpart keeps the first message per counterpart from a list
// already sorted newest first.
func newestPerCounterpart(messages []models.Message, counterpart func(models.Message) uint) []models.Message {
	seen := make(map[uint]bool)
	threads := make([]models.Message, 0, len(messages))
	for _, m := range messages {
		id := counterpart(m)
		if seen[id] {
			continue
		}
		seen[id] = true
		threads = append(threads, m)
	}
	return threads
}

// ThreadMessages returns the messages of one directed thread.
func (s *MessageService) ThreadMessages(senderID, recipientID uint) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.Where("sender_id = ? AND recipient_id = ?", senderID, recipientID).
		Order("created_at asc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
