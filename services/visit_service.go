package services

import (
	"net/http"

	"backend/models"

	"gorm.io/gorm"
)

// VisitService records profile views. Repeat visits are allowed; every view
// gets its own row.
type VisitService struct {
	DB *gorm.DB
}

func NewVisitService(db *gorm.DB) *VisitService {
	return &VisitService{DB: db}
}

type VisitInput struct {
	Visitor      uint `json:"visitor" binding:"required"`
	TargetMember uint `json:"targetMember" binding:"required"`
}

func (s *VisitService) Create(input VisitInput) (*models.Visit, error) {
	var count int64
	err := s.DB.Model(&models.Member{}).
		Where("id IN ?", []uint{input.Visitor, input.TargetMember}).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	want := int64(2)
	if input.Visitor == input.TargetMember {
		want = 1
	}
	if count != want {
		return nil, models.NewHTTPError(http.StatusNotFound, "visitor/target not found")
	}

	visit := &models.Visit{
		VisitorID: input.Visitor,
		TargetID:  input.TargetMember,
	}
	if err := s.DB.Create(visit).Error; err != nil {
		return nil, err
	}
	return visit, nil
}

// ListByVisitor returns all visits made by the given member.
func (s *VisitService) ListByVisitor(visitorID uint) ([]models.Visit, error) {
	var visits []models.Visit
	err := s.DB.Where("visitor_id = ?", visitorID).Order("created_at desc").Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (s *VisitService) Delete(id uint) error {
	result := s.DB.Delete(&models.Visit{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewHTTPError(http.StatusNotFound, "Visit not found")
	}
	return nil
}
