package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberService owns the member lifecycle: the signup transaction, profile
// reads and updates, the cascading delete and the favorites list.
type MemberService struct {
	DB        *gorm.DB
	Photos    PhotoUploader
	Geocoder  AddressGeocoder
	Moderator PhotoModerator
}

func NewMemberService(db *gorm.DB, photos PhotoUploader, geocoder AddressGeocoder, moderator PhotoModerator) *MemberService {
	return &MemberService{DB: db, Photos: photos, Geocoder: geocoder, Moderator: moderator}
}

type SignupInput struct {
	Nickname   string `form:"nickname" binding:"required,min=4,max=50"`
	Email      string `form:"email" binding:"required,email"`
	Password   string `form:"password" binding:"required,min=6,max=50"`
	FirstName  string `form:"firstName" binding:"required,min=2,max=50"`
	LastName   string `form:"lastName" binding:"required,min=2,max=50"`
	Street     string `form:"street" binding:"required,min=2,max=50"`
	City       string `form:"city" binding:"required,min=2,max=50"`
	Zip        string `form:"zip" binding:"required,min=2,max=50"`
	BirthDay   int    `form:"birthDay" binding:"required,min=1,max=31"`
	BirthMonth int    `form:"birthMonth" binding:"required,min=1,max=12"`
	BirthYear  int    `form:"birthYear" binding:"required,min=1900"`
	Statement  string `form:"statement"`
}

// UpdateInput carries only the fields present in the request; nil pointers are
// left untouched on the member.
type UpdateInput struct {
	FirstName  *string `form:"firstName" binding:"omitempty,min=2,max=50"`
	LastName   *string `form:"lastName" binding:"omitempty,min=2,max=50"`
	Street     *string `form:"street" binding:"omitempty,min=2,max=50"`
	City       *string `form:"city" binding:"omitempty,min=2,max=50"`
	Zip        *string `form:"zip" binding:"omitempty,min=2,max=50"`
	BirthDay   *int    `form:"birthDay" binding:"omitempty,min=1,max=31"`
	BirthMonth *int    `form:"birthMonth" binding:"omitempty,min=1,max=12"`
	BirthYear  *int    `form:"birthYear" binding:"omitempty,min=1900"`
	Statement  *string `form:"statement"`
	Paused     *bool   `form:"paused"`
}

// applyDerived recomputes age and zodiac; it runs right before every save.
func applyDerived(m *models.Member) {
	m.Age = utils.Age(m.BirthYear, m.BirthMonth, m.BirthDay)
	m.Zodiac = utils.ZodiacSign(m.BirthYear, m.BirthMonth, m.BirthDay)
}

func addressOf(street, zip, city string) string {
	return fmt.Sprintf("%s, %s %s", street, zip, city)
}

func (s *MemberService) moderate(ctx context.Context, photo []byte) error {
	if s.Moderator == nil {
		return nil
	}
	if err := s.Moderator.Check(ctx, photo); err != nil {
		return models.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

// Signup uploads the photo, resolves the address and persists the member and
// its credential in one transaction. An upload failure aborts before anything
// is written; a transaction failure removes the already-uploaded photo again.
// Geocoding failures degrade to (0, 0) and never block signup.
func (s *MemberService) Signup(ctx context.Context, input SignupInput, photo []byte, contentType string) (*models.Member, error) {
	if err := s.moderate(ctx, photo); err != nil {
		return nil, err
	}

	key, url, err := s.Photos.Upload(ctx, photo, contentType)
	if err != nil {
		return nil, models.NewHTTPError(http.StatusUnprocessableEntity, "Could not store photo")
	}

	lat, lon := s.Geocoder.Lookup(ctx, addressOf(input.Street, input.Zip, input.City))

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		s.compensatePhoto(key)
		return nil, err
	}

	member := &models.Member{
		Nickname:   input.Nickname,
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Street:     input.Street,
		City:       input.City,
		Zip:        input.Zip,
		BirthDay:   input.BirthDay,
		BirthMonth: input.BirthMonth,
		BirthYear:  input.BirthYear,
		Statement:  input.Statement,
		Photo:      models.Photo{Key: key, URL: url},
		Geo:        models.Geo{Lat: lat, Lon: lon},
	}
	applyDerived(member)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		credential := &models.Credential{
			MemberID: member.ID,
			Hash:     hash,
		}
		return tx.Create(credential).Error
	})
	if err != nil {
		s.compensatePhoto(key)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewHTTPError(http.StatusUnprocessableEntity, "Nickname or email already taken")
		}
		return nil, err
	}

	return member, nil
}

// compensatePhoto removes an uploaded photo after a failed signup. Best
// effort: the photo is orphaned at worst, never a member without credential.
func (s *MemberService) compensatePhoto(key string) {
	if err := s.Photos.Delete(context.Background(), key); err != nil {
		log.Printf("could not remove orphaned photo %s: %v", key, err)
	}
}

func (s *MemberService) List() ([]models.Member, error) {
	var members []models.Member
	if err := s.DB.Preload("Favorites").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *MemberService) Get(id uint) (*models.Member, error) {
	var member models.Member
	err := s.DB.Preload("Favorites").First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewHTTPError(http.StatusNotFound, "Cannot find member")
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func canAct(actor *models.Member, id uint) bool {
	return actor.IsAdmin || actor.ID == id
}

// Update applies only the supplied fields. A new photo is uploaded before the
// old one is deleted so a partial failure never leaves the member without a
// picture; an address change re-runs geocoding.
func (s *MemberService) Update(ctx context.Context, actor *models.Member, id uint, input UpdateInput, photo []byte, contentType string) (*models.Member, error) {
	if !canAct(actor, id) {
		return nil, models.NewHTTPError(http.StatusForbidden, "Cannot update member")
	}

	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	addressChanged := false
	if input.FirstName != nil {
		member.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		member.LastName = *input.LastName
	}
	if input.Street != nil {
		member.Street = *input.Street
		addressChanged = true
	}
	if input.City != nil {
		member.City = *input.City
		addressChanged = true
	}
	if input.Zip != nil {
		member.Zip = *input.Zip
		addressChanged = true
	}
	if input.BirthDay != nil {
		member.BirthDay = *input.BirthDay
	}
	if input.BirthMonth != nil {
		member.BirthMonth = *input.BirthMonth
	}
	if input.BirthYear != nil {
		member.BirthYear = *input.BirthYear
	}
	if input.Statement != nil {
		member.Statement = *input.Statement
	}
	if input.Paused != nil {
		member.Paused = *input.Paused
	}

	if photo != nil {
		if err := s.moderate(ctx, photo); err != nil {
			return nil, err
		}
		key, url, err := s.Photos.Upload(ctx, photo, contentType)
		if err != nil {
			return nil, models.NewHTTPError(http.StatusUnprocessableEntity, "Could not store photo")
		}
		oldKey := member.Photo.Key
		member.Photo = models.Photo{Key: key, URL: url}
		if err := s.Photos.Delete(ctx, oldKey); err != nil {
			log.Printf("could not delete replaced photo %s: %v", oldKey, err)
		}
	}

	if addressChanged {
		lat, lon := s.Geocoder.Lookup(ctx, addressOf(member.Street, member.Zip, member.City))
		member.Geo = models.Geo{Lat: lat, Lon: lon}
	}

	applyDerived(member)

	if err := s.DB.Omit(clause.Associations).Save(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes the member and, in the same transaction, its credential,
// reset tokens, hearts and visits in either direction and favorite links both
// ways. The remote photo is removed after the transaction committed.
func (s *MemberService) Delete(ctx context.Context, actor *models.Member, id uint) error {
	if !canAct(actor, id) {
		return models.NewHTTPError(http.StatusForbidden, "Cannot delete member")
	}

	member, err := s.Get(id)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM member_favorites WHERE member_id = ? OR favorite_id = ?", id, id).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.Credential{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.ResetToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR recipient_id = ?", id, id).Delete(&models.Heart{}).Error; err != nil {
			return err
		}
		if err := tx.Where("visitor_id = ? OR target_id = ?", id, id).Delete(&models.Visit{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Member{}, id).Error
	})
	if err != nil {
		return err
	}

	if err := s.Photos.Delete(ctx, member.Photo.Key); err != nil {
		log.Printf("could not delete photo of member %d: %v", id, err)
	}
	return nil
}

// MemberDistance is one row of the distance ranking.
type MemberDistance struct {
	models.Member
	Distance float64 `json:"distance"`
}

// Distances annotates every other member with the great-circle distance to
// the given member.
func (s *MemberService) Distances(id uint) ([]MemberDistance, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	var others []models.Member
	if err := s.DB.Where("id <> ?", id).Find(&others).Error; err != nil {
		return nil, err
	}

	result := make([]MemberDistance, 0, len(others))
	for _, other := range others {
		result = append(result, MemberDistance{
			Member: other,
			Distance: utils.GeoDistance(
				member.Geo.Lat, member.Geo.Lon,
				other.Geo.Lat, other.Geo.Lon,
			),
		})
	}
	return result, nil
}

// AddFavorite is idempotent: re-adding returns the current state.
func (s *MemberService) AddFavorite(actor *models.Member, favoriteID uint) (*models.Member, error) {
	member, err := s.Get(actor.ID)
	if err != nil {
		return nil, err
	}

	favorite, err := s.Get(favoriteID)
	if err != nil {
		return nil, err
	}

	for _, f := range member.Favorites {
		if f.ID == favoriteID {
			return member, nil
		}
	}

	if err := s.DB.Model(member).Association("Favorites").Append(favorite); err != nil {
		return nil, err
	}
	return s.Get(actor.ID)
}

// RemoveFavorite on a member not in the list is a no-op returning the current
// state.
func (s *MemberService) RemoveFavorite(actor *models.Member, favoriteID uint) (*models.Member, error) {
	member, err := s.Get(actor.ID)
	if err != nil {
		return nil, err
	}

	var found *models.Member
	for _, f := range member.Favorites {
		if f.ID == favoriteID {
			found = f
			break
		}
	}
	if found == nil {
		return member, nil
	}

	if err := s.DB.Model(member).Association("Favorites").Delete(found); err != nil {
		return nil, err
	}
	return s.Get(actor.ID)
}
