package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB returns a private in-memory database with the full schema, so
// transactions, unique indexes and cascades behave like the real store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second pool connection would see a different memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Member{},
		&models.Credential{},
		&models.ResetToken{},
		&models.Heart{},
		&models.Visit{},
		&models.Message{},
	))
	return db
}

type fakeUploader struct {
	uploads    int
	failUpload bool
	lastKey    string
	deleted    []string
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, contentType string) (string, string, error) {
	if f.failUpload {
		return "", "", errors.New("image host unreachable")
	}
	f.uploads++
	f.lastKey = fmt.Sprintf("photos/key-%d", f.uploads)
	return f.lastKey, "https://img.example.com/" + f.lastKey, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeGeocoder struct {
	lat, lon float64
	calls    int
}

func (g *fakeGeocoder) Lookup(ctx context.Context, address string) (float64, float64) {
	g.calls++
	return g.lat, g.lon
}

type fakeMailer struct {
	to    string
	token string
	sends int
}

func (m *fakeMailer) SendResetEmail(ctx context.Context, to, token string) error {
	m.sends++
	m.to = to
	m.token = token
	return nil
}

type rejectingModerator struct{}

func (rejectingModerator) Check(ctx context.Context, image []byte) error {
	return errors.New("photo rejected: Explicit Nudity")
}

func validSignup(nickname string) SignupInput {
	return SignupInput{
		Nickname:   nickname,
		Email:      nickname + "@example.com",
		Password:   "secret123",
		FirstName:  "Jane",
		LastName:   "Doe",
		Street:     "Main Street 1",
		City:       "Berlin",
		Zip:        "10115",
		BirthDay:   15,
		BirthMonth: 6,
		BirthYear:  1990,
	}
}

func newTestMemberService(db *gorm.DB) (*MemberService, *fakeUploader, *fakeGeocoder) {
	uploader := &fakeUploader{}
	geocoder := &fakeGeocoder{lat: 52.52, lon: 13.405}
	return NewMemberService(db, uploader, geocoder, nil), uploader, geocoder
}

// mustSignup creates a member through the real signup path.
func mustSignup(t *testing.T, svc *MemberService, nickname string) *models.Member {
	t.Helper()
	member, err := svc.Signup(context.Background(), validSignup(nickname), []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	return member
}
