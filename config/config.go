package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is built once at startup and handed to every adapter by reference.
// Business logic never reads the environment directly.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string
	JWTTTL    time.Duration

	AWSRegion     string
	S3Bucket      string
	S3BaseURL     string
	S3KeyPrefix   string
	SESSource     string
	ModerationOn  bool
	MinConfidence float32

	LocationIQURL string
	LocationIQKey string

	ResetTokenTTL  time.Duration
	RequestTimeout time.Duration
	UploadDir      string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "lonelyhearts"),
		DBPort:         getEnv("DB_PORT", "5432"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTL:         getDuration("JWT_TTL", time.Hour),
		AWSRegion:      getEnv("AWS_REGION", "eu-central-1"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3BaseURL:      os.Getenv("S3_BASE_URL"),
		S3KeyPrefix:    getEnv("S3_KEY_PREFIX", "profile-photos"),
		SESSource:      os.Getenv("SES_EMAIL"),
		LocationIQURL:  getEnv("LOCATIONIQ_URL", "https://us1.locationiq.com/v1/search.php"),
		LocationIQKey:  os.Getenv("LOCATIONIQ_KEY"),
		ResetTokenTTL:  getDuration("RESET_TOKEN_TTL", 15*time.Minute),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
	}

	cfg.ModerationOn = os.Getenv("MODERATION_ENABLED") == "true"
	if v := os.Getenv("MODERATION_MIN_CONFIDENCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.MinConfidence = float32(f)
		}
	}
	if cfg.MinConfidence == 0 {
		cfg.MinConfidence = 80
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	return cfg, nil
}

// InitDB opens the Postgres connection and migrates the schema. TranslateError
// lets services match gorm.ErrDuplicatedKey on unique-index violations.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Member{},
		&models.Credential{},
		&models.ResetToken{},
		&models.Heart{},
		&models.Visit{},
		&models.Message{},
	)
	if err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}

	return db, nil
}
