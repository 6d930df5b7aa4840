package main

import (
	"context"
	"log"
	"os"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		log.Fatalf("aws config: %v", err)
	}

	var moderator services.PhotoModerator
	if cfg.ModerationOn {
		moderator = utils.NewModerationChecker(rekognition.NewFromConfig(awsCfg), cfg.MinConfidence)
	}

	r := routes.SetupRouter(&routes.Deps{
		DB:        db,
		Config:    cfg,
		Tokens:    utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Photos:    utils.NewPhotoStore(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3BaseURL, cfg.S3KeyPrefix),
		Geocoder:  utils.NewGeocoder(cfg.LocationIQURL, cfg.LocationIQKey, cfg.RequestTimeout),
		Moderator: moderator,
		Mailer:    utils.NewMailer(ses.NewFromConfig(awsCfg), cfg.SESSource),
	})

	log.Printf("http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
