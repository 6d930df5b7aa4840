package utils

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// ModerationChecker screens uploaded profile pictures with Rekognition
// moderation labels. A nil checker means moderation is disabled.
type ModerationChecker struct {
	client        *rekognition.Client
	minConfidence float32
}

func NewModerationChecker(client *rekognition.Client, minConfidence float32) *ModerationChecker {
	return &ModerationChecker{client: client, minConfidence: minConfidence}
}

// Check returns an error naming the first moderation label found at or above
// the configured confidence.
func (m *ModerationChecker) Check(ctx context.Context, image []byte) error {
	out, err := m.client.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image:         &rektypes.Image{Bytes: image},
		MinConfidence: aws.Float32(m.minConfidence),
	})
	if err != nil {
		return fmt.Errorf("moderation check failed: %w", err)
	}
	for _, label := range out.ModerationLabels {
		if label.Name != nil {
			return fmt.Errorf("photo rejected: %s", *label.Name)
		}
	}
	return nil
}
