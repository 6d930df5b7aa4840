package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer delivers reset tokens over SES.
type Mailer struct {
	client *ses.Client
	source string
}

func NewMailer(client *ses.Client, source string) *Mailer {
	return &Mailer{client: client, source: source}
}

// generic SES sender
func (m *Mailer) sendEmail(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.source),
	}

	_, err := m.client.SendEmail(ctx, input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

func (m *Mailer) SendResetEmail(ctx context.Context, to, token string) error {
	subject := "Password Reset Token"
	body := fmt.Sprintf("Your password reset token is: %s\n\nUse this in the app to set a new password.", token)
	return m.sendEmail(ctx, to, subject, body)
}
