package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
)

func sesClientLazy() *ses.Client {
	sesOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			log.Printf("AWS config load failed, email disabled: %v", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient
}

// generic SES sender; a no-op when SES_EMAIL is not configured
func sendEmail(to string, subject string, body string) error {
	source := os.Getenv("SES_EMAIL")
	if source == "" {
		return nil
	}
	client := sesClientLazy()
	if client == nil {
		return fmt.Errorf("ses client unavailable")
	}

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
		Source: aws.String(source),
	}

	_, err := client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendAllocationEmail tells an NGO that a donation has been routed to them.
func SendAllocationEmail(to, ngoName, itemName string, quantity float64, unit string) error {
	subject := "SurplusX: Donation Assigned"
	body := fmt.Sprintf(
		"Hello %s,\n\nA donation has been assigned to your request:\n%.2f %s of %s.\n\nPlease arrange pickup before it expires.",
		ngoName, quantity, unit, itemName,
	)
	return sendEmail(to, subject, body)
}

// SendWelcomeEmail greets a newly registered user.
func SendWelcomeEmail(to, name, role string) error {
	subject := "Welcome to SurplusX"
	body := fmt.Sprintf("Hello %s,\n\nYour %s account is ready. Log in to get started.", name, role)
	return sendEmail(to, subject, body)
}
