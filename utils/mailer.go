package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func sesClientOrInit() (*ses.Client, error) {
	if sesClient != nil {
		return sesClient, nil
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	return sesClient, nil
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	client, err := sesClientOrInit()
	if err != nil {
		return err
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
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendBloodSugarAlertEmail notifies a parent about a severe reading.
func SendBloodSugarAlertEmail(to, babyName string, level float64) error {
	subject := fmt.Sprintf("Blood sugar alert for %s", babyName)
	body := fmt.Sprintf(
		"A blood sugar reading of %.0f mg/dL was just logged for %s.\n\n"+
			"This is outside the safe range. Please check on your child.",
		level, babyName)
	return sendEmail(to, subject, body)
}
