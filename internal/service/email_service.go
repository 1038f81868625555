package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"weddingrsvp/internal/models"
)

// EmailService sends the operator notification email for new RSVP
// submissions via Amazon SES. When not configured it is disabled and
// every send becomes a logged no-op.
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	toEmail   string
	enabled   bool
}

// NewEmailService creates a new email service
func NewEmailService(awsRegion, fromEmail, fromName, toEmail string) (*EmailService, error) {
	if fromEmail == "" || toEmail == "" {
		log.Println("Email service disabled: RSVP_NOTIFY_FROM or RSVP_NOTIFY_TO not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, to=%s, region=%s", fromEmail, toEmail, awsRegion)

	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendRSVPNotification emails the couple a summary of a new submission
func (s *EmailService) SendRSVPNotification(ctx context.Context, record *models.RSVPRecord) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): RSVP from %s", record.Name)
		return nil
	}

	attending := "Not attending"
	if record.Attending {
		attending = "Attending"
	}
	subject := fmt.Sprintf("New RSVP: %s (%s)", record.Name, attending)
	textBody := buildRSVPNotificationBody(record)

	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	log.Printf("RSVP notification sent: guest=%s", record.Name)
	return nil
}

// buildRSVPNotificationBody renders the plain-text field summary
func buildRSVPNotificationBody(record *models.RSVPRecord) string {
	yesNo := func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	}
	optionalText := func(s *string) string {
		if s == nil || *s == "" {
			return "N/A"
		}
		return *s
	}
	optionalBool := func(b *bool) string {
		if b == nil {
			return "Not specified"
		}
		return yesNo(*b)
	}
	childrenCount := "Not specified"
	if record.ChildrenCount != nil {
		childrenCount = fmt.Sprintf("%d", *record.ChildrenCount)
	}

	lines := []string{
		fmt.Sprintf("Name: %s", record.Name),
		fmt.Sprintf("Attending: %s", yesNo(record.Attending)),
		fmt.Sprintf("Guests: %d", record.GuestCount),
		fmt.Sprintf("Plus one: %s", optionalText(record.PlusOneName)),
		fmt.Sprintf("Language: %s", record.Language),
		fmt.Sprintf("Email: %s", optionalText(record.Email)),
		fmt.Sprintf("Phone: %s", optionalText(record.Phone)),
		fmt.Sprintf("Airport: %s", optionalText(record.ArrivalAirport)),
		fmt.Sprintf("Hotel: %s", optionalText(record.Hotel)),
		fmt.Sprintf("Transport needed: %s", optionalBool(record.TransportNeeded)),
		fmt.Sprintf("Kids food required: %s", optionalBool(record.KidsFoodRequired)),
		fmt.Sprintf("Bringing children: %s", optionalBool(record.BringingChildren)),
		fmt.Sprintf("Children count: %s", childrenCount),
		fmt.Sprintf("Notes: %s", optionalText(record.AllergiesNotes)),
	}
	return strings.Join(lines, "\n")
}
