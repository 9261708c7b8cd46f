package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"

	"careers-api/internal/domain"
)

type applicationUsecase struct {
	sender  domain.EmailSender
	hrEmail string
}

// NewApplicationUsecase creates the dispatcher that turns an accepted
// submission into the HR notification and the applicant confirmation.
func NewApplicationUsecase(sender domain.EmailSender, hrEmail string) domain.ApplicationUsecase {
	return &applicationUsecase{
		sender:  sender,
		hrEmail: hrEmail,
	}
}

// Dispatch sends the internal notification first; the confirmation is only
// attempted after it succeeds. There is no retry here: a provider failure is
// surfaced immediately and the applicant is expected to resubmit.
func (uc *applicationUsecase) Dispatch(ctx context.Context, sub *domain.ApplicationSubmission) error {
	if !uc.sender.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	notification, err := uc.buildNotification(sub)
	if err != nil {
		return fmt.Errorf("failed to build notification email: %w", err)
	}
	if err := uc.sender.Send(ctx, notification); err != nil {
		return fmt.Errorf("failed to send application notification: %w", err)
	}

	confirmation, err := uc.buildConfirmation(sub)
	if err != nil {
		return fmt.Errorf("failed to build confirmation email: %w", err)
	}
	if err := uc.sender.Send(ctx, confirmation); err != nil {
		return fmt.Errorf("failed to send applicant confirmation: %w", err)
	}

	return nil
}

// buildNotification assembles the internal HR email with every submitted
// field and the resume attached as base64.
func (uc *applicationUsecase) buildNotification(sub *domain.ApplicationSubmission) (*domain.EmailMessage, error) {
	body, err := renderTemplate("hr_notification", hrNotificationTemplate, sub)
	if err != nil {
		return nil, err
	}

	return &domain.EmailMessage{
		ToEmail:     uc.hrEmail,
		Subject:     fmt.Sprintf("New Job Application: %s (%s)", sub.Position, sub.Department),
		HTMLContent: body,
		Attachment: &domain.EmailAttachment{
			Name:    sub.Resume.Filename,
			Content: base64.StdEncoding.EncodeToString(sub.Resume.Content),
		},
	}, nil
}

// buildConfirmation assembles the acknowledgment sent back to the applicant.
func (uc *applicationUsecase) buildConfirmation(sub *domain.ApplicationSubmission) (*domain.EmailMessage, error) {
	body, err := renderTemplate("confirmation", confirmationTemplate, sub)
	if err != nil {
		return nil, err
	}

	return &domain.EmailMessage{
		ToName:      fmt.Sprintf("%s %s", sub.FirstName, sub.LastName),
		ToEmail:     sub.Email,
		Subject:     "We received your application",
		HTMLContent: body,
	}, nil
}

func renderTemplate(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
