package domain

import "context"

// Departments a candidate can apply to. Membership is case-sensitive.
var Departments = []string{"Engineering", "Operations", "Hospitality", "Finance", "Marketing", "Other"}

// ApplicationSubmission is a fully sanitized job application. It exists only
// for the lifetime of the request that carried it; nothing is persisted.
type ApplicationSubmission struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	Email       string `validate:"required,simple_email"`
	Phone       string `validate:"required"`
	Department  string `validate:"required,oneof=Engineering Operations Hospitality Finance Marketing Other"`
	Position    string `validate:"required"`
	LinkedIn    string `validate:"omitempty,http_url"`
	Portfolio   string `validate:"omitempty,http_url"`
	CoverLetter string
	AgreeTerms  bool `validate:"eq=true"`
	Resume      *ResumeFile
}

// ResumeFile is the uploaded attachment as received, before verification.
// Filename and ContentType are client-supplied and must not be trusted.
type ResumeFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

// EmailMessage is one outbound transactional email.
type EmailMessage struct {
	ToName      string
	ToEmail     string
	Subject     string
	HTMLContent string
	Attachment  *EmailAttachment
}

// EmailAttachment carries a file as base64 content, the shape the
// transactional provider expects.
type EmailAttachment struct {
	Name    string
	Content string
}

// EmailSender is the outbound email provider. The production implementation
// talks to Brevo; tests substitute a recording mock.
type EmailSender interface {
	Send(ctx context.Context, msg *EmailMessage) error
	IsConfigured() bool
}

// ApplicationUsecase dispatches an accepted submission to HR and the applicant.
type ApplicationUsecase interface {
	// Dispatch sends the internal HR notification first and the applicant
	// confirmation only if that succeeds.
	Dispatch(ctx context.Context, sub *ApplicationSubmission) error
}
