package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the
// given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ConfirmationEmailData holds data for the participant confirmation email and
// the organizer notice sent alongside it.
type ConfirmationEmailData struct {
	Registration *Registration
	CancelLink   string
}

// EmailService defines the transactional sends of the application. Individual
// send failures are logged by implementations, never surfaced as request
// failures; a registration is complete once persisted.
type EmailService interface {
	// SendConfirmation sends the participant confirmation and the organizer
	// notice concurrently and waits for both attempts.
	SendConfirmation(ctx context.Context, data *ConfirmationEmailData) error
	// SendReminder broadcasts the reminder to all given registrations
	// concurrently and returns the number of successful sends.
	SendReminder(ctx context.Context, regs []*Registration, extraMessage string) (int, error)
	// SendTest sends a fixed test email to the organizer.
	SendTest(ctx context.Context) error
}
