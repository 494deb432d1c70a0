package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almocoprodigi/internal/domain"
)

// recordingMailer records every send and can fail selected recipients.
type recordingMailer struct {
	mu      sync.Mutex
	sent    []sentEmail
	failFor map[string]error
}

type sentEmail struct {
	to      string
	subject string
	html    string
	text    string
}

func (m *recordingMailer) Send(to, subject, html, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, html: html, text: text})
	return nil
}

func (m *recordingMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, s := range m.sent {
		out = append(out, s.to)
	}
	return out
}

// fakeRenderer returns the template name as subject so tests can tell the
// sends apart without parsing real templates.
type fakeRenderer struct {
	err error
}

func (r *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if r.err != nil {
		return "", "", "", r.err
	}
	return templateName, "<p>" + templateName + "</p>", templateName, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testEmailService(mailer domain.Mailer) domain.EmailService {
	return NewEmailService(mailer, &fakeRenderer{}, discardLogger(), "organizador@example.com", "https://almoco.example.com")
}

func activeReg(id int, email string) *domain.Registration {
	return &domain.Registration{ID: id, Name: fmt.Sprintf("Pessoa %d", id), Email: email, Menu: "Menu Adulto"}
}

func TestSendConfirmation_SendsParticipantAndOrganizer(t *testing.T) {
	mailer := &recordingMailer{}
	svc := testEmailService(mailer)

	err := svc.SendConfirmation(context.Background(), &domain.ConfirmationEmailData{
		Registration: activeReg(7, "ana@example.com"),
	})
	require.NoError(t, err)

	recipients := mailer.recipients()
	assert.Len(t, recipients, 2)
	assert.Contains(t, recipients, "ana@example.com")
	assert.Contains(t, recipients, "organizador@example.com")
}

func TestSendConfirmation_ParticipantFailureStillNotifiesOrganizer(t *testing.T) {
	mailer := &recordingMailer{failFor: map[string]error{
		"ana@example.com": errors.New("mailbox full"),
	}}
	svc := testEmailService(mailer)

	err := svc.SendConfirmation(context.Background(), &domain.ConfirmationEmailData{
		Registration: activeReg(7, "ana@example.com"),
	})
	// Send failures are logged, never surfaced.
	require.NoError(t, err)
	assert.Equal(t, []string{"organizador@example.com"}, mailer.recipients())
}

func TestSendConfirmation_NilData(t *testing.T) {
	svc := testEmailService(&recordingMailer{})
	assert.Error(t, svc.SendConfirmation(context.Background(), nil))
}

func TestSendReminder_BroadcastsToAll(t *testing.T) {
	mailer := &recordingMailer{}
	svc := testEmailService(mailer)

	regs := []*domain.Registration{
		activeReg(1, "a@example.com"),
		activeReg(2, "b@example.com"),
		activeReg(3, "c@example.com"),
	}
	sent, err := svc.SendReminder(context.Background(), regs, "Tragam boa disposição!")
	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com", "c@example.com"}, mailer.recipients())
}

func TestSendReminder_IndividualFailureDoesNotAbortBatch(t *testing.T) {
	mailer := &recordingMailer{failFor: map[string]error{
		"b@example.com": errors.New("bounced"),
	}}
	svc := testEmailService(mailer)

	regs := []*domain.Registration{
		activeReg(1, "a@example.com"),
		activeReg(2, "b@example.com"),
		activeReg(3, "c@example.com"),
	}
	sent, err := svc.SendReminder(context.Background(), regs, "")
	require.Error(t, err)
	assert.Equal(t, 2, sent)
	assert.ElementsMatch(t, []string{"a@example.com", "c@example.com"}, mailer.recipients())
}

func TestSendTest(t *testing.T) {
	mailer := &recordingMailer{}
	svc := testEmailService(mailer)

	require.NoError(t, svc.SendTest(context.Background()))
	assert.Equal(t, []string{"organizador@example.com"}, mailer.recipients())
}

func TestSendTest_RenderFailure(t *testing.T) {
	svc := NewEmailService(&recordingMailer{}, &fakeRenderer{err: errors.New("missing template")}, discardLogger(), "organizador@example.com", "https://almoco.example.com")
	assert.Error(t, svc.SendTest(context.Background()))
}

func TestCancelLink(t *testing.T) {
	assert.Equal(t, "https://almoco.example.com/anular/42", CancelLink("https://almoco.example.com", 42))
}
