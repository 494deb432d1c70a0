package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"almocoprodigi/internal/domain"
)

type emailService struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	logger     *slog.Logger
	adminEmail string
	baseURL    string
}

// NewEmailService returns an EmailService that renders embedded templates and
// sends through the given Mailer. adminEmail receives organizer notices and
// baseURL is used to build cancellation links.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger, adminEmail, baseURL string) domain.EmailService {
	return &emailService{
		mailer:     mailer,
		renderer:   renderer,
		logger:     logger,
		adminEmail: adminEmail,
		baseURL:    baseURL,
	}
}

// CancelLink builds the cancellation URL for a registration.
func CancelLink(baseURL string, id int) string {
	return fmt.Sprintf("%s/anular/%d", baseURL, id)
}

type confirmationView struct {
	Name       string
	Menu       string
	Fish       string
	Meat       string
	Dessert    string
	CancelLink string
}

type adminNoticeView struct {
	Name         string
	Email        string
	Phone        string
	District     string
	Municipality string
	Menu         string
	Fish         string
	Meat         string
	Dessert      string
	ID           int
}

type reminderView struct {
	Name         string
	EventDate    string
	EventHour    string
	DaysLeft     int
	CancelLink   string
	ExtraMessage string
}

func courseOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *emailService) SendConfirmation(ctx context.Context, data *domain.ConfirmationEmailData) error {
	if data == nil || data.Registration == nil {
		return fmt.Errorf("confirmation email data is nil")
	}
	reg := data.Registration
	cancelLink := data.CancelLink
	if cancelLink == "" {
		cancelLink = CancelLink(s.baseURL, reg.ID)
	}

	participant := &confirmationView{
		Name:       reg.Name,
		Menu:       reg.Menu,
		Fish:       courseOrEmpty(reg.FishDish),
		Meat:       courseOrEmpty(reg.MeatDish),
		Dessert:    courseOrEmpty(reg.Dessert),
		CancelLink: cancelLink,
	}
	organizer := &adminNoticeView{
		Name:         reg.Name,
		Email:        reg.Email,
		Phone:        reg.Phone,
		District:     reg.District,
		Municipality: reg.Municipality,
		Menu:         reg.Menu,
		Fish:         courseOrEmpty(reg.FishDish),
		Meat:         courseOrEmpty(reg.MeatDish),
		Dessert:      courseOrEmpty(reg.Dessert),
		ID:           reg.ID,
	}

	// Both sends run concurrently and are awaited; a failure in one never
	// aborts the other or the registration itself.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.send("confirmation", reg.Email, participant); err != nil {
			s.logger.Error("sending confirmation email", "to", reg.Email, "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.send("admin_notice", s.adminEmail, organizer); err != nil {
			s.logger.Error("sending organizer notice", "to", s.adminEmail, "error", err)
		}
	}()
	wg.Wait()
	return nil
}

func (s *emailService) SendReminder(ctx context.Context, regs []*domain.Registration, extraMessage string) (int, error) {
	eventTime := domain.EventTime()
	eventDate := domain.FormatEventDate(eventTime)
	eventHour := domain.FormatEventHour(eventTime)
	daysLeft := domain.DaysUntil(eventTime, time.Now())

	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0
	failed := 0

	for _, reg := range regs {
		view := &reminderView{
			Name:         reg.Name,
			EventDate:    eventDate,
			EventHour:    eventHour,
			DaysLeft:     daysLeft,
			CancelLink:   CancelLink(s.baseURL, reg.ID),
			ExtraMessage: extraMessage,
		}
		to := reg.Email
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.send("reminder", to, view); err != nil {
				s.logger.Error("sending reminder email", "to", to, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			mu.Lock()
			sent++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if failed > 0 {
		return sent, fmt.Errorf("%d of %d reminder emails failed", failed, len(regs))
	}
	return sent, nil
}

func (s *emailService) SendTest(ctx context.Context) error {
	if err := s.send("test", s.adminEmail, struct{}{}); err != nil {
		return fmt.Errorf("send test email: %w", err)
	}
	s.logger.Info("test email sent", "to", s.adminEmail)
	return nil
}

func (s *emailService) send(template, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("render %s template: %w", template, err)
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send %s email: %w", template, err)
	}
	return nil
}
