package main

import (
	"fmt"
	"net/http"
	"os"

	"almocoprodigi/config"
	"almocoprodigi/internal/adapters/auth"
	"almocoprodigi/internal/adapters/email"
	delivery "almocoprodigi/internal/delivery/http"
	"almocoprodigi/internal/delivery/http/controllers"
	"almocoprodigi/internal/delivery/http/middleware"
	"almocoprodigi/internal/delivery/http/render"
	"almocoprodigi/internal/repository/jsonfile"
	"almocoprodigi/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	// Storage
	registrations, err := jsonfile.NewRegistrationRepository(cfg.RegistrationsFile, logger)
	if err != nil {
		logger.Error("opening registration store", "error", err)
		os.Exit(1)
	}
	catalogue := jsonfile.NewDistrictCatalogue(cfg.DistrictsFile, logger)

	// Email
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.FromEmail,
		FromName:    cfg.FromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("creating mailer", "error", err)
		os.Exit(1)
	}

	// Services
	registrationService := services.NewRegistrationService(registrations)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger, cfg.AdminEmail, cfg.BaseURL)
	sessions := auth.NewJWTSession(cfg.SessionSecret)

	// Delivery
	renderer, err := render.NewPageRenderer(logger)
	if err != nil {
		logger.Error("parsing page templates", "error", err)
		os.Exit(1)
	}

	organizers := []controllers.Organizer{
		{Name: "Jorge Silva", Email: cfg.AdminEmail, Phone: "+351 917 039 719"},
		{Name: "Jorge Luis", Email: "jpluis2@gmail.com", Phone: "+351 965 879 695"},
	}

	pagesController := controllers.NewPagesController(logger, renderer, registrationService, organizers)
	registrationController := controllers.NewRegistrationController(
		logger, renderer, registrationService, emailService, catalogue,
		cfg.BaseURL, cfg.AdminEmail, "+351 917 039 719",
	)
	adminController := controllers.NewAdminController(
		logger, renderer, registrationService, emailService, sessions,
		cfg.AdminPassword, cfg.Environment == "production",
	)

	mux := delivery.NewRouter(pagesController, registrationController, adminController, sessions, logger, "public")
	handler := middleware.Logging(logger, mux)

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "base_url", cfg.BaseURL, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
