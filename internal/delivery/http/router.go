package http

import (
	"log/slog"
	"net/http"

	"almocoprodigi/internal/delivery/http/controllers"
	"almocoprodigi/internal/delivery/http/middleware"
	"almocoprodigi/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	pages *controllers.PagesController,
	registrations *controllers.RegistrationController,
	admin *controllers.AdminController,
	sessions domain.SessionVerifier,
	logger *slog.Logger,
	staticDir string,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAdmin := middleware.RequireAdmin(sessions, logger)

	// Public pages
	mux.HandleFunc("GET /{$}", pages.Home)
	mux.HandleFunc("GET /onde-quando", pages.WhereAndWhen)
	mux.HandleFunc("GET /menus", pages.Menus)
	mux.HandleFunc("GET /galeria", pages.Gallery)
	mux.HandleFunc("GET /contacto", pages.Contacts)
	mux.HandleFunc("GET /alojamento", pages.Lodging)
	mux.HandleFunc("GET /lista", pages.PublicList)

	// Registration and cancellation
	mux.HandleFunc("GET /inscricao", registrations.ShowForm)
	mux.HandleFunc("POST /inscricao", registrations.Submit)
	mux.HandleFunc("GET /anular", registrations.ShowCancelForm)
	mux.HandleFunc("GET /anular/{id}", registrations.CancelByID)
	mux.HandleFunc("POST /anular-por-email", registrations.CancelByEmail)
	mux.HandleFunc("GET /api/concelhos", registrations.Municipalities)
	mux.HandleFunc("GET /test-email", registrations.TestEmail)

	// Admin
	mux.HandleFunc("GET /admin", requireAdmin(admin.Panel))
	mux.HandleFunc("GET /admin/login", admin.ShowLogin)
	mux.HandleFunc("POST /admin/login", admin.Login)
	mux.HandleFunc("GET /admin/logout", admin.Logout)
	mux.HandleFunc("GET /admin/export-csv", requireAdmin(admin.ExportCSV))
	mux.HandleFunc("POST /admin/enviar-recordatorio", requireAdmin(admin.SendReminder))

	// Static assets (countdown script, images, stylesheets)
	static := http.FileServer(http.Dir(staticDir))
	mux.Handle("GET /js/", static)
	mux.Handle("GET /css/", static)
	mux.Handle("GET /img/", static)

	return mux
}
