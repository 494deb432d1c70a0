package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"almocoprodigi/internal/adapters/auth"
	"almocoprodigi/internal/delivery/http/middleware"
	"almocoprodigi/internal/delivery/http/render"
	"almocoprodigi/internal/domain"
)

// adminSessionExpiry bounds how long an admin login stays valid.
const adminSessionExpiry = 12 * time.Hour

// AdminController handles the password-gated administration panel.
type AdminController struct {
	Logger        *slog.Logger
	Renderer      *render.PageRenderer
	Service       domain.RegistrationService
	Emails        domain.EmailService
	Sessions      domain.SessionIssuer
	AdminPassword string
	Secure        bool
}

func NewAdminController(
	logger *slog.Logger,
	renderer *render.PageRenderer,
	svc domain.RegistrationService,
	emails domain.EmailService,
	sessions domain.SessionIssuer,
	adminPassword string,
	secureCookies bool,
) *AdminController {
	return &AdminController{
		Logger:        logger,
		Renderer:      renderer,
		Service:       svc,
		Emails:        emails,
		Sessions:      sessions,
		AdminPassword: adminPassword,
		Secure:        secureCookies,
	}
}

// Panel renders the full registrant list plus the per-dish tallies.
func (c *AdminController) Panel(w http.ResponseWriter, r *http.Request) {
	c.renderPanel(w, r, http.StatusOK, "", "")
}

func (c *AdminController) renderPanel(w http.ResponseWriter, r *http.Request, status int, msg, erro string) {
	regs, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.Error("listing registrations", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data := map[string]any{
		"Titulo":     "Painel de Administração",
		"Inscricoes": regs,
		"Ativos":     len(domain.ActiveRegistrations(regs)),
		"Menus":      domain.MealTally(regs, domain.SelectMenu),
		"Peixes":     domain.MealTally(regs, domain.SelectFish),
		"Carnes":     domain.MealTally(regs, domain.SelectMeat),
		"Sobremesas": domain.MealTally(regs, domain.SelectDessert),
	}
	if msg != "" {
		data["Msg"] = msg
	}
	if erro != "" {
		data["Erro"] = erro
	}
	c.Renderer.Render(w, status, "admin", data)
}

// ShowLogin renders the admin login page.
func (c *AdminController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	c.Renderer.Render(w, http.StatusOK, "admin-login", map[string]any{
		"Titulo": "Login de Administração",
	})
}

// Login compares the submitted passphrase and, on success, issues the signed
// session cookie and redirects to the panel.
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.Renderer.Render(w, http.StatusBadRequest, "admin-login", map[string]any{
			"Titulo": "Login de Administração",
			"Erro":   "Pedido inválido.",
		})
		return
	}

	if !auth.CheckPassphrase(c.AdminPassword, r.PostFormValue("password")) {
		c.Renderer.Render(w, http.StatusUnauthorized, "admin-login", map[string]any{
			"Titulo": "Login de Administração",
			"Erro":   "Password incorreta.",
		})
		return
	}

	token, err := c.Sessions.Issue(adminSessionExpiry)
	if err != nil {
		c.Logger.Error("issuing admin session", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(adminSessionExpiry.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Logout clears the session cookie and returns to the landing page.
func (c *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// ExportCSV returns the active registrations as a CSV attachment.
func (c *AdminController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.Error("listing registrations", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	csv := domain.RegistrationsCSV(domain.ActiveRegistrations(regs))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="inscricoes_prodigi.csv"`)
	_, _ = w.Write([]byte(csv))
}

// SendReminder broadcasts the reminder email to every active registrant,
// optionally appending an organizer message.
func (c *AdminController) SendReminder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.renderPanel(w, r, http.StatusBadRequest, "", "Pedido inválido.")
		return
	}
	mensagemExtra := r.PostFormValue("mensagemExtra")

	regs, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.Error("listing registrations", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	ativos := domain.ActiveRegistrations(regs)
	if len(ativos) == 0 {
		c.renderPanel(w, r, http.StatusOK, "", "Não há inscritos ativos para enviar o recordatório.")
		return
	}

	sent, err := c.Emails.SendReminder(r.Context(), ativos, mensagemExtra)
	if err != nil {
		c.Logger.Error("sending reminders", "sent", sent, "error", err)
		c.renderPanel(w, r, http.StatusOK, "", "Ocorreu um erro ao enviar alguns emails de recordatório. Vê o log do servidor.")
		return
	}
	c.renderPanel(w, r, http.StatusOK, fmt.Sprintf("Recordatório enviado para %d inscrito(s).", sent), "")
}
