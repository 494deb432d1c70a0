package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"almocoprodigi/internal/delivery/http/helpers"
	"almocoprodigi/internal/delivery/http/render"
	"almocoprodigi/internal/domain"
	"almocoprodigi/internal/services"
)

// RegistrationController handles the registration form, cancellations, and
// the municipality lookup API.
type RegistrationController struct {
	Logger    *slog.Logger
	Renderer  *render.PageRenderer
	Service   domain.RegistrationService
	Emails    domain.EmailService
	Catalogue domain.DistrictCatalogue
	BaseURL   string

	OrganizerEmail string
	OrganizerPhone string
}

func NewRegistrationController(
	logger *slog.Logger,
	renderer *render.PageRenderer,
	svc domain.RegistrationService,
	emails domain.EmailService,
	catalogue domain.DistrictCatalogue,
	baseURL, organizerEmail, organizerPhone string,
) *RegistrationController {
	return &RegistrationController{
		Logger:         logger,
		Renderer:       renderer,
		Service:        svc,
		Emails:         emails,
		Catalogue:      catalogue,
		BaseURL:        baseURL,
		OrganizerEmail: organizerEmail,
		OrganizerPhone: organizerPhone,
	}
}

// ShowForm renders the registration form with the district choices.
func (c *RegistrationController) ShowForm(w http.ResponseWriter, r *http.Request) {
	c.Renderer.Render(w, http.StatusOK, "inscricao", map[string]any{
		"Titulo":               "Inscrição",
		"Distritos":            c.Catalogue.DistrictNames(),
		"EmailOrganizador":     c.OrganizerEmail,
		"TelemovelOrganizador": c.OrganizerPhone,
	})
}

// Submit accepts the registration form. Every field, including the three
// menu choices, is required; missing input renders the confirmation page
// with an inline error and a 400.
func (c *RegistrationController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.Renderer.Render(w, http.StatusBadRequest, "confirmacao", map[string]any{
			"Titulo": "Erro na Inscrição",
			"Erro":   "Pedido inválido.",
		})
		return
	}

	nome := r.PostFormValue("nome")
	telefone := r.PostFormValue("telefone")
	email := r.PostFormValue("email")
	distrito := r.PostFormValue("distrito")
	concelho := r.PostFormValue("concelho")
	menu := r.PostFormValue("menu")
	pratoPeixe := r.PostFormValue("pratoPeixe")
	pratoCarne := r.PostFormValue("pratoCarne")
	sobremesa := r.PostFormValue("sobremesa")

	if nome == "" || telefone == "" || email == "" || distrito == "" || concelho == "" ||
		menu == "" || pratoPeixe == "" || pratoCarne == "" || sobremesa == "" {
		c.Renderer.Render(w, http.StatusBadRequest, "confirmacao", map[string]any{
			"Titulo": "Erro na Inscrição",
			"Erro":   "Por favor preenche todos os campos obrigatórios (incluindo as escolhas do menu).",
		})
		return
	}

	reg := domain.NewRegistration(nome, telefone, email, distrito, concelho, menu,
		&pratoPeixe, &pratoCarne, &sobremesa)

	created, err := c.Service.Register(r.Context(), reg)
	if err != nil {
		// Persistence failed: the registration was never saved, so the
		// request must fail loudly rather than pretend success.
		c.Logger.Error("registering", "email", email, "error", err)
		c.Renderer.Render(w, http.StatusInternalServerError, "confirmacao", map[string]any{
			"Titulo": "Erro na Inscrição",
			"Erro":   "Não foi possível guardar a inscrição. Tenta novamente mais tarde.",
		})
		return
	}

	// Email failures are logged inside the service and never undo the
	// registration.
	_ = c.Emails.SendConfirmation(r.Context(), &domain.ConfirmationEmailData{
		Registration: created,
		CancelLink:   services.CancelLink(c.BaseURL, created.ID),
	})

	c.Renderer.Render(w, http.StatusOK, "confirmacao", map[string]any{
		"Titulo": "Inscrição Confirmada",
		"Nome":   created.Name,
		"Email":  created.Email,
		"ID":     created.ID,
	})
}

// ShowCancelForm renders the cancel-by-email form.
func (c *RegistrationController) ShowCancelForm(w http.ResponseWriter, r *http.Request) {
	c.Renderer.Render(w, http.StatusOK, "cancelar", map[string]any{
		"Titulo": "Anulação de Inscrição",
	})
}

// CancelByID cancels a registration through its emailed link. Idempotent:
// a second visit reports the earlier cancellation.
func (c *RegistrationController) CancelByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		c.renderCancelError(w, http.StatusNotFound, "Inscrição não encontrada.")
		return
	}

	reg, cancelled, err := c.Service.CancelByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.renderCancelError(w, http.StatusNotFound, "Inscrição não encontrada.")
			return
		}
		c.Logger.Error("cancelling registration", "id", id, "error", err)
		c.renderCancelError(w, http.StatusInternalServerError, "Não foi possível anular a inscrição. Tenta novamente mais tarde.")
		return
	}

	if !cancelled {
		c.Renderer.Render(w, http.StatusOK, "cancelar", map[string]any{
			"Titulo":   "Anulação de Inscrição",
			"Mensagem": "Esta inscrição já tinha sido anulada anteriormente.",
		})
		return
	}

	c.Renderer.Render(w, http.StatusOK, "cancelar", map[string]any{
		"Titulo":   "Anulação de Inscrição",
		"Mensagem": fmt.Sprintf("Inscrição de %s foi anulada com sucesso.", reg.Name),
	})
}

// CancelByEmail cancels the first active registration matching the email.
func (c *RegistrationController) CancelByEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.renderCancelError(w, http.StatusBadRequest, "Pedido inválido.")
		return
	}
	email := r.PostFormValue("email")
	if email == "" {
		c.renderCancelError(w, http.StatusBadRequest, "Tens de indicar o email utilizado na inscrição.")
		return
	}

	reg, err := c.Service.CancelByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.renderCancelError(w, http.StatusNotFound, "Não foi encontrada inscrição ativa com esse email.")
			return
		}
		c.Logger.Error("cancelling registration by email", "error", err)
		c.renderCancelError(w, http.StatusInternalServerError, "Não foi possível anular a inscrição. Tenta novamente mais tarde.")
		return
	}

	c.Renderer.Render(w, http.StatusOK, "cancelar", map[string]any{
		"Titulo":   "Anulação de Inscrição",
		"Mensagem": fmt.Sprintf("A inscrição de %s (%s) foi anulada com sucesso.", reg.Name, reg.Email),
	})
}

func (c *RegistrationController) renderCancelError(w http.ResponseWriter, status int, msg string) {
	c.Renderer.Render(w, status, "cancelar", map[string]any{
		"Titulo": "Anulação de Inscrição",
		"Erro":   msg,
	})
}

// Municipalities returns the district to municipality mapping consumed by
// the registration form script.
func (c *RegistrationController) Municipalities(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Catalogue.MunicipalitiesByDistrict())
}

// TestEmail sends a test email to the organizer, to verify the transport
// configuration.
func (c *RegistrationController) TestEmail(w http.ResponseWriter, r *http.Request) {
	if err := c.Emails.SendTest(r.Context()); err != nil {
		c.Logger.Error("sending test email", "error", err)
		http.Error(w, "Erro ao enviar email de teste. Vê o log do servidor.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "Email de teste enviado. Verifica a tua caixa de entrada.")
}
