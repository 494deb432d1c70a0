package controllers

import (
	"log/slog"
	"net/http"

	"almocoprodigi/internal/delivery/http/render"
	"almocoprodigi/internal/domain"
)

// Organizer is a contact entry shown on the contacts page.
type Organizer struct {
	Name  string
	Email string
	Phone string
}

// PagesController serves the informational pages of the site.
type PagesController struct {
	Logger     *slog.Logger
	Renderer   *render.PageRenderer
	Service    domain.RegistrationService
	Organizers []Organizer
}

func NewPagesController(logger *slog.Logger, renderer *render.PageRenderer, svc domain.RegistrationService, organizers []Organizer) *PagesController {
	return &PagesController{
		Logger:     logger,
		Renderer:   renderer,
		Service:    svc,
		Organizers: organizers,
	}
}

// Home renders the landing page with the countdown target.
func (c *PagesController) Home(w http.ResponseWriter, r *http.Request) {
	event := domain.EventTime()
	c.Renderer.Render(w, http.StatusOK, "home", map[string]any{
		"Titulo":     "Almoço de Turma Prodigi 2025",
		"DataEvento": event.Format("2006-01-02T15:04:05"),
		"Timezone":   domain.EventTimezone(),
		"DataLonga":  domain.FormatEventDate(event),
		"Hora":       domain.FormatEventHour(event),
	})
}

func (c *PagesController) WhereAndWhen(w http.ResponseWriter, r *http.Request) {
	event := domain.EventTime()
	c.Renderer.Render(w, http.StatusOK, "onde-quando", map[string]any{
		"Titulo":    "Onde e Quando",
		"DataLonga": domain.FormatEventDate(event),
		"Hora":      domain.FormatEventHour(event),
	})
}

func (c *PagesController) Menus(w http.ResponseWriter, r *http.Request) {
	c.Renderer.Render(w, http.StatusOK, "menus", map[string]any{
		"Titulo": "Menus e Preços",
	})
}

func (c *PagesController) Gallery(w http.ResponseWriter, r *http.Request) {
	fotos := []map[string]string{
		{"URL": "/img/Aula_1.jpg", "Legenda": "Primeiros dias na Prodigi – nervos, expectativas e muitos sonhos"},
		{"URL": "/img/Aula_2.jpg", "Legenda": "Momentos de aprendizagem intensa e entreajuda"},
		{"URL": "/img/Aula_3.jpg", "Legenda": "Trabalhos, desafios e conquistas partilhadas"},
		{"URL": "/img/Aula_4.jpg", "Legenda": "Uma turma que fica para a vida"},
	}
	c.Renderer.Render(w, http.StatusOK, "galeria", map[string]any{
		"Titulo": "Galeria – Relembrar os Bons Momentos Académicos",
		"Fotos":  fotos,
	})
}

// Contacts renders the organizer contacts and the active registrants sorted
// alphabetically by name.
func (c *PagesController) Contacts(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.Error("listing registrations", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	inscritos := domain.SortByName(domain.ActiveRegistrations(regs))
	c.Renderer.Render(w, http.StatusOK, "contacto", map[string]any{
		"Titulo":        "Contactos",
		"Organizadores": c.Organizers,
		"Inscritos":     inscritos,
	})
}

func (c *PagesController) Lodging(w http.ResponseWriter, r *http.Request) {
	hoteis := []map[string]string{
		{"Nome": "Promar - Eco Beach & Spa Hotel", "Distancia": "15 minutos de carro", "Link": "https://www.booking.com/hotel/pt/promarportonovohotelarialda.pt-pt.html"},
		{"Nome": "Hotel Golf Mar", "Distancia": "12 minutos de carro", "Link": "https://www.booking.com/hotel/pt/golf-mar.pt-pt.html"},
		{"Nome": "Areias do Seixo Hotel", "Distancia": "20 minutos de carro", "Link": "https://www.booking.com/hotel/pt/areias-do-seixo.pt-pt.html"},
	}
	c.Renderer.Render(w, http.StatusOK, "alojamento", map[string]any{
		"Titulo": "Sugestões de Alojamento",
		"Hoteis": hoteis,
	})
}

// PublicList renders the public list of active registrants, without menu
// details.
func (c *PagesController) PublicList(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.Error("listing registrations", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	ativos := domain.ActiveRegistrations(regs)
	c.Renderer.Render(w, http.StatusOK, "lista", map[string]any{
		"Titulo":    "Lista de Inscritos",
		"Inscritos": ativos,
		"Contador":  len(ativos),
	})
}
