package domain

import (
	"context"
	"time"
)

// Registration represents one attendee's submission for the lunch.
// The JSON tags match the on-disk format of inscricoes.json, which predates
// this implementation and must stay readable across versions.
//
// The per-course fields are pointers because earlier form variants did not
// collect them: a nil field means "not collected", an empty string means the
// attendee left the answer blank.
type Registration struct {
	ID           int       `json:"id"`
	Name         string    `json:"nome"`
	Phone        string    `json:"telefone"`
	Email        string    `json:"email"`
	District     string    `json:"distrito"`
	Municipality string    `json:"concelho"`
	Menu         string    `json:"menu"`
	FishDish     *string   `json:"pratoPeixe,omitempty"`
	MeatDish     *string   `json:"pratoCarne,omitempty"`
	Dessert      *string   `json:"sobremesa,omitempty"`
	Cancelled    bool      `json:"cancelado"`
	CreatedAt    time.Time `json:"criadoEm"`
}

// NewRegistration returns a Registration without an ID; the repository
// assigns the ID and the creation timestamp on create.
func NewRegistration(name, phone, email, district, municipality, menu string, fishDish, meatDish, dessert *string) *Registration {
	return &Registration{
		Name:         name,
		Phone:        phone,
		Email:        email,
		District:     district,
		Municipality: municipality,
		Menu:         menu,
		FishDish:     fishDish,
		MeatDish:     meatDish,
		Dessert:      dessert,
	}
}

// RegistrationRepository defines storage operations for registrations.
// Implementations are the sole writer of the backing store.
type RegistrationRepository interface {
	// Create assigns the next identifier and the creation timestamp,
	// appends the registration and persists before returning.
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id int) (*Registration, error)
	// GetActiveByEmail returns the first non-cancelled registration whose
	// email matches case-insensitively.
	GetActiveByEmail(ctx context.Context, email string) (*Registration, error)
	// Cancel flags the registration and persists. Returns ErrNotFound for an
	// unknown id and ErrAlreadyCancelled when the flag was already set.
	Cancel(ctx context.Context, id int) (*Registration, error)
	// List returns a snapshot copy of all registrations in insertion order.
	List(ctx context.Context) ([]*Registration, error)
}

// RegistrationService defines the submission and cancellation flows.
type RegistrationService interface {
	Register(ctx context.Context, reg *Registration) (*Registration, error)
	// CancelByID cancels the registration with the given id. The second
	// return is true when this call performed the cancellation, false when
	// the registration had already been cancelled.
	CancelByID(ctx context.Context, id int) (*Registration, bool, error)
	// CancelByEmail cancels the first active registration matching the email.
	CancelByEmail(ctx context.Context, email string) (*Registration, error)
	List(ctx context.Context) ([]*Registration, error)
}
