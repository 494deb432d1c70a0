package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"almocoprodigi/internal/domain"
)

// RegistrationRepository keeps the registration list in memory and mirrors it
// to a single JSON file. Every mutation persists by overwriting the whole
// file before returning; a crash mid-write can corrupt the file. That is an
// accepted limitation at this scale (one event, a few hundred records).
type RegistrationRepository struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger

	regs   []*domain.Registration
	nextID int
}

// NewRegistrationRepository loads the registration file at path. A missing or
// unparseable file initializes an empty store and immediately persists that
// empty state, so a fresh deployment self-heals. The next identifier is one
// greater than the maximum present, and is never recomputed afterwards.
func NewRegistrationRepository(path string, logger *slog.Logger) (*RegistrationRepository, error) {
	repo := &RegistrationRepository{path: path, logger: logger, nextID: 1}

	data, err := os.ReadFile(path)
	if err == nil {
		err = json.Unmarshal(data, &repo.regs)
	}
	if err != nil {
		logger.Info("initializing registration store", "path", path, "reason", err.Error())
		repo.regs = []*domain.Registration{}
		if err := repo.persistLocked(); err != nil {
			return nil, fmt.Errorf("bootstrap registration store: %w", err)
		}
		return repo, nil
	}

	maxID := 0
	for _, r := range repo.regs {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	repo.nextID = maxID + 1
	return repo, nil
}

func (repo *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	reg.ID = repo.nextID
	repo.nextID++
	reg.Cancelled = false
	reg.CreatedAt = time.Now()
	repo.regs = append(repo.regs, reg)

	if err := repo.persistLocked(); err != nil {
		return fmt.Errorf("persist registrations: %w", err)
	}
	return nil
}

func (repo *RegistrationRepository) GetByID(ctx context.Context, id int) (*domain.Registration, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, r := range repo.regs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (repo *RegistrationRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, r := range repo.regs {
		if !r.Cancelled && strings.EqualFold(r.Email, email) {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (repo *RegistrationRepository) Cancel(ctx context.Context, id int) (*domain.Registration, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, r := range repo.regs {
		if r.ID != id {
			continue
		}
		if r.Cancelled {
			return r, domain.ErrAlreadyCancelled
		}
		r.Cancelled = true
		if err := repo.persistLocked(); err != nil {
			return nil, fmt.Errorf("persist registrations: %w", err)
		}
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (repo *RegistrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	snapshot := make([]*domain.Registration, len(repo.regs))
	copy(snapshot, repo.regs)
	return snapshot, nil
}

// persistLocked serializes the full list and overwrites the storage file.
// Callers must hold repo.mu.
func (repo *RegistrationRepository) persistLocked() error {
	data, err := json.MarshalIndent(repo.regs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registrations: %w", err)
	}
	if err := os.WriteFile(repo.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", repo.path, err)
	}
	return nil
}
