package jsonfile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almocoprodigi/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestRepo(t *testing.T) (*RegistrationRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inscricoes.json")
	repo, err := NewRegistrationRepository(path, testLogger())
	require.NoError(t, err)
	return repo, path
}

func sampleRegistration(name, email string) *domain.Registration {
	fish := "Bacalhau"
	meat := "Vitela"
	dessert := "Profiteroles"
	return domain.NewRegistration(name, "911111111", email, "Aveiro", "Águeda", "Menu Adulto", &fish, &meat, &dessert)
}

func TestNewRegistrationRepository_BootstrapsMissingFile(t *testing.T) {
	repo, path := newTestRepo(t)

	regs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, regs)

	// The empty state must have been written out immediately.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestNewRegistrationRepository_BootstrapsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inscricoes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo, err := NewRegistrationRepository(path, testLogger())
	require.NoError(t, err)

	regs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestNewRegistrationRepository_ResumesIDsAfterReload(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Ana", "Bruno", "Carla"} {
		require.NoError(t, repo.Create(ctx, sampleRegistration(name, name+"@example.com")))
	}

	reloaded, err := NewRegistrationRepository(path, testLogger())
	require.NoError(t, err)

	reg := sampleRegistration("Diogo", "diogo@example.com")
	require.NoError(t, reloaded.Create(ctx, reg))
	assert.Equal(t, 4, reg.ID)
}

func TestCreate_AssignsDistinctIncreasingIDs(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	var ids []int
	for i := 0; i < 10; i++ {
		reg := sampleRegistration("Ana", "ana@example.com")
		require.NoError(t, repo.Create(ctx, reg))
		assert.False(t, reg.Cancelled)
		assert.False(t, reg.CreatedAt.IsZero())
		ids = append(ids, reg.ID)
	}

	seen := map[int]bool{}
	for i, id := range ids {
		assert.False(t, seen[id], "id %d reused", id)
		seen[id] = true
		if i > 0 {
			assert.Greater(t, id, ids[i-1])
		}
	}
}

func TestGetActiveByEmail_CaseInsensitive(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	reg := sampleRegistration("Ana Silva", "Ana@Example.com")
	require.NoError(t, repo.Create(ctx, reg))

	found, err := repo.GetActiveByEmail(ctx, "ana@example.COM")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, found.ID)

	_, err = repo.GetActiveByEmail(ctx, "outra@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetActiveByEmail_SkipsCancelled(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	reg := sampleRegistration("Ana", "ana@example.com")
	require.NoError(t, repo.Create(ctx, reg))
	_, err := repo.Cancel(ctx, reg.ID)
	require.NoError(t, err)

	_, err = repo.GetActiveByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_IsIdempotentAndPersisted(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	reg := sampleRegistration("Ana", "ana@example.com")
	require.NoError(t, repo.Create(ctx, reg))

	cancelled, err := repo.Cancel(ctx, reg.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.Cancelled)

	again, err := repo.Cancel(ctx, reg.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	assert.True(t, again.Cancelled)

	// The second call must not have changed the persisted state.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var persisted []*domain.Registration
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.True(t, persisted[0].Cancelled)

	_, err = repo.Cancel(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_IDNeverReusedAfterCancellation(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := sampleRegistration("Ana", "ana@example.com")
	require.NoError(t, repo.Create(ctx, first))
	_, err := repo.Cancel(ctx, first.ID)
	require.NoError(t, err)

	second := sampleRegistration("Bruno", "bruno@example.com")
	require.NoError(t, repo.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID)

	// The cancelled record stays in the store, only flagged.
	regs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, regs, 2)
}

func TestList_ReturnsSnapshotCopy(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleRegistration("Ana", "ana@example.com")))
	snapshot, err := repo.List(ctx)
	require.NoError(t, err)

	snapshot[0] = nil
	regs, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, regs[0])
}
