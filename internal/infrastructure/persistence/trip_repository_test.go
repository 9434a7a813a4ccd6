package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderplan/backend/internal/domain/budget"
	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/domain/trip"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTripTestDB creates an in-memory SQLite database for testing
func setupTripTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE trips (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			destination TEXT NOT NULL,
			start_date TEXT,
			end_date TEXT,
			days TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE budgets (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			trip_id TEXT NOT NULL,
			name TEXT NOT NULL,
			currency TEXT NOT NULL,
			limit_amount NUMERIC NOT NULL,
			start_date TEXT,
			end_date TEXT,
			expenses TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			UNIQUE(user_id, trip_id)
		)
	`).Error
	require.NoError(t, err)

	return db
}

func createTestTrip(t *testing.T, ownerID uuid.UUID, destination string) *trip.Trip {
	t.Helper()
	tr, err := trip.NewTrip(ownerID, destination, "2026-05-01", "2026-05-07", []trip.TripDay{
		{Date: "2026-05-01", Activities: []string{"Louvre"}},
	})
	require.NoError(t, err)
	return tr
}

func TestGormTripRepository_CreateAndFind(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	tr := createTestTrip(t, ownerID, "Paris")
	require.NoError(t, repo.Create(ctx, tr))

	t.Run("round-trips the itinerary", func(t *testing.T) {
		found, err := repo.FindByID(ctx, ownerID, tr.ID)
		require.NoError(t, err)
		assert.Equal(t, "Paris", found.Destination)
		require.Len(t, found.Days, 1)
		assert.Equal(t, []string{"Louvre"}, found.Days[0].Activities)
	})

	t.Run("other owner gets not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New(), tr.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("public lookup ignores ownership", func(t *testing.T) {
		found, err := repo.FindByIDPublic(ctx, tr.ID)
		require.NoError(t, err)
		assert.Equal(t, tr.ID, found.ID)
	})

	t.Run("unknown id gets not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, ownerID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTripRepository_FindAllByOwner(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	older := createTestTrip(t, ownerID, "Rome")
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, older))

	newer := createTestTrip(t, ownerID, "Tokyo")
	require.NoError(t, repo.Create(ctx, newer))

	other := createTestTrip(t, uuid.New(), "Sydney")
	require.NoError(t, repo.Create(ctx, other))

	trips, err := repo.FindAllByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "Tokyo", trips[0].Destination)
	assert.Equal(t, "Rome", trips[1].Destination)
}

func TestGormTripRepository_Update(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	tr := createTestTrip(t, ownerID, "Paris")
	require.NoError(t, repo.Create(ctx, tr))

	tr.SetDestination("Lyon")
	tr.SetDays([]trip.TripDay{{Date: "2026-05-02", Activities: []string{"Old town"}}})
	require.NoError(t, repo.Update(ctx, tr))

	found, err := repo.FindByID(ctx, ownerID, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lyon", found.Destination)
	require.Len(t, found.Days, 1)
	assert.Equal(t, "2026-05-02", found.Days[0].Date)

	t.Run("update for other owner gets not found", func(t *testing.T) {
		foreign := *tr
		foreign.UserID = uuid.New()
		assert.ErrorIs(t, repo.Update(ctx, &foreign), shared.ErrNotFound)
	})
}

func TestGormTripRepository_Delete_CascadesBudgets(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)
	budgetRepo := NewGormBudgetRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	tr := createTestTrip(t, ownerID, "Paris")
	require.NoError(t, repo.Create(ctx, tr))

	b, err := budget.NewBudget(ownerID, tr.ID, "Paris budget", "EUR", decimal.NewFromInt(1000))
	require.NoError(t, err)
	require.NoError(t, budgetRepo.Create(ctx, b))

	require.NoError(t, repo.Delete(ctx, ownerID, tr.ID))

	_, err = repo.FindByID(ctx, ownerID, tr.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = budgetRepo.FindByID(ctx, ownerID, b.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormTripRepository_Delete_NotFound(t *testing.T) {
	db := setupTripTestDB(t)
	repo := NewGormTripRepository(db)

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
