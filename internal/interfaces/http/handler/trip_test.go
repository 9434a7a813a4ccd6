package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apptrip "github.com/wanderplan/backend/internal/application/trip"
	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/domain/trip"
	"github.com/wanderplan/backend/internal/interfaces/http/middleware"
	"github.com/wanderplan/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var _ trip.TripRepository = (*mockTripRepo)(nil)

// mockTripRepo is a mock implementation of trip.TripRepository
type mockTripRepo struct {
	mock.Mock
}

func (m *mockTripRepo) Create(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTripRepo) Update(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTripRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *mockTripRepo) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *mockTripRepo) FindByIDPublic(ctx context.Context, id uuid.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *mockTripRepo) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*trip.Trip, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trip.Trip), args.Error(1)
}

// newTripTestServer wires the trip handler behind the real router with a
// stub auth middleware injecting the given user.
func newTripTestServer(repo trip.TripRepository, userID uuid.UUID) *gin.Engine {
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(middleware.JWTUserIDKey, userID.String())
		}
		c.Next()
	})

	service := apptrip.NewTripService(repo, zap.NewNop())
	h := NewTripHandler(service)
	router.NewRouter(engine).Register(h.Routes()).Setup()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTripHandler_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("creates trip and returns 201", func(t *testing.T) {
		repo := new(mockTripRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*trip.Trip")).Return(nil)
		engine := newTripTestServer(repo, userID)

		w := doJSON(t, engine, http.MethodPost, "/api/trips", gin.H{
			"destination": "Lisbon",
			"startDate":   "2026-09-01",
			"endDate":     "2026-09-07",
			"days": []gin.H{
				{"date": "2026-09-01", "activities": []string{"Alfama walk", "  ", "Fado show"}},
			},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, true, resp["success"])

		data := resp["data"].(map[string]any)
		assert.Equal(t, "Lisbon", data["destination"])
		days := data["days"].([]any)
		require.Len(t, days, 1)
		activities := days[0].(map[string]any)["activities"].([]any)
		assert.Equal(t, []any{"Alfama walk", "Fado show"}, activities)
		repo.AssertExpectations(t)
	})

	t.Run("defaults blank destination", func(t *testing.T) {
		repo := new(mockTripRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*trip.Trip")).Return(nil)
		engine := newTripTestServer(repo, userID)

		w := doJSON(t, engine, http.MethodPost, "/api/trips", gin.H{"destination": "   "})

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		data := resp["data"].(map[string]any)
		assert.Equal(t, "Untitled trip", data["destination"])
	})

	t.Run("rejects unauthenticated request", func(t *testing.T) {
		repo := new(mockTripRepo)
		engine := newTripTestServer(repo, uuid.Nil)

		w := doJSON(t, engine, http.MethodPost, "/api/trips", gin.H{"destination": "Lisbon"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTripHandler_Get(t *testing.T) {
	userID := uuid.New()

	t.Run("returns trip", func(t *testing.T) {
		stored, err := trip.NewTrip(userID, "Kyoto", "2026-10-01", "2026-10-08", nil)
		require.NoError(t, err)

		repo := new(mockTripRepo)
		repo.On("FindByID", mock.Anything, userID, stored.ID).Return(stored, nil)
		engine := newTripTestServer(repo, userID)

		w := doJSON(t, engine, http.MethodGet, "/api/trips/"+stored.ID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp["data"].(map[string]any)
		assert.Equal(t, "Kyoto", data["destination"])
	})

	t.Run("missing trip returns 404", func(t *testing.T) {
		repo := new(mockTripRepo)
		repo.On("FindByID", mock.Anything, userID, mock.Anything).Return(nil, shared.ErrNotFound)
		engine := newTripTestServer(repo, userID)

		w := doJSON(t, engine, http.MethodGet, "/api/trips/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		errInfo := resp["error"].(map[string]any)
		assert.Equal(t, "TRIP_NOT_FOUND", errInfo["code"])
		assert.Equal(t, "Trip not found", errInfo["message"])
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		repo := new(mockTripRepo)
		engine := newTripTestServer(repo, userID)

		w := doJSON(t, engine, http.MethodGet, "/api/trips/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTripHandler_PublicGet(t *testing.T) {
	owner := uuid.New()
	stored, err := trip.NewTrip(owner, "Oslo", "", "", nil)
	require.NoError(t, err)

	repo := new(mockTripRepo)
	repo.On("FindByIDPublic", mock.Anything, stored.ID).Return(stored, nil)

	// No user injected: the public share link needs no authentication.
	engine := newTripTestServer(repo, uuid.Nil)

	w := doJSON(t, engine, http.MethodGet, "/api/trips/public/"+stored.ID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "Oslo", data["destination"])
}

func TestTripHandler_Update(t *testing.T) {
	userID := uuid.New()

	t.Run("partial update touches only provided fields", func(t *testing.T) {
		stored, err := trip.NewTrip(userID, "Berlin", "2026-05-01", "2026-05-05", nil)
		require.NoError(t, err)

		repo := new(mockTripRepo)
		repo.On("FindByID", mock.Anything, userID, stored.ID).Return(stored, nil)
		repo.On("Update", mock.Anything, stored).Return(nil)
		engine := newTripTestServer(repo, userID)

		w := doJSON(t, engine, http.MethodPut, "/api/trips/"+stored.ID.String(), gin.H{
			"destination": "Munich",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp["data"].(map[string]any)
		assert.Equal(t, "Munich", data["destination"])
		assert.Equal(t, "2026-05-01", data["startDate"])
		assert.Equal(t, "2026-05-05", data["endDate"])
	})
}

func TestTripHandler_List(t *testing.T) {
	userID := uuid.New()

	first, err := trip.NewTrip(userID, "Rome", "", "", nil)
	require.NoError(t, err)
	second, err := trip.NewTrip(userID, "Milan", "", "", nil)
	require.NoError(t, err)

	repo := new(mockTripRepo)
	repo.On("FindAllByOwner", mock.Anything, userID).Return([]*trip.Trip{second, first}, nil)
	engine := newTripTestServer(repo, userID)

	w := doJSON(t, engine, http.MethodGet, "/api/trips", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	meta := resp["meta"].(map[string]any)
	assert.Equal(t, float64(2), meta["count"])
	data := resp["data"].([]any)
	assert.Equal(t, "Milan", data[0].(map[string]any)["destination"])
}

func TestTripHandler_Delete(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()

	repo := new(mockTripRepo)
	repo.On("Delete", mock.Anything, userID, tripID).Return(nil)
	engine := newTripTestServer(repo, userID)

	w := doJSON(t, engine, http.MethodDelete, "/api/trips/"+tripID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	repo.AssertExpectations(t)
}
