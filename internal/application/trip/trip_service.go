package trip

import (
	"context"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/domain/trip"
	"go.uber.org/zap"
)

// TripService handles trip CRUD and the public share lookup
type TripService struct {
	tripRepo trip.TripRepository
	logger   *zap.Logger
}

// NewTripService creates a new trip service
func NewTripService(tripRepo trip.TripRepository, logger *zap.Logger) *TripService {
	return &TripService{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// CreateTrip creates a trip for the authenticated user
func (s *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, input CreateTripInput) (*TripInfo, error) {
	t, err := trip.NewTrip(userID, input.Destination, input.StartDate, input.EndDate, toDomainDays(input.Days))
	if err != nil {
		return nil, err
	}

	if err := s.tripRepo.Create(ctx, t); err != nil {
		s.logger.Error("Failed to create trip", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create trip")
	}

	s.logger.Info("Trip created",
		zap.String("trip_id", t.ID.String()),
		zap.String("user_id", userID.String()))

	return toTripInfo(t), nil
}

// loadTrip fetches an owner's trip, mapping a miss to the trip domain
// error and anything else to an internal failure.
func (s *TripService) loadTrip(ctx context.Context, userID, tripID uuid.UUID) (*trip.Trip, error) {
	t, err := s.tripRepo.FindByID(ctx, userID, tripID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("TRIP_NOT_FOUND", "Trip not found")
		}
		s.logger.Error("Failed to load trip", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load trip")
	}
	return t, nil
}

// GetTrip returns one of the user's trips
func (s *TripService) GetTrip(ctx context.Context, userID, tripID uuid.UUID) (*TripInfo, error) {
	t, err := s.loadTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return toTripInfo(t), nil
}

// GetPublicTrip returns a trip by share link, without an ownership check
func (s *TripService) GetPublicTrip(ctx context.Context, tripID uuid.UUID) (*TripInfo, error) {
	t, err := s.tripRepo.FindByIDPublic(ctx, tripID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("TRIP_NOT_FOUND", "Trip not found")
		}
		s.logger.Error("Failed to load shared trip", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load trip")
	}
	return toTripInfo(t), nil
}

// ListTrips returns the user's trips, newest first
func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]*TripInfo, error) {
	trips, err := s.tripRepo.FindAllByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list trips", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list trips")
	}
	return toTripInfos(trips), nil
}

// UpdateTrip applies a partial update. Only fields present in the request
// body are touched; an omitted field keeps its stored value.
func (s *TripService) UpdateTrip(ctx context.Context, userID, tripID uuid.UUID, input UpdateTripInput) (*TripInfo, error) {
	t, err := s.loadTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if input.Destination != nil {
		t.SetDestination(*input.Destination)
	}
	if input.StartDate != nil {
		t.SetStartDate(*input.StartDate)
	}
	if input.EndDate != nil {
		t.SetEndDate(*input.EndDate)
	}
	if input.Days != nil {
		t.SetDays(toDomainDays(*input.Days))
	}

	if err := s.tripRepo.Update(ctx, t); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("TRIP_NOT_FOUND", "Trip not found")
		}
		s.logger.Error("Failed to update trip", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update trip")
	}

	return toTripInfo(t), nil
}

// DeleteTrip deletes a trip and all of the user's budgets referencing it
func (s *TripService) DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) error {
	if err := s.tripRepo.Delete(ctx, userID, tripID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("TRIP_NOT_FOUND", "Trip not found")
		}
		s.logger.Error("Failed to delete trip", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete trip")
	}

	s.logger.Info("Trip deleted",
		zap.String("trip_id", tripID.String()),
		zap.String("user_id", userID.String()))

	return nil
}
