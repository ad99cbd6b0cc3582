package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
)

// TripUseCase casos de uso de viajes históricos. Los viajes no se editan tras
// su registro, solo alta, consulta y baja.
type TripUseCase struct {
	store   repository.HistoricalTripStore
	drivers repository.DriverStore
}

// NewTripUseCase construye el caso de uso sobre los stores del tenant.
func NewTripUseCase(store repository.HistoricalTripStore, drivers repository.DriverStore) *TripUseCase {
	return &TripUseCase{store: store, drivers: drivers}
}

// Create registra un viaje histórico de un conductor del tenant.
func (uc *TripUseCase) Create(ctx context.Context, in dto.CreateTripRequest) (*dto.TripResponse, error) {
	if in.Amount.IsNegative() || in.DistanceKm.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	driver, err := uc.drivers.GetByID(ctx, in.DriverID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}
	if driver.CompanyID != in.CompanyID {
		return nil, domain.ErrInvalidInput
	}

	trip := &entity.HistoricalTrip{
		ID:          uuid.New().String(),
		DriverID:    in.DriverID,
		CompanyID:   in.CompanyID,
		Origin:      in.Origin,
		Destination: in.Destination,
		TripDate:    in.TripDate,
		DistanceKm:  in.DistanceKm,
		Amount:      in.Amount,
		CreatedAt:   time.Now(),
	}
	if err := uc.store.Create(ctx, trip); err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

// GetByID obtiene un viaje por ID.
func (uc *TripUseCase) GetByID(ctx context.Context, id string) (*dto.TripResponse, error) {
	trip, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

// List lista viajes con paginación.
func (uc *TripUseCase) List(ctx context.Context, limit, offset int) (*dto.TripListResponse, error) {
	list, err := uc.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTripList(list, limit, offset), nil
}

// ListByDriver lista los viajes de un conductor.
func (uc *TripUseCase) ListByDriver(ctx context.Context, driverID string) (*dto.TripListResponse, error) {
	list, err := uc.store.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return toTripList(list, len(list), 0), nil
}

// Delete elimina un viaje por ID.
func (uc *TripUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Delete(ctx, id)
}

func toTripResponse(t *entity.HistoricalTrip) *dto.TripResponse {
	if t == nil {
		return nil
	}
	return &dto.TripResponse{
		ID:          t.ID,
		DriverID:    t.DriverID,
		CompanyID:   t.CompanyID,
		Origin:      t.Origin,
		Destination: t.Destination,
		TripDate:    t.TripDate,
		DistanceKm:  t.DistanceKm,
		Amount:      t.Amount,
		CreatedAt:   t.CreatedAt,
	}
}

func toTripList(list []*entity.HistoricalTrip, limit, offset int) *dto.TripListResponse {
	items := make([]dto.TripResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTripResponse(t))
	}
	return &dto.TripListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
