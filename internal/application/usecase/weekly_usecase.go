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

// WeeklyUseCase casos de uso de liquidaciones semanales. La comisión se
// calcula con la tarifa vigente de la empresa del conductor al momento de
// liquidar; cambios posteriores de tarifa no alteran semanas ya liquidadas.
type WeeklyUseCase struct {
	store     repository.WeeklyProcessingStore
	drivers   repository.DriverStore
	companies repository.CompanyStore
}

// NewWeeklyUseCase construye el caso de uso sobre los stores del tenant.
func NewWeeklyUseCase(store repository.WeeklyProcessingStore, drivers repository.DriverStore, companies repository.CompanyStore) *WeeklyUseCase {
	return &WeeklyUseCase{store: store, drivers: drivers, companies: companies}
}

// Create liquida la semana de un conductor. WeekStart se normaliza al lunes;
// la clave natural (conductor, semana) rechaza liquidaciones repetidas.
func (uc *WeeklyUseCase) Create(ctx context.Context, in dto.CreateWeeklyRequest) (*dto.WeeklyResponse, error) {
	if in.GrossAmount.IsNegative() || in.TripsCount < 0 {
		return nil, domain.ErrInvalidInput
	}
	driver, err := uc.drivers.GetByID(ctx, in.DriverID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}
	company, err := uc.companies.GetByID(ctx, driver.CompanyID)
	if err != nil {
		return nil, err
	}

	weekStart := mondayOf(in.WeekStart)
	existing, err := uc.store.GetByDriverWeek(ctx, in.DriverID, weekStart)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	commission := in.GrossAmount.Mul(company.CommissionRate).Round(2)
	now := time.Now()
	wp := &entity.WeeklyProcessing{
		ID:               uuid.New().String(),
		DriverID:         in.DriverID,
		WeekStart:        weekStart,
		TripsCount:       in.TripsCount,
		GrossAmount:      in.GrossAmount,
		CommissionAmount: commission,
		NetAmount:        in.GrossAmount.Sub(commission),
		Status:           entity.WeeklyStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.store.Create(ctx, wp); err != nil {
		return nil, err
	}
	return toWeeklyResponse(wp), nil
}

// GetByID obtiene una liquidación por ID.
func (uc *WeeklyUseCase) GetByID(ctx context.Context, id string) (*dto.WeeklyResponse, error) {
	wp, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toWeeklyResponse(wp), nil
}

// List lista liquidaciones con paginación.
func (uc *WeeklyUseCase) List(ctx context.Context, limit, offset int) (*dto.WeeklyListResponse, error) {
	list, err := uc.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toWeeklyList(list, limit, offset), nil
}

// ListByDriver lista las liquidaciones de un conductor.
func (uc *WeeklyUseCase) ListByDriver(ctx context.Context, driverID string) (*dto.WeeklyListResponse, error) {
	list, err := uc.store.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return toWeeklyList(list, len(list), 0), nil
}

// UpdateStatus avanza el estado de una liquidación. Solo se permite
// pending -> processed -> paid; los montos nunca se editan tras liquidar.
func (uc *WeeklyUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.WeeklyResponse, error) {
	wp, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !validWeeklyTransition(wp.Status, status) {
		return nil, domain.ErrConflict
	}
	wp.Status = status
	wp.UpdatedAt = time.Now()
	if err := uc.store.Update(ctx, wp); err != nil {
		return nil, err
	}
	return toWeeklyResponse(wp), nil
}

// Delete elimina una liquidación. Las ya pagadas no se eliminan.
func (uc *WeeklyUseCase) Delete(ctx context.Context, id string) error {
	wp, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if wp.Status == entity.WeeklyStatusPaid {
		return domain.ErrConflict
	}
	return uc.store.Delete(ctx, id)
}

func validWeeklyTransition(from, to string) bool {
	switch from {
	case entity.WeeklyStatusPending:
		return to == entity.WeeklyStatusProcessed
	case entity.WeeklyStatusProcessed:
		return to == entity.WeeklyStatusPaid
	}
	return false
}

// mondayOf normaliza t al lunes de su semana, a medianoche UTC.
func mondayOf(t time.Time) time.Time {
	t = t.UTC().Truncate(24 * time.Hour)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func toWeeklyResponse(wp *entity.WeeklyProcessing) *dto.WeeklyResponse {
	if wp == nil {
		return nil
	}
	return &dto.WeeklyResponse{
		ID:               wp.ID,
		DriverID:         wp.DriverID,
		WeekStart:        wp.WeekStart,
		TripsCount:       wp.TripsCount,
		GrossAmount:      wp.GrossAmount,
		CommissionAmount: wp.CommissionAmount,
		NetAmount:        wp.NetAmount,
		Status:           wp.Status,
		CreatedAt:        wp.CreatedAt,
		UpdatedAt:        wp.UpdatedAt,
	}
}

func toWeeklyList(list []*entity.WeeklyProcessing, limit, offset int) *dto.WeeklyListResponse {
	items := make([]dto.WeeklyResponse, 0, len(list))
	for _, wp := range list {
		items = append(items, *toWeeklyResponse(wp))
	}
	return &dto.WeeklyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
