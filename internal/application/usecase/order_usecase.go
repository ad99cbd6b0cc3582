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

// OrderUseCase casos de uso de órdenes de transporte. El número de orden se
// consume del secuencial propio del tenant, nunca lo aporta el cliente.
type OrderUseCase struct {
	store     repository.TransportOrderStore
	sequence  repository.OrderSequenceStore
	companies repository.CompanyStore
	drivers   repository.DriverStore
}

// NewOrderUseCase construye el caso de uso sobre los stores del tenant.
func NewOrderUseCase(store repository.TransportOrderStore, sequence repository.OrderSequenceStore, companies repository.CompanyStore, drivers repository.DriverStore) *OrderUseCase {
	return &OrderUseCase{store: store, sequence: sequence, companies: companies, drivers: drivers}
}

// Create crea una orden con el siguiente número del secuencial del tenant.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.companies.GetByID(ctx, in.CompanyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}
	if in.DriverID != nil {
		if _, err := uc.drivers.GetByID(ctx, *in.DriverID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrInvalidInput
			}
			return nil, err
		}
	}

	number, err := uc.sequence.Next(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	order := &entity.TransportOrder{
		ID:               uuid.New().String(),
		OrderNumber:      number,
		CompanyID:        in.CompanyID,
		DriverID:         in.DriverID,
		Origin:           in.Origin,
		Destination:      in.Destination,
		CargoDescription: in.CargoDescription,
		Amount:           in.Amount,
		Status:           entity.OrderStatusScheduled,
		ScheduledAt:      in.ScheduledAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.store.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByOrderNumber obtiene una orden por su número.
func (uc *OrderUseCase) GetByOrderNumber(ctx context.Context, number int64) (*dto.OrderResponse, error) {
	order, err := uc.store.GetByOrderNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con paginación.
func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza una orden. Las canceladas o entregadas quedan congeladas.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStatusDelivered || order.Status == entity.OrderStatusCancelled {
		return nil, domain.ErrConflict
	}
	if in.DriverID != nil {
		if _, err := uc.drivers.GetByID(ctx, *in.DriverID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrInvalidInput
			}
			return nil, err
		}
		order.DriverID = in.DriverID
	}
	if in.Origin != nil {
		order.Origin = *in.Origin
	}
	if in.Destination != nil {
		order.Destination = *in.Destination
	}
	if in.CargoDescription != nil {
		order.CargoDescription = *in.CargoDescription
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.Amount = *in.Amount
	}
	if in.Status != nil {
		if !validOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.ScheduledAt != nil {
		order.ScheduledAt = *in.ScheduledAt
	}
	order.UpdatedAt = time.Now()
	if err := uc.store.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina una orden por ID.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Delete(ctx, id)
}

func validOrderStatus(s string) bool {
	switch s {
	case entity.OrderStatusScheduled, entity.OrderStatusInTransit, entity.OrderStatusDelivered, entity.OrderStatusCancelled:
		return true
	}
	return false
}

func toOrderResponse(o *entity.TransportOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		CompanyID:        o.CompanyID,
		DriverID:         o.DriverID,
		Origin:           o.Origin,
		Destination:      o.Destination,
		CargoDescription: o.CargoDescription,
		Amount:           o.Amount,
		Status:           o.Status,
		ScheduledAt:      o.ScheduledAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
