package repository

import (
	"context"

	"github.com/jhoicas/fletes-api/internal/domain/entity"
)

// TransportOrderStore define el puerto de persistencia para órdenes de
// transporte dentro del esquema de un tenant (DIP).
type TransportOrderStore interface {
	Create(ctx context.Context, order *entity.TransportOrder) error
	GetByID(ctx context.Context, id string) (*entity.TransportOrder, error)
	GetByOrderNumber(ctx context.Context, number int64) (*entity.TransportOrder, error)
	List(ctx context.Context, limit, offset int) ([]*entity.TransportOrder, error)
	Update(ctx context.Context, order *entity.TransportOrder) error
	Delete(ctx context.Context, id string) error
}
