package repository

import (
	"context"

	"github.com/jhoicas/fletes-api/internal/domain/entity"
)

// HistoricalTripStore define el puerto de persistencia para viajes históricos
// dentro del esquema de un tenant (DIP). Los viajes no se editan tras su
// registro; solo alta, consulta y baja.
type HistoricalTripStore interface {
	Create(ctx context.Context, trip *entity.HistoricalTrip) error
	GetByID(ctx context.Context, id string) (*entity.HistoricalTrip, error)
	List(ctx context.Context, limit, offset int) ([]*entity.HistoricalTrip, error)
	ListByDriver(ctx context.Context, driverID string) ([]*entity.HistoricalTrip, error)
	Delete(ctx context.Context, id string) error
}
