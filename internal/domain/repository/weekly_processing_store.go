package repository

import (
	"context"
	"time"

	"github.com/jhoicas/fletes-api/internal/domain/entity"
)

// WeeklyProcessingStore define el puerto de persistencia para las
// liquidaciones semanales dentro del esquema de un tenant (DIP).
type WeeklyProcessingStore interface {
	Create(ctx context.Context, wp *entity.WeeklyProcessing) error
	GetByID(ctx context.Context, id string) (*entity.WeeklyProcessing, error)
	// GetByDriverWeek busca por la clave natural (conductor, semana).
	GetByDriverWeek(ctx context.Context, driverID string, weekStart time.Time) (*entity.WeeklyProcessing, error)
	List(ctx context.Context, limit, offset int) ([]*entity.WeeklyProcessing, error)
	ListByDriver(ctx context.Context, driverID string) ([]*entity.WeeklyProcessing, error)
	Update(ctx context.Context, wp *entity.WeeklyProcessing) error
	Delete(ctx context.Context, id string) error
}
