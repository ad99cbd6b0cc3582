package repository

import (
	"context"

	"github.com/jhoicas/fletes-api/internal/domain/entity"
)

// DriverStore define el puerto de persistencia para Driver dentro del esquema
// de un tenant (DIP).
type DriverStore interface {
	Create(ctx context.Context, driver *entity.Driver) error
	GetByID(ctx context.Context, id string) (*entity.Driver, error)
	GetByDocument(ctx context.Context, document string) (*entity.Driver, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Driver, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Driver, error)
	Update(ctx context.Context, driver *entity.Driver) error
	Delete(ctx context.Context, id string) error
}
