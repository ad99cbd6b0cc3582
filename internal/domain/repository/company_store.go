package repository

import (
	"context"

	"github.com/jhoicas/fletes-api/internal/domain/entity"
)

// CompanyStore define el puerto de persistencia para Company dentro del
// esquema de un tenant (DIP). La implementación vive en infrastructure.
type CompanyStore interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByNIT(ctx context.Context, nit string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id string) error
}
