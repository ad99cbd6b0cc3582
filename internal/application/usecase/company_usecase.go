package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas transportadoras. Se
// construye por petición a partir del handle del tenant resuelto.
type CompanyUseCase struct {
	store repository.CompanyStore
}

// NewCompanyUseCase construye el caso de uso sobre el store del tenant.
func NewCompanyUseCase(store repository.CompanyStore) *CompanyUseCase {
	return &CompanyUseCase{store: store}
}

// Create crea una empresa. El NIT es clave natural dentro del tenant.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.store.GetByNIT(ctx, in.NIT)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CommissionRate.IsNegative() || in.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	company := &entity.Company{
		ID:             uuid.New().String(),
		Name:           in.Name,
		NIT:            in.NIT,
		ContactName:    in.ContactName,
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		CommissionRate: in.CommissionRate,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.store.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza una empresa. El NIT no se modifica tras el alta.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.ContactName != nil {
		company.ContactName = *in.ContactName
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.CommissionRate != nil {
		if in.CommissionRate.IsNegative() || in.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, domain.ErrInvalidInput
		}
		company.CommissionRate = *in.CommissionRate
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	company.UpdatedAt = time.Now()
	if err := uc.store.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina una empresa por ID.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Delete(ctx, id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		NIT:            c.NIT,
		ContactName:    c.ContactName,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		CommissionRate: c.CommissionRate,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
