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

// DriverUseCase casos de uso CRUD para conductores del tenant.
type DriverUseCase struct {
	store     repository.DriverStore
	companies repository.CompanyStore
}

// NewDriverUseCase construye el caso de uso sobre los stores del tenant.
func NewDriverUseCase(store repository.DriverStore, companies repository.CompanyStore) *DriverUseCase {
	return &DriverUseCase{store: store, companies: companies}
}

// Create registra un conductor. Valida que la empresa exista en el tenant y
// que el documento no esté repetido.
func (uc *DriverUseCase) Create(ctx context.Context, in dto.CreateDriverRequest) (*dto.DriverResponse, error) {
	if _, err := uc.companies.GetByID(ctx, in.CompanyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}
	existing, err := uc.store.GetByDocument(ctx, in.Document)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	driver := &entity.Driver{
		ID:            uuid.New().String(),
		CompanyID:     in.CompanyID,
		Name:          in.Name,
		Document:      in.Document,
		Phone:         in.Phone,
		LicenseNumber: in.LicenseNumber,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.store.Create(ctx, driver); err != nil {
		return nil, err
	}
	return toDriverResponse(driver), nil
}

// GetByID obtiene un conductor por ID.
func (uc *DriverUseCase) GetByID(ctx context.Context, id string) (*dto.DriverResponse, error) {
	driver, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDriverResponse(driver), nil
}

// List lista conductores con paginación.
func (uc *DriverUseCase) List(ctx context.Context, limit, offset int) (*dto.DriverListResponse, error) {
	list, err := uc.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toDriverList(list, limit, offset), nil
}

// ListByCompany lista los conductores de una empresa.
func (uc *DriverUseCase) ListByCompany(ctx context.Context, companyID string) (*dto.DriverListResponse, error) {
	list, err := uc.store.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toDriverList(list, len(list), 0), nil
}

// Update actualiza un conductor. El documento no se modifica tras el alta.
func (uc *DriverUseCase) Update(ctx context.Context, id string, in dto.UpdateDriverRequest) (*dto.DriverResponse, error) {
	driver, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CompanyID != nil {
		if _, err := uc.companies.GetByID(ctx, *in.CompanyID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrInvalidInput
			}
			return nil, err
		}
		driver.CompanyID = *in.CompanyID
	}
	if in.Name != nil {
		driver.Name = *in.Name
	}
	if in.Phone != nil {
		driver.Phone = *in.Phone
	}
	if in.LicenseNumber != nil {
		driver.LicenseNumber = *in.LicenseNumber
	}
	if in.Status != nil {
		driver.Status = *in.Status
	}
	driver.UpdatedAt = time.Now()
	if err := uc.store.Update(ctx, driver); err != nil {
		return nil, err
	}
	return toDriverResponse(driver), nil
}

// Delete elimina un conductor por ID.
func (uc *DriverUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Delete(ctx, id)
}

func toDriverResponse(d *entity.Driver) *dto.DriverResponse {
	if d == nil {
		return nil
	}
	return &dto.DriverResponse{
		ID:            d.ID,
		CompanyID:     d.CompanyID,
		Name:          d.Name,
		Document:      d.Document,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDriverList(list []*entity.Driver, limit, offset int) *dto.DriverListResponse {
	items := make([]dto.DriverResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDriverResponse(d))
	}
	return &dto.DriverListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
