package usecase

import (
	"context"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
	"github.com/jhoicas/fletes-api/internal/domain/repository"
)

// BalanceUseCase consultas de saldos por empresa. Los ajustes los hacen los
// casos de uso de pagos, aquí solo lectura.
type BalanceUseCase struct {
	store repository.CompanyBalanceStore
}

// NewBalanceUseCase construye el caso de uso sobre el store del tenant.
func NewBalanceUseCase(store repository.CompanyBalanceStore) *BalanceUseCase {
	return &BalanceUseCase{store: store}
}

// GetByCompany obtiene el saldo de una empresa.
func (uc *BalanceUseCase) GetByCompany(ctx context.Context, companyID string) (*dto.BalanceResponse, error) {
	b, err := uc.store.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toBalanceResponse(b), nil
}

// List lista saldos con paginación.
func (uc *BalanceUseCase) List(ctx context.Context, limit, offset int) (*dto.BalanceListResponse, error) {
	list, err := uc.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BalanceResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBalanceResponse(b))
	}
	return &dto.BalanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toBalanceResponse(b *entity.CompanyBalance) *dto.BalanceResponse {
	if b == nil {
		return nil
	}
	return &dto.BalanceResponse{
		CompanyID:     b.CompanyID,
		Balance:       b.Balance,
		LastPaymentAt: b.LastPaymentAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
