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

// PaymentUseCase casos de uso de pagos. Cada mutación ajusta el saldo de la
// empresa; el rastro de auditoría lo escribe el store en la misma transacción
// que el pago.
type PaymentUseCase struct {
	store     repository.PaymentStore
	balances  repository.CompanyBalanceStore
	companies repository.CompanyStore
}

// NewPaymentUseCase construye el caso de uso sobre los stores del tenant.
func NewPaymentUseCase(store repository.PaymentStore, balances repository.CompanyBalanceStore, companies repository.CompanyStore) *PaymentUseCase {
	return &PaymentUseCase{store: store, balances: balances, companies: companies}
}

// Create registra un pago y acredita el saldo de la empresa.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.companies.GetByID(ctx, in.CompanyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}

	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	now := time.Now()
	payment := &entity.Payment{
		ID:                 uuid.New().String(),
		CompanyID:          in.CompanyID,
		WeeklyProcessingID: in.WeeklyProcessingID,
		Amount:             in.Amount,
		Method:             in.Method,
		Reference:          in.Reference,
		Notes:              in.Notes,
		PaidAt:             paidAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.store.Create(ctx, payment); err != nil {
		return nil, err
	}
	if err := uc.balances.Adjust(ctx, payment.CompanyID, payment.Amount, payment.PaidAt); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// GetByID obtiene un pago por ID.
func (uc *PaymentUseCase) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	payment, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// List lista pagos con paginación.
func (uc *PaymentUseCase) List(ctx context.Context, limit, offset int) (*dto.PaymentListResponse, error) {
	list, err := uc.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPaymentList(list, limit, offset), nil
}

// ListByCompany lista los pagos de una empresa.
func (uc *PaymentUseCase) ListByCompany(ctx context.Context, companyID string) (*dto.PaymentListResponse, error) {
	list, err := uc.store.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toPaymentList(list, len(list), 0), nil
}

// Update corrige un pago registrado y ajusta el saldo por la diferencia.
func (uc *PaymentUseCase) Update(ctx context.Context, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prevAmount := payment.Amount
	if in.Amount != nil {
		if in.Amount.IsNegative() || in.Amount.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		payment.Amount = *in.Amount
	}
	if in.Method != nil {
		payment.Method = *in.Method
	}
	if in.Reference != nil {
		payment.Reference = *in.Reference
	}
	if in.Notes != nil {
		payment.Notes = *in.Notes
	}
	if in.PaidAt != nil {
		payment.PaidAt = *in.PaidAt
	}
	payment.UpdatedAt = time.Now()
	if err := uc.store.Update(ctx, payment); err != nil {
		return nil, err
	}
	if delta := payment.Amount.Sub(prevAmount); !delta.IsZero() {
		if err := uc.balances.Adjust(ctx, payment.CompanyID, delta, payment.PaidAt); err != nil {
			return nil, err
		}
	}
	return toPaymentResponse(payment), nil
}

// Delete revierte un pago: elimina la fila y descuenta el saldo acreditado.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	payment, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.store.Delete(ctx, id); err != nil {
		return err
	}
	return uc.balances.Adjust(ctx, payment.CompanyID, payment.Amount.Neg(), payment.PaidAt)
}

// History devuelve el rastro de auditoría de un pago.
func (uc *PaymentUseCase) History(ctx context.Context, paymentID string) ([]dto.PaymentHistoryResponse, error) {
	list, err := uc.store.ListHistory(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentHistoryResponse, 0, len(list))
	for _, h := range list {
		items = append(items, dto.PaymentHistoryResponse{
			ID:        h.ID,
			PaymentID: h.PaymentID,
			Action:    h.Action,
			Amount:    h.Amount,
			Reference: h.Reference,
			ChangedAt: h.ChangedAt,
		})
	}
	return items, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:                 p.ID,
		CompanyID:          p.CompanyID,
		WeeklyProcessingID: p.WeeklyProcessingID,
		Amount:             p.Amount,
		Method:             p.Method,
		Reference:          p.Reference,
		Notes:              p.Notes,
		PaidAt:             p.PaidAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toPaymentList(list []*entity.Payment, limit, offset int) *dto.PaymentListResponse {
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
