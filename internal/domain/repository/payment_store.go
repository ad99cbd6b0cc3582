package repository

import (
	"context"

	"github.com/jhoicas/fletes-api/internal/domain/entity"
)

// PaymentStore define el puerto de persistencia para pagos y su rastro de
// auditoría dentro del esquema de un tenant (DIP). Las mutaciones escriben
// payment_history en la misma transacción.
type PaymentStore interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Payment, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id string) error
	ListHistory(ctx context.Context, paymentID string) ([]*entity.PaymentHistory, error)
}
