package repository

import (
	"context"

	"github.com/jhoicas/fletes-api/internal/domain/entity"
)

// OrderSequenceStore define el puerto del secuencial de órdenes del tenant (DIP).
type OrderSequenceStore interface {
	Current(ctx context.Context) (*entity.OrderSequence, error)
	// Next incrementa el secuencial atómicamente y devuelve el nuevo valor.
	Next(ctx context.Context) (int64, error)
}
