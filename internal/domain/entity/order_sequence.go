package entity

import "time"

// OrderSequence secuencial de números de orden del tenant. Tabla de una sola
// fila; se siembra con un desplazamiento aleatorio para que los números de
// orden de distintos tenants no colisionen en reportes consolidados.
type OrderSequence struct {
	ID           int
	CurrentValue int64
	UpdatedAt    time.Time
}
