package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fletes-api/internal/application/dto"
	"github.com/jhoicas/fletes-api/internal/application/usecase"
	"github.com/jhoicas/fletes-api/internal/domain"
	"github.com/jhoicas/fletes-api/internal/domain/entity"
)

func buildWeeklyUC() (*usecase.WeeklyUseCase, *fakeWeeklyStore) {
	companies := newFakeCompanyStore(testCompany("c1", "0.10"))
	drivers := newFakeDriverStore(testDriver("d1", "c1"))
	store := newFakeWeeklyStore()
	return usecase.NewWeeklyUseCase(store, drivers, companies), store
}

// La comisión se calcula con la tarifa vigente de la empresa y el neto es
// bruto menos comisión.
func TestWeeklyUseCase_Create_CalculaComisionYNeto(t *testing.T) {
	uc, _ := buildWeeklyUC()

	out, err := uc.Create(context.Background(), dto.CreateWeeklyRequest{
		DriverID:    "d1",
		WeekStart:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), // lunes
		TripsCount:  12,
		GrossAmount: decimal.RequireFromString("1500000"),
	})
	require.NoError(t, err)

	assert.True(t, out.CommissionAmount.Equal(decimal.RequireFromString("150000")),
		"comisión debe ser bruto * 0.10, fue %s", out.CommissionAmount)
	assert.True(t, out.NetAmount.Equal(decimal.RequireFromString("1350000")),
		"neto debe ser bruto - comisión, fue %s", out.NetAmount)
	assert.Equal(t, entity.WeeklyStatusPending, out.Status)
}

// WeekStart se normaliza al lunes de la semana, venga el día que venga.
func TestWeeklyUseCase_Create_NormalizaAlLunes(t *testing.T) {
	uc, _ := buildWeeklyUC()

	// Jueves 5 de marzo de 2026 -> lunes 2 de marzo.
	out, err := uc.Create(context.Background(), dto.CreateWeeklyRequest{
		DriverID:    "d1",
		WeekStart:   time.Date(2026, 3, 5, 15, 30, 0, 0, time.UTC),
		GrossAmount: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), out.WeekStart)

	// Domingo 8 de marzo pertenece a la misma semana -> duplicado.
	_, err = uc.Create(context.Background(), dto.CreateWeeklyRequest{
		DriverID:    "d1",
		WeekStart:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		GrossAmount: decimal.RequireFromString("200"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"dos liquidaciones del mismo conductor en la misma semana deben rechazarse")
}

// Conductor inexistente o monto negativo se rechazan.
func TestWeeklyUseCase_Create_EntradaInvalida(t *testing.T) {
	uc, _ := buildWeeklyUC()

	_, err := uc.Create(context.Background(), dto.CreateWeeklyRequest{
		DriverID:    "missing",
		WeekStart:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		GrossAmount: decimal.RequireFromString("100"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateWeeklyRequest{
		DriverID:    "d1",
		WeekStart:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		GrossAmount: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Solo se permiten las transiciones pending -> processed -> paid.
func TestWeeklyUseCase_UpdateStatus_Transiciones(t *testing.T) {
	uc, _ := buildWeeklyUC()
	out, err := uc.Create(context.Background(), dto.CreateWeeklyRequest{
		DriverID:    "d1",
		WeekStart:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		GrossAmount: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)

	// pending -> paid salta un estado: rechazado.
	_, err = uc.UpdateStatus(context.Background(), out.ID, entity.WeeklyStatusPaid)
	assert.ErrorIs(t, err, domain.ErrConflict)

	step, err := uc.UpdateStatus(context.Background(), out.ID, entity.WeeklyStatusProcessed)
	require.NoError(t, err)
	assert.Equal(t, entity.WeeklyStatusProcessed, step.Status)

	paid, err := uc.UpdateStatus(context.Background(), out.ID, entity.WeeklyStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.WeeklyStatusPaid, paid.Status)

	// paid es terminal.
	_, err = uc.UpdateStatus(context.Background(), out.ID, entity.WeeklyStatusPending)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Una liquidación pagada no se elimina.
func TestWeeklyUseCase_Delete_PagadaRechazada(t *testing.T) {
	uc, store := buildWeeklyUC()
	out, err := uc.Create(context.Background(), dto.CreateWeeklyRequest{
		DriverID:    "d1",
		WeekStart:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		GrossAmount: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)

	store.weeklies[out.ID].Status = entity.WeeklyStatusPaid
	err = uc.Delete(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	store.weeklies[out.ID].Status = entity.WeeklyStatusPending
	require.NoError(t, uc.Delete(context.Background(), out.ID))
}
