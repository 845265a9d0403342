package service

import (
	"context"
	"testing"
	"time"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChequeFixture() (*stubChequeRepo, ChequeService) {
	repo := newStubChequeRepo()
	return repo, NewChequeService(repo)
}

func strPtr(s string) *string { return &s }

func TestCrearCheque(t *testing.T) {
	_, svc := newChequeFixture()

	ch, err := svc.Crear(context.Background(), dto.CrearChequeRequest{
		Numero:           strPtr("00012345"),
		Monto:            decimal.NewFromInt(5000),
		FechaEmision:     "2026-08-01",
		FechaVencimiento: "2026-09-30",
		Banco:            strPtr("Banco Nación"),
	})
	require.NoError(t, err)

	assert.False(t, ch.Utilizado)
	assert.Equal(t, "00012345", *ch.Numero)
	assert.Equal(t, 2026, ch.FechaVencimiento.Year())
}

func TestCrearChequeValidaciones(t *testing.T) {
	_, svc := newChequeFixture()
	ctx := context.Background()
	clienteID, proveedorID := uuid.New(), uuid.New()

	_, err := svc.Crear(ctx, dto.CrearChequeRequest{
		Monto: decimal.Zero, FechaEmision: "2026-08-01", FechaVencimiento: "2026-09-30",
	})
	assert.ErrorIs(t, err, ErrMontoInvalido)

	_, err = svc.Crear(ctx, dto.CrearChequeRequest{
		Monto: decimal.NewFromInt(100), FechaEmision: "2026-08-01", FechaVencimiento: "2026-09-30",
		ClienteID: &clienteID, ProveedorID: &proveedorID,
	})
	assert.ErrorIs(t, err, ErrContraparteAmbigua)
}

func TestActualizarChequeUtilizadoRechazado(t *testing.T) {
	repo, svc := newChequeFixture()
	ctx := context.Background()

	ch := &model.Cheque{
		Monto:            decimal.NewFromInt(100),
		FechaEmision:     time.Now(),
		FechaVencimiento: time.Now().AddDate(0, 1, 0),
		Utilizado:        true,
	}
	require.NoError(t, repo.Create(ctx, ch))

	_, err := svc.Actualizar(ctx, ch.ID, dto.ActualizarChequeRequest{Numero: strPtr("999")})
	assert.ErrorIs(t, err, ErrChequeUtilizado)

	err = svc.Eliminar(ctx, ch.ID)
	assert.ErrorIs(t, err, ErrChequeUtilizado)
}

func TestActualizarChequeCamposParciales(t *testing.T) {
	repo, svc := newChequeFixture()
	ctx := context.Background()

	ch := &model.Cheque{
		Numero:           strPtr("111"),
		Monto:            decimal.NewFromInt(100),
		FechaEmision:     time.Now(),
		FechaVencimiento: time.Now().AddDate(0, 1, 0),
		Banco:            strPtr("Galicia"),
	}
	require.NoError(t, repo.Create(ctx, ch))

	nuevoMonto := decimal.NewFromInt(250)
	actualizado, err := svc.Actualizar(ctx, ch.ID, dto.ActualizarChequeRequest{
		Monto:            &nuevoMonto,
		FechaVencimiento: strPtr("2026-12-31"),
	})
	require.NoError(t, err)

	assert.True(t, actualizado.Monto.Equal(nuevoMonto))
	assert.Equal(t, "111", *actualizado.Numero)
	assert.Equal(t, "Galicia", *actualizado.Banco)
	assert.Equal(t, time.December, actualizado.FechaVencimiento.Month())
}

func TestListarPorVencer(t *testing.T) {
	repo, svc := newChequeFixture()
	ctx := context.Background()

	proximo := &model.Cheque{
		Monto:            decimal.NewFromInt(100),
		FechaEmision:     time.Now(),
		FechaVencimiento: time.Now().AddDate(0, 0, 3),
	}
	lejano := &model.Cheque{
		Monto:            decimal.NewFromInt(100),
		FechaEmision:     time.Now(),
		FechaVencimiento: time.Now().AddDate(0, 2, 0),
	}
	usado := &model.Cheque{
		Monto:            decimal.NewFromInt(100),
		FechaEmision:     time.Now(),
		FechaVencimiento: time.Now().AddDate(0, 0, 2),
		Utilizado:        true,
	}
	for _, ch := range []*model.Cheque{proximo, lejano, usado} {
		require.NoError(t, repo.Create(ctx, ch))
	}

	porVencer, err := svc.ListarPorVencer(ctx, 7)
	require.NoError(t, err)

	require.Len(t, porVencer, 1)
	assert.Equal(t, proximo.ID, porVencer[0].ID)
}

func TestEliminarChequeDisponible(t *testing.T) {
	repo, svc := newChequeFixture()
	ctx := context.Background()

	ch := &model.Cheque{
		Monto:            decimal.NewFromInt(100),
		FechaEmision:     time.Now(),
		FechaVencimiento: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, repo.Create(ctx, ch))

	require.NoError(t, svc.Eliminar(ctx, ch.ID))
	_, err := svc.Obtener(ctx, ch.ID)
	assert.ErrorIs(t, err, ErrChequeNoEncontrado)
}
