package service

import (
	"context"
	"testing"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pagoFixture struct {
	*movimientoFixture
	svc PagoService
}

func newPagoFixture() *pagoFixture {
	mf := newMovimientoFixture()
	return &pagoFixture{
		movimientoFixture: mf,
		svc:               NewPagoService(mf.pagos, mf.movimientos, mf.ledgerFixture.svc),
	}
}

// ventaCompletada creates a completed CREDITO movement ready to receive pagos.
func (f *pagoFixture) ventaCompletada(t *testing.T, clienteID uuid.UUID, montoVenta int64) *model.Movimiento {
	t.Helper()
	m := f.crearVenta(t, clienteID, montoVenta)
	_, _, err := f.movimientoFixture.svc.CambiarEstado(context.Background(), m.ID, model.EstadoCompletado)
	require.NoError(t, err)
	return m
}

func TestCrearPagoAplicaDireccionInversa(t *testing.T) {
	f := newPagoFixture()
	c := f.cliente(t)
	m := f.ventaCompletada(t, c.ID, 1000)

	pago, saldo, err := f.svc.Crear(context.Background(), dto.CrearPagoRequest{
		MovimientoID: m.ID,
		Monto:        monto(400),
		MetodoPago:   model.MetodoEfectivo,
	})
	require.NoError(t, err)

	assert.Equal(t, m.ID, pago.MovimientoID)
	// pago on a CREDITO movement debits the account
	assert.True(t, saldo.Debe.Equal(monto(400)))
	assert.True(t, saldo.Haber.Equal(monto(1000)))
	assert.True(t, saldo.Saldo.Equal(monto(600)))
}

func TestPagosParcialesHastaSaldarla(t *testing.T) {
	f := newPagoFixture()
	c := f.cliente(t)
	m := f.ventaCompletada(t, c.ID, 1000)
	ctx := context.Background()

	for _, cuota := range []int64{300, 300, 400} {
		_, _, err := f.svc.Crear(ctx, dto.CrearPagoRequest{
			MovimientoID: m.ID, Monto: monto(cuota), MetodoPago: model.MetodoEfectivo,
		})
		require.NoError(t, err)
	}
	assert.True(t, c.Saldo.IsZero())
}

func TestPagoExcedeMontoRechazado(t *testing.T) {
	f := newPagoFixture()
	c := f.cliente(t)
	m := f.ventaCompletada(t, c.ID, 1000)
	ctx := context.Background()

	_, _, err := f.svc.Crear(ctx, dto.CrearPagoRequest{
		MovimientoID: m.ID, Monto: monto(800), MetodoPago: model.MetodoEfectivo,
	})
	require.NoError(t, err)

	_, _, err = f.svc.Crear(ctx, dto.CrearPagoRequest{
		MovimientoID: m.ID, Monto: monto(201), MetodoPago: model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, ErrPagoExcedeMonto)
	assert.True(t, c.Saldo.Equal(monto(200)))
}

func TestPagoSobreMovimientoPendienteRechazado(t *testing.T) {
	f := newPagoFixture()
	c := f.cliente(t)
	m := f.crearVenta(t, c.ID, 1000)

	_, _, err := f.svc.Crear(context.Background(), dto.CrearPagoRequest{
		MovimientoID: m.ID, Monto: monto(100), MetodoPago: model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, ErrMovimientoCerrado)
}

func TestPagoConChequeRequiereCheque(t *testing.T) {
	f := newPagoFixture()
	c := f.cliente(t)
	m := f.ventaCompletada(t, c.ID, 1000)

	_, _, err := f.svc.Crear(context.Background(), dto.CrearPagoRequest{
		MovimientoID: m.ID, Monto: monto(100), MetodoPago: model.MetodoCheque,
	})
	assert.ErrorIs(t, err, ErrChequeRequerido)
}

func TestPagoConChequeLoConsume(t *testing.T) {
	f := newPagoFixture()
	c := f.cliente(t)
	m := f.ventaCompletada(t, c.ID, 1000)
	ch := f.cheque(t)

	pago, _, err := f.svc.Crear(context.Background(), dto.CrearPagoRequest{
		MovimientoID: m.ID, Monto: monto(100), MetodoPago: model.MetodoCheque, ChequeID: &ch.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, pago.ChequeID)
	assert.True(t, ch.Utilizado)
}

func TestPagoEfectivoIgnoraChequeID(t *testing.T) {
	f := newPagoFixture()
	c := f.cliente(t)
	m := f.ventaCompletada(t, c.ID, 1000)
	ch := f.cheque(t)

	pago, _, err := f.svc.Crear(context.Background(), dto.CrearPagoRequest{
		MovimientoID: m.ID, Monto: monto(100), MetodoPago: model.MetodoEfectivo, ChequeID: &ch.ID,
	})
	require.NoError(t, err)

	assert.Nil(t, pago.ChequeID)
	assert.False(t, ch.Utilizado)
}

func TestEliminarPagoRevierteYLiberaCheque(t *testing.T) {
	f := newPagoFixture()
	c := f.cliente(t)
	m := f.ventaCompletada(t, c.ID, 1000)
	ch := f.cheque(t)
	ctx := context.Background()

	pago, _, err := f.svc.Crear(ctx, dto.CrearPagoRequest{
		MovimientoID: m.ID, Monto: monto(400), MetodoPago: model.MetodoCheque, ChequeID: &ch.ID,
	})
	require.NoError(t, err)
	assert.True(t, c.Saldo.Equal(monto(600)))

	saldo, err := f.svc.Eliminar(ctx, pago.ID)
	require.NoError(t, err)

	assert.True(t, saldo.Saldo.Equal(monto(1000)))
	assert.True(t, saldo.Debe.IsZero())
	assert.False(t, ch.Utilizado)

	_, err = f.pagos.FindByID(ctx, pago.ID)
	assert.Error(t, err)
}

func TestEliminarPagoInexistente(t *testing.T) {
	f := newPagoFixture()
	_, err := f.svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPagoNoEncontrado)
}

func TestPagoMontoInvalido(t *testing.T) {
	f := newPagoFixture()
	c := f.cliente(t)
	m := f.ventaCompletada(t, c.ID, 1000)

	_, _, err := f.svc.Crear(context.Background(), dto.CrearPagoRequest{
		MovimientoID: m.ID, Monto: monto(0), MetodoPago: model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, ErrMontoInvalido)
}
