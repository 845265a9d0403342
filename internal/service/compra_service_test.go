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

type compraFixture struct {
	*ledgerFixture
	compras *stubCompraRepo
	svc     CompraService
}

func newCompraFixture() *compraFixture {
	lf := newLedgerFixture()
	f := &compraFixture{
		ledgerFixture: lf,
		compras:       newStubCompraRepo(),
	}
	f.svc = NewCompraService(f.compras, lf.proveedores, lf.svc)
	return f
}

// acreditarProveedor gives the supplier account haber to settle against, the
// way a completed COMPRA/FACTURA movement would.
func (f *compraFixture) acreditarProveedor(t *testing.T, proveedorID uuid.UUID, montoHaber int64) {
	t.Helper()
	_, err := f.ledgerFixture.svc.AplicarEvento(context.Background(), EventoLedger{
		Tipo:        "CREDITO",
		Monto:       monto(montoHaber),
		ProveedorID: &proveedorID,
	})
	require.NoError(t, err)
}

func (f *compraFixture) crearCompra(t *testing.T, proveedorID uuid.UUID, total int64, chequeID *uuid.UUID) *model.Compra {
	t.Helper()
	metodo := model.MetodoTransferencia
	if chequeID != nil {
		metodo = model.MetodoCheque
	}
	c, err := f.svc.Crear(context.Background(), dto.CrearCompraRequest{
		Fecha:       "2026-08-15",
		Total:       monto(total),
		ProveedorID: proveedorID,
		MetodoPago:  metodo,
		ChequeID:    chequeID,
	})
	require.NoError(t, err)
	return c
}

func TestCrearCompraPendiente(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)

	c := f.crearCompra(t, p.ID, 5000, nil)

	assert.Equal(t, model.EstadoPendiente, c.Estado)
	assert.True(t, p.Saldo.IsZero())
}

func TestCrearCompraValidaciones(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)
	ctx := context.Background()

	_, err := f.svc.Crear(ctx, dto.CrearCompraRequest{
		Fecha: "2026-08-15", Total: monto(0), ProveedorID: p.ID, MetodoPago: model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, ErrMontoInvalido)

	_, err = f.svc.Crear(ctx, dto.CrearCompraRequest{
		Fecha: "2026-08-15", Total: monto(100), ProveedorID: p.ID, MetodoPago: model.MetodoCheque,
	})
	assert.ErrorIs(t, err, ErrChequeRequerido)

	_, err = f.svc.Crear(ctx, dto.CrearCompraRequest{
		Fecha: "2026-08-15", Total: monto(100), ProveedorID: uuid.New(), MetodoPago: model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, ErrContraparteNoEncontrada)
}

func TestCrearCompraProveedorInactivo(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)
	ctx := context.Background()
	require.NoError(t, f.proveedores.SoftDelete(ctx, p.ID))

	_, err := f.svc.Crear(ctx, dto.CrearCompraRequest{
		Fecha: "2026-08-15", Total: monto(100), ProveedorID: p.ID, MetodoPago: model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, ErrContraparteInactiva)
}

func TestCompletarCompraDebitaProveedor(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)
	f.acreditarProveedor(t, p.ID, 8000)
	c := f.crearCompra(t, p.ID, 5000, nil)

	actualizada, saldo, err := f.svc.CambiarEstado(context.Background(), c.ID, model.EstadoCompletado)
	require.NoError(t, err)

	assert.Equal(t, model.EstadoCompletado, actualizada.Estado)
	require.NotNil(t, saldo)
	assert.True(t, saldo.Debe.Equal(monto(5000)))
	assert.True(t, saldo.Haber.Equal(monto(8000)))
	assert.True(t, saldo.Saldo.Equal(monto(3000)))
}

// A purchase larger than the available saldo is rejected and leaves both the
// account and the purchase untouched.
func TestCompletarCompraSaldoInsuficiente(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)
	f.acreditarProveedor(t, p.ID, 300)
	c := f.crearCompra(t, p.ID, 1000, nil)
	ctx := context.Background()

	_, _, err := f.svc.CambiarEstado(ctx, c.ID, model.EstadoCompletado)
	assert.ErrorIs(t, err, ErrSaldoInsuficiente)

	assert.True(t, p.Saldo.Equal(monto(300)))
	assert.True(t, p.Debe.IsZero())
	assert.Equal(t, model.EstadoPendiente, f.compras.compras[c.ID].Estado)
}

func TestCompletarCompraConChequeLoConsume(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)
	f.acreditarProveedor(t, p.ID, 10000)
	ch := f.cheque(t)
	c := f.crearCompra(t, p.ID, 5000, &ch.ID)
	ctx := context.Background()

	_, _, err := f.svc.CambiarEstado(ctx, c.ID, model.EstadoCompletado)
	require.NoError(t, err)
	assert.True(t, ch.Utilizado)

	// the same cheque cannot back a second purchase
	c2 := f.crearCompra(t, p.ID, 3000, &ch.ID)
	_, _, err = f.svc.CambiarEstado(ctx, c2.ID, model.EstadoCompletado)
	assert.ErrorIs(t, err, ErrChequeUtilizado)
	assert.Equal(t, model.EstadoPendiente, f.compras.compras[c2.ID].Estado)
}

// COMPLETADO is terminal: cancelling a completed purchase is rejected and
// the cheque stays spent. Undoing goes through Eliminar.
func TestCancelarCompraCompletadaRechazado(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)
	f.acreditarProveedor(t, p.ID, 5000)
	ch := f.cheque(t)
	c := f.crearCompra(t, p.ID, 5000, &ch.ID)
	ctx := context.Background()

	_, _, err := f.svc.CambiarEstado(ctx, c.ID, model.EstadoCompletado)
	require.NoError(t, err)

	_, _, err = f.svc.CambiarEstado(ctx, c.ID, model.EstadoCancelado)
	assert.ErrorIs(t, err, ErrTransicionInvalida)

	assert.Equal(t, model.EstadoCompletado, f.compras.compras[c.ID].Estado)
	assert.True(t, ch.Utilizado)
	assert.True(t, p.Debe.Equal(monto(5000)))
}

func TestEliminarCompraLiberaCheque(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)
	f.acreditarProveedor(t, p.ID, 5000)
	ch := f.cheque(t)
	c := f.crearCompra(t, p.ID, 5000, &ch.ID)
	ctx := context.Background()

	_, _, err := f.svc.CambiarEstado(ctx, c.ID, model.EstadoCompletado)
	require.NoError(t, err)
	assert.True(t, p.Saldo.IsZero())

	require.NoError(t, f.svc.Eliminar(ctx, c.ID))

	assert.False(t, ch.Utilizado)
	assert.True(t, p.Debe.IsZero())
	assert.True(t, p.Saldo.Equal(monto(5000)))
}

func TestCompraTransicionInvalida(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)
	c := f.crearCompra(t, p.ID, 100, nil)
	ctx := context.Background()

	_, _, err := f.svc.CambiarEstado(ctx, c.ID, model.EstadoCancelado)
	require.NoError(t, err)

	_, _, err = f.svc.CambiarEstado(ctx, c.ID, model.EstadoCompletado)
	assert.ErrorIs(t, err, ErrTransicionInvalida)
}

func TestEliminarCompraCompletadaRevierte(t *testing.T) {
	f := newCompraFixture()
	p := f.proveedor(t)
	f.acreditarProveedor(t, p.ID, 8000)
	c := f.crearCompra(t, p.ID, 5000, nil)
	ctx := context.Background()

	_, _, err := f.svc.CambiarEstado(ctx, c.ID, model.EstadoCompletado)
	require.NoError(t, err)
	assert.True(t, p.Saldo.Equal(monto(3000)))

	require.NoError(t, f.svc.Eliminar(ctx, c.ID))
	assert.True(t, p.Debe.IsZero())
	assert.True(t, p.Saldo.Equal(monto(8000)))

	_, err = f.compras.FindByID(ctx, c.ID)
	assert.Error(t, err)
}

func TestEliminarCompraInexistente(t *testing.T) {
	f := newCompraFixture()
	err := f.svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCompraNoEncontrada)
}
