package model

// Canonical enum values for the whole backend. Older data used
// INGRESO/EGRESO and COMPRA/VENTA as movement types; everything is
// normalized to CREDITO/DEBITO at the boundary.

// Movimiento / evento direction.
const (
	TipoCredito = "CREDITO"
	TipoDebito  = "DEBITO"
)

// Lifecycle states shared by movimientos and compras.
// PENDIENTE is initial; COMPLETADO and CANCELADO are terminal.
const (
	EstadoPendiente  = "PENDIENTE"
	EstadoCompletado = "COMPLETADO"
	EstadoCancelado  = "CANCELADO"
)

// Payment methods accepted by pagos, compras and movimientos.
const (
	MetodoEfectivo      = "EFECTIVO"
	MetodoTarjeta       = "TARJETA"
	MetodoTransferencia = "TRANSFERENCIA"
	MetodoCheque        = "CHEQUE"
)
