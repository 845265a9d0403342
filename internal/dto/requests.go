package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CrearUsuarioRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Nombre   string  `json:"nombre" binding:"required"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Rol      string  `json:"rol" binding:"required,oneof=administrador operador"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string  `json:"nombre"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password string  `json:"password" binding:"omitempty,min=8"`
	Rol      string  `json:"rol" binding:"omitempty,oneof=administrador operador"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type CrearContraparteRequest struct {
	RazonSocial string  `json:"razonSocial" binding:"required,max=200"`
	CUIT        *string `json:"cuit" binding:"omitempty,min=11,max=13"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Direccion   *string `json:"direccion"`
}

type ActualizarContraparteRequest struct {
	RazonSocial *string `json:"razonSocial" binding:"omitempty,max=200"`
	CUIT        *string `json:"cuit" binding:"omitempty,min=11,max=13"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Direccion   *string `json:"direccion"`
}

// CrearMovimientoRequest accepts tipo in its canonical form or any of the
// legacy spellings the normalizer understands (venta, compra, pago, cobro).
type CrearMovimientoRequest struct {
	Tipo        string          `json:"tipo" binding:"required"`
	Monto       decimal.Decimal `json:"monto" binding:"required"`
	Descripcion *string         `json:"descripcion" binding:"omitempty,max=500"`
	TipoPago    string          `json:"tipoPago" binding:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA CHEQUE"`
	ClienteID   *uuid.UUID      `json:"clienteId"`
	ProveedorID *uuid.UUID      `json:"proveedorId"`
}

type ActualizarEstadoRequest struct {
	Estado string `json:"estado" binding:"required,oneof=PENDIENTE COMPLETADO CANCELADO"`
}

type CrearPagoRequest struct {
	MovimientoID uuid.UUID       `json:"movimientoId" binding:"required"`
	Monto        decimal.Decimal `json:"monto" binding:"required"`
	MetodoPago   string          `json:"metodoPago" binding:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA CHEQUE"`
	ChequeID     *uuid.UUID      `json:"chequeId"`
	Observacion  *string         `json:"observacion" binding:"omitempty,max=500"`
}

type CrearCompraRequest struct {
	Fecha         string          `json:"fecha" binding:"required,datetime=2006-01-02"`
	Total         decimal.Decimal `json:"total" binding:"required"`
	ProveedorID   uuid.UUID       `json:"proveedorId" binding:"required"`
	MetodoPago    string          `json:"metodoPago" binding:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA CHEQUE"`
	ChequeID      *uuid.UUID      `json:"chequeId"`
	Observaciones *string         `json:"observaciones" binding:"omitempty,max=500"`
}

type CrearChequeRequest struct {
	Numero           *string         `json:"numero"`
	Monto            decimal.Decimal `json:"monto" binding:"required"`
	FechaEmision     string          `json:"fechaEmision" binding:"required,datetime=2006-01-02"`
	FechaVencimiento string          `json:"fechaVencimiento" binding:"required,datetime=2006-01-02"`
	Banco            *string         `json:"banco"`
	Sucursal         *string         `json:"sucursal"`
	ClienteID        *uuid.UUID      `json:"clienteId"`
	ProveedorID      *uuid.UUID      `json:"proveedorId"`
}

type EnviarResumenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ActualizarChequeRequest struct {
	Numero           *string          `json:"numero"`
	Monto            *decimal.Decimal `json:"monto"`
	FechaEmision     *string          `json:"fechaEmision" binding:"omitempty,datetime=2006-01-02"`
	FechaVencimiento *string          `json:"fechaVencimiento" binding:"omitempty,datetime=2006-01-02"`
	Banco            *string          `json:"banco"`
	Sucursal         *string          `json:"sucursal"`
}
