package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movimiento is a ledger event against exactly one counterparty.
// Tipo: CREDITO | DEBITO. Estado: PENDIENTE | COMPLETADO | CANCELADO.
// Created PENDIENTE with zero balance effect; the balance applies exactly
// once, on the PENDIENTE→COMPLETADO transition.
type Movimiento struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string          `gorm:"type:varchar(10);not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado      string          `gorm:"type:varchar(12);not null;default:'PENDIENTE'"`
	TipoPago    string          `gorm:"type:varchar(15);not null"`
	Descripcion *string
	// Exactly one of ClienteID / ProveedorID is set.
	ClienteID   *uuid.UUID `gorm:"type:uuid;index"`
	ProveedorID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Cliente   *Cliente   `gorm:"foreignKey:ClienteID"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
	Pagos     []Pago     `gorm:"foreignKey:MovimientoID"`
}

func (Movimiento) TableName() string { return "movimientos" }
