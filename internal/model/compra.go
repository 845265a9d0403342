package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compra is a purchase from a supplier.
// Estado follows the same state machine as Movimiento: COMPLETADO debits
// the supplier by Total, PENDIENTE and CANCELADO have no balance effect.
type Compra struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha         time.Time       `gorm:"not null"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ProveedorID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	MetodoPago    string          `gorm:"type:varchar(15);not null"`
	Estado        string          `gorm:"type:varchar(12);not null;default:'PENDIENTE'"`
	ChequeID      *uuid.UUID      `gorm:"type:uuid"`
	Observaciones *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
	Cheque    *Cheque    `gorm:"foreignKey:ChequeID"`
}

func (Compra) TableName() string { return "compras" }
