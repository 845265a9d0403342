package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cheque is a check instrument, consumable exactly once by a pago or a
// compra with metodo_pago = CHEQUE. Consumption flags Utilizado — cheques
// are never hard-deleted once used, to preserve the audit trail.
type Cheque struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero           *string   `gorm:"type:varchar(30)"`
	Monto            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaEmision     time.Time `gorm:"not null"`
	FechaVencimiento time.Time `gorm:"not null;index"`
	Banco            *string   `gorm:"type:varchar(100)"`
	Sucursal         *string
	ClienteID        *uuid.UUID `gorm:"type:uuid;index"`
	ProveedorID      *uuid.UUID `gorm:"type:uuid;index"`
	Utilizado        bool       `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Cliente   *Cliente   `gorm:"foreignKey:ClienteID"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (Cheque) TableName() string { return "cheques" }
