package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pago settles (partially or fully) a Movimiento. Its balance effect is
// applied once, at creation, and reversed when the pago is deleted.
// ChequeID is required when MetodoPago = CHEQUE; the cheque is flagged
// utilizado in the same transaction.
type Pago struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MovimientoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Monto        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago   string          `gorm:"type:varchar(15);not null"`
	ChequeID     *uuid.UUID      `gorm:"type:uuid"`
	Observacion  *string
	CreatedAt    time.Time

	Movimiento *Movimiento `gorm:"foreignKey:MovimientoID"`
	Cheque     *Cheque     `gorm:"foreignKey:ChequeID"`
}

func (Pago) TableName() string { return "pagos" }
