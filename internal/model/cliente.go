package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente is a counterparty with a running account (cuenta corriente).
// Saldo, Debe and Haber are mutated ONLY by the ledger service —
// invariant: saldo = haber - debe.
type Cliente struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazonSocial string    `gorm:"not null"`
	CUIT        *string   `gorm:"column:cuit;uniqueIndex"`
	Telefono    *string
	Email       *string
	Direccion   *string
	Saldo       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Debe        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Haber       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Movimientos []Movimiento `gorm:"foreignKey:ClienteID"`
	Cheques     []Cheque     `gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }
