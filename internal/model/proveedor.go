package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Proveedor is a supplier counterparty. Same cuenta corriente fields as
// Cliente: saldo = haber - debe, mutated only through the ledger service.
type Proveedor struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazonSocial   string    `gorm:"not null"`
	CUIT          *string   `gorm:"column:cuit;uniqueIndex"`
	Telefono      *string
	Email         *string
	Direccion     *string
	CondicionPago *string
	Saldo         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Debe          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Haber         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Activo        bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Compras []Compra `gorm:"foreignKey:ProveedorID"`
	Cheques []Cheque `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
