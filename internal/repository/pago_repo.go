package repository

import (
	"context"

	"sistemagestion/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PagoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pago) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pago, error)
	ListByMovimiento(ctx context.Context, movimientoID uuid.UUID) ([]model.Pago, error)
	ListByMovimientoTx(tx *gorm.DB, movimientoID uuid.UUID) ([]model.Pago, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) CreateTx(tx *gorm.DB, p *model.Pago) error {
	return tx.Create(p).Error
}

func (r *pagoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).Preload("Movimiento").Preload("Cheque").First(&p, id).Error
	return &p, err
}

func (r *pagoRepo) ListByMovimiento(ctx context.Context, movimientoID uuid.UUID) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).
		Where("movimiento_id = ?", movimientoID).
		Order("created_at ASC").
		Find(&pagos).Error
	return pagos, err
}

// ListByMovimientoTx reads the payments inside a caller-owned transaction so
// a delete sees the same rows it is about to reverse.
func (r *pagoRepo) ListByMovimientoTx(tx *gorm.DB, movimientoID uuid.UUID) ([]model.Pago, error) {
	var pagos []model.Pago
	err := tx.
		Where("movimiento_id = ?", movimientoID).
		Order("created_at ASC").
		Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Pago{}, id).Error
}

func (r *pagoRepo) DB() *gorm.DB { return r.db }
