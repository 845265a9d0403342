package repository

import (
	"context"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovimientoRepository interface {
	Create(ctx context.Context, m *model.Movimiento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Movimiento, error)
	List(ctx context.Context, filter dto.MovimientoFilter) ([]model.Movimiento, int64, error)

	// Used inside ledger transactions
	FindForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Movimiento, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository { return &movimientoRepo{db: db} }

func (r *movimientoRepo) Create(ctx context.Context, m *model.Movimiento) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Movimiento, error) {
	var m model.Movimiento
	err := r.db.WithContext(ctx).Preload("Cliente").Preload("Proveedor").Preload("Pagos").First(&m, id).Error
	return &m, err
}

func (r *movimientoRepo) List(ctx context.Context, filter dto.MovimientoFilter) ([]model.Movimiento, int64, error) {
	var movimientos []model.Movimiento
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Movimiento{})

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.ProveedorID != "" {
		q = q.Where("proveedor_id = ?", filter.ProveedorID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Cliente").Preload("Proveedor").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&movimientos).Error

	return movimientos, total, err
}

func (r *movimientoRepo) FindForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Movimiento, error) {
	var m model.Movimiento
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error
	return &m, err
}

func (r *movimientoRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Movimiento{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *movimientoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Movimiento{}, id).Error
}

func (r *movimientoRepo) DB() *gorm.DB { return r.db }
