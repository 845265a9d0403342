package repository

import (
	"context"
	"time"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChequeRepository interface {
	Create(ctx context.Context, ch *model.Cheque) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cheque, error)
	List(ctx context.Context, filter dto.ChequeFilter) ([]model.Cheque, int64, error)
	ListPorVencer(ctx context.Context, hasta time.Time) ([]model.Cheque, error)
	Update(ctx context.Context, ch *model.Cheque) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside ledger transactions
	FindForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Cheque, error)
	SetUtilizadoTx(tx *gorm.DB, id uuid.UUID, utilizado bool) error
}

type chequeRepo struct{ db *gorm.DB }

func NewChequeRepository(db *gorm.DB) ChequeRepository { return &chequeRepo{db: db} }

func (r *chequeRepo) Create(ctx context.Context, ch *model.Cheque) error {
	return r.db.WithContext(ctx).Create(ch).Error
}

func (r *chequeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cheque, error) {
	var ch model.Cheque
	err := r.db.WithContext(ctx).First(&ch, id).Error
	return &ch, err
}

func (r *chequeRepo) List(ctx context.Context, filter dto.ChequeFilter) ([]model.Cheque, int64, error) {
	var cheques []model.Cheque
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Cheque{})

	if filter.Disponibles {
		q = q.Where("utilizado = false")
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
	err := q.Order("fecha_vencimiento ASC").Limit(filter.Limit).Offset(offset).Find(&cheques).Error
	return cheques, total, err
}

// ListPorVencer returns unused cheques whose fecha_vencimiento falls on or
// before the given date. Backed by the partial index on (fecha_vencimiento)
// WHERE utilizado = false.
func (r *chequeRepo) ListPorVencer(ctx context.Context, hasta time.Time) ([]model.Cheque, error) {
	var cheques []model.Cheque
	err := r.db.WithContext(ctx).
		Where("utilizado = false AND fecha_vencimiento <= ?", hasta).
		Order("fecha_vencimiento ASC").
		Find(&cheques).Error
	return cheques, err
}

func (r *chequeRepo) Update(ctx context.Context, ch *model.Cheque) error {
	return r.db.WithContext(ctx).Save(ch).Error
}

func (r *chequeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cheque{}, id).Error
}

func (r *chequeRepo) FindForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Cheque, error) {
	var ch model.Cheque
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&ch, id).Error
	return &ch, err
}

func (r *chequeRepo) SetUtilizadoTx(tx *gorm.DB, id uuid.UUID, utilizado bool) error {
	return tx.Model(&model.Cheque{}).Where("id = ?", id).Update("utilizado", utilizado).Error
}
