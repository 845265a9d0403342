package service

import (
	"context"
	"time"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"
	"sistemagestion/internal/repository"

	"github.com/google/uuid"
)

type ChequeService interface {
	Crear(ctx context.Context, req dto.CrearChequeRequest) (*model.Cheque, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Cheque, error)
	Listar(ctx context.Context, filter dto.ChequeFilter) ([]model.Cheque, int64, error)
	ListarPorVencer(ctx context.Context, dias int) ([]model.Cheque, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarChequeRequest) (*model.Cheque, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type chequeService struct {
	cheques repository.ChequeRepository
}

func NewChequeService(cheques repository.ChequeRepository) ChequeService {
	return &chequeService{cheques: cheques}
}

func (s *chequeService) Crear(ctx context.Context, req dto.CrearChequeRequest) (*model.Cheque, error) {
	if !req.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	if req.ClienteID != nil && req.ProveedorID != nil {
		return nil, ErrContraparteAmbigua
	}

	emision, err := time.Parse("2006-01-02", req.FechaEmision)
	if err != nil {
		return nil, err
	}
	vencimiento, err := time.Parse("2006-01-02", req.FechaVencimiento)
	if err != nil {
		return nil, err
	}

	ch := &model.Cheque{
		Numero:           req.Numero,
		Monto:            req.Monto,
		FechaEmision:     emision,
		FechaVencimiento: vencimiento,
		Banco:            req.Banco,
		Sucursal:         req.Sucursal,
		ClienteID:        req.ClienteID,
		ProveedorID:      req.ProveedorID,
	}
	if err := s.cheques.Create(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *chequeService) Obtener(ctx context.Context, id uuid.UUID) (*model.Cheque, error) {
	ch, err := s.cheques.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrChequeNoEncontrado)
	}
	return ch, nil
}

func (s *chequeService) Listar(ctx context.Context, filter dto.ChequeFilter) ([]model.Cheque, int64, error) {
	return s.cheques.List(ctx, filter)
}

func (s *chequeService) ListarPorVencer(ctx context.Context, dias int) ([]model.Cheque, error) {
	hasta := time.Now().AddDate(0, 0, dias)
	return s.cheques.ListPorVencer(ctx, hasta)
}

// Actualizar edits the descriptive fields of an unused cheque. Consumed
// cheques are frozen, they document a payment that already happened.
func (s *chequeService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarChequeRequest) (*model.Cheque, error) {
	ch, err := s.cheques.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrChequeNoEncontrado)
	}
	if ch.Utilizado {
		return nil, ErrChequeUtilizado
	}

	if req.Numero != nil {
		ch.Numero = req.Numero
	}
	if req.Monto != nil {
		if !req.Monto.IsPositive() {
			return nil, ErrMontoInvalido
		}
		ch.Monto = *req.Monto
	}
	if req.FechaEmision != nil {
		emision, err := time.Parse("2006-01-02", *req.FechaEmision)
		if err != nil {
			return nil, err
		}
		ch.FechaEmision = emision
	}
	if req.FechaVencimiento != nil {
		vencimiento, err := time.Parse("2006-01-02", *req.FechaVencimiento)
		if err != nil {
			return nil, err
		}
		ch.FechaVencimiento = vencimiento
	}
	if req.Banco != nil {
		ch.Banco = req.Banco
	}
	if req.Sucursal != nil {
		ch.Sucursal = req.Sucursal
	}

	if err := s.cheques.Update(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// Eliminar removes an unused cheque. A consumed cheque backs a payment and
// cannot be deleted, the payment must be reversed first.
func (s *chequeService) Eliminar(ctx context.Context, id uuid.UUID) error {
	ch, err := s.cheques.FindByID(ctx, id)
	if err != nil {
		return resolverNotFound(err, ErrChequeNoEncontrado)
	}
	if ch.Utilizado {
		return ErrChequeUtilizado
	}
	return s.cheques.Delete(ctx, id)
}
