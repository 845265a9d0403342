package service

import (
	"context"
	"time"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"
	"sistemagestion/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompraService interface {
	Crear(ctx context.Context, req dto.CrearCompraRequest) (*model.Compra, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	Listar(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, nuevoEstado string) (*model.Compra, *dto.SaldoContraparte, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type compraService struct {
	compras     repository.CompraRepository
	proveedores repository.ProveedorRepository
	ledger      LedgerService
}

func NewCompraService(
	compras repository.CompraRepository,
	proveedores repository.ProveedorRepository,
	ledger LedgerService,
) CompraService {
	return &compraService{compras: compras, proveedores: proveedores, ledger: ledger}
}

// Crear registers a purchase in estado PENDIENTE. The supplier account and a
// cheque, when one backs the purchase, are touched only at completion.
func (s *compraService) Crear(ctx context.Context, req dto.CrearCompraRequest) (*model.Compra, error) {
	if !req.Total.IsPositive() {
		return nil, ErrMontoInvalido
	}
	if req.MetodoPago == model.MetodoCheque && req.ChequeID == nil {
		return nil, ErrChequeRequerido
	}
	if req.MetodoPago != model.MetodoCheque {
		req.ChequeID = nil
	}

	p, err := s.proveedores.FindByID(ctx, req.ProveedorID)
	if err != nil {
		return nil, resolverNotFound(err, ErrContraparteNoEncontrada)
	}
	if !p.Activo {
		return nil, ErrContraparteInactiva
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, err
	}

	c := &model.Compra{
		Fecha:         fecha,
		Total:         req.Total,
		ProveedorID:   req.ProveedorID,
		MetodoPago:    req.MetodoPago,
		Estado:        model.EstadoPendiente,
		ChequeID:      req.ChequeID,
		Observaciones: req.Observaciones,
	}
	if err := s.compras.CreateTx(s.compras.DB(), c); err != nil {
		return nil, err
	}
	return s.compras.FindByID(ctx, c.ID)
}

func (s *compraService) Obtener(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	c, err := s.compras.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrCompraNoEncontrada)
	}
	return c, nil
}

func (s *compraService) Listar(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	return s.compras.List(ctx, filter)
}

// CambiarEstado follows the same state machine as movements. Completing a
// purchase debits the supplier account by the total (rejected when the saldo
// does not cover it) and consumes the backing cheque. COMPLETADO and
// CANCELADO are terminal: repeating a transition or moving out of either
// fails with ErrTransicionInvalida; undoing a completed purchase goes
// through Eliminar.
func (s *compraService) CambiarEstado(ctx context.Context, id uuid.UUID, nuevoEstado string) (*model.Compra, *dto.SaldoContraparte, error) {
	var saldo *dto.SaldoContraparte

	err := runTx(ctx, s.compras.DB(), func(tx *gorm.DB) error {
		c, err := s.compras.FindForUpdateTx(tx, id)
		if err != nil {
			return resolverNotFound(err, ErrCompraNoEncontrada)
		}

		if c.Estado != model.EstadoPendiente {
			return ErrTransicionInvalida
		}

		switch nuevoEstado {
		case model.EstadoCompletado:
			saldo, err = s.ledger.AplicarEventoTx(tx, eventoDeCompra(c))
			if err != nil {
				return err
			}
		case model.EstadoCancelado:
			// never reached the ledger
		default:
			return ErrTransicionInvalida
		}

		return s.compras.UpdateEstadoTx(tx, id, nuevoEstado)
	})
	if err != nil {
		return nil, nil, err
	}

	c, err := s.compras.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return c, saldo, nil
}

func (s *compraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.compras.DB(), func(tx *gorm.DB) error {
		c, err := s.compras.FindForUpdateTx(tx, id)
		if err != nil {
			return resolverNotFound(err, ErrCompraNoEncontrada)
		}
		if c.Estado == model.EstadoCompletado {
			if _, err := s.ledger.RevertirEventoTx(tx, eventoDeCompra(c)); err != nil {
				return err
			}
		}
		return s.compras.DeleteTx(tx, id)
	})
}

// eventoDeCompra builds the settlement event of a purchase: completion pays
// the supplier out of the accumulated haber, so the direction is DEBITO and
// the insufficient-saldo guard applies.
func eventoDeCompra(c *model.Compra) EventoLedger {
	return EventoLedger{
		Tipo:        "DEBITO",
		Monto:       c.Total,
		ProveedorID: &c.ProveedorID,
		ChequeID:    c.ChequeID,
	}
}
