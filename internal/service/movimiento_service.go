package service

import (
	"context"
	"errors"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"
	"sistemagestion/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovimientoService interface {
	Crear(ctx context.Context, req dto.CrearMovimientoRequest) (*model.Movimiento, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Movimiento, error)
	Listar(ctx context.Context, filter dto.MovimientoFilter) ([]model.Movimiento, int64, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, nuevoEstado string) (*model.Movimiento, *dto.SaldoContraparte, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type movimientoService struct {
	movimientos repository.MovimientoRepository
	pagos       repository.PagoRepository
	clientes    repository.ClienteRepository
	proveedores repository.ProveedorRepository
	ledger      LedgerService
}

func NewMovimientoService(
	movimientos repository.MovimientoRepository,
	pagos repository.PagoRepository,
	clientes repository.ClienteRepository,
	proveedores repository.ProveedorRepository,
	ledger LedgerService,
) MovimientoService {
	return &movimientoService{
		movimientos: movimientos,
		pagos:       pagos,
		clientes:    clientes,
		proveedores: proveedores,
		ledger:      ledger,
	}
}

// Crear registers a movement in estado PENDIENTE. Pending movements carry no
// balance effect, the account is touched only when the movement completes.
func (s *movimientoService) Crear(ctx context.Context, req dto.CrearMovimientoRequest) (*model.Movimiento, error) {
	tipo, err := NormalizarTipo(req.Tipo)
	if err != nil {
		return nil, err
	}
	if !req.Monto.IsPositive() {
		return nil, ErrMontoInvalido
	}
	if (req.ClienteID == nil) == (req.ProveedorID == nil) {
		return nil, ErrContraparteAmbigua
	}

	if err := s.verificarContraparte(ctx, req.ClienteID, req.ProveedorID); err != nil {
		return nil, err
	}

	m := &model.Movimiento{
		Tipo:        tipo,
		Monto:       req.Monto,
		Descripcion: req.Descripcion,
		Estado:      model.EstadoPendiente,
		TipoPago:    req.TipoPago,
		ClienteID:   req.ClienteID,
		ProveedorID: req.ProveedorID,
	}
	if err := s.movimientos.Create(ctx, m); err != nil {
		return nil, err
	}
	return s.movimientos.FindByID(ctx, m.ID)
}

func (s *movimientoService) verificarContraparte(ctx context.Context, clienteID, proveedorID *uuid.UUID) error {
	if clienteID != nil {
		c, err := s.clientes.FindByID(ctx, *clienteID)
		if err != nil {
			return resolverNotFound(err, ErrContraparteNoEncontrada)
		}
		if !c.Activo {
			return ErrContraparteInactiva
		}
		return nil
	}
	p, err := s.proveedores.FindByID(ctx, *proveedorID)
	if err != nil {
		return resolverNotFound(err, ErrContraparteNoEncontrada)
	}
	if !p.Activo {
		return ErrContraparteInactiva
	}
	return nil
}

func (s *movimientoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Movimiento, error) {
	m, err := s.movimientos.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrMovimientoNoEncontrado)
	}
	return m, nil
}

func (s *movimientoService) Listar(ctx context.Context, filter dto.MovimientoFilter) ([]model.Movimiento, int64, error) {
	return s.movimientos.List(ctx, filter)
}

// CambiarEstado drives the movement state machine. Allowed transitions:
//
//	PENDIENTE -> COMPLETADO   applies the ledger event
//	PENDIENTE -> CANCELADO    no balance effect
//
// COMPLETADO and CANCELADO are terminal: any other request, including a
// repeat of an already-applied transition, fails with ErrTransicionInvalida.
// Reversals happen only through Eliminar. Everything runs in one transaction
// with the movement row locked first.
func (s *movimientoService) CambiarEstado(ctx context.Context, id uuid.UUID, nuevoEstado string) (*model.Movimiento, *dto.SaldoContraparte, error) {
	var saldo *dto.SaldoContraparte

	err := runTx(ctx, s.movimientos.DB(), func(tx *gorm.DB) error {
		m, err := s.movimientos.FindForUpdateTx(tx, id)
		if err != nil {
			return resolverNotFound(err, ErrMovimientoNoEncontrado)
		}

		if m.Estado != model.EstadoPendiente {
			return ErrTransicionInvalida
		}

		switch nuevoEstado {
		case model.EstadoCompletado:
			saldo, err = s.ledger.AplicarEventoTx(tx, eventoDeMovimiento(m))
			if err != nil {
				return err
			}
		case model.EstadoCancelado:
			// nothing hit the ledger yet
		default:
			return ErrTransicionInvalida
		}

		return s.movimientos.UpdateEstadoTx(tx, id, nuevoEstado)
	})
	if err != nil {
		return nil, nil, err
	}

	m, err := s.movimientos.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return m, saldo, nil
}

// Eliminar removes a movement and its payments. Completed amounts are
// reversed first so the account ends as if the movement never existed.
func (s *movimientoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.movimientos.DB(), func(tx *gorm.DB) error {
		m, err := s.movimientos.FindForUpdateTx(tx, id)
		if err != nil {
			return resolverNotFound(err, ErrMovimientoNoEncontrado)
		}

		pagos, err := s.pagos.ListByMovimientoTx(tx, id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		for _, p := range pagos {
			if _, err := s.ledger.RevertirEventoTx(tx, eventoDePago(m, &p)); err != nil {
				return err
			}
			if err := s.pagos.DeleteTx(tx, p.ID); err != nil {
				return err
			}
		}

		if m.Estado == model.EstadoCompletado {
			if _, err := s.ledger.RevertirEventoTx(tx, eventoDeMovimiento(m)); err != nil {
				return err
			}
		}

		return s.movimientos.DeleteTx(tx, id)
	})
}

func eventoDeMovimiento(m *model.Movimiento) EventoLedger {
	return EventoLedger{
		Tipo:        m.Tipo,
		Monto:       m.Monto,
		ClienteID:   m.ClienteID,
		ProveedorID: m.ProveedorID,
	}
}

// eventoDePago builds the ledger event of a payment: same counterparty as the
// parent movement, opposite direction.
func eventoDePago(m *model.Movimiento, p *model.Pago) EventoLedger {
	return EventoLedger{
		Tipo:        TipoInverso(m.Tipo),
		Monto:       p.Monto,
		ClienteID:   m.ClienteID,
		ProveedorID: m.ProveedorID,
		ChequeID:    p.ChequeID,
	}
}
