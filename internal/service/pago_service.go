package service

import (
	"context"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"
	"sistemagestion/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PagoService interface {
	Crear(ctx context.Context, req dto.CrearPagoRequest) (*model.Pago, *dto.SaldoContraparte, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Pago, error)
	ListarPorMovimiento(ctx context.Context, movimientoID uuid.UUID) ([]model.Pago, error)
	Eliminar(ctx context.Context, id uuid.UUID) (*dto.SaldoContraparte, error)
}

type pagoService struct {
	pagos       repository.PagoRepository
	movimientos repository.MovimientoRepository
	ledger      LedgerService
}

func NewPagoService(
	pagos repository.PagoRepository,
	movimientos repository.MovimientoRepository,
	ledger LedgerService,
) PagoService {
	return &pagoService{pagos: pagos, movimientos: movimientos, ledger: ledger}
}

// Crear registers a payment against a completed movement and applies its
// ledger event in the opposite direction of the parent. The parent row is
// locked so two concurrent payments cannot both pass the remaining-amount
// check.
func (s *pagoService) Crear(ctx context.Context, req dto.CrearPagoRequest) (*model.Pago, *dto.SaldoContraparte, error) {
	if !req.Monto.IsPositive() {
		return nil, nil, ErrMontoInvalido
	}
	if req.MetodoPago == model.MetodoCheque && req.ChequeID == nil {
		return nil, nil, ErrChequeRequerido
	}
	if req.MetodoPago != model.MetodoCheque {
		req.ChequeID = nil
	}

	var pago *model.Pago
	var saldo *dto.SaldoContraparte

	err := runTx(ctx, s.pagos.DB(), func(tx *gorm.DB) error {
		m, err := s.movimientos.FindForUpdateTx(tx, req.MovimientoID)
		if err != nil {
			return resolverNotFound(err, ErrMovimientoNoEncontrado)
		}
		if m.Estado != model.EstadoCompletado {
			return ErrMovimientoCerrado
		}

		pagados, err := s.totalPagadoTx(tx, m.ID)
		if err != nil {
			return err
		}
		if pagados.Add(req.Monto).GreaterThan(m.Monto) {
			return ErrPagoExcedeMonto
		}

		pago = &model.Pago{
			MovimientoID: m.ID,
			Monto:        req.Monto,
			MetodoPago:   req.MetodoPago,
			ChequeID:     req.ChequeID,
			Observacion:  req.Observacion,
		}
		if err := s.pagos.CreateTx(tx, pago); err != nil {
			return err
		}

		saldo, err = s.ledger.AplicarEventoTx(tx, eventoDePago(m, pago))
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return pago, saldo, nil
}

// totalPagadoTx sums the existing payments inside the transaction that holds
// the movement row lock, so the remaining-amount check sees a stable set.
func (s *pagoService) totalPagadoTx(tx *gorm.DB, movimientoID uuid.UUID) (decimal.Decimal, error) {
	pagos, err := s.pagos.ListByMovimientoTx(tx, movimientoID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range pagos {
		total = total.Add(p.Monto)
	}
	return total, nil
}

func (s *pagoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Pago, error) {
	p, err := s.pagos.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrPagoNoEncontrado)
	}
	return p, nil
}

func (s *pagoService) ListarPorMovimiento(ctx context.Context, movimientoID uuid.UUID) ([]model.Pago, error) {
	return s.pagos.ListByMovimiento(ctx, movimientoID)
}

// Eliminar undoes a payment: the ledger event is reversed, a consumed cheque
// becomes available again and the row is removed.
func (s *pagoService) Eliminar(ctx context.Context, id uuid.UUID) (*dto.SaldoContraparte, error) {
	var saldo *dto.SaldoContraparte

	err := runTx(ctx, s.pagos.DB(), func(tx *gorm.DB) error {
		p, err := s.pagos.FindByID(ctx, id)
		if err != nil {
			return resolverNotFound(err, ErrPagoNoEncontrado)
		}
		m, err := s.movimientos.FindForUpdateTx(tx, p.MovimientoID)
		if err != nil {
			return resolverNotFound(err, ErrMovimientoNoEncontrado)
		}

		saldo, err = s.ledger.RevertirEventoTx(tx, eventoDePago(m, p))
		if err != nil {
			return err
		}
		return s.pagos.DeleteTx(tx, id)
	})
	if err != nil {
		return nil, err
	}
	return saldo, nil
}
