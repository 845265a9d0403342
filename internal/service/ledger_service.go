package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventoLedger describes a single mutation of a counterparty account.
// Exactly one of ClienteID/ProveedorID must be set. A CREDITO event adds to
// haber, a DEBITO event adds to debe, and saldo is always recomputed as
// haber - debe. When ChequeID is set the cheque is consumed in the same
// transaction.
type EventoLedger struct {
	Tipo        string
	Monto       decimal.Decimal
	ClienteID   *uuid.UUID
	ProveedorID *uuid.UUID
	ChequeID    *uuid.UUID

	// ClaveIdempotencia deduplicates retried submissions. Empty disables the
	// check.
	ClaveIdempotencia string
}

// LedgerService is the only component allowed to write the debe/haber/saldo
// columns. All mutations run under SELECT ... FOR UPDATE on the counterparty
// row so concurrent events serialize instead of losing updates.
type LedgerService interface {
	AplicarEvento(ctx context.Context, ev EventoLedger) (*dto.SaldoContraparte, error)
	AplicarEventoTx(tx *gorm.DB, ev EventoLedger) (*dto.SaldoContraparte, error)
	RevertirEvento(ctx context.Context, ev EventoLedger) (*dto.SaldoContraparte, error)
	RevertirEventoTx(tx *gorm.DB, ev EventoLedger) (*dto.SaldoContraparte, error)
}

type ledgerService struct {
	clientes    repository.ClienteRepository
	proveedores repository.ProveedorRepository
	cheques     repository.ChequeRepository
	rdb         *redis.Client
}

func NewLedgerService(
	clientes repository.ClienteRepository,
	proveedores repository.ProveedorRepository,
	cheques repository.ChequeRepository,
	rdb *redis.Client,
) LedgerService {
	return &ledgerService{clientes: clientes, proveedores: proveedores, cheques: cheques, rdb: rdb}
}

const idemKeyTTL = 24 * time.Hour

// NormalizarTipo maps the accepted spellings of a movement type onto the
// canonical CREDITO/DEBITO pair. A CREDITO records an obligation (venta or
// compra facturada), a DEBITO settles one (cobro or pago). Legacy clients
// still send the old spellings.
func NormalizarTipo(tipo string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(tipo)) {
	case "CREDITO", "CRÉDITO", "VENTA", "COMPRA", "FACTURA":
		return "CREDITO", nil
	case "DEBITO", "DÉBITO", "PAGO", "COBRO":
		return "DEBITO", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrTipoInvalido, tipo)
	}
}

// TipoInverso returns the opposite direction, used when reversing an event or
// when a payment offsets its parent movement.
func TipoInverso(tipo string) string {
	if tipo == "CREDITO" {
		return "DEBITO"
	}
	return "CREDITO"
}

func (s *ledgerService) AplicarEvento(ctx context.Context, ev EventoLedger) (*dto.SaldoContraparte, error) {
	release, err := s.reservarClave(ctx, ev.ClaveIdempotencia)
	if err != nil {
		return nil, err
	}

	var saldo *dto.SaldoContraparte
	err = runTx(ctx, s.clientes.DB(), func(tx *gorm.DB) error {
		var txErr error
		saldo, txErr = s.AplicarEventoTx(tx, ev)
		return txErr
	})
	if err != nil {
		release()
		return nil, err
	}
	return saldo, nil
}

func (s *ledgerService) RevertirEvento(ctx context.Context, ev EventoLedger) (*dto.SaldoContraparte, error) {
	var saldo *dto.SaldoContraparte
	err := runTx(ctx, s.clientes.DB(), func(tx *gorm.DB) error {
		var txErr error
		saldo, txErr = s.RevertirEventoTx(tx, ev)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return saldo, nil
}

// AplicarEventoTx applies ev inside an existing transaction. The counterparty
// row is locked before the balance is read so the read-modify-write cannot
// interleave with a concurrent event on the same account.
func (s *ledgerService) AplicarEventoTx(tx *gorm.DB, ev EventoLedger) (*dto.SaldoContraparte, error) {
	if err := validarEvento(ev); err != nil {
		return nil, err
	}

	if ev.ChequeID != nil {
		if err := s.consumirCheque(tx, *ev.ChequeID); err != nil {
			return nil, err
		}
	}

	return s.aplicarDelta(tx, ev, false)
}

// RevertirEventoTx undoes a previously applied event: the original amounts
// are subtracted from the same columns and a consumed cheque is released.
func (s *ledgerService) RevertirEventoTx(tx *gorm.DB, ev EventoLedger) (*dto.SaldoContraparte, error) {
	if err := validarEvento(ev); err != nil {
		return nil, err
	}

	if ev.ChequeID != nil {
		if err := s.liberarCheque(tx, *ev.ChequeID); err != nil {
			return nil, err
		}
	}

	return s.aplicarDelta(tx, ev, true)
}

func validarEvento(ev EventoLedger) error {
	if !ev.Monto.IsPositive() {
		return ErrMontoInvalido
	}
	if ev.Tipo != "CREDITO" && ev.Tipo != "DEBITO" {
		return fmt.Errorf("%w: %q", ErrTipoInvalido, ev.Tipo)
	}
	if (ev.ClienteID == nil) == (ev.ProveedorID == nil) {
		return ErrContraparteAmbigua
	}
	return nil
}

func (s *ledgerService) aplicarDelta(tx *gorm.DB, ev EventoLedger, reversa bool) (*dto.SaldoContraparte, error) {
	deltaDebe := decimal.Zero
	deltaHaber := decimal.Zero
	if ev.Tipo == "CREDITO" {
		deltaHaber = ev.Monto
	} else {
		deltaDebe = ev.Monto
	}
	if reversa {
		deltaDebe = deltaDebe.Neg()
		deltaHaber = deltaHaber.Neg()
	}

	if ev.ClienteID != nil {
		c, err := s.clientes.FindForUpdateTx(tx, *ev.ClienteID)
		if err != nil {
			return nil, resolverNotFound(err, ErrContraparteNoEncontrada)
		}
		debe := c.Debe.Add(deltaDebe)
		haber := c.Haber.Add(deltaHaber)
		saldo := haber.Sub(debe)
		if debe.IsNegative() || haber.IsNegative() || saldo.IsNegative() {
			return nil, ErrSaldoInsuficiente
		}
		if err := s.clientes.UpdateSaldosTx(tx, c.ID, debe, haber, saldo); err != nil {
			return nil, err
		}
		return &dto.SaldoContraparte{
			ContraparteID: c.ID, Contraparte: c.RazonSocial,
			Debe: debe, Haber: haber, Saldo: saldo,
		}, nil
	}

	p, err := s.proveedores.FindForUpdateTx(tx, *ev.ProveedorID)
	if err != nil {
		return nil, resolverNotFound(err, ErrContraparteNoEncontrada)
	}
	debe := p.Debe.Add(deltaDebe)
	haber := p.Haber.Add(deltaHaber)
	saldo := haber.Sub(debe)
	if debe.IsNegative() || haber.IsNegative() || saldo.IsNegative() {
		return nil, ErrSaldoInsuficiente
	}
	if err := s.proveedores.UpdateSaldosTx(tx, p.ID, debe, haber, saldo); err != nil {
		return nil, err
	}
	return &dto.SaldoContraparte{
		ContraparteID: p.ID, Contraparte: p.RazonSocial,
		Debe: debe, Haber: haber, Saldo: saldo,
	}, nil
}

// consumirCheque locks the cheque row and marks it used. A cheque backs at
// most one payment, so a second consumption attempt fails.
func (s *ledgerService) consumirCheque(tx *gorm.DB, id uuid.UUID) error {
	ch, err := s.cheques.FindForUpdateTx(tx, id)
	if err != nil {
		return resolverNotFound(err, ErrChequeNoEncontrado)
	}
	if ch.Utilizado {
		return ErrChequeUtilizado
	}
	return s.cheques.SetUtilizadoTx(tx, id, true)
}

func (s *ledgerService) liberarCheque(tx *gorm.DB, id uuid.UUID) error {
	_, err := s.cheques.FindForUpdateTx(tx, id)
	if err != nil {
		return resolverNotFound(err, ErrChequeNoEncontrado)
	}
	return s.cheques.SetUtilizadoTx(tx, id, false)
}

// reservarClave takes the idempotency key in redis. The returned release
// func drops the key so a failed transaction can be retried.
func (s *ledgerService) reservarClave(ctx context.Context, clave string) (func(), error) {
	if clave == "" || s.rdb == nil {
		return func() {}, nil
	}
	key := "ledger:evento:" + clave
	ok, err := s.rdb.SetNX(ctx, key, "1", idemKeyTTL).Result()
	if err != nil {
		// Redis being down must not block writes, only dedup is lost
		return func() {}, nil
	}
	if !ok {
		return nil, ErrEventoDuplicado
	}
	return func() { s.rdb.Del(context.Background(), key) }, nil
}

func resolverNotFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
