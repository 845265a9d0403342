package service

// In-memory repository stubs. DB() returns nil so runTx executes the
// transaction body directly and every *Tx method receives a nil tx it can
// safely ignore.

import (
	"context"
	"errors"
	"time"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Cliente ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if c.Activo {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if c, ok := r.clientes[id]; ok {
		c.Activo = false
	}
	return nil
}

func (r *stubClienteRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if c, ok := r.clientes[id]; ok {
		c.Activo = true
	}
	return nil
}

func (r *stubClienteRepo) FindForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) UpdateSaldosTx(_ *gorm.DB, id uuid.UUID, debe, haber, saldo decimal.Decimal) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Debe, c.Haber, c.Saldo = debe, haber, saldo
	return nil
}

func (r *stubClienteRepo) DB() *gorm.DB { return nil }

// ── Proveedor ────────────────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		if p.Activo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.proveedores[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubProveedorRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.proveedores[id]; ok {
		p.Activo = true
	}
	return nil
}

func (r *stubProveedorRepo) FindForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) UpdateSaldosTx(_ *gorm.DB, id uuid.UUID, debe, haber, saldo decimal.Decimal) error {
	p, ok := r.proveedores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Debe, p.Haber, p.Saldo = debe, haber, saldo
	return nil
}

func (r *stubProveedorRepo) DB() *gorm.DB { return nil }

// ── Cheque ───────────────────────────────────────────────────────────────────

type stubChequeRepo struct {
	cheques map[uuid.UUID]*model.Cheque
}

func newStubChequeRepo() *stubChequeRepo {
	return &stubChequeRepo{cheques: make(map[uuid.UUID]*model.Cheque)}
}

func (r *stubChequeRepo) Create(_ context.Context, ch *model.Cheque) error {
	if ch.ID == uuid.Nil {
		ch.ID = uuid.New()
	}
	r.cheques[ch.ID] = ch
	return nil
}

func (r *stubChequeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cheque, error) {
	ch, ok := r.cheques[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ch, nil
}

func (r *stubChequeRepo) List(_ context.Context, filter dto.ChequeFilter) ([]model.Cheque, int64, error) {
	var out []model.Cheque
	for _, ch := range r.cheques {
		if filter.Disponibles && ch.Utilizado {
			continue
		}
		out = append(out, *ch)
	}
	return out, int64(len(out)), nil
}

func (r *stubChequeRepo) ListPorVencer(_ context.Context, hasta time.Time) ([]model.Cheque, error) {
	var out []model.Cheque
	for _, ch := range r.cheques {
		if !ch.Utilizado && !ch.FechaVencimiento.After(hasta) {
			out = append(out, *ch)
		}
	}
	return out, nil
}

func (r *stubChequeRepo) Update(_ context.Context, ch *model.Cheque) error {
	r.cheques[ch.ID] = ch
	return nil
}

func (r *stubChequeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.cheques, id)
	return nil
}

func (r *stubChequeRepo) FindForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Cheque, error) {
	ch, ok := r.cheques[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ch, nil
}

func (r *stubChequeRepo) SetUtilizadoTx(_ *gorm.DB, id uuid.UUID, utilizado bool) error {
	ch, ok := r.cheques[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ch.Utilizado = utilizado
	return nil
}

// ── Movimiento ───────────────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos map[uuid.UUID]*model.Movimiento
}

func newStubMovimientoRepo() *stubMovimientoRepo {
	return &stubMovimientoRepo{movimientos: make(map[uuid.UUID]*model.Movimiento)}
}

func (r *stubMovimientoRepo) Create(_ context.Context, m *model.Movimiento) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movimientos[m.ID] = m
	return nil
}

func (r *stubMovimientoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Movimiento, error) {
	m, ok := r.movimientos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMovimientoRepo) List(_ context.Context, filter dto.MovimientoFilter) ([]model.Movimiento, int64, error) {
	var out []model.Movimiento
	for _, m := range r.movimientos {
		if filter.Estado != "" && filter.Estado != "all" && m.Estado != filter.Estado {
			continue
		}
		if filter.ClienteID != "" && (m.ClienteID == nil || m.ClienteID.String() != filter.ClienteID) {
			continue
		}
		if filter.ProveedorID != "" && (m.ProveedorID == nil || m.ProveedorID.String() != filter.ProveedorID) {
			continue
		}
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMovimientoRepo) FindForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Movimiento, error) {
	m, ok := r.movimientos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMovimientoRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	m, ok := r.movimientos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Estado = estado
	return nil
}

func (r *stubMovimientoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.movimientos, id)
	return nil
}

func (r *stubMovimientoRepo) DB() *gorm.DB { return nil }

// ── Pago ─────────────────────────────────────────────────────────────────────

type stubPagoRepo struct {
	pagos map[uuid.UUID]*model.Pago
}

func newStubPagoRepo() *stubPagoRepo {
	return &stubPagoRepo{pagos: make(map[uuid.UUID]*model.Pago)}
}

func (r *stubPagoRepo) CreateTx(_ *gorm.DB, p *model.Pago) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.pagos[p.ID] = p
	return nil
}

func (r *stubPagoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pago, error) {
	p, ok := r.pagos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPagoRepo) ListByMovimiento(_ context.Context, movimientoID uuid.UUID) ([]model.Pago, error) {
	var out []model.Pago
	for _, p := range r.pagos {
		if p.MovimientoID == movimientoID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPagoRepo) ListByMovimientoTx(_ *gorm.DB, movimientoID uuid.UUID) ([]model.Pago, error) {
	return r.ListByMovimiento(context.Background(), movimientoID)
}

func (r *stubPagoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.pagos, id)
	return nil
}

func (r *stubPagoRepo) DB() *gorm.DB { return nil }

// ── Compra ───────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras map[uuid.UUID]*model.Compra
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{compras: make(map[uuid.UUID]*model.Compra)}
}

func (r *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCompraRepo) List(_ context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	var out []model.Compra
	for _, c := range r.compras {
		if filter.Estado != "" && filter.Estado != "all" && c.Estado != filter.Estado {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCompraRepo) FindForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCompraRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	c, ok := r.compras[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Estado = estado
	return nil
}

func (r *stubCompraRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.compras, id)
	return nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

// ── Usuario ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = true
	}
	return nil
}
