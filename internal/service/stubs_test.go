package service_test

import (
	"context"
	"errors"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"
	"tiendaropa/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil so runTx runs the callback
// directly, without a real transaction.

// ── Producto ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) add(p model.Producto) uuid.UUID {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := p
	r.productos[p.ID] = &cp
	return p.ID
}

func (r *stubProductoRepo) stock(id uuid.UUID) int { return r.productos[id].Stock }

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) AjustarStock(_ context.Context, id uuid.UUID, delta int) (bool, error) {
	return r.ajustar(id, delta)
}

func (r *stubProductoRepo) AjustarStockTx(_ *gorm.DB, id uuid.UUID, delta int) (bool, error) {
	return r.ajustar(id, delta)
}

func (r *stubProductoRepo) ajustar(id uuid.UUID, delta int) (bool, error) {
	p, ok := r.productos[id]
	if !ok || p.Stock+delta < 0 {
		return false, nil
	}
	p.Stock += delta
	return true, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Cliente ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) add(c model.Cliente) uuid.UUID {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := c
	r.clientes[c.ID] = &cp
	return c.ID
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

func (r *stubClienteRepo) FindByUsuario(_ context.Context, usuario string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Usuario == usuario {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) List(_ context.Context, _ dto.ListQuery) ([]model.Cliente, int64, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Pedido ───────────────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Detalles {
		if p.Detalles[i].ID == uuid.Nil {
			p.Detalles[i].ID = uuid.New()
		}
		p.Detalles[i].PedidoID = p.ID
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	cp.Detalles = append([]model.DetallePedido(nil), p.Detalles...)
	return &cp, nil
}

func (r *stubPedidoRepo) List(_ context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error) {
	out := make([]model.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		if filter.Estatus != "" && p.Estatus != filter.Estatus {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPedidoRepo) UpdateTx(_ *gorm.DB, p *model.Pedido) error {
	stored, ok := r.pedidos[p.ID]
	if !ok {
		return errors.New("pedido no existe")
	}
	detalles := stored.Detalles
	cp := *p
	cp.Detalles = detalles
	r.pedidos[p.ID] = &cp
	return nil
}

func (r *stubPedidoRepo) ReplaceDetallesTx(_ *gorm.DB, pedidoID uuid.UUID, detalles []model.DetallePedido) error {
	p, ok := r.pedidos[pedidoID]
	if !ok {
		return errors.New("pedido no existe")
	}
	for i := range detalles {
		if detalles[i].ID == uuid.Nil {
			detalles[i].ID = uuid.New()
		}
	}
	p.Detalles = detalles
	return nil
}

func (r *stubPedidoRepo) DeleteTx(_ *gorm.DB, pedidoID uuid.UUID) error {
	delete(r.pedidos, pedidoID)
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── Insumo ───────────────────────────────────────────────────────────────────

type stubInsumoRepo struct {
	insumos map[uuid.UUID]*model.Insumo
}

func newStubInsumoRepo() *stubInsumoRepo {
	return &stubInsumoRepo{insumos: make(map[uuid.UUID]*model.Insumo)}
}

func (r *stubInsumoRepo) add(i model.Insumo) uuid.UUID {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	cp := i
	r.insumos[i.ID] = &cp
	return i.ID
}

func (r *stubInsumoRepo) stock(id uuid.UUID) decimal.Decimal { return r.insumos[id].Stock }

func (r *stubInsumoRepo) Create(_ context.Context, i *model.Insumo) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	r.insumos[i.ID] = i
	return nil
}

func (r *stubInsumoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Insumo, error) {
	i, ok := r.insumos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *stubInsumoRepo) List(_ context.Context, _ dto.ListQuery) ([]model.Insumo, int64, error) {
	out := make([]model.Insumo, 0, len(r.insumos))
	for _, i := range r.insumos {
		out = append(out, *i)
	}
	return out, int64(len(out)), nil
}

func (r *stubInsumoRepo) Update(_ context.Context, i *model.Insumo) error {
	r.insumos[i.ID] = i
	return nil
}

func (r *stubInsumoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.insumos, id)
	return nil
}

func (r *stubInsumoRepo) AjustarStock(_ context.Context, id uuid.UUID, delta decimal.Decimal) (bool, error) {
	i, ok := r.insumos[id]
	if !ok || i.Stock.Add(delta).IsNegative() {
		return false, nil
	}
	i.Stock = i.Stock.Add(delta)
	return true, nil
}

func (r *stubInsumoRepo) DB() *gorm.DB { return nil }

var _ repository.InsumoRepository = (*stubInsumoRepo)(nil)

// ── Compras y usos ───────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras []model.CompraInsumo
}

func (r *stubCompraRepo) Create(_ context.Context, c *model.CompraInsumo) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.compras = append(r.compras, *c)
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CompraInsumo, error) {
	for i := range r.compras {
		if r.compras[i].ID == id {
			return &r.compras[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCompraRepo) List(_ context.Context, _ dto.ListQuery) ([]model.CompraInsumo, int64, error) {
	return r.compras, int64(len(r.compras)), nil
}

func (r *stubCompraRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

var _ repository.CompraInsumoRepository = (*stubCompraRepo)(nil)

type stubUsoRepo struct {
	usos []model.UsoInsumo
}

func (r *stubUsoRepo) Create(_ context.Context, u *model.UsoInsumo) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usos = append(r.usos, *u)
	return nil
}

func (r *stubUsoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.UsoInsumo, error) {
	for i := range r.usos {
		if r.usos[i].ID == id {
			return &r.usos[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsoRepo) List(_ context.Context, _ dto.ListQuery) ([]model.UsoInsumo, int64, error) {
	return r.usos, int64(len(r.usos)), nil
}

func (r *stubUsoRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

var _ repository.UsoInsumoRepository = (*stubUsoRepo)(nil)
