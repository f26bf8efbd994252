package service_test

import (
	"context"
	"fmt"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. The services open no real transaction when
// DB() returns nil, so every *gorm.DB parameter below is ignored.

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── Productos ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

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
	return p, nil
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

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) SetStockTx(_ *gorm.DB, id uuid.UUID, stock decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual = stock
	return nil
}

func (r *stubProductoRepo) SetStockYCostoTx(_ *gorm.DB, id uuid.UUID, stock, costo decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockActual = stock
	p.CostoUnitarioPromedio = costo
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

func seedProducto(r *stubProductoRepo, nombre, stock, costo string, vendible bool) *model.Producto {
	p := &model.Producto{
		ID:                    uuid.New(),
		Nombre:                nombre,
		UnidadMedida:          "unidad",
		StockActual:           dec(stock),
		StockMinimo:           dec("1"),
		CostoUnitarioPromedio: dec(costo),
		EsVendible:            vendible,
	}
	r.productos[p.ID] = p
	return p
}

// ── Recetas ───────────────────────────────────────────────────────────────────

type stubRecetaRepo struct {
	recetas map[uuid.UUID]*model.Receta
	// productos resolves Ingredientes[i].Producto on reads, like the Preload
	// of the real repository.
	productos *stubProductoRepo
}

func newStubRecetaRepo(productos *stubProductoRepo) *stubRecetaRepo {
	return &stubRecetaRepo{recetas: make(map[uuid.UUID]*model.Receta), productos: productos}
}

func (r *stubRecetaRepo) hydrate(rec *model.Receta) *model.Receta {
	for i := range rec.Ingredientes {
		if p, ok := r.productos.productos[rec.Ingredientes[i].IDProducto]; ok {
			rec.Ingredientes[i].Producto = p
		}
	}
	return rec
}

func (r *stubRecetaRepo) Create(_ context.Context, rec *model.Receta) error {
	return r.CreateTx(nil, rec)
}

func (r *stubRecetaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Receta, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubRecetaRepo) FindByNombre(_ context.Context, nombre string) (*model.Receta, error) {
	for _, rec := range r.recetas {
		if rec.NombreReceta == nombre {
			return rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRecetaRepo) List(_ context.Context) ([]model.Receta, error) {
	out := make([]model.Receta, 0, len(r.recetas))
	for _, rec := range r.recetas {
		out = append(out, *r.hydrate(rec))
	}
	return out, nil
}

func (r *stubRecetaRepo) Update(_ context.Context, rec *model.Receta) error {
	stored, ok := r.recetas[rec.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ingredientes := stored.Ingredientes
	*stored = *rec
	if rec.Ingredientes == nil {
		stored.Ingredientes = ingredientes
	}
	return nil
}

func (r *stubRecetaRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.recetas, id)
	return nil
}

func (r *stubRecetaRepo) CreateTx(_ *gorm.DB, rec *model.Receta) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	for i := range rec.Ingredientes {
		rec.Ingredientes[i].IDReceta = rec.ID
	}
	r.recetas[rec.ID] = rec
	return nil
}

// FindByIDTx returns a copy: the real repository materializes a fresh row per
// query, and services mutate the result before saving it back.
func (r *stubRecetaRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Receta, error) {
	rec, ok := r.recetas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.hydrate(rec)
	cp := *rec
	cp.Ingredientes = append([]model.DetalleReceta(nil), rec.Ingredientes...)
	return &cp, nil
}

func (r *stubRecetaRepo) ReplaceDetallesTx(_ *gorm.DB, recetaID uuid.UUID, detalles []model.DetalleReceta) error {
	rec, ok := r.recetas[recetaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range detalles {
		detalles[i].IDReceta = recetaID
	}
	rec.Ingredientes = detalles
	return nil
}

func (r *stubRecetaRepo) UpdateCostoTx(_ *gorm.DB, id uuid.UUID, costo decimal.Decimal) error {
	rec, ok := r.recetas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rec.CostoActual = costo
	return nil
}

func (r *stubRecetaRepo) DB() *gorm.DB { return nil }

var _ repository.RecetaRepository = (*stubRecetaRepo)(nil)

// ── Ventas ────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Venta, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubVentaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Estado = estado
	return nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Clientes ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	return r.CreateTx(nil, c)
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubClienteRepo) FindByNit(_ context.Context, nit string) (*model.Cliente, error) {
	return r.FindByNitTx(nil, nit)
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

func (r *stubClienteRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) FindByNitTx(_ *gorm.DB, nit string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.NitCI != nil && *c.NitCI == nit {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) CreateTx(_ *gorm.DB, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) DB() *gorm.DB { return nil }

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── Mesas ─────────────────────────────────────────────────────────────────────

type stubMesaRepo struct {
	mesas map[uuid.UUID]*model.Mesa
}

func newStubMesaRepo() *stubMesaRepo {
	return &stubMesaRepo{mesas: make(map[uuid.UUID]*model.Mesa)}
}

func (r *stubMesaRepo) Create(_ context.Context, m *model.Mesa) error {
	for _, existing := range r.mesas {
		if existing.NumeroMesa == m.NumeroMesa {
			return fmt.Errorf("duplicate key: numero_mesa %d", m.NumeroMesa)
		}
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.mesas[m.ID] = m
	return nil
}

func (r *stubMesaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Mesa, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubMesaRepo) List(_ context.Context) ([]model.Mesa, error) {
	out := make([]model.Mesa, 0, len(r.mesas))
	for _, m := range r.mesas {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMesaRepo) Update(_ context.Context, m *model.Mesa) error {
	r.mesas[m.ID] = m
	return nil
}

func (r *stubMesaRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.mesas, id)
	return nil
}

func (r *stubMesaRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	return r.UpdateEstadoTx(nil, id, estado)
}

func (r *stubMesaRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Mesa, error) {
	m, ok := r.mesas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMesaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	m, ok := r.mesas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Estado = estado
	return nil
}

func (r *stubMesaRepo) DB() *gorm.DB { return nil }

var _ repository.MesaRepository = (*stubMesaRepo)(nil)

func seedMesa(r *stubMesaRepo, numero int, estado string) *model.Mesa {
	m := &model.Mesa{ID: uuid.New(), NumeroMesa: numero, Capacidad: 4, Estado: estado}
	r.mesas[m.ID] = m
	return m
}

// ── Compras ───────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras map[uuid.UUID]*model.Compra
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{compras: make(map[uuid.UUID]*model.Compra)}
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCompraRepo) List(_ context.Context) ([]model.Compra, error) {
	out := make([]model.Compra, 0, len(r.compras))
	for _, c := range r.compras {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompraRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.compras, id)
	return nil
}

func (r *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.compras[c.ID] = c
	return nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

// ── Proveedores ───────────────────────────────────────────────────────────────

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
	out := make([]model.Proveedor, 0, len(r.proveedores))
	for _, p := range r.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.proveedores, id)
	return nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── Movimientos de stock ──────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoStock
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoStock) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) ListByProducto(_ context.Context, productoID uuid.UUID, _ int) ([]model.MovimientoStock, error) {
	var out []model.MovimientoStock
	for _, m := range r.movimientos {
		if m.IDProducto == productoID {
			out = append(out, m)
		}
	}
	return out, nil
}

var _ repository.MovimientoStockRepository = (*stubMovimientoRepo)(nil)
