package service_test

import (
	"context"
	"testing"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type compraEnv struct {
	svc         service.CompraService
	compras     *stubCompraRepo
	proveedores *stubProveedorRepo
	productos   *stubProductoRepo
	ledger      *stubMovimientoRepo
}

func newCompraEnv() *compraEnv {
	productos := newStubProductoRepo()
	compras := newStubCompraRepo()
	proveedores := newStubProveedorRepo()
	ledger := &stubMovimientoRepo{}
	inventario := service.NewInventarioService(productos, ledger)

	return &compraEnv{
		svc:         service.NewCompraService(compras, proveedores, inventario),
		compras:     compras,
		proveedores: proveedores,
		productos:   productos,
		ledger:      ledger,
	}
}

func seedProveedor(r *stubProveedorRepo, razon string) *model.Proveedor {
	p := &model.Proveedor{ID: uuid.New(), RazonSocial: razon}
	r.proveedores[p.ID] = p
	return p
}

func TestRegistrarCompra_ReponeStockYPromedio(t *testing.T) {
	env := newCompraEnv()
	prov := seedProveedor(env.proveedores, "Frigorífico Norte")
	carne := seedProducto(env.productos, "Carne molida", "10", "10.00", false)

	resp, err := env.svc.RegistrarCompra(context.Background(), uuid.New(), dto.RegistrarCompraRequest{
		IDProveedor: prov.ID.String(),
		Detalles: []dto.ItemCompraRequest{
			{IDProducto: carne.ID.String(), Cantidad: dec("10"), PrecioUnitario: dec("20.00")},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(dec("200.00")), "total = %s", resp.Total)
	require.Len(t, resp.Detalles, 1)
	assert.True(t, resp.Detalles[0].SubTotal.Equal(dec("200.00")))

	// Stock repuesto y costo promedio ponderado: (10×10 + 10×20) / 20 = 15.
	p := env.productos.productos[carne.ID]
	assert.True(t, p.StockActual.Equal(dec("20")))
	assert.True(t, p.CostoUnitarioPromedio.Equal(dec("15.00")))

	// Movimiento positivo de tipo compra, referenciando la compra.
	require.Len(t, env.ledger.movimientos, 1)
	m := env.ledger.movimientos[0]
	assert.Equal(t, "compra", m.Tipo)
	assert.True(t, m.Cantidad.Equal(dec("10")))
	require.NotNil(t, m.ReferenciaID)
	assert.Equal(t, resp.ID, m.ReferenciaID.String())
}

func TestRegistrarCompra_ProveedorInexistente(t *testing.T) {
	env := newCompraEnv()
	carne := seedProducto(env.productos, "Carne molida", "10", "10.00", false)

	_, err := env.svc.RegistrarCompra(context.Background(), uuid.New(), dto.RegistrarCompraRequest{
		IDProveedor: uuid.NewString(),
		Detalles: []dto.ItemCompraRequest{
			{IDProducto: carne.ID.String(), Cantidad: dec("1"), PrecioUnitario: dec("10.00")},
		},
	})
	assert.ErrorContains(t, err, "Proveedor no encontrado")
}

func TestRegistrarCompra_CantidadNoPositiva(t *testing.T) {
	env := newCompraEnv()
	prov := seedProveedor(env.proveedores, "Distribuidora Sur")
	carne := seedProducto(env.productos, "Carne molida", "10", "10.00", false)

	_, err := env.svc.RegistrarCompra(context.Background(), uuid.New(), dto.RegistrarCompraRequest{
		IDProveedor: prov.ID.String(),
		Detalles: []dto.ItemCompraRequest{
			{IDProducto: carne.ID.String(), Cantidad: dec("0"), PrecioUnitario: dec("10.00")},
		},
	})
	assert.ErrorContains(t, err, "cantidad debe ser positiva")
}

func TestRegistrarCompra_VariasLineas(t *testing.T) {
	env := newCompraEnv()
	prov := seedProveedor(env.proveedores, "Mercado Central")
	carne := seedProducto(env.productos, "Carne molida", "5", "10.00", false)
	pan := seedProducto(env.productos, "Pan", "10", "0.50", false)

	resp, err := env.svc.RegistrarCompra(context.Background(), uuid.New(), dto.RegistrarCompraRequest{
		IDProveedor: prov.ID.String(),
		Detalles: []dto.ItemCompraRequest{
			{IDProducto: carne.ID.String(), Cantidad: dec("5"), PrecioUnitario: dec("12.00")},
			{IDProducto: pan.ID.String(), Cantidad: dec("20"), PrecioUnitario: dec("0.40")},
		},
	})
	require.NoError(t, err)

	// 5×12.00 + 20×0.40 = 68.00
	assert.True(t, resp.Total.Equal(dec("68.00")))
	assert.True(t, env.productos.productos[carne.ID].StockActual.Equal(dec("10")))
	assert.True(t, env.productos.productos[pan.ID].StockActual.Equal(dec("30")))
	assert.Len(t, env.ledger.movimientos, 2)
}
