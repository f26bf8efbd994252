package service_test

import (
	"context"
	"testing"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartaSpy counts invalidations of the cached menu.
type cartaSpy struct{ invalidations int }

func (s *cartaSpy) Invalidate(_ context.Context) { s.invalidations++ }

func newRecetaEnv() (service.RecetaService, *stubRecetaRepo, *stubProductoRepo, *cartaSpy) {
	productos := newStubProductoRepo()
	recetas := newStubRecetaRepo(productos)
	spy := &cartaSpy{}
	return service.NewRecetaService(recetas, productos, spy), recetas, productos, spy
}

func TestCrearReceta_CalculaCosto(t *testing.T) {
	svc, _, productos, spy := newRecetaEnv()
	carne := seedProducto(productos, "Carne molida", "5.000", "10.00", false)
	pan := seedProducto(productos, "Pan de hamburguesa", "10", "0.50", false)

	resp, err := svc.Crear(context.Background(), dto.CrearRecetaRequest{
		NombreReceta:      "Hamburguesa clásica",
		PrecioVentaActual: dec("10.00"),
		Detalles: []dto.ItemRecetaRequest{
			{IDProducto: carne.ID.String(), CantidadConsumida: dec("0.200"), UnidadConsumo: "kg"},
			{IDProducto: pan.ID.String(), CantidadConsumida: dec("1"), UnidadConsumo: "unidad"},
		},
	})
	require.NoError(t, err)

	// 0.200 × 10.00 + 1 × 0.50 = 2.50
	assert.True(t, resp.CostoActual.Equal(dec("2.50")), "costo = %s", resp.CostoActual)
	assert.Len(t, resp.Ingredientes, 2)
	assert.Equal(t, 1, spy.invalidations)
}

func TestCrearReceta_IngredienteVendibleRechazado(t *testing.T) {
	svc, _, productos, _ := newRecetaEnv()
	cerveza := seedProducto(productos, "Cerveza Paceña 620ml", "24", "8.00", true)

	_, err := svc.Crear(context.Background(), dto.CrearRecetaRequest{
		NombreReceta:      "Michelada",
		PrecioVentaActual: dec("18.00"),
		Detalles: []dto.ItemRecetaRequest{
			{IDProducto: cerveza.ID.String(), CantidadConsumida: dec("1"), UnidadConsumo: "unidad"},
		},
	})
	assert.ErrorContains(t, err, "no puede usarse como ingrediente")
}

func TestCrearReceta_NombreDuplicado(t *testing.T) {
	svc, _, productos, _ := newRecetaEnv()
	pan := seedProducto(productos, "Pan", "10", "0.50", false)

	req := dto.CrearRecetaRequest{
		NombreReceta:      "Sandwich",
		PrecioVentaActual: dec("8.00"),
		Detalles: []dto.ItemRecetaRequest{
			{IDProducto: pan.ID.String(), CantidadConsumida: dec("2"), UnidadConsumo: "unidad"},
		},
	}
	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), req)
	assert.ErrorContains(t, err, "Ya existe una receta")
}

func TestCrearReceta_IngredienteInexistente(t *testing.T) {
	svc, _, _, _ := newRecetaEnv()

	_, err := svc.Crear(context.Background(), dto.CrearRecetaRequest{
		NombreReceta:      "Fantasma",
		PrecioVentaActual: dec("5.00"),
		Detalles: []dto.ItemRecetaRequest{
			{IDProducto: uuid.NewString(), CantidadConsumida: dec("1"), UnidadConsumo: "unidad"},
		},
	})
	assert.ErrorContains(t, err, "no encontrado")
}

func TestActualizarReceta_ReemplazaIngredientesYRecalcula(t *testing.T) {
	svc, _, productos, spy := newRecetaEnv()
	carne := seedProducto(productos, "Carne molida", "5.000", "10.00", false)
	queso := seedProducto(productos, "Queso", "3.000", "20.00", false)

	resp, err := svc.Crear(context.Background(), dto.CrearRecetaRequest{
		NombreReceta:      "Hamburguesa",
		PrecioVentaActual: dec("10.00"),
		Detalles: []dto.ItemRecetaRequest{
			{IDProducto: carne.ID.String(), CantidadConsumida: dec("0.200"), UnidadConsumo: "kg"},
		},
	})
	require.NoError(t, err)
	require.True(t, resp.CostoActual.Equal(dec("2.00")))

	// Reemplazo completo: carne + queso.
	resp, err = svc.Actualizar(context.Background(), uuid.MustParse(resp.ID), dto.ActualizarRecetaRequest{
		Detalles: []dto.ItemRecetaRequest{
			{IDProducto: carne.ID.String(), CantidadConsumida: dec("0.200"), UnidadConsumo: "kg"},
			{IDProducto: queso.ID.String(), CantidadConsumida: dec("0.050"), UnidadConsumo: "kg"},
		},
	})
	require.NoError(t, err)

	// 2.00 + 0.050 × 20.00 = 3.00
	assert.True(t, resp.CostoActual.Equal(dec("3.00")), "costo = %s", resp.CostoActual)
	assert.Len(t, resp.Ingredientes, 2)
	assert.Equal(t, 2, spy.invalidations)
}

func TestActualizarReceta_SoloCabeceraConservaIngredientes(t *testing.T) {
	svc, _, productos, _ := newRecetaEnv()
	carne := seedProducto(productos, "Carne molida", "5.000", "10.00", false)

	resp, err := svc.Crear(context.Background(), dto.CrearRecetaRequest{
		NombreReceta:      "Hamburguesa",
		PrecioVentaActual: dec("10.00"),
		Detalles: []dto.ItemRecetaRequest{
			{IDProducto: carne.ID.String(), CantidadConsumida: dec("0.200"), UnidadConsumo: "kg"},
		},
	})
	require.NoError(t, err)

	precio := dec("12.00")
	resp, err = svc.Actualizar(context.Background(), uuid.MustParse(resp.ID), dto.ActualizarRecetaRequest{
		PrecioVentaActual: &precio,
	})
	require.NoError(t, err)

	assert.True(t, resp.PrecioVentaActual.Equal(dec("12.00")))
	assert.Len(t, resp.Ingredientes, 1)
	assert.True(t, resp.CostoActual.Equal(dec("2.00")))
}

func TestCalcularCosto_RecetaInexistenteValeCero(t *testing.T) {
	svc, _, _, _ := newRecetaEnv()

	costo, err := svc.CalcularCostoTx(nil, uuid.New())
	require.NoError(t, err)
	assert.True(t, costo.IsZero())
}

func TestEliminarReceta_InvalidaCarta(t *testing.T) {
	svc, _, productos, spy := newRecetaEnv()
	pan := seedProducto(productos, "Pan", "10", "0.50", false)

	resp, err := svc.Crear(context.Background(), dto.CrearRecetaRequest{
		NombreReceta:      "Tostada",
		PrecioVentaActual: dec("4.00"),
		Detalles: []dto.ItemRecetaRequest{
			{IDProducto: pan.ID.String(), CantidadConsumida: dec("1"), UnidadConsumo: "unidad"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), uuid.MustParse(resp.ID)))
	assert.Equal(t, 2, spy.invalidations)

	_, err = svc.FindOne(context.Background(), uuid.MustParse(resp.ID))
	assert.ErrorContains(t, err, "no encontrada")
}
