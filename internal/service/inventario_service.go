package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/apierror"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventarioService is the single write path for stock. Every decrement and
// increment passes through here so the movimientos_stock ledger stays complete.
type InventarioService interface {
	// DescontarStockTx descuenta cantidad del stock dentro de la tx del caller.
	// La fila del producto se lee con FOR UPDATE: dos ventas concurrentes sobre
	// el mismo producto se serializan en vez de perder una actualización.
	DescontarStockTx(tx *gorm.DB, productoID uuid.UUID, cantidad decimal.Decimal, tipo string, referenciaID *uuid.UUID, motivo string) error

	// ReponerStockTx incrementa stock y recalcula el costo unitario promedio
	// ponderado cuando costoUnitario es positivo.
	ReponerStockTx(tx *gorm.DB, productoID uuid.UUID, cantidad, costoUnitario decimal.Decimal, tipo string, referenciaID *uuid.UUID, motivo string) error

	// AjustarStock aplica un ajuste manual firmado (positivo repone, negativo
	// descuenta) en su propia transacción.
	AjustarStock(ctx context.Context, productoID uuid.UUID, cantidad decimal.Decimal, motivo string) error

	Movimientos(ctx context.Context, productoID uuid.UUID, limit int) ([]model.MovimientoStock, error)
}

type inventarioService struct {
	productos   repository.ProductoRepository
	movimientos repository.MovimientoStockRepository
}

func NewInventarioService(
	productos repository.ProductoRepository,
	movimientos repository.MovimientoStockRepository,
) InventarioService {
	return &inventarioService{productos: productos, movimientos: movimientos}
}

func (s *inventarioService) DescontarStockTx(tx *gorm.DB, productoID uuid.UUID, cantidad decimal.Decimal, tipo string, referenciaID *uuid.UUID, motivo string) error {
	if !cantidad.IsPositive() {
		return apierror.BadRequest("La cantidad a descontar debe ser positiva")
	}

	p, err := s.productos.FindByIDForUpdateTx(tx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound(fmt.Sprintf("Producto %s no encontrado", productoID))
		}
		return err
	}

	if p.StockActual.LessThan(cantidad) {
		return apierror.BadRequest(fmt.Sprintf(
			"Stock insuficiente para %s: disponible %s, requerido %s",
			p.Nombre, p.StockActual.String(), cantidad.String()))
	}

	nuevo := p.StockActual.Sub(cantidad)
	if err := s.productos.SetStockTx(tx, productoID, nuevo); err != nil {
		return err
	}

	return s.movimientos.CreateTx(tx, &model.MovimientoStock{
		IDProducto:    productoID,
		Tipo:          tipo,
		Cantidad:      cantidad.Neg(),
		StockAnterior: p.StockActual,
		StockNuevo:    nuevo,
		Motivo:        motivo,
		ReferenciaID:  referenciaID,
	})
}

func (s *inventarioService) ReponerStockTx(tx *gorm.DB, productoID uuid.UUID, cantidad, costoUnitario decimal.Decimal, tipo string, referenciaID *uuid.UUID, motivo string) error {
	if !cantidad.IsPositive() {
		return apierror.BadRequest("La cantidad a reponer debe ser positiva")
	}

	p, err := s.productos.FindByIDForUpdateTx(tx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound(fmt.Sprintf("Producto %s no encontrado", productoID))
		}
		return err
	}

	nuevo := p.StockActual.Add(cantidad)

	if costoUnitario.IsPositive() {
		// Promedio ponderado: (stock·costo + entrada·costoEntrada) / stockNuevo.
		valorActual := p.StockActual.Mul(p.CostoUnitarioPromedio)
		valorEntrada := cantidad.Mul(costoUnitario)
		promedio := valorActual.Add(valorEntrada).Div(nuevo).Round(2)
		if err := s.productos.SetStockYCostoTx(tx, productoID, nuevo, promedio); err != nil {
			return err
		}
	} else {
		if err := s.productos.SetStockTx(tx, productoID, nuevo); err != nil {
			return err
		}
	}

	return s.movimientos.CreateTx(tx, &model.MovimientoStock{
		IDProducto:    productoID,
		Tipo:          tipo,
		Cantidad:      cantidad,
		StockAnterior: p.StockActual,
		StockNuevo:    nuevo,
		Motivo:        motivo,
		ReferenciaID:  referenciaID,
	})
}

func (s *inventarioService) AjustarStock(ctx context.Context, productoID uuid.UUID, cantidad decimal.Decimal, motivo string) error {
	if cantidad.IsZero() {
		return apierror.BadRequest("El ajuste no puede ser cero")
	}
	return runTx(ctx, s.productos.DB(), func(tx *gorm.DB) error {
		if cantidad.IsNegative() {
			return s.DescontarStockTx(tx, productoID, cantidad.Neg(), "ajuste", nil, motivo)
		}
		return s.ReponerStockTx(tx, productoID, cantidad, decimal.Zero, "ajuste", nil, motivo)
	})
}

func (s *inventarioService) Movimientos(ctx context.Context, productoID uuid.UUID, limit int) ([]model.MovimientoStock, error) {
	return s.movimientos.ListByProducto(ctx, productoID, limit)
}
