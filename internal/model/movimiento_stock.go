package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovimientoStock registra cada cambio de stock de un producto: venta (salida),
// compra (entrada) o ajuste manual. Los movimientos son inmutables.
type MovimientoStock struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDProducto uuid.UUID `gorm:"type:uuid;not null;index;column:id_producto"`
	Tipo       string    `gorm:"size:20;not null"` // "venta" | "compra" | "ajuste"
	// Cantidad firmada: positiva = entrada, negativa = salida.
	Cantidad      decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	StockAnterior decimal.Decimal `gorm:"type:decimal(10,3);not null;column:stock_anterior"`
	StockNuevo    decimal.Decimal `gorm:"type:decimal(10,3);not null;column:stock_nuevo"`
	Motivo        string          `gorm:"size:255"`
	ReferenciaID  *uuid.UUID      `gorm:"type:uuid;column:referencia_id"` // venta_id o compra_id
	CreatedAt     time.Time

	Producto *Producto `gorm:"foreignKey:IDProducto"`
}

// TableName overrides GORM's default pluralization (movimiento_stocks → movimientos_stock).
func (MovimientoStock) TableName() string { return "movimientos_stock" }
