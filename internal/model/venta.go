package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Estados de una venta. La máquina es estrictamente lineal:
// PAGADA → PREPARANDO → LISTO → ARCHIVADA. ARCHIVADA es absorbente.
const (
	VentaPagada     = "PAGADA"
	VentaPreparando = "PREPARANDO"
	VentaListo      = "LISTO"
	VentaArchivada  = "ARCHIVADA"
)

// Venta is the order header. Created in one transaction together with all its
// DetalleVenta rows; estado is mutated only through the guarded transition.
type Venta struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDMesa    *uuid.UUID      `gorm:"type:uuid;index;column:id_mesa"`
	IDUsuario uuid.UUID       `gorm:"type:uuid;not null;index;column:id_usuario"`
	IDCliente *uuid.UUID      `gorm:"type:uuid;index;column:id_cliente"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TipoPago  string          `gorm:"size:30;not null;column:tipo_pago"`
	Estado    string          `gorm:"size:20;not null;default:'PAGADA'"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Mesa     *Mesa           `gorm:"foreignKey:IDMesa"`
	Usuario  *Usuario        `gorm:"foreignKey:IDUsuario"`
	Cliente  *Cliente        `gorm:"foreignKey:IDCliente"`
	Detalles []DetalleVenta  `gorm:"foreignKey:IDVenta"`
}

// DetalleVenta is one sold line. Exactly one of IDReceta / IDProducto is set:
// a line sells either a recipe-derived dish or a directly-sellable product.
// CostoUnitario is captured at sale time and never recomputed, so historical
// margins stay stable when the receta cost later changes.
type DetalleVenta struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDVenta    uuid.UUID  `gorm:"type:uuid;not null;index;column:id_venta"`
	IDReceta   *uuid.UUID `gorm:"type:uuid;column:id_receta"`
	IDProducto *uuid.UUID `gorm:"type:uuid;column:id_producto"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null;column:precio_unitario"`
	CostoUnitario  decimal.Decimal `gorm:"type:decimal(10,2);not null;column:costo_unitario"`
	CreatedAt      time.Time

	Receta   *Receta   `gorm:"foreignKey:IDReceta"`
	Producto *Producto `gorm:"foreignKey:IDProducto"`
}

// TableName overrides GORM's default pluralization.
func (DetalleVenta) TableName() string { return "detalle_ventas" }
