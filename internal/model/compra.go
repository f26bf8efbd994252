package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Compra is a purchase order header. Creating one increments the stock of
// every product in its detalles inside the same transaction.
type Compra struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDProveedor uuid.UUID       `gorm:"type:uuid;not null;index;column:id_proveedor"`
	IDUsuario   uuid.UUID       `gorm:"type:uuid;not null;column:id_usuario"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Proveedor *Proveedor      `gorm:"foreignKey:IDProveedor"`
	Usuario   *Usuario        `gorm:"foreignKey:IDUsuario"`
	Detalles  []DetalleCompra `gorm:"foreignKey:IDCompra"`
}

type DetalleCompra struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDCompra   uuid.UUID       `gorm:"type:uuid;not null;index;column:id_compra"`
	IDProducto uuid.UUID       `gorm:"type:uuid;not null;column:id_producto"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null;column:precio_unitario"`
	SubTotal       decimal.Decimal `gorm:"type:decimal(10,2);not null;column:sub_total"`
	CreatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:IDProducto"`
}

// TableName overrides GORM's default pluralization.
func (DetalleCompra) TableName() string { return "detalle_compras" }
