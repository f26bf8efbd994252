package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receta is a composed, sellable dish or drink defined by its bill of
// ingredients. CostoActual is derived: it is recomputed and persisted every
// time the ingredient list changes, never computed lazily at read time.
type Receta struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreReceta      string          `gorm:"size:100;uniqueIndex;not null;column:nombre_receta"`
	Descripcion       *string         `gorm:"size:255"`
	PrecioVentaActual decimal.Decimal `gorm:"type:decimal(10,2);not null;column:precio_venta_actual"`
	CostoActual       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0;column:costo_actual"`
	IDCategoria       *uuid.UUID      `gorm:"type:uuid;index;column:id_categoria"`
	URLImagen         *string         `gorm:"size:255;column:url_imagen"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`

	Categoria    *Categoria      `gorm:"foreignKey:IDCategoria"`
	Ingredientes []DetalleReceta `gorm:"foreignKey:IDReceta"`
}

// DetalleReceta is one (producto, cantidad) pair: how much raw Producto one
// unit of the Receta consumes. Owned exclusively by its Receta and replaced
// wholesale on update.
type DetalleReceta struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDReceta   uuid.UUID `gorm:"type:uuid;not null;index;column:id_receta"`
	IDProducto uuid.UUID `gorm:"type:uuid;not null;column:id_producto"`
	// Cantidad de materia prima consumida para producir UNA unidad de la receta.
	CantidadConsumida decimal.Decimal `gorm:"type:decimal(10,3);not null;column:cantidad_consumida"`
	UnidadConsumo     string          `gorm:"size:30;not null;column:unidad_consumo"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Producto *Producto `gorm:"foreignKey:IDProducto"`
}

// TableName overrides GORM's default pluralization (detalle_recetum → detalle_recetas).
func (DetalleReceta) TableName() string { return "detalle_recetas" }
