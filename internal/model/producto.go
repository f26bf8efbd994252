package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Producto is a raw inventory item. EsVendible=true means it may be sold
// directly on a venta line; EsVendible=false means ingredient-only, consumable
// exclusively through recetas.
type Producto struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IDCategoria *uuid.UUID `gorm:"type:uuid;index;column:id_categoria"`
	Nombre      string     `gorm:"size:50;index;not null"`
	Descripcion *string    `gorm:"size:100"`
	// Stock uses scale 3 — ingredients are consumed in fractional units (kg, l).
	StockActual           decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0;column:stock_actual"`
	StockMinimo           decimal.Decimal `gorm:"type:decimal(10,3);not null;default:10;column:stock_minimo"`
	CostoUnitarioPromedio decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0;column:costo_unitario_promedio"`
	UnidadMedida          string          `gorm:"size:30;not null;default:'unidad';column:unidad_medida"`
	EsVendible            bool            `gorm:"not null;default:false;column:es_vendible"`
	Perecedero            bool            `gorm:"not null;default:false"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`

	Categoria *Categoria `gorm:"foreignKey:IDCategoria"`
}
