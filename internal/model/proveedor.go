package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Proveedor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RazonSocial string    `gorm:"size:100;not null;column:razon_social"`
	Nit         *string   `gorm:"size:30;uniqueIndex"`
	Telefono    *string   `gorm:"size:30"`
	Email       *string   `gorm:"size:100"`
	Direccion   *string   `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default pluralization (proveedors → proveedores).
func (Proveedor) TableName() string { return "proveedores" }
