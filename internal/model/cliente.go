package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente is created lazily by the customer resolver on the first fiscal sale
// that references its NIT/CI — never speculatively.
type Cliente struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreFiscal string    `gorm:"size:100;not null;column:nombre_fiscal"`
	NitCI        *string   `gorm:"size:30;uniqueIndex;column:nit_ci"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
