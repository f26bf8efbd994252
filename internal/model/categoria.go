package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Categoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"size:50;uniqueIndex;not null"`
	Descripcion *string   `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
