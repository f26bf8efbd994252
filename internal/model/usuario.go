package model

import (
	"time"

	"github.com/google/uuid"
)

type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"size:50;uniqueIndex;not null"`
	Nombre       string    `gorm:"size:100;not null"`
	Email        string    `gorm:"size:100"`
	PasswordHash string    `gorm:"size:100;not null;column:password_hash"`
	Rol          string    `gorm:"size:30;not null"` // cajero | mesero | supervisor | administrador
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
