package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Estados de mesa — conjunto cerrado. Cualquier otro valor almacenado se trata
// como una advertencia de integridad de datos, no como un estado válido.
const (
	MesaLibre         = "LIBRE"
	MesaOcupada       = "OCUPADA"
	MesaReservada     = "RESERVADA"
	MesaMantenimiento = "MANTENIMIENTO"
)

// MesaEstadoValido reports whether s belongs to the closed estado set.
func MesaEstadoValido(s string) bool {
	switch s {
	case MesaLibre, MesaOcupada, MesaReservada, MesaMantenimiento:
		return true
	}
	return false
}

// Mesa is a physical table. Estado is mutated only by the table state machine:
// OCUPADA on sale creation, LIBRE on sale archival.
type Mesa struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroMesa int       `gorm:"not null;uniqueIndex;column:numero_mesa"`
	Capacidad  int       `gorm:"not null"`
	Estado     string    `gorm:"size:20;not null;default:'LIBRE'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
