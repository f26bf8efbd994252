package infra

import (
	"fmt"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over the full schema. gen_random_uuid() needs pgcrypto on PostgreSQL < 13,
// so the extension is created first.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return nil, fmt.Errorf("pgcrypto extension: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema; shared with integration tests.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Categoria{},
		&model.Proveedor{},
		&model.Producto{},
		&model.Receta{},
		&model.DetalleReceta{},
		&model.Mesa{},
		&model.Cliente{},
		&model.Usuario{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.Compra{},
		&model.DetalleCompra{},
		&model.MovimientoStock{},
	)
}
