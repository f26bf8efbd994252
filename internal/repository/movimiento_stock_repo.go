package repository

import (
	"context"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovimientoStockRepository persists the audit trail of every stock change.
// Movements are append-only: no update/delete surface.
type MovimientoStockRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoStock) error
	ListByProducto(ctx context.Context, productoID uuid.UUID, limit int) ([]model.MovimientoStock, error)
}

type movimientoStockRepo struct{ db *gorm.DB }

func NewMovimientoStockRepository(db *gorm.DB) MovimientoStockRepository {
	return &movimientoStockRepo{db: db}
}

func (r *movimientoStockRepo) CreateTx(tx *gorm.DB, m *model.MovimientoStock) error {
	return tx.Create(m).Error
}

func (r *movimientoStockRepo) ListByProducto(ctx context.Context, productoID uuid.UUID, limit int) ([]model.MovimientoStock, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var movimientos []model.MovimientoStock
	err := r.db.WithContext(ctx).
		Where("id_producto = ?", productoID).
		Order("created_at DESC").
		Limit(limit).
		Find(&movimientos).Error
	return movimientos, err
}
