package repository

import (
	"context"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompraRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	List(ctx context.Context) ([]model.Compra, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error

	CreateTx(tx *gorm.DB, c *model.Compra) error

	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Proveedor").
		First(&c, id).Error
	return &c, err
}

func (r *compraRepo) List(ctx context.Context) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").
		Preload("Proveedor").
		Order("created_at DESC").
		Find(&compras).Error
	return compras, err
}

func (r *compraRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Compra{}, id).Error
}

func (r *compraRepo) CreateTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Create(c).Error
}

func (r *compraRepo) DB() *gorm.DB { return r.db }
