package repository

import (
	"context"
	"time"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Transactional variants: la venta se inserta junto con sus detalles y el
	// descuento de stock, todo o nada.
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Venta, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error

	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles.Receta").
		Preload("Detalles.Producto").
		Preload("Cliente").
		Preload("Mesa").
		First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{})

	// Fecha: día concreto; vacío = hoy.
	fecha := filter.Fecha
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	desde, err := time.ParseInLocation("2006-01-02", fecha, time.Local)
	if err != nil {
		return nil, 0, err
	}
	q = q.Where("created_at >= ? AND created_at < ?", desde, desde.AddDate(0, 0, 1))

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err = q.Preload("Detalles.Receta").
		Preload("Detalles.Producto").
		Preload("Cliente").
		Order("created_at DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Venta{}, id).Error
}

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := tx.First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Venta{}).Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }
