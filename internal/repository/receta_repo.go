package repository

import (
	"context"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecetaRepository is the data access contract for recipes and their
// bill-of-materials (detalle_recetas).
type RecetaRepository interface {
	Create(ctx context.Context, rec *model.Receta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Receta, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Receta, error)
	List(ctx context.Context) ([]model.Receta, error)
	Update(ctx context.Context, rec *model.Receta) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Transactional variants.
	CreateTx(tx *gorm.DB, rec *model.Receta) error
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Receta, error)
	// ReplaceDetallesTx borra todos los ingredientes y reinserta la lista nueva.
	ReplaceDetallesTx(tx *gorm.DB, recetaID uuid.UUID, detalles []model.DetalleReceta) error
	UpdateCostoTx(tx *gorm.DB, id uuid.UUID, costo decimal.Decimal) error

	DB() *gorm.DB
}

type recetaRepo struct{ db *gorm.DB }

func NewRecetaRepository(db *gorm.DB) RecetaRepository { return &recetaRepo{db: db} }

func (r *recetaRepo) Create(ctx context.Context, rec *model.Receta) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recetaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Receta, error) {
	var rec model.Receta
	err := r.db.WithContext(ctx).
		Preload("Ingredientes.Producto").
		Preload("Categoria").
		First(&rec, id).Error
	return &rec, err
}

func (r *recetaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Receta, error) {
	var rec model.Receta
	err := r.db.WithContext(ctx).Where("nombre_receta = ?", nombre).First(&rec).Error
	return &rec, err
}

func (r *recetaRepo) List(ctx context.Context) ([]model.Receta, error) {
	var recetas []model.Receta
	err := r.db.WithContext(ctx).
		Preload("Ingredientes.Producto").
		Preload("Categoria").
		Order("nombre_receta ASC").
		Find(&recetas).Error
	return recetas, err
}

func (r *recetaRepo) Update(ctx context.Context, rec *model.Receta) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recetaRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Receta{}, id).Error
}

func (r *recetaRepo) CreateTx(tx *gorm.DB, rec *model.Receta) error {
	return tx.Create(rec).Error
}

func (r *recetaRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Receta, error) {
	var rec model.Receta
	err := tx.Preload("Ingredientes.Producto").First(&rec, id).Error
	return &rec, err
}

func (r *recetaRepo) ReplaceDetallesTx(tx *gorm.DB, recetaID uuid.UUID, detalles []model.DetalleReceta) error {
	if err := tx.Where("id_receta = ?", recetaID).Delete(&model.DetalleReceta{}).Error; err != nil {
		return err
	}
	if len(detalles) == 0 {
		return nil
	}
	for i := range detalles {
		detalles[i].IDReceta = recetaID
	}
	return tx.Create(&detalles).Error
}

func (r *recetaRepo) UpdateCostoTx(tx *gorm.DB, id uuid.UUID, costo decimal.Decimal) error {
	return tx.Model(&model.Receta{}).Where("id = ?", id).
		Update("costo_actual", costo).Error
}

func (r *recetaRepo) DB() *gorm.DB { return r.db }
