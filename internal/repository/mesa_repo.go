package repository

import (
	"context"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MesaRepository interface {
	Create(ctx context.Context, m *model.Mesa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Mesa, error)
	List(ctx context.Context) ([]model.Mesa, error)
	Update(ctx context.Context, m *model.Mesa) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error

	// Transactional variants: la mesa cambia de estado dentro de la misma tx
	// que registra o archiva la venta.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Mesa, error)
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error

	DB() *gorm.DB
}

type mesaRepo struct{ db *gorm.DB }

func NewMesaRepository(db *gorm.DB) MesaRepository { return &mesaRepo{db: db} }

func (r *mesaRepo) Create(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mesaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Mesa, error) {
	var m model.Mesa
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *mesaRepo) List(ctx context.Context) ([]model.Mesa, error) {
	var mesas []model.Mesa
	err := r.db.WithContext(ctx).Order("numero_mesa ASC").Find(&mesas).Error
	return mesas, err
}

func (r *mesaRepo) Update(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *mesaRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Mesa{}, id).Error
}

func (r *mesaRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Mesa{}).Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *mesaRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Mesa, error) {
	var m model.Mesa
	err := tx.First(&m, id).Error
	return &m, err
}

func (r *mesaRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Mesa{}).Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *mesaRepo) DB() *gorm.DB { return r.db }
