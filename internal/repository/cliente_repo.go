package repository

import (
	"context"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByNit(ctx context.Context, nit string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Transactional variants for lazy resolution during a sale.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Cliente, error)
	FindByNitTx(tx *gorm.DB, nit string) (*model.Cliente, error)
	CreateTx(tx *gorm.DB, c *model.Cliente) error

	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) FindByNit(ctx context.Context, nit string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("nit_ci = ?", nit).First(&c).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("nombre_fiscal ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}

func (r *clienteRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := tx.First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) FindByNitTx(tx *gorm.DB, nit string) (*model.Cliente, error) {
	var c model.Cliente
	err := tx.Where("nit_ci = ?", nit).First(&c).Error
	return &c, err
}

func (r *clienteRepo) CreateTx(tx *gorm.DB, c *model.Cliente) error {
	return tx.Create(c).Error
}

func (r *clienteRepo) DB() *gorm.DB { return r.db }
