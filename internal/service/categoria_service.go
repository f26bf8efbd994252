package service

import (
	"context"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/apierror"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"

	"github.com/google/uuid"
)

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error)
	List(ctx context.Context) ([]dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	c := model.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return categoriaToResponse(&c), nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Categoría no encontrada")
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) FindOne(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Categoría no encontrada")
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) List(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		out = append(out, *categoriaToResponse(&categorias[i]))
	}
	return out, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Categoría no encontrada")
	}
	return s.repo.SoftDelete(ctx, id)
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:          c.ID.String(),
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
	}
}
