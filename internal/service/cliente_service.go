package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/apierror"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	List(ctx context.Context) ([]dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	// ResolverTx resuelve los datos fiscales de una venta a un cliente:
	//   1. idCliente presente → debe existir (NotFound si no).
	//   2. nitCI presente → lookup; el cliente existente se devuelve SIN tocar
	//      su nombre fiscal; si no existe se crea dentro de la misma tx.
	//   3. nada → nil: venta anónima.
	ResolverTx(tx *gorm.DB, idCliente *uuid.UUID, nitCI, nombreFiscal *string) (*uuid.UUID, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) ResolverTx(tx *gorm.DB, idCliente *uuid.UUID, nitCI, nombreFiscal *string) (*uuid.UUID, error) {
	if idCliente != nil {
		c, err := s.repo.FindByIDTx(tx, *idCliente)
		if err != nil {
			return nil, apierror.NotFound(fmt.Sprintf("Cliente %s no encontrado", idCliente))
		}
		return &c.ID, nil
	}

	if nitCI != nil && *nitCI != "" {
		if c, err := s.repo.FindByNitTx(tx, *nitCI); err == nil {
			return &c.ID, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if nombreFiscal == nil || *nombreFiscal == "" {
			return nil, apierror.BadRequest("nombreFiscal es requerido para registrar un cliente nuevo")
		}
		nuevo := model.Cliente{NombreFiscal: *nombreFiscal, NitCI: nitCI}
		if err := s.repo.CreateTx(tx, &nuevo); err != nil {
			return nil, err
		}
		return &nuevo.ID, nil
	}

	// Venta anónima.
	return nil, nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if req.NitCI != nil && *req.NitCI != "" {
		if existing, err := s.repo.FindByNit(ctx, *req.NitCI); err == nil && existing != nil {
			return nil, apierror.Conflict(fmt.Sprintf("Ya existe un cliente con NIT/CI %s", *req.NitCI))
		}
	}
	c := model.Cliente{NombreFiscal: req.NombreFiscal, NitCI: req.NitCI}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return clienteToResponse(&c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	if req.NitCI != nil && (c.NitCI == nil || *req.NitCI != *c.NitCI) {
		if existing, err := s.repo.FindByNit(ctx, *req.NitCI); err == nil && existing != nil {
			return nil, apierror.Conflict(fmt.Sprintf("Ya existe un cliente con NIT/CI %s", *req.NitCI))
		}
		c.NitCI = req.NitCI
	}
	if req.NombreFiscal != nil {
		c.NombreFiscal = *req.NombreFiscal
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) FindOne(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Cliente no encontrado")
	}
	return s.repo.SoftDelete(ctx, id)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:           c.ID.String(),
		NombreFiscal: c.NombreFiscal,
		NitCI:        c.NitCI,
	}
}
