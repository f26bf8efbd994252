package service

import (
	"context"
	"fmt"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/apierror"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type MesaService interface {
	Crear(ctx context.Context, req dto.CrearMesaRequest) (*dto.MesaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMesaRequest) (*dto.MesaResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.MesaResponse, error)
	List(ctx context.Context) ([]dto.MesaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	SetEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.MesaResponse, error)

	// OcuparTx marca la mesa OCUPADA dentro de la tx de la venta. La ocupación
	// es permisiva: una mesa ya OCUPADA acepta otra venta (pedidos adicionales
	// de la misma mesa), solo se deja constancia en el log.
	OcuparTx(tx *gorm.DB, id uuid.UUID) error

	// LiberarTx marca la mesa LIBRE; lo usa el archivado de ventas.
	LiberarTx(tx *gorm.DB, id uuid.UUID) error
}

type mesaService struct {
	repo repository.MesaRepository
}

func NewMesaService(repo repository.MesaRepository) MesaService {
	return &mesaService{repo: repo}
}

func (s *mesaService) OcuparTx(tx *gorm.DB, id uuid.UUID) error {
	m, err := s.repo.FindByIDTx(tx, id)
	if err != nil {
		return apierror.NotFound(fmt.Sprintf("Mesa %s no encontrada", id))
	}
	if m.Estado != model.MesaLibre {
		log.Warn().
			Int("numero_mesa", m.NumeroMesa).
			Str("estado", m.Estado).
			Msg("venta registrada sobre mesa no libre")
	}
	return s.repo.UpdateEstadoTx(tx, id, model.MesaOcupada)
}

func (s *mesaService) LiberarTx(tx *gorm.DB, id uuid.UUID) error {
	if _, err := s.repo.FindByIDTx(tx, id); err != nil {
		return apierror.NotFound(fmt.Sprintf("Mesa %s no encontrada", id))
	}
	return s.repo.UpdateEstadoTx(tx, id, model.MesaLibre)
}

func (s *mesaService) SetEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.MesaResponse, error) {
	if !model.MesaEstadoValido(estado) {
		return nil, apierror.BadRequest(fmt.Sprintf("Estado de mesa inválido: %s", estado))
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Mesa no encontrada")
	}
	if err := s.repo.UpdateEstado(ctx, id, estado); err != nil {
		return nil, err
	}
	m.Estado = estado
	return mesaToResponse(m), nil
}

func (s *mesaService) Crear(ctx context.Context, req dto.CrearMesaRequest) (*dto.MesaResponse, error) {
	estado := req.Estado
	if estado == "" {
		estado = model.MesaLibre
	}
	m := model.Mesa{NumeroMesa: req.NumeroMesa, Capacidad: req.Capacidad, Estado: estado}
	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, apierror.Conflict(fmt.Sprintf("Ya existe la mesa número %d", req.NumeroMesa))
	}
	return mesaToResponse(&m), nil
}

func (s *mesaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMesaRequest) (*dto.MesaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Mesa no encontrada")
	}
	if req.NumeroMesa != nil {
		m.NumeroMesa = *req.NumeroMesa
	}
	if req.Capacidad != nil {
		m.Capacidad = *req.Capacidad
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return mesaToResponse(m), nil
}

func (s *mesaService) FindOne(ctx context.Context, id uuid.UUID) (*dto.MesaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Mesa no encontrada")
	}
	return mesaToResponse(m), nil
}

func (s *mesaService) List(ctx context.Context) ([]dto.MesaResponse, error) {
	mesas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MesaResponse, 0, len(mesas))
	for i := range mesas {
		m := &mesas[i]
		if !model.MesaEstadoValido(m.Estado) {
			log.Warn().Int("numero_mesa", m.NumeroMesa).Str("estado", m.Estado).
				Msg("mesa con estado fuera del conjunto permitido")
		}
		out = append(out, *mesaToResponse(m))
	}
	return out, nil
}

func (s *mesaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Mesa no encontrada")
	}
	if m.Estado == model.MesaOcupada {
		return apierror.BadRequest("No se puede eliminar una mesa ocupada")
	}
	return s.repo.SoftDelete(ctx, id)
}

func mesaToResponse(m *model.Mesa) *dto.MesaResponse {
	return &dto.MesaResponse{
		ID:         m.ID.String(),
		NumeroMesa: m.NumeroMesa,
		Capacidad:  m.Capacidad,
		Estado:     m.Estado,
	}
}
