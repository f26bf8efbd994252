package service

import (
	"context"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/apierror"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	List(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Movimientos(ctx context.Context, id uuid.UUID, limit int) ([]model.MovimientoStock, error)
}

type productoService struct {
	repo       repository.ProductoRepository
	inventario InventarioService
}

func NewProductoService(repo repository.ProductoRepository, inventario InventarioService) ProductoService {
	return &productoService{repo: repo, inventario: inventario}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := model.Producto{
		Nombre:                req.Nombre,
		Descripcion:           req.Descripcion,
		UnidadMedida:          req.UnidadMedida,
		StockActual:           req.StockActual,
		StockMinimo:           req.StockMinimo,
		CostoUnitarioPromedio: req.CostoUnitarioPromedio,
		EsVendible:            req.EsVendible,
		Perecedero:            req.Perecedero,
	}
	if req.IDCategoria != nil {
		cid, err := uuid.Parse(*req.IDCategoria)
		if err != nil {
			return nil, apierror.BadRequest("idCategoria inválido")
		}
		p.IDCategoria = &cid
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return productoToResponse(&p), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Producto no encontrado")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.UnidadMedida != nil {
		p.UnidadMedida = *req.UnidadMedida
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.EsVendible != nil {
		p.EsVendible = *req.EsVendible
	}
	if req.Perecedero != nil {
		p.Perecedero = *req.Perecedero
	}
	if req.IDCategoria != nil {
		cid, err := uuid.Parse(*req.IDCategoria)
		if err != nil {
			return nil, apierror.BadRequest("idCategoria inválido")
		}
		p.IDCategoria = &cid
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) FindOne(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Producto no encontrado")
	}
	return productoToResponse(p), nil
}

func (s *productoService) List(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		data = append(data, *productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Producto no encontrado")
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *productoService) Movimientos(ctx context.Context, id uuid.UUID, limit int) ([]model.MovimientoStock, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apierror.NotFound("Producto no encontrado")
	}
	return s.inventario.Movimientos(ctx, id, limit)
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:                    p.ID.String(),
		Nombre:                p.Nombre,
		Descripcion:           p.Descripcion,
		UnidadMedida:          p.UnidadMedida,
		StockActual:           p.StockActual,
		StockMinimo:           p.StockMinimo,
		CostoUnitarioPromedio: p.CostoUnitarioPromedio,
		EsVendible:            p.EsVendible,
		Perecedero:            p.Perecedero,
	}
	if p.IDCategoria != nil {
		id := p.IDCategoria.String()
		resp.IDCategoria = &id
	}
	return resp
}
