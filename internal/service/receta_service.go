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
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RecetaService interface {
	Crear(ctx context.Context, req dto.CrearRecetaRequest) (*dto.RecetaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRecetaRequest) (*dto.RecetaResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.RecetaResponse, error)
	List(ctx context.Context) ([]dto.RecetaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	// CalcularCostoTx recalcula y persiste costo_actual dentro de la tx del
	// caller. Receta inexistente devuelve costo cero sin error: el costo es un
	// dato derivado y su ausencia no debe tumbar la operación que lo pidió.
	CalcularCostoTx(tx *gorm.DB, recetaID uuid.UUID) (decimal.Decimal, error)
}

type recetaService struct {
	repo      repository.RecetaRepository
	productos repository.ProductoRepository
	carta     CartaInvalidator
}

// CartaInvalidator lets the receta service drop the cached menu after any
// mutation without depending on the full carta service.
type CartaInvalidator interface {
	Invalidate(ctx context.Context)
}

func NewRecetaService(
	repo repository.RecetaRepository,
	productos repository.ProductoRepository,
	carta CartaInvalidator,
) RecetaService {
	return &recetaService{repo: repo, productos: productos, carta: carta}
}

// validarIngredientes checks every ingredient product: it must exist and must
// be ingredient-only (es_vendible = false). Productos vendibles se venden como
// líneas directas de venta, nunca dentro de una receta.
func (s *recetaService) validarIngredientes(ctx context.Context, items []dto.ItemRecetaRequest) ([]model.DetalleReceta, error) {
	detalles := make([]model.DetalleReceta, 0, len(items))
	for _, item := range items {
		pid, err := uuid.Parse(item.IDProducto)
		if err != nil {
			return nil, apierror.BadRequest(fmt.Sprintf("idProducto inválido: %s", item.IDProducto))
		}
		if !item.CantidadConsumida.IsPositive() {
			return nil, apierror.BadRequest("cantidadConsumida debe ser positiva")
		}
		p, err := s.productos.FindByID(ctx, pid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound(fmt.Sprintf("Producto %s no encontrado", item.IDProducto))
			}
			return nil, err
		}
		if p.EsVendible {
			return nil, apierror.BadRequest(fmt.Sprintf(
				"El producto %s es vendible y no puede usarse como ingrediente", p.Nombre))
		}
		detalles = append(detalles, model.DetalleReceta{
			IDProducto:        pid,
			CantidadConsumida: item.CantidadConsumida,
			UnidadConsumo:     item.UnidadConsumo,
		})
	}
	return detalles, nil
}

func (s *recetaService) Crear(ctx context.Context, req dto.CrearRecetaRequest) (*dto.RecetaResponse, error) {
	if existing, err := s.repo.FindByNombre(ctx, req.NombreReceta); err == nil && existing != nil {
		return nil, apierror.Conflict(fmt.Sprintf("Ya existe una receta con el nombre %q", req.NombreReceta))
	}

	detalles, err := s.validarIngredientes(ctx, req.Detalles)
	if err != nil {
		return nil, err
	}

	rec := model.Receta{
		NombreReceta:      req.NombreReceta,
		Descripcion:       req.Descripcion,
		PrecioVentaActual: req.PrecioVentaActual,
		URLImagen:         req.URLImagen,
	}
	if req.IDCategoria != nil {
		cid, err := uuid.Parse(*req.IDCategoria)
		if err != nil {
			return nil, apierror.BadRequest("idCategoria inválido")
		}
		rec.IDCategoria = &cid
	}
	rec.Ingredientes = detalles

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &rec); err != nil {
			return err
		}
		costo, err := s.CalcularCostoTx(tx, rec.ID)
		if err != nil {
			return err
		}
		rec.CostoActual = costo
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidateCarta(ctx)
	return s.FindOne(ctx, rec.ID)
}

func (s *recetaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRecetaRequest) (*dto.RecetaResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Receta no encontrada")
	}

	if req.NombreReceta != nil && *req.NombreReceta != rec.NombreReceta {
		if existing, err := s.repo.FindByNombre(ctx, *req.NombreReceta); err == nil && existing != nil {
			return nil, apierror.Conflict(fmt.Sprintf("Ya existe una receta con el nombre %q", *req.NombreReceta))
		}
		rec.NombreReceta = *req.NombreReceta
	}
	if req.Descripcion != nil {
		rec.Descripcion = req.Descripcion
	}
	if req.PrecioVentaActual != nil {
		rec.PrecioVentaActual = *req.PrecioVentaActual
	}
	if req.URLImagen != nil {
		rec.URLImagen = req.URLImagen
	}
	if req.IDCategoria != nil {
		cid, err := uuid.Parse(*req.IDCategoria)
		if err != nil {
			return nil, apierror.BadRequest("idCategoria inválido")
		}
		rec.IDCategoria = &cid
	}

	var detalles []model.DetalleReceta
	if req.Detalles != nil {
		detalles, err = s.validarIngredientes(ctx, req.Detalles)
		if err != nil {
			return nil, err
		}
	}

	// Save header, luego reemplazo completo de ingredientes y recálculo de
	// costo, todo dentro de la misma transacción.
	rec.Ingredientes = nil
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := saveRecetaTx(tx, s.repo, rec); err != nil {
			return err
		}
		if req.Detalles != nil {
			if err := s.repo.ReplaceDetallesTx(tx, id, detalles); err != nil {
				return err
			}
		}
		_, err := s.CalcularCostoTx(tx, id)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidateCarta(ctx)
	return s.FindOne(ctx, id)
}

// saveRecetaTx persists the header through tx when available, falling back to
// the repository path in unit-test mode.
func saveRecetaTx(tx *gorm.DB, repo repository.RecetaRepository, rec *model.Receta) error {
	if tx == nil {
		return repo.Update(context.Background(), rec)
	}
	return tx.Save(rec).Error
}

func (s *recetaService) FindOne(ctx context.Context, id uuid.UUID) (*dto.RecetaResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Receta no encontrada")
	}
	return recetaToResponse(rec), nil
}

func (s *recetaService) List(ctx context.Context) ([]dto.RecetaResponse, error) {
	recetas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecetaResponse, 0, len(recetas))
	for i := range recetas {
		out = append(out, *recetaToResponse(&recetas[i]))
	}
	return out, nil
}

func (s *recetaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Receta no encontrada")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidateCarta(ctx)
	return nil
}

func (s *recetaService) CalcularCostoTx(tx *gorm.DB, recetaID uuid.UUID) (decimal.Decimal, error) {
	rec, err := s.repo.FindByIDTx(tx, recetaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Costo es dato derivado: receta ausente vale cero, no es fatal.
			log.Warn().Str("receta_id", recetaID.String()).
				Msg("cálculo de costo sobre receta inexistente, se asume 0")
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	costo := decimal.Zero
	for _, ing := range rec.Ingredientes {
		if ing.Producto == nil {
			continue
		}
		costo = costo.Add(ing.CantidadConsumida.Mul(ing.Producto.CostoUnitarioPromedio))
	}
	costo = costo.Round(2)

	if err := s.repo.UpdateCostoTx(tx, recetaID, costo); err != nil {
		return decimal.Zero, err
	}
	return costo, nil
}

func (s *recetaService) invalidateCarta(ctx context.Context) {
	if s.carta != nil {
		s.carta.Invalidate(ctx)
	}
}

func recetaToResponse(rec *model.Receta) *dto.RecetaResponse {
	ingredientes := make([]dto.ItemRecetaResponse, 0, len(rec.Ingredientes))
	for _, ing := range rec.Ingredientes {
		nombre := ""
		costo := decimal.Zero
		if ing.Producto != nil {
			nombre = ing.Producto.Nombre
			costo = ing.Producto.CostoUnitarioPromedio
		}
		ingredientes = append(ingredientes, dto.ItemRecetaResponse{
			IDProducto:        ing.IDProducto.String(),
			Producto:          nombre,
			CantidadConsumida: ing.CantidadConsumida,
			UnidadConsumo:     ing.UnidadConsumo,
			CostoUnitario:     costo,
		})
	}
	resp := &dto.RecetaResponse{
		ID:                rec.ID.String(),
		NombreReceta:      rec.NombreReceta,
		Descripcion:       rec.Descripcion,
		PrecioVentaActual: rec.PrecioVentaActual,
		CostoActual:       rec.CostoActual,
		URLImagen:         rec.URLImagen,
		Ingredientes:      ingredientes,
	}
	if rec.IDCategoria != nil {
		id := rec.IDCategoria.String()
		resp.IDCategoria = &id
	}
	return resp
}
