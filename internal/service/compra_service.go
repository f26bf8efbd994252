package service

import (
	"context"
	"fmt"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/apierror"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraService interface {
	RegistrarCompra(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error)
	List(ctx context.Context) ([]dto.CompraResponse, error)
}

type compraService struct {
	repo        repository.CompraRepository
	proveedores repository.ProveedorRepository
	inventario  InventarioService
}

func NewCompraService(
	repo repository.CompraRepository,
	proveedores repository.ProveedorRepository,
	inventario InventarioService,
) CompraService {
	return &compraService{repo: repo, proveedores: proveedores, inventario: inventario}
}

// RegistrarCompra crea la compra con sus detalles y repone el stock de cada
// producto en una sola transacción; el costo unitario promedio se recalcula
// ponderado por la entrada.
func (s *compraService) RegistrarCompra(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
	provID, err := uuid.Parse(req.IDProveedor)
	if err != nil {
		return nil, apierror.BadRequest("idProveedor inválido")
	}
	prov, err := s.proveedores.FindByID(ctx, provID)
	if err != nil {
		return nil, apierror.NotFound("Proveedor no encontrado")
	}

	type lineaCompra struct {
		productoID uuid.UUID
		cantidad   decimal.Decimal
		precio     decimal.Decimal
	}
	lineas := make([]lineaCompra, 0, len(req.Detalles))
	total := decimal.Zero
	for i, item := range req.Detalles {
		pid, err := uuid.Parse(item.IDProducto)
		if err != nil {
			return nil, apierror.BadRequest(fmt.Sprintf("Línea %d: idProducto inválido", i+1))
		}
		if !item.Cantidad.IsPositive() {
			return nil, apierror.BadRequest(fmt.Sprintf("Línea %d: cantidad debe ser positiva", i+1))
		}
		lineas = append(lineas, lineaCompra{productoID: pid, cantidad: item.Cantidad, precio: item.PrecioUnitario})
		total = total.Add(item.Cantidad.Mul(item.PrecioUnitario))
	}

	var compra model.Compra
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		compra = model.Compra{
			IDProveedor: provID,
			IDUsuario:   usuarioID,
			Total:       total.Round(2),
		}
		for _, l := range lineas {
			compra.Detalles = append(compra.Detalles, model.DetalleCompra{
				IDProducto:     l.productoID,
				Cantidad:       l.cantidad,
				PrecioUnitario: l.precio,
				SubTotal:       l.cantidad.Mul(l.precio).Round(2),
			})
		}
		if err := s.repo.CreateTx(tx, &compra); err != nil {
			return err
		}

		for _, l := range lineas {
			motivo := fmt.Sprintf("Compra a %s", prov.RazonSocial)
			if err := s.inventario.ReponerStockTx(tx, l.productoID, l.cantidad, l.precio, "compra", &compra.ID, motivo); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.FindOne(ctx, compra.ID)
}

func (s *compraService) FindOne(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Compra no encontrada")
	}
	return compraToResponse(c), nil
}

func (s *compraService) List(ctx context.Context) ([]dto.CompraResponse, error) {
	compras, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		out = append(out, *compraToResponse(&compras[i]))
	}
	return out, nil
}

func compraToResponse(c *model.Compra) *dto.CompraResponse {
	detalles := make([]dto.ItemCompraResponse, 0, len(c.Detalles))
	for _, d := range c.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		detalles = append(detalles, dto.ItemCompraResponse{
			IDProducto:     d.IDProducto.String(),
			Producto:       nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			SubTotal:       d.Cantidad.Mul(d.PrecioUnitario).Round(2),
		})
	}
	return &dto.CompraResponse{
		ID:          c.ID.String(),
		IDProveedor: c.IDProveedor.String(),
		IDUsuario:   c.IDUsuario.String(),
		Total:       c.Total,
		Detalles:    detalles,
		CreatedAt:   c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
