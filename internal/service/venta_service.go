package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/apierror"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, nuevoEstado string) (*dto.VentaResponse, error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	List(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ventaService struct {
	repo       repository.VentaRepository
	recetas    repository.RecetaRepository
	productos  repository.ProductoRepository
	inventario InventarioService
	clientes   ClienteService
	mesas      MesaService
	dispatcher *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	recetas repository.RecetaRepository,
	productos repository.ProductoRepository,
	inventario InventarioService,
	clientes ClienteService,
	mesas MesaService,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:       repo,
		recetas:    recetas,
		productos:  productos,
		inventario: inventario,
		clientes:   clientes,
		mesas:      mesas,
		dispatcher: dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Una sola transacción ACID:
//   1. resolver cliente (lazy find-or-create por NIT)
//   2. resolver líneas: receta o producto vendible, capturar costo unitario
//   3. crear la venta con sus detalles, estado PAGADA
//   4. ocupar la mesa si la venta trae idMesa
//   5. descontar stock línea por línea (receta expande ingredientes)
// Cualquier fallo revierte todo: ni venta parcial, ni stock descontado a medias.

func (s *ventaService) RegistrarVenta(ctx context.Context, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	var mesaID *uuid.UUID
	if req.IDMesa != nil {
		id, err := uuid.Parse(*req.IDMesa)
		if err != nil {
			return nil, apierror.BadRequest("idMesa inválido")
		}
		mesaID = &id
	}
	var clienteID *uuid.UUID
	if req.IDCliente != nil {
		id, err := uuid.Parse(*req.IDCliente)
		if err != nil {
			return nil, apierror.BadRequest("idCliente inválido")
		}
		clienteID = &id
	}

	type lineaResuelta struct {
		idReceta   *uuid.UUID
		idProducto *uuid.UUID
		nombre     string
		cantidad   decimal.Decimal
		precio     decimal.Decimal
		costo      decimal.Decimal
		// Consumos de inventario que genera esta línea.
		consumos []model.DetalleReceta
	}

	// Validación estructural fuera de la tx: cada línea es receta XOR producto.
	for i, item := range req.Detalles {
		if (item.IDReceta == nil) == (item.IDProducto == nil) {
			return nil, apierror.BadRequest(fmt.Sprintf(
				"Línea %d: debe indicar idReceta o idProducto, exactamente uno", i+1))
		}
		if !item.Cantidad.IsPositive() {
			return nil, apierror.BadRequest(fmt.Sprintf("Línea %d: cantidad debe ser positiva", i+1))
		}
	}

	var venta model.Venta
	lineas := make([]lineaResuelta, 0, len(req.Detalles))

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		resolvedCliente, err := s.clientes.ResolverTx(tx, clienteID, req.NitCI, req.NombreFiscal)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, item := range req.Detalles {
			linea := lineaResuelta{cantidad: item.Cantidad, precio: item.PrecioUnitario}

			switch {
			case item.IDReceta != nil:
				rid, err := uuid.Parse(*item.IDReceta)
				if err != nil {
					return apierror.BadRequest(fmt.Sprintf("idReceta inválido: %s", *item.IDReceta))
				}
				rec, err := s.recetas.FindByIDTx(tx, rid)
				if err != nil {
					return apierror.NotFound(fmt.Sprintf("Receta %s no encontrada", *item.IDReceta))
				}
				linea.idReceta = &rid
				linea.nombre = rec.NombreReceta
				linea.costo = rec.CostoActual
				linea.consumos = rec.Ingredientes

			case item.IDProducto != nil:
				pid, err := uuid.Parse(*item.IDProducto)
				if err != nil {
					return apierror.BadRequest(fmt.Sprintf("idProducto inválido: %s", *item.IDProducto))
				}
				p, err := s.productos.FindByIDForUpdateTx(tx, pid)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return apierror.NotFound(fmt.Sprintf("Producto %s no encontrado", *item.IDProducto))
					}
					return err
				}
				if !p.EsVendible {
					return apierror.BadRequest(fmt.Sprintf(
						"El producto %s no es vendible directamente", p.Nombre))
				}
				linea.idProducto = &pid
				linea.nombre = p.Nombre
				linea.costo = p.CostoUnitarioPromedio
			}

			total = total.Add(linea.cantidad.Mul(linea.precio))
			lineas = append(lineas, linea)
		}

		venta = model.Venta{
			IDMesa:    mesaID,
			IDUsuario: usuarioID,
			IDCliente: resolvedCliente,
			Total:     total.Round(2),
			TipoPago:  req.TipoPago,
			Estado:    model.VentaPagada,
		}
		for _, l := range lineas {
			venta.Detalles = append(venta.Detalles, model.DetalleVenta{
				IDReceta:       l.idReceta,
				IDProducto:     l.idProducto,
				Cantidad:       l.cantidad,
				PrecioUnitario: l.precio,
				CostoUnitario:  l.costo,
			})
		}
		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}

		if mesaID != nil {
			if err := s.mesas.OcuparTx(tx, *mesaID); err != nil {
				return err
			}
		}

		// Descuento de stock, estrictamente secuencial.
		for _, l := range lineas {
			if l.idReceta != nil {
				for _, ing := range l.consumos {
					consumo := ing.CantidadConsumida.Mul(l.cantidad)
					motivo := fmt.Sprintf("Venta — %s", l.nombre)
					if err := s.inventario.DescontarStockTx(tx, ing.IDProducto, consumo, "venta", &venta.ID, motivo); err != nil {
						return err
					}
				}
				continue
			}
			motivo := fmt.Sprintf("Venta — %s", l.nombre)
			if err := s.inventario.DescontarStockTx(tx, *l.idProducto, l.cantidad, "venta", &venta.ID, motivo); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Ticket asíncrono, best-effort: la venta ya está confirmada.
	if s.dispatcher != nil {
		payload := map[string]interface{}{"venta_id": venta.ID.String()}
		if req.EmailCliente != nil && *req.EmailCliente != "" {
			payload["cliente_email"] = *req.EmailCliente
		}
		_ = s.dispatcher.EnqueueTicket(ctx, payload)
	}

	resp := ventaToResponse(&venta)
	for i, l := range lineas {
		resp.Detalles[i].Nombre = l.nombre
	}
	return resp, nil
}

// ── ActualizarEstado ──────────────────────────────────────────────────────────
// Máquina lineal estricta: PAGADA → PREPARANDO → LISTO → ARCHIVADA.
// Archivar libera la mesa en la misma transacción.

var siguienteEstado = map[string]string{
	model.VentaPagada:     model.VentaPreparando,
	model.VentaPreparando: model.VentaListo,
	model.VentaListo:      model.VentaArchivada,
}

func (s *ventaService) ActualizarEstado(ctx context.Context, id uuid.UUID, nuevoEstado string) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Venta no encontrada")
	}

	// El estado se valida sobre una relectura dentro de la transacción: otra
	// petición pudo avanzarlo entre la lectura inicial y el UPDATE.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		actual, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			return apierror.NotFound("Venta no encontrada")
		}
		if actual.Estado == model.VentaArchivada {
			return apierror.BadRequest("La venta ya está ARCHIVADA")
		}
		if siguienteEstado[actual.Estado] != nuevoEstado {
			return apierror.BadRequest(fmt.Sprintf(
				"Transición no permitida de %s a %s", actual.Estado, nuevoEstado))
		}
		if err := s.repo.UpdateEstadoTx(tx, id, nuevoEstado); err != nil {
			return err
		}
		if nuevoEstado == model.VentaArchivada && actual.IDMesa != nil {
			return s.mesas.LiberarTx(tx, *actual.IDMesa)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	venta.Estado = nuevoEstado
	return ventaToResponse(venta), nil
}

func (s *ventaService) FindOne(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Venta no encontrada")
	}
	return ventaToResponse(venta), nil
}

func (s *ventaService) List(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		data = append(data, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *ventaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Venta no encontrada")
	}
	return s.repo.SoftDelete(ctx, id)
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	detalles := make([]dto.ItemVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		item := dto.ItemVentaResponse{
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			CostoUnitario:  d.CostoUnitario,
		}
		if d.IDReceta != nil {
			id := d.IDReceta.String()
			item.IDReceta = &id
			if d.Receta != nil {
				item.Nombre = d.Receta.NombreReceta
			}
		}
		if d.IDProducto != nil {
			id := d.IDProducto.String()
			item.IDProducto = &id
			if d.Producto != nil {
				item.Nombre = d.Producto.Nombre
			}
		}
		detalles = append(detalles, item)
	}
	resp := &dto.VentaResponse{
		ID:        v.ID.String(),
		IDUsuario: v.IDUsuario.String(),
		Total:     v.Total,
		TipoPago:  v.TipoPago,
		Estado:    v.Estado,
		Detalles:  detalles,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if v.IDMesa != nil {
		id := v.IDMesa.String()
		resp.IDMesa = &id
	}
	if v.IDCliente != nil {
		id := v.IDCliente.String()
		resp.IDCliente = &id
	}
	return resp
}
