package dto

import "github.com/shopspring/decimal"

// ItemRecetaRequest is one ingredient line: cantidad de materia prima que
// consume UNA unidad de la receta.
type ItemRecetaRequest struct {
	IDProducto        string          `json:"idProducto"        validate:"required,uuid"`
	CantidadConsumida decimal.Decimal `json:"cantidadConsumida" validate:"required"`
	UnidadConsumo     string          `json:"unidadConsumo"     validate:"required,max=30"`
}

type CrearRecetaRequest struct {
	NombreReceta      string              `json:"nombreReceta"      validate:"required,max=100"`
	Descripcion       *string             `json:"descripcion"       validate:"omitempty,max=255"`
	PrecioVentaActual decimal.Decimal     `json:"precioVentaActual" validate:"min=0"`
	IDCategoria       *string             `json:"idCategoria"       validate:"omitempty,uuid"`
	URLImagen         *string             `json:"urlImagen"         validate:"omitempty,max=255"`
	Detalles          []ItemRecetaRequest `json:"detalles"          validate:"omitempty,dive"`
}

// ActualizarRecetaRequest: cuando Detalles viene presente, la lista de
// ingredientes se reemplaza completa (delete-all-then-reinsert) y el costo se
// recalcula dentro de la misma transacción.
type ActualizarRecetaRequest struct {
	NombreReceta      *string             `json:"nombreReceta"      validate:"omitempty,max=100"`
	Descripcion       *string             `json:"descripcion"       validate:"omitempty,max=255"`
	PrecioVentaActual *decimal.Decimal    `json:"precioVentaActual"`
	IDCategoria       *string             `json:"idCategoria"       validate:"omitempty,uuid"`
	URLImagen         *string             `json:"urlImagen"         validate:"omitempty,max=255"`
	Detalles          []ItemRecetaRequest `json:"detalles"          validate:"omitempty,dive"`
}

type ItemRecetaResponse struct {
	IDProducto        string          `json:"idProducto"`
	Producto          string          `json:"producto"`
	CantidadConsumida decimal.Decimal `json:"cantidadConsumida"`
	UnidadConsumo     string          `json:"unidadConsumo"`
	CostoUnitario     decimal.Decimal `json:"costoUnitario"`
}

type RecetaResponse struct {
	ID                string               `json:"id"`
	NombreReceta      string               `json:"nombreReceta"`
	Descripcion       *string              `json:"descripcion,omitempty"`
	PrecioVentaActual decimal.Decimal      `json:"precioVentaActual"`
	CostoActual       decimal.Decimal      `json:"costoActual"`
	IDCategoria       *string              `json:"idCategoria,omitempty"`
	URLImagen         *string              `json:"urlImagen,omitempty"`
	Ingredientes      []ItemRecetaResponse `json:"ingredientes"`
}

// CartaItem is one entry of the cached public menu.
type CartaItem struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Categoria   *string         `json:"categoria,omitempty"`
	URLImagen   *string         `json:"urlImagen,omitempty"`
}
