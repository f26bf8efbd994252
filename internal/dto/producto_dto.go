package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre       string          `json:"nombre"       validate:"required,max=50"`
	Descripcion  *string         `json:"descripcion"  validate:"omitempty,max=100"`
	IDCategoria  *string         `json:"idCategoria"  validate:"omitempty,uuid"`
	UnidadMedida string          `json:"unidadMedida" validate:"required,max=30"`
	StockActual  decimal.Decimal `json:"stockActual"  validate:"min=0"`
	StockMinimo  decimal.Decimal `json:"stockMinimo"  validate:"min=0"`
	CostoUnitarioPromedio decimal.Decimal `json:"costoUnitarioPromedio" validate:"min=0"`
	EsVendible            bool            `json:"esVendible"`
	Perecedero            bool            `json:"perecedero"`
}

type ActualizarProductoRequest struct {
	Nombre       *string          `json:"nombre"       validate:"omitempty,max=50"`
	Descripcion  *string          `json:"descripcion"  validate:"omitempty,max=100"`
	IDCategoria  *string          `json:"idCategoria"  validate:"omitempty,uuid"`
	UnidadMedida *string          `json:"unidadMedida" validate:"omitempty,max=30"`
	StockMinimo  *decimal.Decimal `json:"stockMinimo"`
	EsVendible   *bool            `json:"esVendible"`
	Perecedero   *bool            `json:"perecedero"`
}

type AjustarStockRequest struct {
	// Cantidad firmada: positiva repone, negativa descuenta.
	Cantidad decimal.Decimal `json:"cantidad" validate:"required"`
	Motivo   string          `json:"motivo"   validate:"required,min=5"`
}

// ProductoFilter is bound from the query string of GET /v1/productos.
type ProductoFilter struct {
	Nombre     string `form:"nombre"`
	Categoria  string `form:"categoria"`
	EsVendible string `form:"esVendible"` // "true" | "false" | "" (all)
	BajoStock  bool   `form:"bajoStock"`  // only products at/below stock mínimo
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductoResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Descripcion  *string         `json:"descripcion,omitempty"`
	IDCategoria  *string         `json:"idCategoria,omitempty"`
	UnidadMedida string          `json:"unidadMedida"`
	StockActual  decimal.Decimal `json:"stockActual"`
	StockMinimo  decimal.Decimal `json:"stockMinimo"`
	CostoUnitarioPromedio decimal.Decimal `json:"costoUnitarioPromedio"`
	EsVendible            bool            `json:"esVendible"`
	Perecedero            bool            `json:"perecedero"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
