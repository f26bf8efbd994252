package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemVentaRequest is one sold line. Exactly one of IDReceta / IDProducto must
// be present — the service rejects lines with both or neither.
type ItemVentaRequest struct {
	IDReceta       *string         `json:"idReceta"       validate:"omitempty,uuid"`
	IDProducto     *string         `json:"idProducto"     validate:"omitempty,uuid"`
	Cantidad       decimal.Decimal `json:"cantidad"       validate:"required"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" validate:"min=0"`
}

type RegistrarVentaRequest struct {
	IDMesa   *string            `json:"idMesa"   validate:"omitempty,uuid"`
	TipoPago string             `json:"tipoPago" validate:"required,oneof=EFECTIVO TARJETA QR"`
	Detalles []ItemVentaRequest `json:"detalles" validate:"required,min=1,dive"`

	// Datos fiscales opcionales: o un cliente existente, o NIT + nombre fiscal
	// para resolución lazy. Ninguno = venta anónima.
	IDCliente    *string `json:"idCliente"    validate:"omitempty,uuid"`
	NitCI        *string `json:"nitCI"        validate:"omitempty,max=30"`
	NombreFiscal *string `json:"nombreFiscal" validate:"omitempty,max=100"`

	// EmailCliente: cuando está presente, el worker de tickets envía el PDF.
	EmailCliente *string `json:"emailCliente" validate:"omitempty,email"`
}

type ActualizarEstadoVentaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=PAGADA PREPARANDO LISTO ARCHIVADA"`
}

// VentaFilter is bound from the query string of GET /v1/ventas.
type VentaFilter struct {
	Fecha  string `form:"fecha"`  // YYYY-MM-DD; empty = today
	Estado string `form:"estado"` // PAGADA | PREPARANDO | LISTO | ARCHIVADA | all
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	IDReceta       *string         `json:"idReceta,omitempty"`
	IDProducto     *string         `json:"idProducto,omitempty"`
	Nombre         string          `json:"nombre"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	CostoUnitario  decimal.Decimal `json:"costoUnitario"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	IDMesa    *string             `json:"idMesa,omitempty"`
	IDUsuario string              `json:"idUsuario"`
	IDCliente *string             `json:"idCliente,omitempty"`
	Total     decimal.Decimal     `json:"total"`
	TipoPago  string              `json:"tipoPago"`
	Estado    string              `json:"estado"`
	Detalles  []ItemVentaResponse `json:"detalles"`
	CreatedAt string              `json:"createdAt"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
