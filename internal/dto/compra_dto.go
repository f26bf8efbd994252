package dto

import "github.com/shopspring/decimal"

type ItemCompraRequest struct {
	IDProducto     string          `json:"idProducto"     validate:"required,uuid"`
	Cantidad       decimal.Decimal `json:"cantidad"       validate:"required"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" validate:"min=0"`
}

type RegistrarCompraRequest struct {
	IDProveedor string              `json:"idProveedor" validate:"required,uuid"`
	Detalles    []ItemCompraRequest `json:"detalles"    validate:"required,min=1,dive"`
}

type ItemCompraResponse struct {
	IDProducto     string          `json:"idProducto"`
	Producto       string          `json:"producto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	SubTotal       decimal.Decimal `json:"subTotal"`
}

type CompraResponse struct {
	ID          string               `json:"id"`
	IDProveedor string               `json:"idProveedor"`
	IDUsuario   string               `json:"idUsuario"`
	Total       decimal.Decimal      `json:"total"`
	Detalles    []ItemCompraResponse `json:"detalles"`
	CreatedAt   string               `json:"createdAt"`
}
