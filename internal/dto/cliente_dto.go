package dto

type CrearClienteRequest struct {
	NombreFiscal string  `json:"nombreFiscal" validate:"required,max=100"`
	NitCI        *string `json:"nitCI"        validate:"omitempty,max=30"`
}

type ActualizarClienteRequest struct {
	NombreFiscal *string `json:"nombreFiscal" validate:"omitempty,max=100"`
	NitCI        *string `json:"nitCI"        validate:"omitempty,max=30"`
}

type ClienteResponse struct {
	ID           string  `json:"id"`
	NombreFiscal string  `json:"nombreFiscal"`
	NitCI        *string `json:"nitCI,omitempty"`
}
