package dto

type CrearProveedorRequest struct {
	RazonSocial string  `json:"razonSocial" validate:"required,max=100"`
	Nit         *string `json:"nit"         validate:"omitempty,max=30"`
	Telefono    *string `json:"telefono"    validate:"omitempty,max=30"`
	Email       *string `json:"email"       validate:"omitempty,email"`
	Direccion   *string `json:"direccion"   validate:"omitempty,max=255"`
}

type ActualizarProveedorRequest struct {
	RazonSocial *string `json:"razonSocial" validate:"omitempty,max=100"`
	Nit         *string `json:"nit"         validate:"omitempty,max=30"`
	Telefono    *string `json:"telefono"    validate:"omitempty,max=30"`
	Email       *string `json:"email"       validate:"omitempty,email"`
	Direccion   *string `json:"direccion"   validate:"omitempty,max=255"`
}

type ProveedorResponse struct {
	ID          string  `json:"id"`
	RazonSocial string  `json:"razonSocial"`
	Nit         *string `json:"nit,omitempty"`
	Telefono    *string `json:"telefono,omitempty"`
	Email       *string `json:"email,omitempty"`
	Direccion   *string `json:"direccion,omitempty"`
}
