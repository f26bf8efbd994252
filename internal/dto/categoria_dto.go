package dto

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,max=50"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=255"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,max=50"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=255"`
}

type CategoriaResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}
