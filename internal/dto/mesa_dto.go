package dto

type CrearMesaRequest struct {
	NumeroMesa int    `json:"numeroMesa" validate:"required,min=1"`
	Capacidad  int    `json:"capacidad"  validate:"required,min=1"`
	Estado     string `json:"estado"     validate:"omitempty,oneof=LIBRE OCUPADA RESERVADA MANTENIMIENTO"`
}

type ActualizarMesaRequest struct {
	NumeroMesa *int `json:"numeroMesa" validate:"omitempty,min=1"`
	Capacidad  *int `json:"capacidad"  validate:"omitempty,min=1"`
}

type ActualizarEstadoMesaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=LIBRE OCUPADA RESERVADA MANTENIMIENTO"`
}

type MesaResponse struct {
	ID         string `json:"id"`
	NumeroMesa int    `json:"numeroMesa"`
	Capacidad  int    `json:"capacidad"`
	Estado     string `json:"estado"`
}
