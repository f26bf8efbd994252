package handler

import (
	"net/http"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/service"

	"github.com/gin-gonic/gin"
)

type MesasHandler struct{ svc service.MesaService }

func NewMesasHandler(svc service.MesaService) *MesasHandler { return &MesasHandler{svc: svc} }

func (h *MesasHandler) CrearMesa(c *gin.Context) {
	var req dto.CrearMesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MesasHandler) ActualizarMesa(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarMesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarEstado cambia manualmente el estado de una mesa (p. ej. RESERVADA
// o MANTENIMIENTO); las transiciones OCUPADA/LIBRE normales las maneja el
// ciclo de vida de la venta.
func (h *MesasHandler) ActualizarEstado(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarEstadoMesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SetEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MesasHandler) ListarMesas(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MesasHandler) ObtenerMesa(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MesasHandler) EliminarMesa(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
