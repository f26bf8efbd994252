package handler

import (
	"net/http"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/service"

	"github.com/gin-gonic/gin"
)

type RecetasHandler struct{ svc service.RecetaService }

func NewRecetasHandler(svc service.RecetaService) *RecetasHandler { return &RecetasHandler{svc: svc} }

// CrearReceta godoc
// @Summary      Crear receta
// @Description  Crea una receta con su lista de ingredientes; el costo se calcula y persiste en la misma transacción.
// @Tags         recetas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearRecetaRequest true "Receta"
// @Success      201  {object} dto.RecetaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/recetas [post]
func (h *RecetasHandler) CrearReceta(c *gin.Context) {
	var req dto.CrearRecetaRequest
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

// ActualizarReceta godoc
// @Summary      Actualizar receta
// @Description  Cuando el body incluye detalles, la lista de ingredientes se reemplaza completa y el costo se recalcula.
// @Tags         recetas
// @Security     BearerAuth
// @Param        id   path string true "UUID de la receta"
// @Param        body body dto.ActualizarRecetaRequest true "Campos a actualizar"
// @Success      200  {object} dto.RecetaResponse
// @Router       /v1/recetas/{id} [patch]
func (h *RecetasHandler) ActualizarReceta(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarRecetaRequest
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

func (h *RecetasHandler) ListarRecetas(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecetasHandler) ObtenerReceta(c *gin.Context) {
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

func (h *RecetasHandler) EliminarReceta(c *gin.Context) {
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
