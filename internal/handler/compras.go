package handler

import (
	"net/http"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/middleware"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler { return &ComprasHandler{svc: svc} }

// RegistrarCompra godoc
// @Summary      Registrar compra a proveedor
// @Description  Crea la compra y repone el stock de cada producto en una sola transacción; el costo promedio se recalcula ponderado.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarCompraRequest true "Compra"
// @Success      201  {object} dto.CompraResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/compras [post]
func (h *ComprasHandler) RegistrarCompra(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.RegistrarCompra(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComprasHandler) ListarCompras(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComprasHandler) ObtenerCompra(c *gin.Context) {
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
