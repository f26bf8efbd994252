package handler

import (
	"net/http"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/service"

	"github.com/gin-gonic/gin"
)

type CartaHandler struct{ svc service.CartaService }

func NewCartaHandler(svc service.CartaService) *CartaHandler { return &CartaHandler{svc: svc} }

// GetCarta godoc
// @Summary      Carta del negocio
// @Description  Lista pública de recetas activas con su precio. Respuesta cacheada en Redis; se invalida al mutar cualquier receta.
// @Tags         carta
// @Produce      json
// @Success      200 {array} dto.CartaItem
// @Router       /v1/carta [get]
func (h *CartaHandler) GetCarta(c *gin.Context) {
	items, err := h.svc.GetCarta(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
