package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health sondea los dos almacenes de los que depende el sistema: Postgres
// (ventas, stock, recetas) y Redis (carta cacheada y cola de tickets). Con
// cualquiera de los dos caído responde 503 para que el balanceador saque la
// instancia de rotación. Nunca expone credenciales ni detalles internos.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		componentes := gin.H{"postgres": "up", "redis": "up"}
		degradado := false

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			componentes["postgres"] = "down"
			degradado = true
		}
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			componentes["redis"] = "down"
			degradado = true
		}

		estado, status := "ok", http.StatusOK
		if degradado {
			estado, status = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": estado, "componentes": componentes})
	}
}
