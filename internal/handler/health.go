package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// sonda verifica una dependencia externa; nil significa sana.
type sonda func(ctx context.Context) error

const healthTimeout = 3 * time.Second

// Health responde el estado de Postgres y Redis. Cualquier dependencia caída
// degrada la respuesta completa a 503 para que el balanceador saque la
// instancia de rotación.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return healthHandler(map[string]sonda{
		"postgres": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	})
}

func healthHandler(sondas map[string]sonda) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		code := http.StatusOK
		dependencias := gin.H{}
		for nombre, probar := range sondas {
			if err := probar(ctx); err != nil {
				dependencias[nombre] = "caido"
				code = http.StatusServiceUnavailable
				continue
			}
			dependencias[nombre] = "ok"
		}

		c.JSON(code, gin.H{
			"estatus":      estatusDe(code),
			"dependencias": dependencias,
		})
	}
}

func estatusDe(code int) string {
	if code == http.StatusOK {
		return "ok"
	}
	return "degradado"
}
