package handler

import (
	"net/http"

	"tiendaropa/internal/apierror"
	"tiendaropa/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AdminHandler agrupa las operaciones reservadas a administradores con JWT.
type AdminHandler struct{ rdb *redis.Client }

func NewAdminHandler(rdb *redis.Client) *AdminHandler {
	return &AdminHandler{rdb: rdb}
}

// DLQNotificaciones reporta cuántas notificaciones agotaron sus reintentos y
// esperan inspección manual en la cola muerta.
func (h *AdminHandler) DLQNotificaciones(c *gin.Context) {
	pendientes, err := worker.DLQLength(c.Request.Context(), h.rdb, worker.QueueNotificaciones)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar la cola muerta"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cola":       worker.QueueNotificaciones,
		"pendientes": pendientes,
	})
}
