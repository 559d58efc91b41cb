package handler

import (
	"net/http"

	"tiendaropa/internal/apierror"
	"tiendaropa/internal/dto"
	"tiendaropa/internal/service"

	"github.com/gin-gonic/gin"
)

type InsumosHandler struct {
	svc        service.InsumoService
	inventario service.InventarioService
}

func NewInsumosHandler(svc service.InsumoService, inventario service.InventarioService) *InsumosHandler {
	return &InsumosHandler{svc: svc, inventario: inventario}
}

func (h *InsumosHandler) Crear(c *gin.Context) {
	var req dto.CrearInsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InsumosHandler) Listar(c *gin.Context) {
	var filter dto.ListQuery
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar insumos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarInsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsumosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AjustarStock godoc
// @Summary Ajuste manual de stock de insumo
// @Tags insumos
// @Accept json
// @Produce json
// @Param id path string true "ID del insumo"
// @Param body body dto.AjustarStockInsumoRequest true "Delta decimal"
// @Success 200 {object} dto.InsumoResponse
// @Failure 400 {object} apierror.APIError "Stock insuficiente"
// @Failure 404 {object} apierror.APIError
// @Router /v1/insumos/{id}/stock [patch]
func (h *InsumosHandler) AjustarStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AjustarStockInsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.inventario.AjustarStockInsumo(c.Request.Context(), id, req.Delta)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Compras ──────────────────────────────────────────────────────────────────

// RegistrarCompra godoc
// @Summary Registrar compra de insumo
// @Description Guarda la entrada y abona la cantidad al stock del insumo.
// @Tags insumos
// @Accept json
// @Produce json
// @Param body body dto.RegistrarCompraRequest true "Compra"
// @Success 201 {object} dto.CompraInsumoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/compras-insumo [post]
func (h *InsumosHandler) RegistrarCompra(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarCompra(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InsumosHandler) ListarCompras(c *gin.Context) {
	var filter dto.ListQuery
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarCompras(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Usos ─────────────────────────────────────────────────────────────────────

// RegistrarUso godoc
// @Summary Registrar uso de insumo
// @Description Guarda la salida y descuenta el stock. El registro se conserva aunque el descuento se rechace.
// @Tags insumos
// @Accept json
// @Produce json
// @Param body body dto.RegistrarUsoRequest true "Uso"
// @Success 201 {object} dto.UsoInsumoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/usos-insumo [post]
func (h *InsumosHandler) RegistrarUso(c *gin.Context) {
	var req dto.RegistrarUsoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarUso(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InsumosHandler) ListarUsos(c *gin.Context) {
	var filter dto.ListQuery
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarUsos(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
