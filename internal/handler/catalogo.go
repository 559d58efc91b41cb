package handler

// Handlers de catálogo plano: categorías, tallas, patrones y colaboradores.
// Todos comparten CatalogoService.

import (
	"net/http"

	"tiendaropa/internal/apierror"
	"tiendaropa/internal/dto"
	"tiendaropa/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// ── Categorías ───────────────────────────────────────────────────────────────

func (h *CatalogoHandler) CrearCategoria(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCategoria(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogoHandler) ListarCategorias(c *gin.Context) {
	var filter dto.ListQuery
	if !bindQuery(c, &filter) {
		return
	}
	data, total, err := h.svc.ListarCategorias(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar categorías"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "total": total, "limit": filter.Limit, "offset": filter.Offset})
}

func (h *CatalogoHandler) ObtenerCategoria(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerCategoria(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ActualizarCategoria(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarCategoria(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) EliminarCategoria(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarCategoria(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Tallas ───────────────────────────────────────────────────────────────────

func (h *CatalogoHandler) CrearTalla(c *gin.Context) {
	var req dto.CrearTallaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearTalla(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogoHandler) ListarTallas(c *gin.Context) {
	data, err := h.svc.ListarTallas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar tallas"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *CatalogoHandler) EliminarTalla(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarTalla(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Patrones ─────────────────────────────────────────────────────────────────

func (h *CatalogoHandler) CrearPatron(c *gin.Context) {
	var req dto.CrearPatronRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearPatron(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogoHandler) ListarPatrones(c *gin.Context) {
	var filter dto.ListQuery
	if !bindQuery(c, &filter) {
		return
	}
	data, total, err := h.svc.ListarPatrones(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar patrones"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "total": total, "limit": filter.Limit, "offset": filter.Offset})
}

func (h *CatalogoHandler) ActualizarPatron(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPatronRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarPatron(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) EliminarPatron(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarPatron(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Colaboradores ────────────────────────────────────────────────────────────

func (h *CatalogoHandler) CrearColaborador(c *gin.Context) {
	var req dto.CrearColaboradorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearColaborador(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogoHandler) ListarColaboradores(c *gin.Context) {
	var filter dto.ListQuery
	if !bindQuery(c, &filter) {
		return
	}
	data, total, err := h.svc.ListarColaboradores(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar colaboradores"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "total": total, "limit": filter.Limit, "offset": filter.Offset})
}

func (h *CatalogoHandler) ObtenerColaborador(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerColaborador(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) ActualizarColaborador(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarColaboradorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarColaborador(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) EliminarColaborador(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarColaborador(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
