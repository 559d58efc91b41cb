package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tiendaropa/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c, w
}

func TestBindQueryAplicaDefaults(t *testing.T) {
	c, _ := queryContext(t, "")

	var filter dto.ListQuery
	require.True(t, bindQuery(c, &filter))
	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
}

// Las etiquetas de validación del filtro deben ejecutarse también para la
// query string: un limit negativo llegaría a GORM como "sin límite".
func TestBindQueryRechazaLimitNegativo(t *testing.T) {
	c, w := queryContext(t, "limit=-5")

	var filter dto.ListQuery
	assert.False(t, bindQuery(c, &filter))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBindQueryRechazaLimitExcesivo(t *testing.T) {
	c, w := queryContext(t, "limit=5000")

	var filter dto.ListQuery
	assert.False(t, bindQuery(c, &filter))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBindQueryRechazaClienteIDMalformado(t *testing.T) {
	c, w := queryContext(t, "cliente_id=no-es-uuid")

	var filter dto.PedidoFilter
	assert.False(t, bindQuery(c, &filter))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBindQueryTipoInvalidoEs400(t *testing.T) {
	c, w := queryContext(t, "limit=abc")

	var filter dto.ListQuery
	assert.False(t, bindQuery(c, &filter))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
