package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servirHealth(t *testing.T, sondas map[string]sonda) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	healthHandler(sondas)(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHealthTodoSano(t *testing.T) {
	sana := func(context.Context) error { return nil }
	w, body := servirHealth(t, map[string]sonda{"postgres": sana, "redis": sana})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["estatus"])
}

func TestHealthDependenciaCaidaDegradaA503(t *testing.T) {
	sana := func(context.Context) error { return nil }
	caida := func(context.Context) error { return errors.New("connection refused") }
	w, body := servirHealth(t, map[string]sonda{"postgres": sana, "redis": caida})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degradado", body["estatus"])
	deps := body["dependencias"].(map[string]any)
	assert.Equal(t, "ok", deps["postgres"])
	assert.Equal(t, "caido", deps["redis"])
}
