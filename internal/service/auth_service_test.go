package service_test

import (
	"context"
	"testing"

	"tiendaropa/internal/config"
	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"
	"tiendaropa/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (service.AuthService, *stubClienteRepo) {
	t.Helper()
	repo := newStubClienteRepo()
	cfg := &config.Config{JWTSecret: "secreto-de-prueba", JWTExpirationHours: 24}
	return service.NewAuthService(repo, cfg), repo
}

func addClienteConPassword(t *testing.T, repo *stubClienteRepo, usuario, password string, esAdmin bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.add(model.Cliente{
		Nombre:       "Laura",
		Usuario:      usuario,
		PasswordHash: string(hash),
		EsAdmin:      esAdmin,
	})
}

func TestLoginEmiteTokenConClaims(t *testing.T) {
	svc, repo := newAuthFixture(t)
	addClienteConPassword(t, repo, "laura", "tie-dye-2026", true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Usuario:  "laura",
		Password: "tie-dye-2026",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "laura", resp.Cliente.Usuario)

	parsed, err := jwt.Parse(resp.Token, func(_ *jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "laura", claims["usuario"])
	assert.Equal(t, true, claims["es_admin"])
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	svc, repo := newAuthFixture(t)
	addClienteConPassword(t, repo, "laura", "tie-dye-2026", false)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Usuario:  "laura",
		Password: "otra-cosa",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "credenciales inválidas")
}

// Usuario inexistente y contraseña incorrecta producen el mismo mensaje.
func TestLoginUsuarioInexistenteMismoMensaje(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Usuario:  "nadie",
		Password: "lo-que-sea",
	})
	require.Error(t, err)
	assert.EqualError(t, err, "credenciales inválidas")
}
