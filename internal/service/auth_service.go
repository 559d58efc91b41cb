package service

import (
	"context"
	"errors"
	"time"

	"tiendaropa/internal/config"
	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"
	"tiendaropa/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.ClienteRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.ClienteRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// Login valida credenciales de cliente y emite un JWT HS256. El mensaje de
// error no distingue usuario inexistente de contraseña incorrecta.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	cliente, err := s.repo.FindByUsuario(ctx, req.Usuario)
	if err != nil {
		return nil, errors.New("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cliente.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales inválidas")
	}

	expira := time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)
	token, err := s.generateToken(cliente, expira)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:    token,
		ExpiraEn: expira.Unix(),
		Cliente:  *clienteToResponse(cliente),
	}, nil
}

func (s *authService) generateToken(c *model.Cliente, expira time.Time) (string, error) {
	claims := jwt.MapClaims{
		"cliente_id": c.ID.String(),
		"usuario":    c.Usuario,
		"es_admin":   c.EsAdmin,
		"exp":        expira.Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
