package service

import (
	"context"
	"fmt"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventarioService concentra toda mutación de stock, de productos y de
// insumos. Nadie más escribe esas columnas.
type InventarioService interface {
	AjustarStockProducto(ctx context.Context, id uuid.UUID, delta int) (*dto.ProductoResponse, error)
	// AjustarStockProductoTx es la variante usada dentro de la transacción de
	// un pedido; asume que el producto ya fue validado, así que un rechazo de
	// la guarda se reporta como stock insuficiente.
	AjustarStockProductoTx(tx *gorm.DB, id uuid.UUID, delta int) error
	AjustarStockInsumo(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*dto.InsumoResponse, error)
}

type inventarioService struct {
	productoRepo repository.ProductoRepository
	insumoRepo   repository.InsumoRepository
}

func NewInventarioService(productoRepo repository.ProductoRepository, insumoRepo repository.InsumoRepository) InventarioService {
	return &inventarioService{productoRepo: productoRepo, insumoRepo: insumoRepo}
}

func (s *inventarioService) AjustarStockProducto(ctx context.Context, id uuid.UUID, delta int) (*dto.ProductoResponse, error) {
	ok, err := s.productoRepo.AjustarStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		// La guarda no distingue entre fila inexistente y resultado
		// negativo; una lectura posterior lo resuelve.
		if _, err := s.productoRepo.FindByID(ctx, id); err != nil {
			return nil, fmt.Errorf("producto %s: %w", id, ErrProductoNoEncontrado)
		}
		return nil, fmt.Errorf("producto %s (delta %d): %w", id, delta, ErrStockInsuficiente)
	}
	p, err := s.productoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("producto %s: %w", id, ErrProductoNoEncontrado)
	}
	return productoToResponse(p), nil
}

func (s *inventarioService) AjustarStockProductoTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	ok, err := s.productoRepo.AjustarStockTx(tx, id, delta)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("producto %s (delta %d): %w", id, delta, ErrStockInsuficiente)
	}
	return nil
}

func (s *inventarioService) AjustarStockInsumo(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*dto.InsumoResponse, error) {
	ok, err := s.insumoRepo.AjustarStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		if _, err := s.insumoRepo.FindByID(ctx, id); err != nil {
			return nil, fmt.Errorf("insumo %s: %w", id, ErrInsumoNoEncontrado)
		}
		return nil, fmt.Errorf("insumo %s (delta %s): %w", id, delta, ErrStockInsuficiente)
	}
	i, err := s.insumoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("insumo %s: %w", id, ErrInsumoNoEncontrado)
	}
	return insumoToResponse(i), nil
}
