package service_test

import (
	"context"
	"testing"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"
	"tiendaropa/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type insumoFixture struct {
	insumoRepo *stubInsumoRepo
	compraRepo *stubCompraRepo
	usoRepo    *stubUsoRepo
	inventario service.InventarioService
	svc        service.InsumoService
}

func newInsumoFixture() *insumoFixture {
	insumoRepo := newStubInsumoRepo()
	compraRepo := &stubCompraRepo{}
	usoRepo := &stubUsoRepo{}
	inventario := service.NewInventarioService(newStubProductoRepo(), insumoRepo)
	return &insumoFixture{
		insumoRepo: insumoRepo,
		compraRepo: compraRepo,
		usoRepo:    usoRepo,
		inventario: inventario,
		svc:        service.NewInsumoService(insumoRepo, compraRepo, usoRepo, inventario),
	}
}

func (f *insumoFixture) insumo(stock string) uuid.UUID {
	return f.insumoRepo.add(model.Insumo{
		Nombre: "Colorante azul",
		Stock:  decimal.RequireFromString(stock),
	})
}

func TestRegistrarCompraAbonaStock(t *testing.T) {
	f := newInsumoFixture()
	insumoID := f.insumo("2.5")

	resp, err := f.svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		InsumoID:    insumoID.String(),
		FechaCompra: "2026-03-10",
		Cantidad:    decimal.RequireFromString("1.25"),
		CostoTotal:  decimal.NewFromInt(180),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", resp.FechaCompra)
	assert.True(t, f.insumoRepo.stock(insumoID).Equal(decimal.RequireFromString("3.75")))
	require.Len(t, f.compraRepo.compras, 1)
	assert.Equal(t, insumoID, f.compraRepo.compras[0].InsumoID)
}

func TestRegistrarCompraInsumoInexistente(t *testing.T) {
	f := newInsumoFixture()

	_, err := f.svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		InsumoID:    uuid.NewString(),
		FechaCompra: "2026-03-10",
		Cantidad:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, service.ErrInsumoNoEncontrado)
	assert.Empty(t, f.compraRepo.compras)
}

func TestRegistrarUsoDescuentaStock(t *testing.T) {
	f := newInsumoFixture()
	insumoID := f.insumo("5")

	resp, err := f.svc.RegistrarUso(context.Background(), dto.RegistrarUsoRequest{
		InsumoID:      insumoID.String(),
		CantidadUsada: decimal.RequireFromString("1.5"),
		FechaUso:      "2026-03-11",
	})
	require.NoError(t, err)

	assert.True(t, resp.CantidadUsada.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, f.insumoRepo.stock(insumoID).Equal(decimal.RequireFromString("3.5")))
	require.Len(t, f.usoRepo.usos, 1)
}

// El consumo ya ocurrió en el taller: el registro se conserva aunque el
// descuento deje el stock igual.
func TestRegistrarUsoExcesivoConservaElRegistro(t *testing.T) {
	f := newInsumoFixture()
	insumoID := f.insumo("1")

	resp, err := f.svc.RegistrarUso(context.Background(), dto.RegistrarUsoRequest{
		InsumoID:      insumoID.String(),
		CantidadUsada: decimal.NewFromInt(4),
		FechaUso:      "2026-03-11",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, f.usoRepo.usos, 1)
	assert.True(t, f.insumoRepo.stock(insumoID).Equal(decimal.NewFromInt(1)))
}

func TestRegistrarUsoFechaInvalida(t *testing.T) {
	f := newInsumoFixture()
	insumoID := f.insumo("5")

	_, err := f.svc.RegistrarUso(context.Background(), dto.RegistrarUsoRequest{
		InsumoID:      insumoID.String(),
		CantidadUsada: decimal.NewFromInt(1),
		FechaUso:      "11/03/2026",
	})
	require.Error(t, err)
	assert.Empty(t, f.usoRepo.usos)
}

func TestActualizarInsumoNoTocaStock(t *testing.T) {
	f := newInsumoFixture()
	insumoID := f.insumo("7.5")

	nombre := "Colorante índigo"
	marca := "Mordiente MX"
	resp, err := f.svc.Actualizar(context.Background(), insumoID, dto.ActualizarInsumoRequest{
		Nombre: &nombre,
		Marca:  &marca,
	})
	require.NoError(t, err)

	assert.Equal(t, "Colorante índigo", resp.Nombre)
	require.NotNil(t, resp.Marca)
	assert.Equal(t, "Mordiente MX", *resp.Marca)
	assert.True(t, f.insumoRepo.stock(insumoID).Equal(decimal.RequireFromString("7.5")))
}

// ── Ajustes manuales vía inventario ──────────────────────────────────────────

func TestAjustarStockInsumoRechazaNegativo(t *testing.T) {
	f := newInsumoFixture()
	insumoID := f.insumo("2")

	_, err := f.inventario.AjustarStockInsumo(context.Background(), insumoID, decimal.NewFromInt(-3))
	assert.ErrorIs(t, err, service.ErrStockInsuficiente)
	assert.True(t, f.insumoRepo.stock(insumoID).Equal(decimal.NewFromInt(2)))
}

func TestAjustarStockInsumoInexistente(t *testing.T) {
	f := newInsumoFixture()

	_, err := f.inventario.AjustarStockInsumo(context.Background(), uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, service.ErrInsumoNoEncontrado)
}

func TestAjustarStockProductoDistingueFaltanteDeInsuficiente(t *testing.T) {
	productoRepo := newStubProductoRepo()
	inventario := service.NewInventarioService(productoRepo, newStubInsumoRepo())
	productoID := productoRepo.add(model.Producto{
		Nombre: "Bolsa teñida",
		Precio: decimal.NewFromInt(120),
		Stock:  2,
		Activo: true,
	})

	_, err := inventario.AjustarStockProducto(context.Background(), productoID, -5)
	assert.ErrorIs(t, err, service.ErrStockInsuficiente)

	_, err = inventario.AjustarStockProducto(context.Background(), uuid.New(), 1)
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)

	resp, err := inventario.AjustarStockProducto(context.Background(), productoID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Stock)
}
