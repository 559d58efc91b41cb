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

type pedidoFixture struct {
	pedidoRepo   *stubPedidoRepo
	productoRepo *stubProductoRepo
	clienteRepo  *stubClienteRepo
	svc          service.PedidoService
}

func newPedidoFixture() *pedidoFixture {
	pedidoRepo := newStubPedidoRepo()
	productoRepo := newStubProductoRepo()
	clienteRepo := newStubClienteRepo()
	insumoRepo := newStubInsumoRepo()
	inventario := service.NewInventarioService(productoRepo, insumoRepo)
	return &pedidoFixture{
		pedidoRepo:   pedidoRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		svc:          service.NewPedidoService(pedidoRepo, clienteRepo, productoRepo, inventario, nil),
	}
}

func (f *pedidoFixture) cliente() uuid.UUID {
	return f.clienteRepo.add(model.Cliente{Nombre: "Ana", Usuario: "ana", PasswordHash: "x"})
}

func (f *pedidoFixture) producto(precio int64, stock int) uuid.UUID {
	return f.productoRepo.add(model.Producto{
		Nombre: "Sudadera espiral",
		Precio: decimal.NewFromInt(precio),
		Stock:  stock,
		Activo: true,
	})
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func TestCrearPedidoDescuentaStockYCapturaPrecio(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	productoID := f.producto(450, 10)

	resp, err := f.svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Items: []dto.PedidoItemRequest{
			{ProductoID: productoID.String(), Cantidad: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.EstatusPorPagar, resp.Estatus)
	assert.True(t, resp.MontoTotal.Equal(decimal.NewFromInt(1350)))
	require.Len(t, resp.Detalles, 1)
	assert.True(t, resp.Detalles[0].PrecioUnitario.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, 7, f.productoRepo.stock(productoID))

	// El precio de la línea queda congelado aunque el producto cambie.
	p, _ := f.productoRepo.FindByID(context.Background(), productoID)
	p.Precio = decimal.NewFromInt(999)
	_ = f.productoRepo.Update(context.Background(), p)
	guardado, err := f.svc.Obtener(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.True(t, guardado.Detalles[0].PrecioUnitario.Equal(decimal.NewFromInt(450)))
}

func TestCrearPedidoCopiaColaboradorDelProducto(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	colaboradorID := uuid.New()
	productoID := f.productoRepo.add(model.Producto{
		Nombre:         "Playera colab",
		Precio:         decimal.NewFromInt(300),
		Stock:          5,
		Activo:         true,
		EsColaboracion: true,
		ColaboradorID:  &colaboradorID,
	})

	resp, err := f.svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "DEPOSITO",
		Items:      []dto.PedidoItemRequest{{ProductoID: productoID.String(), Cantidad: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Detalles[0].ColaboradorID)
	assert.Equal(t, colaboradorID.String(), *resp.Detalles[0].ColaboradorID)
	assert.False(t, resp.Detalles[0].ComisionPagada)
}

// El colaborador se copia siempre que el producto tenga uno, aunque la
// bandera de colaboración esté apagada: la comisión no depende de la bandera.
func TestCrearPedidoCopiaColaboradorSinBandera(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	colaboradorID := uuid.New()
	productoID := f.productoRepo.add(model.Producto{
		Nombre:         "Gorro reeditado",
		Precio:         decimal.NewFromInt(150),
		Stock:          3,
		Activo:         true,
		EsColaboracion: false,
		ColaboradorID:  &colaboradorID,
	})

	resp, err := f.svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Items:      []dto.PedidoItemRequest{{ProductoID: productoID.String(), Cantidad: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Detalles[0].ColaboradorID)
	assert.Equal(t, colaboradorID.String(), *resp.Detalles[0].ColaboradorID)
}

func TestCrearPedidoStockInsuficienteNoMutaNada(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	conStock := f.producto(100, 10)
	sinStock := f.producto(200, 1)

	_, err := f.svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Items: []dto.PedidoItemRequest{
			{ProductoID: conStock.String(), Cantidad: 2},
			{ProductoID: sinStock.String(), Cantidad: 5},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrStockInsuficiente)

	// La primera línea era válida pero no debe haberse descontado.
	assert.Equal(t, 10, f.productoRepo.stock(conStock))
	assert.Equal(t, 1, f.productoRepo.stock(sinStock))
	assert.Empty(t, f.pedidoRepo.pedidos)
}

func TestCrearPedidoProductoInexistente(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	existente := f.producto(100, 10)

	_, err := f.svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Items: []dto.PedidoItemRequest{
			{ProductoID: existente.String(), Cantidad: 1},
			{ProductoID: uuid.NewString(), Cantidad: 1},
		},
	})
	assert.ErrorIs(t, err, service.ErrProductoNoEncontrado)
	assert.Equal(t, 10, f.productoRepo.stock(existente))
}

func TestCrearPedidoClienteInexistente(t *testing.T) {
	f := newPedidoFixture()
	productoID := f.producto(100, 10)

	_, err := f.svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:  uuid.NewString(),
		MetodoPago: "EFECTIVO",
		Items:      []dto.PedidoItemRequest{{ProductoID: productoID.String(), Cantidad: 1}},
	})
	assert.ErrorIs(t, err, service.ErrClienteNoEncontrado)
}

func TestCrearPedidoProductoInactivoRechazado(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	productoID := f.productoRepo.add(model.Producto{
		Nombre: "Descontinuada",
		Precio: decimal.NewFromInt(100),
		Stock:  10,
		Activo: false,
	})

	_, err := f.svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Items:      []dto.PedidoItemRequest{{ProductoID: productoID.String(), Cantidad: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 10, f.productoRepo.stock(productoID))
}

// ── Reemplazar ────────────────────────────────────────────────────────────────

func crearPedidoBase(t *testing.T, f *pedidoFixture, clienteID, productoID uuid.UUID, cantidad int) uuid.UUID {
	t.Helper()
	resp, err := f.svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Items:      []dto.PedidoItemRequest{{ProductoID: productoID.String(), Cantidad: cantidad}},
	})
	require.NoError(t, err)
	return uuid.MustParse(resp.ID)
}

func TestReemplazarPuedeUsarElStockRestaurado(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	productoID := f.producto(100, 10)
	pedidoID := crearPedidoBase(t, f, clienteID, productoID, 4) // stock: 6

	// Las 10 unidades solo alcanzan si primero se restauran las 4 originales.
	resp, err := f.svc.Reemplazar(context.Background(), pedidoID, dto.ReemplazarPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "DEPOSITO",
		Estatus:    model.EstatusPagado,
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: productoID.String(), Cantidad: 10, PrecioUnitario: decimal.NewFromInt(90)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, f.productoRepo.stock(productoID))
	assert.Equal(t, model.EstatusPagado, resp.Estatus)
	assert.Equal(t, "DEPOSITO", resp.MetodoPago)
	// Total recalculado con el precio explícito de la línea nueva.
	assert.True(t, resp.MontoTotal.Equal(decimal.NewFromInt(900)))
}

func TestReemplazarConjuntoInvalidoDejaTodoComoEstaba(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	productoID := f.producto(100, 10)
	pedidoID := crearPedidoBase(t, f, clienteID, productoID, 4) // stock: 6

	_, err := f.svc.Reemplazar(context.Background(), pedidoID, dto.ReemplazarPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Estatus:    model.EstatusPagado,
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: productoID.String(), Cantidad: 11, PrecioUnitario: decimal.NewFromInt(100)},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrStockInsuficiente)

	// Compensación: el stock vuelve al estado previo al intento.
	assert.Equal(t, 6, f.productoRepo.stock(productoID))

	pedido, err := f.svc.Obtener(context.Background(), pedidoID)
	require.NoError(t, err)
	assert.Equal(t, model.EstatusPorPagar, pedido.Estatus)
	require.Len(t, pedido.Detalles, 1)
	assert.Equal(t, 4, pedido.Detalles[0].Cantidad)
}

func TestReemplazarRespetaMontoTotalExplicito(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	productoID := f.producto(100, 10)
	pedidoID := crearPedidoBase(t, f, clienteID, productoID, 2)

	override := decimal.NewFromInt(50) // descuento manual
	resp, err := f.svc.Reemplazar(context.Background(), pedidoID, dto.ReemplazarPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Estatus:    model.EstatusPorPagar,
		MontoTotal: &override,
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: productoID.String(), Cantidad: 2, PrecioUnitario: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.MontoTotal.Equal(override))
}

func TestReemplazarPedidoInexistente(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()

	_, err := f.svc.Reemplazar(context.Background(), uuid.New(), dto.ReemplazarPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Estatus:    model.EstatusPorPagar,
		Detalles: []dto.DetallePedidoRequest{
			{ProductoID: uuid.NewString(), Cantidad: 1, PrecioUnitario: decimal.NewFromInt(10)},
		},
	})
	assert.ErrorIs(t, err, service.ErrPedidoNoEncontrado)
}

// ── Eliminar ──────────────────────────────────────────────────────────────────

func TestEliminarPedidoRestauraStock(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	productoID := f.producto(100, 10)
	pedidoID := crearPedidoBase(t, f, clienteID, productoID, 4) // stock: 6

	require.NoError(t, f.svc.Eliminar(context.Background(), pedidoID))

	assert.Equal(t, 10, f.productoRepo.stock(productoID))
	_, err := f.svc.Obtener(context.Background(), pedidoID)
	assert.ErrorIs(t, err, service.ErrPedidoNoEncontrado)
}

func TestEliminarPedidoConProductoBorradoOmiteLaRestauracion(t *testing.T) {
	f := newPedidoFixture()
	clienteID := f.cliente()
	borrado := f.producto(100, 10)
	vivo := f.producto(100, 10)

	resp, err := f.svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:  clienteID.String(),
		MetodoPago: "EFECTIVO",
		Items: []dto.PedidoItemRequest{
			{ProductoID: borrado.String(), Cantidad: 2},
			{ProductoID: vivo.String(), Cantidad: 3},
		},
	})
	require.NoError(t, err)
	require.NoError(t, f.productoRepo.Delete(context.Background(), borrado))

	require.NoError(t, f.svc.Eliminar(context.Background(), uuid.MustParse(resp.ID)))
	assert.Equal(t, 10, f.productoRepo.stock(vivo))
}

func TestEliminarPedidoInexistente(t *testing.T) {
	f := newPedidoFixture()
	err := f.svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrPedidoNoEncontrado)
}
