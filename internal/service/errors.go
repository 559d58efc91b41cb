package service

import "errors"

// Los dos tipos de falla esperados del núcleo de pedidos e inventario se
// mantienen distinguibles: la capa HTTP traduce "no encontrado" a 404 y
// "stock insuficiente" a 400. Se comparan con errors.Is; los servicios los
// envuelven con contexto adicional.
var (
	ErrClienteNoEncontrado  = errors.New("cliente no encontrado")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrPedidoNoEncontrado   = errors.New("pedido no encontrado")
	ErrInsumoNoEncontrado   = errors.New("insumo no encontrado")
	ErrStockInsuficiente    = errors.New("stock insuficiente")
)

// EsNoEncontrado reports whether err is any of the not-found kinds.
func EsNoEncontrado(err error) bool {
	return errors.Is(err, ErrClienteNoEncontrado) ||
		errors.Is(err, ErrProductoNoEncontrado) ||
		errors.Is(err, ErrPedidoNoEncontrado) ||
		errors.Is(err, ErrInsumoNoEncontrado)
}
