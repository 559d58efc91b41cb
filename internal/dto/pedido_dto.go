package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// PedidoItemRequest es un ítem del carrito al crear un pedido. El precio
// unitario y el colaborador NO se aceptan aquí: se capturan del producto al
// momento de crear.
type PedidoItemRequest struct {
	ProductoID           string  `json:"producto_id" validate:"required,uuid"`
	Cantidad             int     `json:"cantidad"    validate:"required,min=1"`
	NotasPersonalizacion *string `json:"notas_personalizacion"`
}

type CrearPedidoRequest struct {
	ClienteID            string              `json:"cliente_id"  validate:"required,uuid"`
	MetodoPago           string              `json:"metodo_pago" validate:"required"` // EFECTIVO, DEPOSITO
	Items                []PedidoItemRequest `json:"items"       validate:"required,min=1,dive"`
	DireccionEntrega     *string             `json:"direccion_entrega"`
	InstruccionesEntrega *string             `json:"instrucciones_entrega"`
}

// DetallePedidoRequest es una línea completamente especificada para el
// reemplazo total de un pedido.
type DetallePedidoRequest struct {
	ProductoID           string          `json:"producto_id"     validate:"required,uuid"`
	Cantidad             int             `json:"cantidad"        validate:"required,min=1"`
	PrecioUnitario       decimal.Decimal `json:"precio_unitario" validate:"min=0"`
	ColaboradorID        *string         `json:"colaborador_id"  validate:"omitempty,uuid"`
	ComisionPagada       bool            `json:"comision_pagada"`
	NotasPersonalizacion *string         `json:"notas_personalizacion"`
}

// ReemplazarPedidoRequest reemplaza todos los campos mutables del pedido,
// incluido el conjunto completo de detalles. MontoTotal es opcional: si se
// omite, se recalcula sumando precio_unitario × cantidad de los detalles.
type ReemplazarPedidoRequest struct {
	ClienteID            string                 `json:"cliente_id"  validate:"required,uuid"`
	MetodoPago           string                 `json:"metodo_pago" validate:"required"`
	Estatus              string                 `json:"estatus"     validate:"required"`
	MontoTotal           *decimal.Decimal       `json:"monto_total"`
	DireccionEntrega     *string                `json:"direccion_entrega"`
	InstruccionesEntrega *string                `json:"instrucciones_entrega"`
	Detalles             []DetallePedidoRequest `json:"detalles" validate:"required,min=1,dive"`
}

// PedidoFilter is bound from the query string of GET /v1/pedidos.
type PedidoFilter struct {
	ClienteID string `form:"cliente_id" validate:"omitempty,uuid"`
	Estatus   string `form:"estatus"`
	Desde     string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta     string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit,default=50"  validate:"min=1,max=200"`
	Offset    int    `form:"offset,default=0"  validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetallePedidoResponse struct {
	DetalleID            string          `json:"detalle_id"`
	ProductoID           *string         `json:"producto_id"`
	Cantidad             int             `json:"cantidad"`
	PrecioUnitario       decimal.Decimal `json:"precio_unitario"`
	ColaboradorID        *string         `json:"colaborador_id"`
	ComisionPagada       bool            `json:"comision_pagada"`
	NotasPersonalizacion *string         `json:"notas_personalizacion"`
}

type PedidoResponse struct {
	ID                   string                  `json:"pedido_id"`
	ClienteID            string                  `json:"cliente_id"`
	FechaPedido          string                  `json:"fecha_pedido"`
	MetodoPago           string                  `json:"metodo_pago"`
	Estatus              string                  `json:"estatus"`
	MontoTotal           decimal.Decimal         `json:"monto_total"`
	DireccionEntrega     *string                 `json:"direccion_entrega"`
	InstruccionesEntrega *string                 `json:"instrucciones_entrega"`
	Detalles             []DetallePedidoResponse `json:"detalles"`
}

type PedidoListResponse struct {
	Data   []PedidoResponse `json:"data"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
