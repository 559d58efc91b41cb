package dto

import "github.com/shopspring/decimal"

// ─── Insumo ──────────────────────────────────────────────────────────────────

type CrearInsumoRequest struct {
	Nombre        string           `json:"nombre_insumo" validate:"required"`
	Descripcion   *string          `json:"descripcion"`
	Marca         *string          `json:"marca"`
	Color         *string          `json:"color"`
	UnidadMedida  *string          `json:"unidad_medida"`
	Stock         decimal.Decimal  `json:"stock_insumo"   validate:"min=0"`
	CostoUnitario *decimal.Decimal `json:"costo_unitario" validate:"omitempty,min=0"`
}

type ActualizarInsumoRequest struct {
	Nombre        *string          `json:"nombre_insumo"`
	Descripcion   *string          `json:"descripcion"`
	Marca         *string          `json:"marca"`
	Color         *string          `json:"color"`
	UnidadMedida  *string          `json:"unidad_medida"`
	CostoUnitario *decimal.Decimal `json:"costo_unitario" validate:"omitempty,min=0"`
}

// AjustarStockInsumoRequest es el delta firmado del libro de stock de
// insumos. Decimal: la materia prima se mide en unidades fraccionables.
type AjustarStockInsumoRequest struct {
	Delta decimal.Decimal `json:"delta" validate:"required"`
}

type InsumoResponse struct {
	ID            string           `json:"insumo_id"`
	Nombre        string           `json:"nombre_insumo"`
	Descripcion   *string          `json:"descripcion"`
	Marca         *string          `json:"marca"`
	Color         *string          `json:"color"`
	UnidadMedida  *string          `json:"unidad_medida"`
	Stock         decimal.Decimal  `json:"stock_insumo"`
	CostoUnitario *decimal.Decimal `json:"costo_unitario"`
}

type InsumoListResponse struct {
	Data   []InsumoResponse `json:"data"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// ─── Compra de insumo ────────────────────────────────────────────────────────

type RegistrarCompraRequest struct {
	InsumoID    string          `json:"insumo_id"    validate:"required,uuid"`
	FechaCompra string          `json:"fecha_compra" validate:"required,datetime=2006-01-02"`
	Cantidad    decimal.Decimal `json:"cantidad_compra" validate:"required"`
	CostoTotal  decimal.Decimal `json:"costo_total"     validate:"min=0"`
	Proveedor   *string         `json:"proveedor"`
}

type CompraInsumoResponse struct {
	ID          string          `json:"compra_id"`
	InsumoID    string          `json:"insumo_id"`
	FechaCompra string          `json:"fecha_compra"`
	Cantidad    decimal.Decimal `json:"cantidad_compra"`
	CostoTotal  decimal.Decimal `json:"costo_total"`
	Proveedor   *string         `json:"proveedor"`
}

type CompraInsumoListResponse struct {
	Data   []CompraInsumoResponse `json:"data"`
	Total  int64                  `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// ─── Uso de insumo ───────────────────────────────────────────────────────────

type RegistrarUsoRequest struct {
	InsumoID      string          `json:"insumo_id" validate:"required,uuid"`
	ProductoID    *string         `json:"producto_id" validate:"omitempty,uuid"`
	PedidoID      *string         `json:"pedido_id"   validate:"omitempty,uuid"`
	CantidadUsada decimal.Decimal `json:"cantidad_usada" validate:"required"`
	FechaUso      string          `json:"fecha_uso" validate:"required,datetime=2006-01-02"`
	Notas         *string         `json:"notas"`
}

type UsoInsumoResponse struct {
	ID            string          `json:"uso_id"`
	InsumoID      string          `json:"insumo_id"`
	ProductoID    *string         `json:"producto_id"`
	PedidoID      *string         `json:"pedido_id"`
	CantidadUsada decimal.Decimal `json:"cantidad_usada"`
	FechaUso      string          `json:"fecha_uso"`
	Notas         *string         `json:"notas"`
}

type UsoInsumoListResponse struct {
	Data   []UsoInsumoResponse `json:"data"`
	Total  int64               `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}
