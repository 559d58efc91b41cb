package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre_producto" validate:"required"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio" validate:"min=0"`
	Stock       int             `json:"stock"  validate:"min=0"`
	URLImagen   *string         `json:"url_imagen"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	TallaID     *string         `json:"talla_id"     validate:"omitempty,uuid"`
	Color       *string         `json:"color"`
	Genero      *string         `json:"genero"      validate:"omitempty,oneof=Hombre Mujer Unisex"`
	TipoPrenda  *string         `json:"tipo_prenda" validate:"omitempty,oneof=BASICA ESTAMPADA TIEDYE"`
	PatronID    *string         `json:"patron_id"   validate:"omitempty,uuid"`
	EsColaboracion      bool    `json:"es_colaboracion"`
	ColaboradorID       *string `json:"colaborador_id" validate:"omitempty,uuid"`
	DetalleColaboracion *string `json:"detalle_colaboracion"`
	SudaderaTipo        *string `json:"sudadera_tipo" validate:"omitempty,oneof=Cerrada 'Con cierre'"`
}

// ActualizarProductoRequest patches individual fields; nil means "keep".
// Stock is intentionally absent — stock only moves through the ledger.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre_producto"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio" validate:"omitempty,min=0"`
	URLImagen   *string          `json:"url_imagen"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	TallaID     *string          `json:"talla_id"     validate:"omitempty,uuid"`
	Color       *string          `json:"color"`
	Genero      *string          `json:"genero"      validate:"omitempty,oneof=Hombre Mujer Unisex"`
	TipoPrenda  *string          `json:"tipo_prenda" validate:"omitempty,oneof=BASICA ESTAMPADA TIEDYE"`
	PatronID    *string          `json:"patron_id"   validate:"omitempty,uuid"`
	EsColaboracion      *bool    `json:"es_colaboracion"`
	ColaboradorID       *string  `json:"colaborador_id" validate:"omitempty,uuid"`
	DetalleColaboracion *string  `json:"detalle_colaboracion"`
	SudaderaTipo        *string  `json:"sudadera_tipo" validate:"omitempty,oneof=Cerrada 'Con cierre'"`
	Activo              *bool    `json:"activo"`
}

// AjustarStockRequest es el delta firmado del libro de stock: positivo
// repone, negativo consume.
type AjustarStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type ProductoFilter struct {
	ListQuery
	CategoriaID string `form:"categoria_id" validate:"omitempty,uuid"`
}

type ProductoResponse struct {
	ID          string          `json:"producto_id"`
	Nombre      string          `json:"nombre_producto"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	URLImagen   *string         `json:"url_imagen"`
	CategoriaID string          `json:"categoria_id"`
	TallaID     *string         `json:"talla_id"`
	Color       *string         `json:"color"`
	Genero      *string         `json:"genero"`
	TipoPrenda  *string         `json:"tipo_prenda"`
	PatronID    *string         `json:"patron_id"`
	EsColaboracion      bool    `json:"es_colaboracion"`
	ColaboradorID       *string `json:"colaborador_id"`
	DetalleColaboracion *string `json:"detalle_colaboracion"`
	SudaderaTipo        *string `json:"sudadera_tipo"`
	Activo              bool    `json:"activo"`
	FechaCreacion       string  `json:"fecha_creacion"`
}

type ProductoListResponse struct {
	Data   []ProductoResponse `json:"data"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
