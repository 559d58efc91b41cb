package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DetallePedido es una línea de pedido: producto, cantidad y el precio
// unitario capturado al momento de crear o reemplazar el pedido (desacoplado
// del precio actual del producto). ProductoID es anulable: la línea sobrevive
// si el producto se elimina del catálogo.
type DetallePedido struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductoID *uuid.UUID `gorm:"type:uuid;index"`
	Cantidad   int        `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// ColaboradorID se copia del producto al crear la línea, para liquidar
	// comisiones después.
	ColaboradorID        *uuid.UUID `gorm:"type:uuid"`
	ComisionPagada       bool       `gorm:"not null;default:false"`
	NotasPersonalizacion *string

	Producto    *Producto    `gorm:"foreignKey:ProductoID"`
	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID"`
}

func (DetallePedido) TableName() string { return "detalle_pedido" }
