package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UsoInsumo registra una salida de materia prima. Las referencias a producto
// y pedido son solo de trazabilidad; el stock de producto no se toca aquí.
type UsoInsumo struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InsumoID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductoID     *uuid.UUID `gorm:"type:uuid"`
	PedidoID       *uuid.UUID `gorm:"type:uuid"`
	CantidadUsada  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FechaUso       time.Time       `gorm:"not null"`
	Notas          *string
	CreatedAt      time.Time

	Insumo   *Insumo   `gorm:"foreignKey:InsumoID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
	Pedido   *Pedido   `gorm:"foreignKey:PedidoID"`
}

func (UsoInsumo) TableName() string { return "uso_insumo" }
