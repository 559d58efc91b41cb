package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompraInsumo registra una entrada de materia prima. Crear una compra
// siempre incrementa el stock del insumo referido.
type CompraInsumo struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InsumoID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	FechaCompra time.Time       `gorm:"not null"`
	Cantidad    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CostoTotal  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Proveedor   *string
	CreatedAt   time.Time

	Insumo *Insumo `gorm:"foreignKey:InsumoID"`
}

func (CompraInsumo) TableName() string { return "compras_insumo" }
