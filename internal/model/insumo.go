package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Insumo es materia prima (tela, tinte, hilo) consumida en la producción de
// prendas personalizadas. El stock es decimal porque se mide en unidades
// fraccionables (metros, litros).
type Insumo struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"index;not null"`
	Descripcion  *string
	Marca        *string
	Color        *string
	UnidadMedida *string
	Stock        decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0"`
	CostoUnitario *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Insumo) TableName() string { return "insumos" }
