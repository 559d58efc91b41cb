package model

import (
	"time"

	"github.com/google/uuid"
)

// Colaborador es un diseñador o proveedor externo asociado a productos en
// colaboración. Su referencia se copia a los detalles de pedido para el
// cálculo de comisiones.
type Colaborador struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"not null"`
	Contacto       *string
	DetalleAcuerdo *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Productos []Producto `gorm:"foreignKey:ColaboradorID"`
}

func (Colaborador) TableName() string { return "colaboradores" }
