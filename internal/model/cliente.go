package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente representa un cliente de la tienda. Incluye credenciales básicas
// (usuario + hash bcrypt) y un indicador de administrador para el panel de
// control.
type Cliente struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"not null"`
	Telefono     *string
	Email        *string `gorm:"uniqueIndex"`
	Direccion    *string
	Usuario      string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	EsAdmin      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Pedidos []Pedido `gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }
