package model

import "github.com/google/uuid"

// Talla normaliza las tallas disponibles para prendas (CH, M, G, XL, ...).
type Talla struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreTalla string    `gorm:"uniqueIndex;not null"`
}

func (Talla) TableName() string { return "tallas" }
