package model

import "github.com/google/uuid"

// Patron describe un patrón tie-dye: un código corto (p. ej. "ESP") más un
// nombre descriptivo.
type Patron struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CodigoPatron string    `gorm:"uniqueIndex;not null"`
	NombrePatron string    `gorm:"not null"`
	Descripcion  *string
}

func (Patron) TableName() string { return "patrones" }
