package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto representa tanto prendas como accesorios del catálogo. Los campos
// específicos de prenda (talla, género, tipo, patrón tie-dye, tipo de
// sudadera) son opcionales para accesorios.
//
// Invariante: Stock nunca es negativo. La única vía de mutación del stock es
// AjustarStock en el repositorio, que lo garantiza con un UPDATE condicional.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	URLImagen   *string
	CategoriaID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TallaID     *uuid.UUID `gorm:"type:uuid"`
	Color       *string
	Genero      *string // Hombre, Mujer, Unisex
	TipoPrenda  *string // BASICA, ESTAMPADA, TIEDYE
	PatronID    *uuid.UUID `gorm:"type:uuid"`
	// EsColaboracion marca productos diseñados junto a un colaborador; el
	// colaborador se copia al detalle de pedido al momento de la venta.
	EsColaboracion      bool       `gorm:"not null;default:false"`
	ColaboradorID       *uuid.UUID `gorm:"type:uuid;index"`
	DetalleColaboracion *string
	SudaderaTipo        *string // Cerrada, Con cierre
	Activo              bool    `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Categoria   *Categoria   `gorm:"foreignKey:CategoriaID"`
	Talla       *Talla       `gorm:"foreignKey:TallaID"`
	Patron      *Patron      `gorm:"foreignKey:PatronID"`
	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID"`
}

func (Producto) TableName() string { return "productos" }
