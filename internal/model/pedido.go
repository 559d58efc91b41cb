package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estatus convencionales de un pedido. Se registran como texto libre — no se
// valida ninguna transición entre ellos.
const (
	EstatusPorPagar  = "POR PAGAR"
	EstatusPagado    = "PAGADO"
	EstatusEntregado = "ENTREGADO"
	EstatusCancelado = "CANCELADO"
)

// Pedido es la cabecera de una orden de compra. Es dueño de sus detalles:
// borrar el pedido borra todas sus líneas.
type Pedido struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID            uuid.UUID `gorm:"type:uuid;not null;index"`
	FechaPedido          time.Time `gorm:"not null"`
	MetodoPago           string    `gorm:"not null"` // EFECTIVO, DEPOSITO
	Estatus              string    `gorm:"not null;default:'POR PAGAR'"`
	MontoTotal           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DireccionEntrega     *string
	InstruccionesEntrega *string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Cliente  *Cliente        `gorm:"foreignKey:ClienteID"`
	Detalles []DetallePedido `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

func (Pedido) TableName() string { return "pedidos" }
