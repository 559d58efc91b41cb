package repository

import (
	"context"
	"time"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository is the data access contract for orders and their lines.
// The *Tx methods participate in the transaction the service opens; tx may be
// nil in unit tests (the stub implementations ignore it).
type PedidoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error)
	UpdateTx(tx *gorm.DB, p *model.Pedido) error
	// ReplaceDetallesTx borra todas las líneas del pedido e inserta el nuevo
	// conjunto. Las líneas entrantes ya traen PedidoID asignado.
	ReplaceDetallesTx(tx *gorm.DB, pedidoID uuid.UUID, detalles []model.DetallePedido) error
	// DeleteTx borra la cabecera y, por composición, todas sus líneas.
	DeleteTx(tx *gorm.DB, pedidoID uuid.UUID) error

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return r.handle(tx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Detalles").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error) {
	var pedidos []model.Pedido
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Pedido{})
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.Estatus != "" {
		q = q.Where("estatus = ?", filter.Estatus)
	}
	if filter.Desde != "" {
		if desde, err := time.Parse("2006-01-02", filter.Desde); err == nil {
			q = q.Where("fecha_pedido >= ?", desde)
		}
	}
	if filter.Hasta != "" {
		if hasta, err := time.Parse("2006-01-02", filter.Hasta); err == nil {
			// inclusive: everything before the following midnight
			q = q.Where("fecha_pedido < ?", hasta.AddDate(0, 0, 1))
		}
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Detalles").Order("fecha_pedido DESC").
		Limit(filter.Limit).Offset(filter.Offset).Find(&pedidos).Error
	return pedidos, total, err
}

func (r *pedidoRepo) UpdateTx(tx *gorm.DB, p *model.Pedido) error {
	return r.handle(tx).Omit("Detalles").Save(p).Error
}

func (r *pedidoRepo) ReplaceDetallesTx(tx *gorm.DB, pedidoID uuid.UUID, detalles []model.DetallePedido) error {
	db := r.handle(tx)
	if err := db.Delete(&model.DetallePedido{}, "pedido_id = ?", pedidoID).Error; err != nil {
		return err
	}
	if len(detalles) == 0 {
		return nil
	}
	return db.Create(&detalles).Error
}

func (r *pedidoRepo) DeleteTx(tx *gorm.DB, pedidoID uuid.UUID) error {
	db := r.handle(tx)
	if err := db.Delete(&model.DetallePedido{}, "pedido_id = ?", pedidoID).Error; err != nil {
		return err
	}
	return db.Delete(&model.Pedido{}, "id = ?", pedidoID).Error
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }
