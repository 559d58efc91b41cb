package repository

import (
	"context"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repositories for the raw-material movement records: compras (entradas) y
// usos (salidas). Both are append-mostly; neither touches stock itself — the
// services call the insumo ledger after creating the record.

var compraInsumoSortFields = map[string]string{
	"compra_id":       "compras_insumo.id",
	"fecha_compra":    "compras_insumo.fecha_compra",
	"cantidad_compra": "compras_insumo.cantidad",
	"costo_total":     "compras_insumo.costo_total",
	"proveedor":       "compras_insumo.proveedor",
}

type CompraInsumoRepository interface {
	Create(ctx context.Context, c *model.CompraInsumo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CompraInsumo, error)
	List(ctx context.Context, filter dto.ListQuery) ([]model.CompraInsumo, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type compraInsumoRepo struct{ db *gorm.DB }

func NewCompraInsumoRepository(db *gorm.DB) CompraInsumoRepository {
	return &compraInsumoRepo{db: db}
}

func (r *compraInsumoRepo) Create(ctx context.Context, c *model.CompraInsumo) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *compraInsumoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CompraInsumo, error) {
	var c model.CompraInsumo
	if err := r.db.WithContext(ctx).Preload("Insumo").First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraInsumoRepo) List(ctx context.Context, filter dto.ListQuery) ([]model.CompraInsumo, int64, error) {
	var compras []model.CompraInsumo
	var total int64

	// Join insumos so the free-text filter can match the material name.
	q := r.db.WithContext(ctx).Model(&model.CompraInsumo{}).
		Joins("JOIN insumos ON insumos.id = compras_insumo.insumo_id")
	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		q = q.Where("insumos.nombre ILIKE ? OR compras_insumo.proveedor ILIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Insumo").
		Order(orderClause(compraInsumoSortFields, filter.OrderBy, "compras_insumo.id", filter.Desc)).
		Limit(filter.Limit).Offset(filter.Offset).Find(&compras).Error
	return compras, total, err
}

func (r *compraInsumoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CompraInsumo{}, "id = ?", id).Error
}

var usoInsumoSortFields = map[string]string{
	"uso_id":         "uso_insumo.id",
	"fecha_uso":      "uso_insumo.fecha_uso",
	"cantidad_usada": "uso_insumo.cantidad_usada",
}

type UsoInsumoRepository interface {
	Create(ctx context.Context, u *model.UsoInsumo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UsoInsumo, error)
	List(ctx context.Context, filter dto.ListQuery) ([]model.UsoInsumo, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type usoInsumoRepo struct{ db *gorm.DB }

func NewUsoInsumoRepository(db *gorm.DB) UsoInsumoRepository {
	return &usoInsumoRepo{db: db}
}

func (r *usoInsumoRepo) Create(ctx context.Context, u *model.UsoInsumo) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usoInsumoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.UsoInsumo, error) {
	var u model.UsoInsumo
	if err := r.db.WithContext(ctx).Preload("Insumo").First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usoInsumoRepo) List(ctx context.Context, filter dto.ListQuery) ([]model.UsoInsumo, int64, error) {
	var usos []model.UsoInsumo
	var total int64

	q := r.db.WithContext(ctx).Model(&model.UsoInsumo{}).
		Joins("JOIN insumos ON insumos.id = uso_insumo.insumo_id").
		Joins("LEFT JOIN productos ON productos.id = uso_insumo.producto_id")
	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		q = q.Where("insumos.nombre ILIKE ? OR productos.nombre ILIKE ? OR uso_insumo.notas ILIKE ?",
			like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Insumo").
		Order(orderClause(usoInsumoSortFields, filter.OrderBy, "uso_insumo.id", filter.Desc)).
		Limit(filter.Limit).Offset(filter.Offset).Find(&usos).Error
	return usos, total, err
}

func (r *usoInsumoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UsoInsumo{}, "id = ?", id).Error
}
