package repository

import (
	"context"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var insumoSortFields = map[string]string{
	"insumo_id":      "id",
	"nombre_insumo":  "nombre",
	"marca":          "marca",
	"color":          "color",
	"stock_insumo":   "stock",
	"costo_unitario": "costo_unitario",
}

// InsumoRepository is the data access contract for raw materials. Stock is
// decimal and only moves through AjustarStock, same guard as products.
type InsumoRepository interface {
	Create(ctx context.Context, i *model.Insumo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Insumo, error)
	List(ctx context.Context, filter dto.ListQuery) ([]model.Insumo, int64, error)
	Update(ctx context.Context, i *model.Insumo) error
	Delete(ctx context.Context, id uuid.UUID) error

	AjustarStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (bool, error)

	DB() *gorm.DB
}

type insumoRepo struct{ db *gorm.DB }

func NewInsumoRepository(db *gorm.DB) InsumoRepository { return &insumoRepo{db: db} }

func (r *insumoRepo) Create(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *insumoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Insumo, error) {
	var i model.Insumo
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *insumoRepo) List(ctx context.Context, filter dto.ListQuery) ([]model.Insumo, int64, error) {
	var insumos []model.Insumo
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Insumo{})
	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		q = q.Where("nombre ILIKE ? OR descripcion ILIKE ? OR marca ILIKE ? OR color ILIKE ?",
			like, like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order(orderClause(insumoSortFields, filter.OrderBy, "id", filter.Desc)).
		Limit(filter.Limit).Offset(filter.Offset).Find(&insumos).Error
	return insumos, total, err
}

func (r *insumoRepo) Update(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *insumoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Insumo{}, "id = ?", id).Error
}

func (r *insumoRepo) AjustarStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Insumo{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *insumoRepo) DB() *gorm.DB { return r.db }
