package repository

import (
	"context"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productoSortFields whitelists the sortable columns for product listings.
// Anything else falls back to the primary key.
var productoSortFields = map[string]string{
	"producto_id":     "id",
	"nombre_producto": "nombre",
	"precio":          "precio",
	"stock":           "stock",
	"color":           "color",
	"genero":          "genero",
	"tipo_prenda":     "tipo_prenda",
	"fecha_creacion":  "created_at",
}

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AjustarStock aplica un delta firmado al stock en una sola sentencia
	// condicional: si el resultado quedara negativo no muta nada y devuelve
	// false. Es la única vía de mutación del stock de producto.
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) (bool, error)
	// AjustarStockTx is the in-transaction variant; tx may be nil in unit
	// tests, in which case the repository's own handle is used.
	AjustarStockTx(tx *gorm.DB, id uuid.UUID, delta int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{})

	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		q = q.Where("nombre ILIKE ? OR descripcion ILIKE ? OR color ILIKE ?", like, like, like)
	}
	if filter.CategoriaID != "" {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order(orderClause(productoSortFields, filter.OrderBy, "id", filter.Desc)).
		Limit(filter.Limit).Offset(filter.Offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, "id = ?", id).Error
}

func (r *productoRepo) AjustarStock(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	return r.ajustar(r.db.WithContext(ctx), id, delta)
}

func (r *productoRepo) AjustarStockTx(tx *gorm.DB, id uuid.UUID, delta int) (bool, error) {
	if tx == nil {
		tx = r.db
	}
	return r.ajustar(tx, id, delta)
}

// ajustar expresses "apply delta only if the result stays non-negative" as a
// single UPDATE, so concurrent adjustments serialize at the row and the
// guard cannot race against other writers.
func (r *productoRepo) ajustar(db *gorm.DB, id uuid.UUID, delta int) (bool, error) {
	res := db.Model(&model.Producto{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
