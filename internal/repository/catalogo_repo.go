package repository

import (
	"context"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Flat catalog repositories: categorías, tallas, patrones, colaboradores.

type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	List(ctx context.Context, filter dto.ListQuery) ([]model.Categoria, int64, error)
	Update(ctx context.Context, c *model.Categoria) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) List(ctx context.Context, filter dto.ListQuery) ([]model.Categoria, int64, error) {
	var categorias []model.Categoria
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Categoria{})
	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		q = q.Where("nombre ILIKE ? OR descripcion ILIKE ?", like, like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	allowed := map[string]string{"categoria_id": "id", "nombre": "nombre"}
	err := q.Order(orderClause(allowed, filter.OrderBy, "id", filter.Desc)).
		Limit(filter.Limit).Offset(filter.Offset).Find(&categorias).Error
	return categorias, total, err
}

func (r *categoriaRepo) Update(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Categoria{}, "id = ?", id).Error
}

type TallaRepository interface {
	Create(ctx context.Context, t *model.Talla) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Talla, error)
	List(ctx context.Context) ([]model.Talla, error)
	Update(ctx context.Context, t *model.Talla) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tallaRepo struct{ db *gorm.DB }

func NewTallaRepository(db *gorm.DB) TallaRepository { return &tallaRepo{db: db} }

func (r *tallaRepo) Create(ctx context.Context, t *model.Talla) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tallaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Talla, error) {
	var t model.Talla
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tallaRepo) List(ctx context.Context) ([]model.Talla, error) {
	var tallas []model.Talla
	err := r.db.WithContext(ctx).Order("nombre_talla ASC").Find(&tallas).Error
	return tallas, err
}

func (r *tallaRepo) Update(ctx context.Context, t *model.Talla) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tallaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Talla{}, "id = ?", id).Error
}

type PatronRepository interface {
	Create(ctx context.Context, p *model.Patron) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Patron, error)
	List(ctx context.Context, filter dto.ListQuery) ([]model.Patron, int64, error)
	Update(ctx context.Context, p *model.Patron) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type patronRepo struct{ db *gorm.DB }

func NewPatronRepository(db *gorm.DB) PatronRepository { return &patronRepo{db: db} }

func (r *patronRepo) Create(ctx context.Context, p *model.Patron) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *patronRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Patron, error) {
	var p model.Patron
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *patronRepo) List(ctx context.Context, filter dto.ListQuery) ([]model.Patron, int64, error) {
	var patrones []model.Patron
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Patron{})
	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		q = q.Where("codigo_patron ILIKE ? OR nombre_patron ILIKE ?", like, like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	allowed := map[string]string{"patron_id": "id", "codigo_patron": "codigo_patron", "nombre_patron": "nombre_patron"}
	err := q.Order(orderClause(allowed, filter.OrderBy, "id", filter.Desc)).
		Limit(filter.Limit).Offset(filter.Offset).Find(&patrones).Error
	return patrones, total, err
}

func (r *patronRepo) Update(ctx context.Context, p *model.Patron) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *patronRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Patron{}, "id = ?", id).Error
}

type ColaboradorRepository interface {
	Create(ctx context.Context, c *model.Colaborador) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Colaborador, error)
	List(ctx context.Context, filter dto.ListQuery) ([]model.Colaborador, int64, error)
	Update(ctx context.Context, c *model.Colaborador) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type colaboradorRepo struct{ db *gorm.DB }

func NewColaboradorRepository(db *gorm.DB) ColaboradorRepository { return &colaboradorRepo{db: db} }

func (r *colaboradorRepo) Create(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *colaboradorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Colaborador, error) {
	var c model.Colaborador
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *colaboradorRepo) List(ctx context.Context, filter dto.ListQuery) ([]model.Colaborador, int64, error) {
	var colaboradores []model.Colaborador
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Colaborador{})
	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		q = q.Where("nombre ILIKE ? OR contacto ILIKE ?", like, like)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	allowed := map[string]string{"colaborador_id": "id", "nombre": "nombre"}
	err := q.Order(orderClause(allowed, filter.OrderBy, "id", filter.Desc)).
		Limit(filter.Limit).Offset(filter.Offset).Find(&colaboradores).Error
	return colaboradores, total, err
}

func (r *colaboradorRepo) Update(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *colaboradorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Colaborador{}, "id = ?", id).Error
}
