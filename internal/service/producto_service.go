package service

import (
	"context"
	"fmt"
	"time"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"
	"tiendaropa/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

func NewProductoService(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, fmt.Errorf("categoria_id inválido: %w", err)
	}
	if _, err := s.categoriaRepo.FindByID(ctx, categoriaID); err != nil {
		return nil, fmt.Errorf("categoría %s no encontrada", req.CategoriaID)
	}

	p := model.Producto{
		Nombre:              req.Nombre,
		Descripcion:         req.Descripcion,
		Precio:              req.Precio,
		Stock:               req.Stock,
		URLImagen:           req.URLImagen,
		CategoriaID:         categoriaID,
		Color:               req.Color,
		Genero:              req.Genero,
		TipoPrenda:          req.TipoPrenda,
		EsColaboracion:      req.EsColaboracion,
		DetalleColaboracion: req.DetalleColaboracion,
		SudaderaTipo:        req.SudaderaTipo,
		Activo:              true,
	}
	if p.TallaID, err = parseOptionalUUID(req.TallaID, "talla_id"); err != nil {
		return nil, err
	}
	if p.PatronID, err = parseOptionalUUID(req.PatronID, "patron_id"); err != nil {
		return nil, err
	}
	if p.ColaboradorID, err = parseOptionalUUID(req.ColaboradorID, "colaborador_id"); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return productoToResponse(&p), nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("producto %s: %w", id, ErrProductoNoEncontrado)
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductoListResponse{
		Data:   make([]dto.ProductoResponse, 0, len(productos)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i := range productos {
		resp.Data = append(resp.Data, *productoToResponse(&productos[i]))
	}
	return resp, nil
}

// Actualizar aplica un parche de campos: nil conserva el valor actual. El
// stock no es parchable — solo se mueve por AjustarStock.
func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("producto %s: %w", id, ErrProductoNoEncontrado)
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.URLImagen != nil {
		p.URLImagen = req.URLImagen
	}
	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, fmt.Errorf("categoria_id inválido: %w", err)
		}
		if _, err := s.categoriaRepo.FindByID(ctx, categoriaID); err != nil {
			return nil, fmt.Errorf("categoría %s no encontrada", *req.CategoriaID)
		}
		p.CategoriaID = categoriaID
	}
	if req.TallaID != nil {
		if p.TallaID, err = parseOptionalUUID(req.TallaID, "talla_id"); err != nil {
			return nil, err
		}
	}
	if req.Color != nil {
		p.Color = req.Color
	}
	if req.Genero != nil {
		p.Genero = req.Genero
	}
	if req.TipoPrenda != nil {
		p.TipoPrenda = req.TipoPrenda
	}
	if req.PatronID != nil {
		if p.PatronID, err = parseOptionalUUID(req.PatronID, "patron_id"); err != nil {
			return nil, err
		}
	}
	if req.EsColaboracion != nil {
		p.EsColaboracion = *req.EsColaboracion
	}
	if req.ColaboradorID != nil {
		if p.ColaboradorID, err = parseOptionalUUID(req.ColaboradorID, "colaborador_id"); err != nil {
			return nil, err
		}
	}
	if req.DetalleColaboracion != nil {
		p.DetalleColaboracion = req.DetalleColaboracion
	}
	if req.SudaderaTipo != nil {
		p.SudaderaTipo = req.SudaderaTipo
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

// Eliminar borra el producto del catálogo. Las líneas de pedido que lo
// referencian quedan con producto_id nulo; su stock desaparece con él.
func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("producto %s: %w", id, ErrProductoNoEncontrado)
	}
	return s.repo.Delete(ctx, id)
}

func parseOptionalUUID(s *string, field string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fmt.Errorf("%s inválido: %w", field, err)
	}
	return &id, nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                  p.ID.String(),
		Nombre:              p.Nombre,
		Descripcion:         p.Descripcion,
		Precio:              p.Precio,
		Stock:               p.Stock,
		URLImagen:           p.URLImagen,
		CategoriaID:         p.CategoriaID.String(),
		TallaID:             uuidStr(p.TallaID),
		Color:               p.Color,
		Genero:              p.Genero,
		TipoPrenda:          p.TipoPrenda,
		PatronID:            uuidStr(p.PatronID),
		EsColaboracion:      p.EsColaboracion,
		ColaboradorID:       uuidStr(p.ColaboradorID),
		DetalleColaboracion: p.DetalleColaboracion,
		SudaderaTipo:        p.SudaderaTipo,
		Activo:              p.Activo,
		FechaCreacion:       p.CreatedAt.Format(time.RFC3339),
	}
}

func uuidStr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
