package service

import (
	"context"
	"fmt"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"
	"tiendaropa/internal/repository"

	"github.com/google/uuid"
)

// CatalogoService agrupa las entidades planas de catálogo: categorías,
// tallas, patrones y colaboradores.
type CatalogoService interface {
	CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	ObtenerCategoria(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error)
	ListarCategorias(ctx context.Context, filter dto.ListQuery) ([]dto.CategoriaResponse, int64, error)
	ActualizarCategoria(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	EliminarCategoria(ctx context.Context, id uuid.UUID) error

	CrearTalla(ctx context.Context, req dto.CrearTallaRequest) (*dto.TallaResponse, error)
	ListarTallas(ctx context.Context) ([]dto.TallaResponse, error)
	EliminarTalla(ctx context.Context, id uuid.UUID) error

	CrearPatron(ctx context.Context, req dto.CrearPatronRequest) (*dto.PatronResponse, error)
	ListarPatrones(ctx context.Context, filter dto.ListQuery) ([]dto.PatronResponse, int64, error)
	ActualizarPatron(ctx context.Context, id uuid.UUID, req dto.ActualizarPatronRequest) (*dto.PatronResponse, error)
	EliminarPatron(ctx context.Context, id uuid.UUID) error

	CrearColaborador(ctx context.Context, req dto.CrearColaboradorRequest) (*dto.ColaboradorResponse, error)
	ObtenerColaborador(ctx context.Context, id uuid.UUID) (*dto.ColaboradorResponse, error)
	ListarColaboradores(ctx context.Context, filter dto.ListQuery) ([]dto.ColaboradorResponse, int64, error)
	ActualizarColaborador(ctx context.Context, id uuid.UUID, req dto.ActualizarColaboradorRequest) (*dto.ColaboradorResponse, error)
	EliminarColaborador(ctx context.Context, id uuid.UUID) error
}

type catalogoService struct {
	categoriaRepo   repository.CategoriaRepository
	tallaRepo       repository.TallaRepository
	patronRepo      repository.PatronRepository
	colaboradorRepo repository.ColaboradorRepository
}

func NewCatalogoService(
	categoriaRepo repository.CategoriaRepository,
	tallaRepo repository.TallaRepository,
	patronRepo repository.PatronRepository,
	colaboradorRepo repository.ColaboradorRepository,
) CatalogoService {
	return &catalogoService{
		categoriaRepo:   categoriaRepo,
		tallaRepo:       tallaRepo,
		patronRepo:      patronRepo,
		colaboradorRepo: colaboradorRepo,
	}
}

// ── Categorías ───────────────────────────────────────────────────────────────

func (s *catalogoService) CrearCategoria(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if existente, err := s.categoriaRepo.FindByNombre(ctx, req.Nombre); err == nil && existente != nil {
		return nil, fmt.Errorf("la categoría %q ya existe", req.Nombre)
	}
	c := model.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.categoriaRepo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return categoriaToResponse(&c), nil
}

func (s *catalogoService) ObtenerCategoria(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error) {
	c, err := s.categoriaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("categoría %s no encontrada", id)
	}
	return categoriaToResponse(c), nil
}

func (s *catalogoService) ListarCategorias(ctx context.Context, filter dto.ListQuery) ([]dto.CategoriaResponse, int64, error) {
	categorias, total, err := s.categoriaRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		out = append(out, *categoriaToResponse(&categorias[i]))
	}
	return out, total, nil
}

func (s *catalogoService) ActualizarCategoria(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.categoriaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("categoría %s no encontrada", id)
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if err := s.categoriaRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return categoriaToResponse(c), nil
}

func (s *catalogoService) EliminarCategoria(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoriaRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("categoría %s no encontrada", id)
	}
	return s.categoriaRepo.Delete(ctx, id)
}

// ── Tallas ───────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearTalla(ctx context.Context, req dto.CrearTallaRequest) (*dto.TallaResponse, error) {
	t := model.Talla{NombreTalla: req.NombreTalla}
	if err := s.tallaRepo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &dto.TallaResponse{ID: t.ID.String(), NombreTalla: t.NombreTalla}, nil
}

func (s *catalogoService) ListarTallas(ctx context.Context) ([]dto.TallaResponse, error) {
	tallas, err := s.tallaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TallaResponse, 0, len(tallas))
	for _, t := range tallas {
		out = append(out, dto.TallaResponse{ID: t.ID.String(), NombreTalla: t.NombreTalla})
	}
	return out, nil
}

func (s *catalogoService) EliminarTalla(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tallaRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("talla %s no encontrada", id)
	}
	return s.tallaRepo.Delete(ctx, id)
}

// ── Patrones ─────────────────────────────────────────────────────────────────

func (s *catalogoService) CrearPatron(ctx context.Context, req dto.CrearPatronRequest) (*dto.PatronResponse, error) {
	p := model.Patron{
		CodigoPatron: req.CodigoPatron,
		NombrePatron: req.NombrePatron,
		Descripcion:  req.Descripcion,
	}
	if err := s.patronRepo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return patronToResponse(&p), nil
}

func (s *catalogoService) ListarPatrones(ctx context.Context, filter dto.ListQuery) ([]dto.PatronResponse, int64, error) {
	patrones, total, err := s.patronRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.PatronResponse, 0, len(patrones))
	for i := range patrones {
		out = append(out, *patronToResponse(&patrones[i]))
	}
	return out, total, nil
}

func (s *catalogoService) ActualizarPatron(ctx context.Context, id uuid.UUID, req dto.ActualizarPatronRequest) (*dto.PatronResponse, error) {
	p, err := s.patronRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("patrón %s no encontrado", id)
	}
	if req.CodigoPatron != nil {
		p.CodigoPatron = *req.CodigoPatron
	}
	if req.NombrePatron != nil {
		p.NombrePatron = *req.NombrePatron
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if err := s.patronRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return patronToResponse(p), nil
}

func (s *catalogoService) EliminarPatron(ctx context.Context, id uuid.UUID) error {
	if _, err := s.patronRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("patrón %s no encontrado", id)
	}
	return s.patronRepo.Delete(ctx, id)
}

// ── Colaboradores ────────────────────────────────────────────────────────────

func (s *catalogoService) CrearColaborador(ctx context.Context, req dto.CrearColaboradorRequest) (*dto.ColaboradorResponse, error) {
	c := model.Colaborador{
		Nombre:         req.Nombre,
		Contacto:       req.Contacto,
		DetalleAcuerdo: req.DetalleAcuerdo,
	}
	if err := s.colaboradorRepo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return colaboradorToResponse(&c), nil
}

func (s *catalogoService) ObtenerColaborador(ctx context.Context, id uuid.UUID) (*dto.ColaboradorResponse, error) {
	c, err := s.colaboradorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("colaborador %s no encontrado", id)
	}
	return colaboradorToResponse(c), nil
}

func (s *catalogoService) ListarColaboradores(ctx context.Context, filter dto.ListQuery) ([]dto.ColaboradorResponse, int64, error) {
	colaboradores, total, err := s.colaboradorRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ColaboradorResponse, 0, len(colaboradores))
	for i := range colaboradores {
		out = append(out, *colaboradorToResponse(&colaboradores[i]))
	}
	return out, total, nil
}

func (s *catalogoService) ActualizarColaborador(ctx context.Context, id uuid.UUID, req dto.ActualizarColaboradorRequest) (*dto.ColaboradorResponse, error) {
	c, err := s.colaboradorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("colaborador %s no encontrado", id)
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Contacto != nil {
		c.Contacto = req.Contacto
	}
	if req.DetalleAcuerdo != nil {
		c.DetalleAcuerdo = req.DetalleAcuerdo
	}
	if err := s.colaboradorRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return colaboradorToResponse(c), nil
}

func (s *catalogoService) EliminarColaborador(ctx context.Context, id uuid.UUID) error {
	if _, err := s.colaboradorRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("colaborador %s no encontrado", id)
	}
	return s.colaboradorRepo.Delete(ctx, id)
}

// ── mappers ──────────────────────────────────────────────────────────────────

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID.String(), Nombre: c.Nombre, Descripcion: c.Descripcion}
}

func patronToResponse(p *model.Patron) *dto.PatronResponse {
	return &dto.PatronResponse{
		ID:           p.ID.String(),
		CodigoPatron: p.CodigoPatron,
		NombrePatron: p.NombrePatron,
		Descripcion:  p.Descripcion,
	}
}

func colaboradorToResponse(c *model.Colaborador) *dto.ColaboradorResponse {
	return &dto.ColaboradorResponse{
		ID:             c.ID.String(),
		Nombre:         c.Nombre,
		Contacto:       c.Contacto,
		DetalleAcuerdo: c.DetalleAcuerdo,
	}
}
