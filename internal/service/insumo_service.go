package service

import (
	"context"
	"fmt"
	"time"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"
	"tiendaropa/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type InsumoService interface {
	Crear(ctx context.Context, req dto.CrearInsumoRequest) (*dto.InsumoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.InsumoResponse, error)
	Listar(ctx context.Context, filter dto.ListQuery) (*dto.InsumoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarInsumoRequest) (*dto.InsumoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraInsumoResponse, error)
	ListarCompras(ctx context.Context, filter dto.ListQuery) (*dto.CompraInsumoListResponse, error)
	RegistrarUso(ctx context.Context, req dto.RegistrarUsoRequest) (*dto.UsoInsumoResponse, error)
	ListarUsos(ctx context.Context, filter dto.ListQuery) (*dto.UsoInsumoListResponse, error)
}

type insumoService struct {
	repo       repository.InsumoRepository
	compraRepo repository.CompraInsumoRepository
	usoRepo    repository.UsoInsumoRepository
	inventario InventarioService
}

func NewInsumoService(
	repo repository.InsumoRepository,
	compraRepo repository.CompraInsumoRepository,
	usoRepo repository.UsoInsumoRepository,
	inventario InventarioService,
) InsumoService {
	return &insumoService{repo: repo, compraRepo: compraRepo, usoRepo: usoRepo, inventario: inventario}
}

func (s *insumoService) Crear(ctx context.Context, req dto.CrearInsumoRequest) (*dto.InsumoResponse, error) {
	i := model.Insumo{
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Marca:         req.Marca,
		Color:         req.Color,
		UnidadMedida:  req.UnidadMedida,
		Stock:         req.Stock,
		CostoUnitario: req.CostoUnitario,
	}
	if err := s.repo.Create(ctx, &i); err != nil {
		return nil, err
	}
	return insumoToResponse(&i), nil
}

func (s *insumoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.InsumoResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("insumo %s: %w", id, ErrInsumoNoEncontrado)
	}
	return insumoToResponse(i), nil
}

func (s *insumoService) Listar(ctx context.Context, filter dto.ListQuery) (*dto.InsumoListResponse, error) {
	insumos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.InsumoListResponse{
		Data:   make([]dto.InsumoResponse, 0, len(insumos)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i := range insumos {
		resp.Data = append(resp.Data, *insumoToResponse(&insumos[i]))
	}
	return resp, nil
}

// Actualizar parchea los campos descriptivos. El stock no se toca aquí: se
// mueve solo por compras, usos y ajustes manuales.
func (s *insumoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarInsumoRequest) (*dto.InsumoResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("insumo %s: %w", id, ErrInsumoNoEncontrado)
	}
	if req.Nombre != nil {
		i.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		i.Descripcion = req.Descripcion
	}
	if req.Marca != nil {
		i.Marca = req.Marca
	}
	if req.Color != nil {
		i.Color = req.Color
	}
	if req.UnidadMedida != nil {
		i.UnidadMedida = req.UnidadMedida
	}
	if req.CostoUnitario != nil {
		i.CostoUnitario = req.CostoUnitario
	}
	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return insumoToResponse(i), nil
}

func (s *insumoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("insumo %s: %w", id, ErrInsumoNoEncontrado)
	}
	return s.repo.Delete(ctx, id)
}

// ── Compras ──────────────────────────────────────────────────────────────────

// RegistrarCompra guarda la entrada y abona la cantidad al stock del insumo.
func (s *insumoService) RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraInsumoResponse, error) {
	insumoID, err := uuid.Parse(req.InsumoID)
	if err != nil {
		return nil, fmt.Errorf("insumo_id inválido: %w", err)
	}
	if _, err := s.repo.FindByID(ctx, insumoID); err != nil {
		return nil, fmt.Errorf("insumo %s: %w", req.InsumoID, ErrInsumoNoEncontrado)
	}
	fecha, err := time.Parse("2006-01-02", req.FechaCompra)
	if err != nil {
		return nil, fmt.Errorf("fecha_compra inválida: %w", err)
	}

	compra := model.CompraInsumo{
		InsumoID:    insumoID,
		FechaCompra: fecha,
		Cantidad:    req.Cantidad,
		CostoTotal:  req.CostoTotal,
		Proveedor:   req.Proveedor,
	}
	if err := s.compraRepo.Create(ctx, &compra); err != nil {
		return nil, err
	}
	if _, err := s.inventario.AjustarStockInsumo(ctx, insumoID, req.Cantidad); err != nil {
		return nil, err
	}
	return compraToResponse(&compra), nil
}

func (s *insumoService) ListarCompras(ctx context.Context, filter dto.ListQuery) (*dto.CompraInsumoListResponse, error) {
	compras, total, err := s.compraRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.CompraInsumoListResponse{
		Data:   make([]dto.CompraInsumoResponse, 0, len(compras)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i := range compras {
		resp.Data = append(resp.Data, *compraToResponse(&compras[i]))
	}
	return resp, nil
}

// ── Usos ─────────────────────────────────────────────────────────────────────

// RegistrarUso guarda la salida y descuenta la cantidad del stock del insumo.
// Si el descuento se rechaza por dejar stock negativo, el registro de uso se
// conserva de todos modos: el consumo ya ocurrió en el taller y el libro debe
// reflejarlo aunque el stock registrado estuviera desactualizado.
func (s *insumoService) RegistrarUso(ctx context.Context, req dto.RegistrarUsoRequest) (*dto.UsoInsumoResponse, error) {
	insumoID, err := uuid.Parse(req.InsumoID)
	if err != nil {
		return nil, fmt.Errorf("insumo_id inválido: %w", err)
	}
	if _, err := s.repo.FindByID(ctx, insumoID); err != nil {
		return nil, fmt.Errorf("insumo %s: %w", req.InsumoID, ErrInsumoNoEncontrado)
	}
	fecha, err := time.Parse("2006-01-02", req.FechaUso)
	if err != nil {
		return nil, fmt.Errorf("fecha_uso inválida: %w", err)
	}

	uso := model.UsoInsumo{
		InsumoID:      insumoID,
		CantidadUsada: req.CantidadUsada,
		FechaUso:      fecha,
		Notas:         req.Notas,
	}
	if uso.ProductoID, err = parseOptionalUUID(req.ProductoID, "producto_id"); err != nil {
		return nil, err
	}
	if uso.PedidoID, err = parseOptionalUUID(req.PedidoID, "pedido_id"); err != nil {
		return nil, err
	}

	if err := s.usoRepo.Create(ctx, &uso); err != nil {
		return nil, err
	}
	if _, err := s.inventario.AjustarStockInsumo(ctx, insumoID, req.CantidadUsada.Neg()); err != nil {
		log.Warn().Err(err).Str("insumo_id", req.InsumoID).
			Str("cantidad", req.CantidadUsada.String()).
			Msg("uso registrado sin descontar stock")
	}
	return usoToResponse(&uso), nil
}

func (s *insumoService) ListarUsos(ctx context.Context, filter dto.ListQuery) (*dto.UsoInsumoListResponse, error) {
	usos, total, err := s.usoRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.UsoInsumoListResponse{
		Data:   make([]dto.UsoInsumoResponse, 0, len(usos)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i := range usos {
		resp.Data = append(resp.Data, *usoToResponse(&usos[i]))
	}
	return resp, nil
}

// ── mappers ──────────────────────────────────────────────────────────────────

func insumoToResponse(i *model.Insumo) *dto.InsumoResponse {
	return &dto.InsumoResponse{
		ID:            i.ID.String(),
		Nombre:        i.Nombre,
		Descripcion:   i.Descripcion,
		Marca:         i.Marca,
		Color:         i.Color,
		UnidadMedida:  i.UnidadMedida,
		Stock:         i.Stock,
		CostoUnitario: i.CostoUnitario,
	}
}

func compraToResponse(c *model.CompraInsumo) *dto.CompraInsumoResponse {
	return &dto.CompraInsumoResponse{
		ID:          c.ID.String(),
		InsumoID:    c.InsumoID.String(),
		FechaCompra: c.FechaCompra.Format("2006-01-02"),
		Cantidad:    c.Cantidad,
		CostoTotal:  c.CostoTotal,
		Proveedor:   c.Proveedor,
	}
}

func usoToResponse(u *model.UsoInsumo) *dto.UsoInsumoResponse {
	return &dto.UsoInsumoResponse{
		ID:            u.ID.String(),
		InsumoID:      u.InsumoID.String(),
		ProductoID:    uuidStr(u.ProductoID),
		PedidoID:      uuidStr(u.PedidoID),
		CantidadUsada: u.CantidadUsada,
		FechaUso:      u.FechaUso.Format("2006-01-02"),
		Notas:         u.Notas,
	}
}
