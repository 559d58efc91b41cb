package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tiendaropa/internal/dto"
	"tiendaropa/internal/model"
	"tiendaropa/internal/repository"
	"tiendaropa/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error)
	Reemplazar(ctx context.Context, id uuid.UUID, req dto.ReemplazarPedidoRequest) (*dto.PedidoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type pedidoService struct {
	repo         repository.PedidoRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	inventario   InventarioService
	dispatcher   *worker.Dispatcher
}

func NewPedidoService(
	repo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	inventario InventarioService,
	dispatcher *worker.Dispatcher,
) PedidoService {
	return &pedidoService{
		repo:         repo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		inventario:   inventario,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Dos pasadas:
//   1. Resolver cada ítem (producto existente y activo, stock suficiente) sin
//      mutar nada. Cualquier falla aborta con el pedido intacto.
//   2. BEGIN TX: crear cabecera POR PAGAR + líneas con precio y colaborador
//      capturados, descontar stock línea por línea con el UPDATE condicional.
//      Un descuento rechazado revierte la transacción completa.
//   3. (async) encolar la notificación de pedido confirmado.

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	cliente, err := s.clienteRepo.FindByID(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente %s: %w", req.ClienteID, ErrClienteNoEncontrado)
	}

	type resolvedItem struct {
		productoID    uuid.UUID
		cantidad      int
		precio        decimal.Decimal
		colaboradorID *uuid.UUID
		notas         *string
	}

	var resolved []resolvedItem
	total := decimal.Zero

	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("producto %s: %w", item.ProductoID, ErrProductoNoEncontrado)
		}
		if !p.Activo {
			return nil, fmt.Errorf("producto %s está inactivo y no puede pedirse", p.Nombre)
		}
		if p.Stock < item.Cantidad {
			return nil, fmt.Errorf("producto %s (disponible %d, pedido %d): %w",
				p.Nombre, p.Stock, item.Cantidad, ErrStockInsuficiente)
		}

		// Precio y colaborador se capturan aquí: la línea queda desacoplada
		// de cambios posteriores en el catálogo.
		resolved = append(resolved, resolvedItem{
			productoID:    pid,
			cantidad:      item.Cantidad,
			precio:        p.Precio,
			colaboradorID: p.ColaboradorID,
			notas:         item.NotasPersonalizacion,
		})
		total = total.Add(p.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}

	pedido := model.Pedido{
		ClienteID:            clienteID,
		FechaPedido:          time.Now(),
		MetodoPago:           req.MetodoPago,
		Estatus:              model.EstatusPorPagar,
		MontoTotal:           total,
		DireccionEntrega:     req.DireccionEntrega,
		InstruccionesEntrega: req.InstruccionesEntrega,
	}
	for _, r := range resolved {
		pid := r.productoID
		pedido.Detalles = append(pedido.Detalles, model.DetallePedido{
			ProductoID:           &pid,
			Cantidad:             r.cantidad,
			PrecioUnitario:       r.precio,
			ColaboradorID:        r.colaboradorID,
			NotasPersonalizacion: r.notas,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &pedido); err != nil {
			return err
		}
		for _, r := range resolved {
			if err := s.inventario.AjustarStockProductoTx(tx, r.productoID, -r.cantidad); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Notificación best-effort: el pedido ya está confirmado aunque el
	// encolado falle.
	if s.dispatcher != nil {
		payload := worker.NotificacionPedido{
			PedidoID:   pedido.ID.String(),
			Cliente:    cliente.Nombre,
			MontoTotal: total.StringFixed(2),
		}
		if cliente.Email != nil {
			payload.Email = *cliente.Email
		}
		if err := s.dispatcher.EnqueueNotificacion(ctx, payload); err != nil {
			log.Warn().Err(err).Str("pedido_id", pedido.ID.String()).
				Msg("no se pudo encolar la notificación del pedido")
		}
	}

	return pedidoToResponse(&pedido), nil
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pedido %s: %w", id, ErrPedidoNoEncontrado)
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error) {
	pedidos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.PedidoListResponse{
		Data:   make([]dto.PedidoResponse, 0, len(pedidos)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i := range pedidos {
		resp.Data = append(resp.Data, *pedidoToResponse(&pedidos[i]))
	}
	return resp, nil
}

// ── Reemplazar ────────────────────────────────────────────────────────────────
// Sustitución total en tres fases:
//   1. Restaurar el stock de las líneas actuales (las de producto borrado se
//      omiten: ese stock ya no existe).
//   2. Validar el conjunto nuevo contra el stock restaurado. Si algo falla se
//      compensa la restauración y el pedido queda como estaba.
//   3. BEGIN TX: borrar e insertar líneas, descontar stock, actualizar
//      cabecera. Un descuento rechazado revierte la transacción y compensa.
//
// Las fases 1 y 2 corren fuera de la transacción a propósito: las lecturas de
// validación van por la conexión normal y no verían un stock restaurado solo
// dentro de una transacción abierta.

func (s *pedidoService) Reemplazar(ctx context.Context, id uuid.UUID, req dto.ReemplazarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("pedido %s: %w", id, ErrPedidoNoEncontrado)
	}

	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, fmt.Errorf("cliente %s: %w", req.ClienteID, ErrClienteNoEncontrado)
	}

	// Fase 1: restaurar.
	type restauro struct {
		productoID uuid.UUID
		cantidad   int
	}
	var restaurados []restauro

	compensar := func() {
		for _, r := range restaurados {
			if _, err := s.productoRepo.AjustarStock(ctx, r.productoID, -r.cantidad); err != nil {
				log.Error().Err(err).
					Str("producto_id", r.productoID.String()).Int("cantidad", r.cantidad).
					Msg("falló la compensación de stock al abortar el reemplazo")
			}
		}
	}

	for _, det := range pedido.Detalles {
		if det.ProductoID == nil {
			continue
		}
		ok, err := s.productoRepo.AjustarStock(ctx, *det.ProductoID, det.Cantidad)
		if err != nil {
			compensar()
			return nil, err
		}
		if !ok {
			// Producto eliminado después de crearse la línea: no hay fila
			// que restaurar ni que compensar.
			continue
		}
		restaurados = append(restaurados, restauro{productoID: *det.ProductoID, cantidad: det.Cantidad})
	}

	// Fase 2: validar el conjunto nuevo contra el stock ya restaurado.
	type nuevaLinea struct {
		productoID    uuid.UUID
		cantidad      int
		precio        decimal.Decimal
		colaboradorID *uuid.UUID
		comision      bool
		notas         *string
	}
	var nuevas []nuevaLinea
	suma := decimal.Zero

	for _, det := range req.Detalles {
		pid, err := uuid.Parse(det.ProductoID)
		if err != nil {
			compensar()
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			compensar()
			return nil, fmt.Errorf("producto %s: %w", det.ProductoID, ErrProductoNoEncontrado)
		}
		if p.Stock < det.Cantidad {
			compensar()
			return nil, fmt.Errorf("producto %s (disponible %d, pedido %d): %w",
				p.Nombre, p.Stock, det.Cantidad, ErrStockInsuficiente)
		}
		var colaboradorID *uuid.UUID
		if det.ColaboradorID != nil {
			cid, err := uuid.Parse(*det.ColaboradorID)
			if err != nil {
				compensar()
				return nil, fmt.Errorf("colaborador_id inválido: %w", err)
			}
			colaboradorID = &cid
		}
		nuevas = append(nuevas, nuevaLinea{
			productoID:    pid,
			cantidad:      det.Cantidad,
			precio:        det.PrecioUnitario,
			colaboradorID: colaboradorID,
			comision:      det.ComisionPagada,
			notas:         det.NotasPersonalizacion,
		})
		suma = suma.Add(det.PrecioUnitario.Mul(decimal.NewFromInt(int64(det.Cantidad))))
	}

	total := suma
	if req.MontoTotal != nil {
		total = *req.MontoTotal
	}

	// Fase 3: confirmar.
	detalles := make([]model.DetallePedido, 0, len(nuevas))
	for _, n := range nuevas {
		pid := n.productoID
		detalles = append(detalles, model.DetallePedido{
			PedidoID:             id,
			ProductoID:           &pid,
			Cantidad:             n.cantidad,
			PrecioUnitario:       n.precio,
			ColaboradorID:        n.colaboradorID,
			ComisionPagada:       n.comision,
			NotasPersonalizacion: n.notas,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.ReplaceDetallesTx(tx, id, detalles); err != nil {
			return err
		}
		for _, n := range nuevas {
			if err := s.inventario.AjustarStockProductoTx(tx, n.productoID, -n.cantidad); err != nil {
				return err
			}
		}
		pedido.ClienteID = clienteID
		pedido.MetodoPago = req.MetodoPago
		pedido.Estatus = req.Estatus
		pedido.MontoTotal = total
		pedido.DireccionEntrega = req.DireccionEntrega
		pedido.InstruccionesEntrega = req.InstruccionesEntrega
		return s.repo.UpdateTx(tx, pedido)
	})
	if txErr != nil {
		// La transacción revirtió el borrado de líneas, pero la restauración
		// de la fase 1 fue confirmada por separado y hay que deshacerla.
		compensar()
		if errors.Is(txErr, ErrStockInsuficiente) {
			return nil, txErr
		}
		return nil, fmt.Errorf("reemplazando pedido %s: %w", id, txErr)
	}

	pedido.Detalles = detalles
	return pedidoToResponse(pedido), nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────
// Borra el pedido restaurando primero el stock de cada línea dentro de la
// misma transacción. Las restauraciones nunca chocan con la guarda de no
// negatividad (el delta es positivo); una línea de producto borrado se omite.

func (s *pedidoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("pedido %s: %w", id, ErrPedidoNoEncontrado)
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, det := range pedido.Detalles {
			if det.ProductoID == nil {
				continue
			}
			ok, err := s.productoRepo.AjustarStockTx(tx, *det.ProductoID, det.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				log.Warn().Str("producto_id", det.ProductoID.String()).
					Msg("producto de la línea ya no existe; stock no restaurado")
			}
		}
		return s.repo.DeleteTx(tx, id)
	})
}

// ── mappers ───────────────────────────────────────────────────────────────────

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:                   p.ID.String(),
		ClienteID:            p.ClienteID.String(),
		FechaPedido:          p.FechaPedido.Format(time.RFC3339),
		MetodoPago:           p.MetodoPago,
		Estatus:              p.Estatus,
		MontoTotal:           p.MontoTotal,
		DireccionEntrega:     p.DireccionEntrega,
		InstruccionesEntrega: p.InstruccionesEntrega,
		Detalles:             make([]dto.DetallePedidoResponse, 0, len(p.Detalles)),
	}
	for _, det := range p.Detalles {
		var productoID, colaboradorID *string
		if det.ProductoID != nil {
			s := det.ProductoID.String()
			productoID = &s
		}
		if det.ColaboradorID != nil {
			s := det.ColaboradorID.String()
			colaboradorID = &s
		}
		resp.Detalles = append(resp.Detalles, dto.DetallePedidoResponse{
			DetalleID:            det.ID.String(),
			ProductoID:           productoID,
			Cantidad:             det.Cantidad,
			PrecioUnitario:       det.PrecioUnitario,
			ColaboradorID:        colaboradorID,
			ComisionPagada:       det.ComisionPagada,
			NotasPersonalizacion: det.NotasPersonalizacion,
		})
	}
	return resp
}
