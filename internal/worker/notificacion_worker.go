package worker

// notificacion_worker.go
// Sends the "pedido recibido" confirmation email for newly created orders.
// Orders from walk-in customers without an email are simply skipped.

import (
	"context"
	"encoding/json"
	"fmt"

	"tiendaropa/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotificacionPedido is the job payload enqueued after an order is committed.
type NotificacionPedido struct {
	PedidoID   string `json:"pedido_id"`
	Cliente    string `json:"cliente"`
	Email      string `json:"email"`
	MontoTotal string `json:"monto_total"`
}

type NotificacionWorker struct {
	mailer *infra.Mailer
}

func NewNotificacionWorker(mailer *infra.Mailer) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer}
}

// Process sends the confirmation email. A returned error means the job should
// be retried; a skipped job (no email address) is not an error.
func (w *NotificacionWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload NotificacionPedido
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}
	if payload.Email == "" {
		log.Debug().Str("pedido_id", payload.PedidoID).
			Msg("notificacion_worker: cliente sin email — skipping")
		return nil
	}

	if err := w.mailer.SendConfirmacionPedido(payload.Email, payload.Cliente, payload.PedidoID, payload.MontoTotal); err != nil {
		return fmt.Errorf("notificacion_worker: send to %s: %w", payload.Email, err)
	}
	log.Info().Str("pedido_id", payload.PedidoID).Str("to", payload.Email).
		Msg("notificacion_worker: confirmación enviada")
	return nil
}
