package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Los trabajos que no deben reintentarse devuelven nil sin tocar el mailer.

func TestProcessPayloadMalformadoNoReintenta(t *testing.T) {
	w := NewNotificacionWorker(nil)
	err := w.Process(context.Background(), json.RawMessage(`{esto no es json`))
	assert.NoError(t, err)
}

func TestProcessClienteSinEmailSeOmite(t *testing.T) {
	w := NewNotificacionWorker(nil)
	payload, err := json.Marshal(NotificacionPedido{
		PedidoID:   "7f9c0a52-0000-0000-0000-000000000000",
		Cliente:    "Mostrador",
		MontoTotal: "350.00",
	})
	require.NoError(t, err)
	assert.NoError(t, w.Process(context.Background(), payload))
}
