package infra

import (
	"fmt"
	"net/smtp"

	"tiendaropa/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for the order confirmation emails.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendConfirmacionPedido envía el correo de pedido recibido al cliente.
func (m *Mailer) SendConfirmacionPedido(to, cliente, pedidoID, montoTotal string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Recibimos tu pedido %s", pedidoID)
	e.Text = []byte(fmt.Sprintf(
		"Hola %s,\n\nTu pedido %s quedó registrado por un total de $%s.\n"+
			"Te avisaremos cuando esté listo para entrega.\n\nGracias por tu compra.\n",
		cliente, pedidoID, montoTotal,
	))

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
