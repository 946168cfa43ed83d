package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/BlockbyJamez/my-inventory-app/internal/application/auth"
	"github.com/BlockbyJamez/my-inventory-app/pkg/config"
)

var _ auth.Mailer = (*Sender)(nil)

// Sender envía correos vía SMTP usando gomail.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender construye el sender con la configuración SMTP.
func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.Sender(),
	}
}

// SendResetCode envía el código de recuperación de contraseña.
// El envío es síncrono: si falla, el caller no debe persistir el código.
func (s *Sender) SendResetCode(to, username, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Código de recuperación de contraseña")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hola %s:\n\nTu código de recuperación es: %s\n\nVence en breve y sirve para un solo cambio de contraseña. Si no lo solicitaste, ignora este correo.\n",
		username, code,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar código de recuperación: %w", err)
	}
	return nil
}
