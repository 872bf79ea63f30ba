// Package email despacha el correo de recuperación de contraseña por SMTP
// con STARTTLS y cuerpo UTF-8.
package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/FedericoMusa/ordico2/internal/application/auth"
	"github.com/FedericoMusa/ordico2/pkg/config"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementación del puerto Mailer sobre gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Address, cfg.Password),
		from:   cfg.Address,
	}
}

// Send envía un correo de texto plano al destinatario.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain; charset=UTF-8", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}
