package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/JuanDavidBarr/TalentoPlus/internal/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	SendWelcome(ctx context.Context, toEmail, employeeName string) error
}

type smtpMailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
	logger *zap.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, logger ...*zap.Logger) Mailer {
	l := zap.L().Named("notify.mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.mailer")
	}
	return &smtpMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		logger: l,
	}
}

// SendWelcome greets a newly registered employee. The message reminds them
// that login uses the document number and email they registered with.
func (m *smtpMailer) SendWelcome(ctx context.Context, toEmail, employeeName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromEmail, m.cfg.FromName)
	msg.SetAddressHeader("To", toEmail, employeeName)
	msg.SetHeader("Subject", "¡Bienvenido a TalentoPlus S.A.S.!")
	msg.SetBody("text/plain", welcomeTextBody(employeeName))
	msg.AddAlternative("text/html", welcomeHTMLBody(employeeName))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send welcome email to %s: %w", toEmail, err)
	}

	m.logger.Info("welcome email sent", zap.String("to", toEmail))
	return nil
}

func welcomeTextBody(employeeName string) string {
	return fmt.Sprintf(`¡Bienvenido a TalentoPlus S.A.S.!

Estimado/a %s,

Tu registro en nuestra plataforma ha sido completado exitosamente.

Ya puedes autenticarte en la plataforma utilizando tu número de documento y correo electrónico registrados.

Si tienes alguna pregunta, no dudes en contactar al equipo de Recursos Humanos.

¡Gracias por unirte a nuestro equipo!

Atentamente,
Equipo de TalentoPlus S.A.S.
`, employeeName)
}

func welcomeHTMLBody(employeeName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #0066cc; color: white; padding: 20px; text-align: center;">
      <h1>¡Bienvenido a TalentoPlus S.A.S.!</h1>
    </div>
    <div style="padding: 20px; background-color: #f9f9f9;">
      <p>Estimado/a <strong>%s</strong>,</p>
      <p>Tu registro en nuestra plataforma ha sido completado exitosamente.</p>
      <p>Ya puedes autenticarte en la plataforma utilizando tu <strong>número de documento</strong> y <strong>correo electrónico</strong> registrados.</p>
      <p>Si tienes alguna pregunta, no dudes en contactar al equipo de Recursos Humanos.</p>
      <br/>
      <p>¡Gracias por unirte a nuestro equipo!</p>
      <p>Atentamente,<br/><strong>Equipo de TalentoPlus S.A.S.</strong></p>
    </div>
    <div style="text-align: center; padding: 10px; font-size: 12px; color: #666;">
      <p>Este es un correo automático, por favor no responda a este mensaje.</p>
      <p>&copy; %d TalentoPlus S.A.S. Todos los derechos reservados.</p>
    </div>
  </div>
</body>
</html>`, employeeName, time.Now().Year())
}
