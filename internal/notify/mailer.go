// PrinceMahmood | 2026
// mailer.go

package notify

import (
	"fmt"
	"log/slog"

	gomail "gopkg.in/gomail.v2"

	"github.com/princemahmood117/stayvista-server/internal/config"
)

// Notifier delivers a message to a single recipient. Delivery is best-effort
// and must never block or fail the operation that triggered it.
type Notifier interface {
	Dispatch(to, subject, body string)
}

// Mailer sends notifications over SMTP. When disabled in config it degrades
// to logging the would-be message, which keeps local development working
// without transporter credentials.
type Mailer struct {
	dialer  *gomail.Dialer
	sender  string
	enabled bool
	logger  *slog.Logger
}

func NewMailer(cfg config.SMTPConfig, logger *slog.Logger) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender:  cfg.Sender(),
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Dispatch sends the message on a background goroutine. Failures are logged
// and dropped.
func (m *Mailer) Dispatch(to, subject, body string) {
	if !m.enabled {
		m.logger.Info("mail transport disabled, skipping notification",
			"to", to,
			"subject", subject,
		)
		return
	}

	go func() {
		if err := m.send(to, subject, body); err != nil {
			m.logger.Error("failed to send notification",
				"error", err,
				"to", to,
				"subject", subject,
			)
			return
		}
		m.logger.Info("notification sent", "to", to, "subject", subject)
	}()
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

var _ Notifier = (*Mailer)(nil)
