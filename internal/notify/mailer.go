// Package notify delivers account mail over SMTP.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dicefit-api/internal/config"
	"dicefit-api/internal/core"
	"dicefit-api/internal/metrics"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
)

const (
	defaultMailsPerMinute = 30
	resetSubject          = "DiceFit - sua nova senha"
)

// ErrNotConfigured is returned by the disabled notifier.
var ErrNotConfigured = errors.New("mail delivery is not configured")

// SMTPNotifier sends mail through one SMTP relay. Sends are paced by a
// shared limiter so bursts of resets stay within the relay quota.
type SMTPNotifier struct {
	client  *mail.Client
	from    string
	limiter *rate.Limiter
	logger  zerolog.Logger
}

var _ core.Notifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(cfg config.Config, logger zerolog.Logger) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	perMinute := cfg.MailRatePerMinute
	if perMinute <= 0 {
		perMinute = defaultMailsPerMinute
	}

	return &SMTPNotifier{
		client:  client,
		from:    cfg.SMTPFrom,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		logger:  logger.With().Str("component", "mailer").Logger(),
	}, nil
}

func (n *SMTPNotifier) SendPasswordReset(ctx context.Context, to, name, code string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for mail slot: %w", err)
	}

	msg, err := passwordResetMessage(n.from, to, name, code)
	if err != nil {
		return err
	}

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		metrics.MailsSent.WithLabelValues(metrics.OutcomeFailure).Inc()
		return fmt.Errorf("send password reset: %w", err)
	}

	metrics.MailsSent.WithLabelValues(metrics.OutcomeSuccess).Inc()
	n.logger.Debug().Str("to", to).Msg("Password reset mail sent")
	return nil
}

func passwordResetMessage(from, to, name, code string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(resetSubject)
	msg.SetBodyString(mail.TypeTextPlain, passwordResetBody(name, code))
	return msg, nil
}

func passwordResetBody(name, code string) string {
	return fmt.Sprintf("Olá %s,\n\n"+
		"Recebemos um pedido de recuperação de senha para sua conta DiceFit.\n"+
		"Sua nova senha é: %s\n\n"+
		"Use-a para entrar no aplicativo e altere-a em seguida.\n", name, code)
}

// DisabledNotifier fails every send. It is used when SMTP_HOST is empty.
type DisabledNotifier struct{}

var _ core.Notifier = DisabledNotifier{}

func (DisabledNotifier) SendPasswordReset(context.Context, string, string, string) error {
	return ErrNotConfigured
}

// New builds the SMTP notifier, or the disabled one when no host is set.
func New(cfg config.Config, logger zerolog.Logger) (core.Notifier, error) {
	if cfg.SMTPHost == "" {
		logger.Warn().Msg("SMTP_HOST not set, password reset mail is disabled")
		return DisabledNotifier{}, nil
	}
	return NewSMTPNotifier(cfg, logger)
}
