package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/leettrack/leettrack/internal/mq"
)

// Mailer delivers password-reset mail. When no SMTP host is configured
// it logs the reset link instead, which is what local development uses.
type Mailer struct {
	smtpAddr string
	from     string
	baseURL  string
}

// New constructs a Mailer. smtpAddr may be empty for log-only delivery.
func New(smtpAddr, from, baseURL string) *Mailer {
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	return &Mailer{smtpAddr: smtpAddr, from: from, baseURL: baseURL}
}

// SendResetMail delivers the password-reset link for a queued job.
func (m *Mailer) SendResetMail(ctx context.Context, job mq.ResetMailJob) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(m.baseURL, "/"), job.ResetToken)

	if m.smtpAddr == "" {
		log.Info().
			Str("email", job.Email).
			Str("link", link).
			Msg("reset mail (log-only delivery)")
		return nil
	}

	body := fmt.Sprintf("To: %s\r\nSubject: Reset your password\r\n\r\nHi %s,\r\n\r\nUse the link below to reset your password. It expires in one hour.\r\n\r\n%s\r\n",
		job.Email, job.Name, link)
	if err := smtp.SendMail(m.smtpAddr, nil, m.from, []string{job.Email}, []byte(body)); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}

	log.Info().Str("email", job.Email).Msg("reset mail sent")
	return nil
}

// Run consumes reset-mail jobs until the context is canceled.
func (m *Mailer) Run(ctx context.Context, queue *mq.MQ) error {
	return queue.SubscribeResetMail(ctx, m.SendResetMail)
}
