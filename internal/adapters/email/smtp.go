package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	mail "github.com/go-mail/mail"
	"github.com/google/uuid"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
)

const (
	providerSMTP       = "smtp"
	defaultSMTPTimeout = 10 * time.Second
)

type smtpClient struct {
	cfg    SMTPConfig
	logger *slog.Logger
}

func newSMTPClient(cfg SMTPConfig, logger *slog.Logger) *smtpClient {
	if cfg.InsecureSkipVerify {
		logger.Warn("[MAILER] TLS certificate verification is disabled for SMTP. Use only in development.")
	}
	return &smtpClient{cfg: cfg, logger: logger}
}

// Send delivers msg through one SMTP session. go-mail takes no context; the session is bounded by
// the dialer timeout.
func (s *smtpClient) Send(ctx context.Context, msg domain.EmailMessage) (*domain.SendOperation, error) {
	id := uuid.NewString()
	m := buildSMTPMessage(msg, id, s.cfg.Host)

	if err := s.dialer().DialAndSend(m); err != nil {
		if pe := smtpProviderError(err); pe != nil {
			return nil, pe
		}
		return nil, fmt.Errorf("smtp send: %w", err)
	}

	s.logger.DebugContext(ctx, "[MAILER] email sent via SMTP", "host", s.cfg.Host, "port", s.cfg.Port, "message_id", id)
	return &domain.SendOperation{
		ID:          id,
		Completed:   true,
		Status:      domain.EmailSendStatusSucceeded,
		RawResponse: domain.RawResponse{Status: http.StatusOK, ReasonPhrase: "250 OK"},
	}, nil
}

func (s *smtpClient) dialer() *mail.Dialer {
	d := mail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.Timeout = defaultSMTPTimeout
	d.RetryFailure = false
	d.TLSConfig = &tls.Config{
		ServerName:         s.cfg.Host,
		InsecureSkipVerify: s.cfg.InsecureSkipVerify,
		MinVersion:         tls.VersionTLS12,
	}
	switch s.cfg.TLSMode {
	case TLSModeSSL:
		d.SSL = true
	case TLSModeStartTLS:
		d.StartTLSPolicy = mail.MandatoryStartTLS
	case TLSModeNone:
		d.StartTLSPolicy = mail.NoStartTLS
	default:
		// auto: STARTTLS when the server offers it
		d.StartTLSPolicy = mail.OpportunisticStartTLS
	}
	return d
}

func buildSMTPMessage(msg domain.EmailMessage, id, host string) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", msg.Sender)
	m.SetHeader("To", msg.Recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", "<"+id+"@"+host+">")
	if msg.PlainText != "" {
		m.SetBody("text/plain", msg.PlainText)
		m.AddAlternative("text/html", msg.HTML)
	} else {
		m.SetBody("text/html", msg.HTML)
	}
	return m
}

// smtpProviderError maps an SMTP reply error to a ProviderError, or nil when the server never replied.
func smtpProviderError(err error) *domain.ProviderError {
	var sendErr *mail.SendError
	if errors.As(err, &sendErr) && sendErr.Cause != nil {
		err = sendErr.Cause
	}
	var tpErr *textproto.Error
	if !errors.As(err, &tpErr) {
		return nil
	}
	return &domain.ProviderError{
		Provider:   providerSMTP,
		StatusCode: tpErr.Code,
		ErrorCode:  strconv.Itoa(tpErr.Code),
		Message:    tpErr.Msg,
	}
}
