package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
	"github.com/EC-WIN-24-NET/VoidMail/internal/metrics"
)

type mailService struct {
	settings domain.SettingsReader
	clients  domain.EmailClientFactory
	logger   *slog.Logger
}

// NewMailService returns a MailService that reads the connection string and sender address from
// settings on every call and asks the client factory for a client for each send.
func NewMailService(settings domain.SettingsReader, clients domain.EmailClientFactory, logger *slog.Logger) domain.MailService {
	return &mailService{settings: settings, clients: clients, logger: logger}
}

// SendEmail makes exactly one send attempt. Caller cancellation is not propagated into the send.
func (s *mailService) SendEmail(ctx context.Context, recipientEmail, subject, htmlBody, plainTextBody string) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "unexpected error while sending email", "panic", r)
			metrics.MailSendTotal.WithLabelValues(metrics.MailOutcomeFailed).Inc()
			sent = false
		}
	}()

	connectionString := s.settings.GetString(domain.SettingMailConnectionString)
	senderAddress := s.settings.GetString(domain.SettingMailSenderAddress)
	if connectionString == "" || senderAddress == "" {
		s.logger.ErrorContext(ctx, "email service configuration (connection string or sender address) is missing")
		metrics.MailSendTotal.WithLabelValues(metrics.MailOutcomeMisconfigured).Inc()
		return false
	}

	client, err := s.clients.NewClient(connectionString)
	if err != nil {
		s.logger.ErrorContext(ctx, "email client could not be created", "err", err)
		metrics.MailSendTotal.WithLabelValues(metrics.MailOutcomeMisconfigured).Inc()
		return false
	}

	msg := domain.EmailMessage{
		Sender:    senderAddress,
		Recipient: recipientEmail,
		Subject:   subject,
		HTML:      htmlBody,
	}
	if plainTextBody != "" {
		msg.PlainText = plainTextBody
	}

	op, err := client.Send(context.WithoutCancel(ctx), msg)
	if err != nil {
		var pe *domain.ProviderError
		if errors.As(err, &pe) {
			s.logger.ErrorContext(ctx, "email provider rejected message",
				"provider", pe.Provider,
				"status_code", pe.StatusCode,
				"error_code", pe.ErrorCode,
				"message", pe.Message,
			)
			metrics.MailSendTotal.WithLabelValues(metrics.MailOutcomeRejected).Inc()
			return false
		}
		s.logger.ErrorContext(ctx, "unexpected error while sending email", "err", err)
		metrics.MailSendTotal.WithLabelValues(metrics.MailOutcomeFailed).Inc()
		return false
	}

	if op.Succeeded() {
		s.logger.InfoContext(ctx, "email sent", "operation_id", op.ID, "status", op.Status)
		metrics.MailSendTotal.WithLabelValues(metrics.MailOutcomeSent).Inc()
		return true
	}

	attrs := []any{"completed", false}
	if op != nil {
		attrs = []any{
			"completed", op.Completed,
			"status", op.Status,
			"response_status", op.RawResponse.Status,
			"reason", op.RawResponse.ReasonPhrase,
		}
	}
	s.logger.WarnContext(ctx, "email send did not succeed", attrs...)
	metrics.MailSendTotal.WithLabelValues(metrics.MailOutcomeNotSucceeded).Inc()
	return false
}
