package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
	"github.com/EC-WIN-24-NET/VoidMail/internal/result"
)

// Error codes produced by the email service.
const (
	CodeEventMailRender = "EventMail.RenderError"
	CodeEventMailSend   = "EventMail.SendFailed"
)

const eventDetailsTemplate = "event_details"

type emailService struct {
	events   domain.EventService
	mail     domain.MailService
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that looks events up through events, renders them with
// renderer and dispatches through mail.
func NewEmailService(events domain.EventService, mail domain.MailService, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{events: events, mail: mail, renderer: renderer, logger: logger}
}

// SendEventDetails emails the display details of one event to recipient using the "event_details" template.
func (s *emailService) SendEventDetails(ctx context.Context, eventID uuid.UUID, recipient string) result.RepositoryResult[domain.EventDisplay] {
	found := s.events.GetEventByGuid(ctx, eventID)
	if !found.IsSuccess() {
		return found
	}
	event, _ := found.Value()

	data := &domain.EventDetailsEmailData{Recipient: recipient, Event: event}
	subject, htmlBody, textBody, err := s.renderer.Render(eventDetailsTemplate, data)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render event details template", "event_id", eventID, "err", err)
		return result.Failure[domain.EventDisplay](result.NewError(CodeEventMailRender, "The email could not be prepared"), http.StatusInternalServerError)
	}

	if !s.mail.SendEmail(ctx, recipient, subject, htmlBody, textBody) {
		return result.Failure[domain.EventDisplay](result.NewError(CodeEventMailSend, "The email could not be sent"), http.StatusBadGateway)
	}
	s.logger.InfoContext(ctx, "event details email sent", "event_id", eventID)
	return result.Success(event, http.StatusOK)
}
