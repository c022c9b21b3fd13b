package email

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
)

type noopClient struct {
	logger *slog.Logger
}

func newNoopClient(logger *slog.Logger) *noopClient {
	return &noopClient{logger: logger}
}

func (n *noopClient) Send(ctx context.Context, msg domain.EmailMessage) (*domain.SendOperation, error) {
	n.logger.InfoContext(ctx, "[MAILER] Email would be sent (noop)", "to", msg.Recipient, "subject", msg.Subject)
	return &domain.SendOperation{
		ID:          uuid.NewString(),
		Completed:   true,
		Status:      domain.EmailSendStatusSucceeded,
		RawResponse: domain.RawResponse{Status: http.StatusAccepted, ReasonPhrase: http.StatusText(http.StatusAccepted)},
	}, nil
}
