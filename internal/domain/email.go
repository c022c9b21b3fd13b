package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/EC-WIN-24-NET/VoidMail/internal/result"
)

// Settings keys read by the mail service on every send.
const (
	SettingMailConnectionString = "mail.connection_string"
	SettingMailSenderAddress    = "mail.sender_address"
)

// SettingsReader looks configuration values up by name at call time.
type SettingsReader interface {
	GetString(key string) string
}

// EmailMessage is a single-recipient message handed to an EmailClient.
type EmailMessage struct {
	Sender    string
	Recipient string
	Subject   string
	HTML      string
	// PlainText is optional; empty means the message has no text part.
	PlainText string
}

// EmailSendStatus is the provider-reported state of a send operation.
type EmailSendStatus string

const (
	EmailSendStatusNotStarted EmailSendStatus = "NotStarted"
	EmailSendStatusRunning    EmailSendStatus = "Running"
	EmailSendStatusSucceeded  EmailSendStatus = "Succeeded"
	EmailSendStatusFailed     EmailSendStatus = "Failed"
	EmailSendStatusCanceled   EmailSendStatus = "Canceled"
)

// RawResponse is the transport-level response kept for diagnostics.
type RawResponse struct {
	Status       int
	ReasonPhrase string
}

// SendOperation is what a provider acknowledged for one send.
type SendOperation struct {
	ID          string
	Completed   bool
	Status      EmailSendStatus
	RawResponse RawResponse
}

// Succeeded reports whether the provider completed the send and reported success.
func (o *SendOperation) Succeeded() bool {
	return o != nil && o.Completed && o.Status == EmailSendStatusSucceeded
}

// ProviderError is a rejection reported by the email provider (bad address, auth, throttling).
type ProviderError struct {
	Provider   string
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s (status %d, code %s)", e.Provider, e.Message, e.StatusCode, e.ErrorCode)
}

// EmailClient sends messages through one email provider (infrastructure port).
type EmailClient interface {
	Send(ctx context.Context, msg EmailMessage) (*SendOperation, error)
}

// EmailClientFactory builds an EmailClient from a connection string.
type EmailClientFactory interface {
	NewClient(connectionString string) (EmailClient, error)
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// MailService dispatches one transactional email. The boolean is the only outcome signal.
type MailService interface {
	SendEmail(ctx context.Context, recipientEmail, subject, htmlBody, plainTextBody string) bool
}

// EventDetailsEmailData holds data for the event details email.
type EventDetailsEmailData struct {
	Recipient string
	Event     EventDisplay
}

// EmailService defines domain-level emails built from templates.
type EmailService interface {
	SendEventDetails(ctx context.Context, eventID uuid.UUID, recipient string) result.RepositoryResult[EventDisplay]
}
