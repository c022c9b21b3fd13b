package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
)

type fakeSettings map[string]string

func (s fakeSettings) GetString(key string) string { return s[key] }

type fakeEmailClient struct {
	op       *domain.SendOperation
	err      error
	panics   bool
	sent     []domain.EmailMessage
	ctxErr   error
	sendCall int
}

func (c *fakeEmailClient) Send(ctx context.Context, msg domain.EmailMessage) (*domain.SendOperation, error) {
	c.sendCall++
	c.sent = append(c.sent, msg)
	c.ctxErr = ctx.Err()
	if c.panics {
		panic("transport exploded")
	}
	return c.op, c.err
}

type fakeClientFactory struct {
	client      *fakeEmailClient
	err         error
	calls       int
	lastConnStr string
}

func (f *fakeClientFactory) NewClient(connectionString string) (domain.EmailClient, error) {
	f.calls++
	f.lastConnStr = connectionString
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

func validSettings() fakeSettings {
	return fakeSettings{
		domain.SettingMailConnectionString: "noop://",
		domain.SettingMailSenderAddress:    "no-reply@voidmail.test",
	}
}

func succeededOp() *domain.SendOperation {
	return &domain.SendOperation{ID: "op-1", Completed: true, Status: domain.EmailSendStatusSucceeded, RawResponse: domain.RawResponse{Status: 202, ReasonPhrase: "Accepted"}}
}

func TestMailService_SendEmail(t *testing.T) {
	tests := []struct {
		name     string
		settings fakeSettings
		client   *fakeEmailClient
		factErr  error
		want     bool
		wantSend int
	}{
		{
			name:     "succeeded",
			settings: validSettings(),
			client:   &fakeEmailClient{op: succeededOp()},
			want:     true,
			wantSend: 1,
		},
		{
			name:     "missing sender address",
			settings: fakeSettings{domain.SettingMailConnectionString: "noop://"},
			client:   &fakeEmailClient{op: succeededOp()},
			want:     false,
		},
		{
			name:     "missing connection string",
			settings: fakeSettings{domain.SettingMailSenderAddress: "no-reply@voidmail.test"},
			client:   &fakeEmailClient{op: succeededOp()},
			want:     false,
		},
		{
			name:     "client construction fails",
			settings: validSettings(),
			client:   &fakeEmailClient{op: succeededOp()},
			factErr:  errors.New("unsupported scheme"),
			want:     false,
		},
		{
			name:     "provider rejects",
			settings: validSettings(),
			client:   &fakeEmailClient{err: &domain.ProviderError{Provider: "ses", StatusCode: 400, ErrorCode: "MessageRejected", Message: "Email address is not verified."}},
			want:     false,
			wantSend: 1,
		},
		{
			name:     "wrapped provider error",
			settings: validSettings(),
			client:   &fakeEmailClient{err: errors.Join(errors.New("send"), &domain.ProviderError{Provider: "smtp", StatusCode: 550})},
			want:     false,
			wantSend: 1,
		},
		{
			name:     "unexpected error",
			settings: validSettings(),
			client:   &fakeEmailClient{err: errors.New("connection reset")},
			want:     false,
			wantSend: 1,
		},
		{
			name:     "still running",
			settings: validSettings(),
			client:   &fakeEmailClient{op: &domain.SendOperation{ID: "op-2", Status: domain.EmailSendStatusRunning}},
			want:     false,
			wantSend: 1,
		},
		{
			name:     "completed but failed",
			settings: validSettings(),
			client:   &fakeEmailClient{op: &domain.SendOperation{ID: "op-3", Completed: true, Status: domain.EmailSendStatusFailed}},
			want:     false,
			wantSend: 1,
		},
		{
			name:     "nil operation",
			settings: validSettings(),
			client:   &fakeEmailClient{},
			want:     false,
			wantSend: 1,
		},
		{
			name:     "panic in transport",
			settings: validSettings(),
			client:   &fakeEmailClient{panics: true},
			want:     false,
			wantSend: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := &fakeClientFactory{client: tt.client, err: tt.factErr}
			svc := NewMailService(tt.settings, factory, testLogger)

			got := svc.SendEmail(context.Background(), "user@example.com", "Hello", "<p>Hi</p>", "Hi")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSend, tt.client.sendCall, "exactly one attempt, no retries")
		})
	}
}

func TestMailService_SendEmail_SkipsClientWhenMisconfigured(t *testing.T) {
	factory := &fakeClientFactory{client: &fakeEmailClient{op: succeededOp()}}
	svc := NewMailService(fakeSettings{}, factory, testLogger)

	assert.False(t, svc.SendEmail(context.Background(), "user@example.com", "s", "<p>h</p>", ""))
	assert.Zero(t, factory.calls)
}

func TestMailService_SendEmail_BuildsMessage(t *testing.T) {
	client := &fakeEmailClient{op: succeededOp()}
	factory := &fakeClientFactory{client: client}
	svc := NewMailService(validSettings(), factory, testLogger)

	require.True(t, svc.SendEmail(context.Background(), "user@example.com", "Subject", "<p>html</p>", ""))

	assert.Equal(t, "noop://", factory.lastConnStr)
	require.Len(t, client.sent, 1)
	msg := client.sent[0]
	assert.Equal(t, "no-reply@voidmail.test", msg.Sender)
	assert.Equal(t, "user@example.com", msg.Recipient)
	assert.Equal(t, "Subject", msg.Subject)
	assert.Equal(t, "<p>html</p>", msg.HTML)
	assert.Empty(t, msg.PlainText)
}

func TestMailService_SendEmail_IgnoresCallerCancellation(t *testing.T) {
	client := &fakeEmailClient{op: succeededOp()}
	svc := NewMailService(validSettings(), &fakeClientFactory{client: client}, testLogger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.True(t, svc.SendEmail(ctx, "user@example.com", "s", "<p>h</p>", "h"))
	assert.NoError(t, client.ctxErr)
}

func TestMailService_SendEmail_ReadsSettingsPerCall(t *testing.T) {
	settings := validSettings()
	factory := &fakeClientFactory{client: &fakeEmailClient{op: succeededOp()}}
	svc := NewMailService(settings, factory, testLogger)

	require.True(t, svc.SendEmail(context.Background(), "a@example.com", "s", "<p>h</p>", ""))
	settings[domain.SettingMailConnectionString] = "ses://eu-north-1"
	require.True(t, svc.SendEmail(context.Background(), "b@example.com", "s", "<p>h</p>", ""))

	assert.Equal(t, 2, factory.calls)
	assert.Equal(t, "ses://eu-north-1", factory.lastConnStr)
}
