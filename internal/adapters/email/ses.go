package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
)

const (
	providerSES        = "ses"
	sesIdleConnTimeout = 90 * time.Second
)

// sesAPI is the subset of the SES client used for sending.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesClient struct {
	api        sesAPI
	region     string
	httpClient *http.Client
	logger     *slog.Logger
}

func newSESClient(cfg SESConfig, logger *slog.Logger) (*sesClient, error) {
	if cfg.InsecureSkipVerify {
		logger.Warn("[MAILER] TLS certificate verification is disabled for SES. Use only in development.")
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.IdleConnTimeout = sesIdleConnTimeout
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		MinVersion:         tls.VersionTLS12,
	}
	httpClient := &http.Client{Transport: transport}

	var awsCfg aws.Config
	if cfg.AccessKeyID != "" {
		awsCfg = aws.Config{
			Region: cfg.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
			),
			HTTPClient: httpClient,
		}
	} else {
		var err error
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
	}

	client := ses.NewFromConfig(awsCfg, func(o *ses.Options) {
		// exactly one attempt per send
		o.Retryer = aws.NopRetryer{}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &sesClient{api: client, region: cfg.Region, httpClient: httpClient, logger: logger}, nil
}

// Close drops the idle keep-alive connections held by the client's transport.
func (s *sesClient) Close() {
	if s.httpClient != nil {
		s.httpClient.CloseIdleConnections()
	}
}

func (s *sesClient) Send(ctx context.Context, msg domain.EmailMessage) (*domain.SendOperation, error) {
	out, err := s.api.SendEmail(ctx, buildSESInput(msg))
	if err != nil {
		if pe := sesProviderError(err); pe != nil {
			return nil, pe
		}
		return nil, fmt.Errorf("failed to send email via SES: %w", err)
	}

	op := &domain.SendOperation{
		ID:          aws.ToString(out.MessageId),
		Completed:   true,
		Status:      domain.EmailSendStatusSucceeded,
		RawResponse: domain.RawResponse{Status: http.StatusOK, ReasonPhrase: http.StatusText(http.StatusOK)},
	}
	if raw, ok := awsmiddleware.GetRawResponse(out.ResultMetadata).(*smithyhttp.Response); ok && raw != nil && raw.Response != nil {
		op.RawResponse = domain.RawResponse{Status: raw.StatusCode, ReasonPhrase: http.StatusText(raw.StatusCode)}
	}
	s.logger.Debug("[MAILER] email sent via SES", "message_id", op.ID, "region", s.region)
	return op, nil
}

func buildSESInput(msg domain.EmailMessage) *ses.SendEmailInput {
	input := &ses.SendEmailInput{
		Source: aws.String(msg.Sender),
		Destination: &types.Destination{
			ToAddresses: []string{msg.Recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(msg.HTML),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}
	if msg.PlainText != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(msg.PlainText),
			Charset: aws.String("UTF-8"),
		}
	}
	return input
}

// sesProviderError maps an SES API error to a ProviderError, or nil when err is not an API error.
func sesProviderError(err error) *domain.ProviderError {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}
	pe := &domain.ProviderError{
		Provider:  providerSES,
		ErrorCode: apiErr.ErrorCode(),
		Message:   apiErr.ErrorMessage(),
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		pe.StatusCode = respErr.HTTPStatusCode()
	}
	return pe
}
