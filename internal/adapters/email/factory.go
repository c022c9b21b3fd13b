package email

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
)

// ErrUnsupportedScheme is returned for connection strings whose scheme has no client.
var ErrUnsupportedScheme = errors.New("unsupported mail connection scheme")

// Supported connection string schemes.
const (
	SchemeSES   = "ses"
	SchemeSMTP  = "smtp"
	SchemeSMTPS = "smtps"
	SchemeNoop  = "noop"
)

// clientFactory keeps the client for the most recent connection string, so settings can be read per
// send without building a transport per send. A changed connection string replaces the client.
type clientFactory struct {
	logger *slog.Logger

	mu      sync.Mutex
	connStr string
	current domain.EmailClient
}

// NewClientFactory returns an EmailClientFactory backed by NewClient.
func NewClientFactory(logger *slog.Logger) domain.EmailClientFactory {
	return &clientFactory{logger: logger}
}

func (f *clientFactory) NewClient(connectionString string) (domain.EmailClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current != nil && f.connStr == connectionString {
		return f.current, nil
	}
	c, err := NewClient(connectionString, f.logger)
	if err != nil {
		return nil, err
	}
	if closer, ok := f.current.(interface{ Close() }); ok {
		closer.Close()
	}
	f.connStr, f.current = connectionString, c
	return c, nil
}

// NewClient creates an email client from a connection string. The scheme selects the provider:
//
//	ses://[KEY_ID:SECRET@]REGION[?endpoint=URL&insecure_skip_verify=true]
//	smtp://[USER:PASS@]HOST[:PORT][?tls=auto|starttls|ssl|none&insecure_skip_verify=true]
//	smtps://[USER:PASS@]HOST[:PORT]
//	noop://
func NewClient(connectionString string, logger *slog.Logger) (domain.EmailClient, error) {
	u, err := url.Parse(strings.TrimSpace(connectionString))
	if err != nil {
		return nil, fmt.Errorf("parse mail connection string: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case SchemeSES:
		cfg, err := parseSESConfig(u)
		if err != nil {
			return nil, err
		}
		return newSESClient(cfg, logger)
	case SchemeSMTP, SchemeSMTPS:
		cfg, err := parseSMTPConfig(u)
		if err != nil {
			return nil, err
		}
		return newSMTPClient(cfg, logger), nil
	case SchemeNoop:
		return newNoopClient(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	Endpoint           string
	InsecureSkipVerify bool
}

func parseSESConfig(u *url.URL) (SESConfig, error) {
	cfg := SESConfig{Region: u.Host}
	if cfg.Region == "" {
		return SESConfig{}, errors.New("ses connection string: region is required")
	}
	if u.User != nil {
		cfg.AccessKeyID = u.User.Username()
		cfg.SecretAccessKey, _ = u.User.Password()
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return SESConfig{}, errors.New("ses connection string: both access key id and secret are required")
		}
	}
	q := u.Query()
	cfg.Endpoint = q.Get("endpoint")
	skip, err := parseBool(q.Get("insecure_skip_verify"))
	if err != nil {
		return SESConfig{}, fmt.Errorf("ses connection string: insecure_skip_verify: %w", err)
	}
	cfg.InsecureSkipVerify = skip
	return cfg, nil
}

// TLS modes for SMTP.
const (
	TLSModeAuto     = "auto"
	TLSModeStartTLS = "starttls"
	TLSModeSSL      = "ssl"
	TLSModeNone     = "none"
)

// SMTPConfig holds configuration for an SMTP relay.
type SMTPConfig struct {
	Host               string
	Port               int
	Username           string
	Password           string
	TLSMode            string
	InsecureSkipVerify bool
}

func parseSMTPConfig(u *url.URL) (SMTPConfig, error) {
	cfg := SMTPConfig{Host: u.Hostname(), TLSMode: TLSModeAuto, Port: 587}
	if strings.EqualFold(u.Scheme, SchemeSMTPS) {
		cfg.TLSMode = TLSModeSSL
		cfg.Port = 465
	}
	if cfg.Host == "" {
		return SMTPConfig{}, errors.New("smtp connection string: host is required")
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return SMTPConfig{}, fmt.Errorf("smtp connection string: invalid port %q", p)
		}
		cfg.Port = port
	}
	if u.User != nil {
		cfg.Username = u.User.Username()
		cfg.Password, _ = u.User.Password()
	}
	q := u.Query()
	if mode := strings.ToLower(q.Get("tls")); mode != "" {
		switch mode {
		case TLSModeAuto, TLSModeStartTLS, TLSModeSSL, TLSModeNone:
			cfg.TLSMode = mode
		default:
			return SMTPConfig{}, fmt.Errorf("smtp connection string: unknown tls mode %q", mode)
		}
	}
	skip, err := parseBool(q.Get("insecure_skip_verify"))
	if err != nil {
		return SMTPConfig{}, fmt.Errorf("smtp connection string: insecure_skip_verify: %w", err)
	}
	cfg.InsecureSkipVerify = skip
	return cfg, nil
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
