package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/EC-WIN-24-NET/VoidMail/internal/delivery/http/helpers"
	"github.com/EC-WIN-24-NET/VoidMail/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const maxSubjectLength = 255

// Request body limits. A mail body carries both renderings of the message.
const (
	maxMailBodyBytes      = 1 << 20
	maxRecipientBodyBytes = 4 << 10
)

// SendMailRequest is the request body for POST /mail.
type SendMailRequest struct {
	To            string `json:"to" example:"recipient@example.com"`
	Subject       string `json:"subject" example:"Meeting Reminder"`
	HTMLBody      string `json:"htmlBody" example:"<html><body><h1>Hello!</h1></body></html>"`
	PlainTextBody string `json:"plainTextBody,omitempty" example:"Hello!"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (m SendMailRequest) Validate() []string {
	errs := validateRecipient(m.To)
	if n := utf8.RuneCountInString(m.Subject); n < 1 || n > maxSubjectLength {
		errs = append(errs, "Subject must be between 1 and 255 characters.")
	}
	if strings.TrimSpace(m.HTMLBody) == "" {
		errs = append(errs, "HTML body is required.")
	}
	return errs
}

// SendEventDetailsRequest is the request body for POST /mail/event/{guid}.
type SendEventDetailsRequest struct {
	To string `json:"to" example:"recipient@example.com"`
}

// Validate implements Validator.
func (m SendEventDetailsRequest) Validate() []string {
	return validateRecipient(m.To)
}

func validateRecipient(to string) []string {
	if strings.TrimSpace(to) == "" {
		return []string{"Recipient email address is required."}
	}
	if !emailRegex.MatchString(to) {
		return []string{"Invalid email address format."}
	}
	return nil
}

// SendMailResponse is the data returned when a message was sent.
type SendMailResponse struct {
	Sent bool `json:"sent"`
}

// SendMailSuccessResponse is the success response envelope for POST /mail (200).
type SendMailSuccessResponse struct {
	Data  SendMailResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type MailController struct {
	Logger      *slog.Logger
	Mail        domain.MailService
	EventEmails domain.EmailService
}

func NewMailController(logger *slog.Logger, mail domain.MailService, eventEmails domain.EmailService) *MailController {
	return &MailController{
		Logger:      logger,
		Mail:        mail,
		EventEmails: eventEmails,
	}
}

// SendMail godoc
// @Summary Send an email
// @Description Sends one transactional email to a single recipient. The provider outcome is reported as sent or not sent.
// @Tags mail
// @Accept json
// @Produce json
// @Param mail body SendMailRequest true "Message"
// @Success 200 {object} controllers.SendMailSuccessResponse "data.sent is true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 413 {object} helpers.APIResponse "error.code: payload_too_large"
// @Failure 502 {object} helpers.APIResponse "error.code: email_not_sent"
// @Router /mail [post]
func (c *MailController) SendMail(w http.ResponseWriter, r *http.Request) {
	var req SendMailRequest
	if !helpers.DecodeRequest(w, r, &req, maxMailBodyBytes) {
		return
	}
	if !c.Mail.SendEmail(r.Context(), req.To, req.Subject, req.HTMLBody, req.PlainTextBody) {
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeEmailNotSent, "The email could not be sent")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SendMailResponse{Sent: true})
}

// SendEventDetails godoc
// @Summary Email the details of an event
// @Description Renders the event details template for one event and sends it to the recipient.
// @Tags mail
// @Accept json
// @Produce json
// @Param guid path string true "Event ID (UUID)"
// @Param mail body SendEventDetailsRequest true "Recipient"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event that was sent"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: General.NotFound"
// @Failure 500 {object} helpers.APIResponse "error.code: EventMail.RenderError"
// @Failure 502 {object} helpers.APIResponse "error.code: EventMail.SendFailed"
// @Router /mail/event/{guid} [post]
func (c *MailController) SendEventDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGuid(r.PathValue("guid"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Invalid Guid provided.")
		return
	}
	var req SendEventDetailsRequest
	if !helpers.DecodeRequest(w, r, &req, maxRecipientBodyBytes) {
		return
	}
	res := c.EventEmails.SendEventDetails(r.Context(), id, req.To)
	if res.IsFailure() && res.StatusCode() >= http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "code", res.Err().Code)
	}
	helpers.WriteResult(w, res)
}
