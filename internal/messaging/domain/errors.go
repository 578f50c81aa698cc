package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCredentialsNotConfigured indicates the tenant has no messaging
	// credentials on file.
	ErrCredentialsNotConfigured = errors.New("messaging credentials not configured")
	// ErrCredentialsUnverified indicates credentials exist but never passed
	// verification. Sends must not proceed.
	ErrCredentialsUnverified = errors.New("messaging credentials not verified")
	// ErrInvalidArgument indicates an empty or malformed input collection.
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidPhoneNumberError indicates a destination that cannot be normalized
// into international format.
type InvalidPhoneNumberError struct {
	Raw string
}

func (e *InvalidPhoneNumberError) Error() string {
	return fmt.Sprintf("invalid phone number format: %s (use international format with country code)", e.Raw)
}

// TemplateNotFoundError indicates an unknown template name. Available carries
// the registered names for operator diagnostics.
type TemplateNotFoundError struct {
	Name      string
	Available []string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template '%s' not found; available templates: %s", e.Name, strings.Join(e.Available, ", "))
}

// ProviderSendFailureError wraps a downstream provider failure together with
// the destination address.
type ProviderSendFailureError struct {
	To  string
	Err error
}

func (e *ProviderSendFailureError) Error() string {
	return fmt.Sprintf("failed to send WhatsApp message to %s: %v", e.To, e.Err)
}

func (e *ProviderSendFailureError) Unwrap() error { return e.Err }

// InvalidWebhookPayloadError indicates an inbound provider webhook missing
// required fields.
type InvalidWebhookPayloadError struct {
	Reason string
}

func (e *InvalidWebhookPayloadError) Error() string {
	return fmt.Sprintf("invalid webhook payload: %s", e.Reason)
}
