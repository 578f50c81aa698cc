package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/gateway"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/phone"
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/template"
	"github.com/prometheus/client_golang/prometheus"
)

// Messenger orchestrates outbound WhatsApp messaging for tenants: template
// resolution and rendering, credential verification, single and bulk sends,
// and inbound webhook normalization.
//
// Every tenant-initiated operation constructs a fresh gateway client from the
// caller-supplied credentials. Credentials are never shared across tenants
// and there is no global client on this path.
type Messenger struct {
	registry *template.Registry
	clients  gateway.ClientFactory
	pacer    Pacer
	logger   *slog.Logger
	now      func() time.Time
}

// NewMessenger creates a Messenger. A nil pacer defaults to a fixed one
// second interval between bulk attempts.
func NewMessenger(registry *template.Registry, clients gateway.ClientFactory, pacer Pacer, logger *slog.Logger) *Messenger {
	if pacer == nil {
		pacer = NewFixedIntervalPacer(time.Second)
	}
	return &Messenger{
		registry: registry,
		clients:  clients,
		pacer:    pacer,
		logger:   logger.With("service", "messenger"),
		now:      time.Now,
	}
}

// Registry exposes the template catalog for listing and preview endpoints.
func (s *Messenger) Registry() *template.Registry { return s.registry }

// Send renders the named template and delivers it to one destination using
// the tenant's credentials. It returns the provider message SID.
//
// Send itself is credential-agnostic: the verified-flag gate is enforced by
// the route layer, because administrative flows legitimately probe with
// not-yet-verified credentials.
func (s *Messenger) Send(ctx context.Context, to, templateName string, vars []string, creds domain.TenantCredentials) (string, error) {
	formatted, err := phone.Normalize(to)
	if err != nil {
		return "", err
	}

	tpl, err := s.registry.Get(templateName)
	if err != nil {
		messagesSentCounter.WithLabelValues(templateName, "error").Inc()
		return "", err
	}

	rendered := template.Render(tpl, vars)
	if len(rendered.Unfilled) > 0 {
		s.logger.WarnContext(ctx, "template has unreplaced variables",
			"template", templateName, "unfilled", rendered.Unfilled)
	}

	client := s.clients.ForCredentials(creds)

	timer := prometheus.NewTimer(providerRequestDurationHist.WithLabelValues("send"))
	resp, err := client.SendMessage(ctx, gateway.SendRequest{
		From: creds.PhoneNumber,
		To:   formatted,
		Body: rendered.Body,
	})
	timer.ObserveDuration()

	if err != nil {
		messagesSentCounter.WithLabelValues(templateName, "error").Inc()
		s.logger.ErrorContext(ctx, "failed to send WhatsApp message", "to", to, "error", err)
		return "", &domain.ProviderSendFailureError{To: to, Err: err}
	}

	messagesSentCounter.WithLabelValues(templateName, "success").Inc()
	s.logger.InfoContext(ctx, "WhatsApp message sent", "to", formatted, "message_sid", resp.MessageSID)
	return resp.MessageSID, nil
}

// SendBulk delivers the named template to every destination in order,
// sequentially, pacing consecutive attempts through the configured Pacer.
// One recipient's failure never aborts the rest: every destination ends up
// either in Success (normalized form) or in Failed, preserving input order.
//
// An empty destination list is rejected with ErrInvalidArgument. If the
// context is cancelled between iterations the partial result is returned
// together with the context error.
func (s *Messenger) SendBulk(ctx context.Context, phoneNumbers []string, templateName string, vars []string, creds domain.TenantCredentials) (*domain.BulkSendResult, error) {
	if len(phoneNumbers) == 0 {
		return nil, fmt.Errorf("%w: phone numbers list must not be empty", domain.ErrInvalidArgument)
	}

	s.logger.InfoContext(ctx, "starting bulk send",
		"recipients", len(phoneNumbers), "template", templateName)

	result := &domain.BulkSendResult{
		Success: []string{},
		Failed:  []domain.BulkFailure{},
	}

	for i, raw := range phoneNumbers {
		if i > 0 {
			if err := s.pacer.Wait(ctx); err != nil {
				s.logger.WarnContext(ctx, "bulk send cancelled",
					"processed", i, "remaining", len(phoneNumbers)-i)
				return result, err
			}
		}

		// Invalid numbers are recorded without touching the network.
		if !phone.IsValid(raw) {
			err := &domain.InvalidPhoneNumberError{Raw: raw}
			result.Failed = append(result.Failed, domain.BulkFailure{Phone: raw, Error: err.Error()})
			bulkRecipientsCounter.WithLabelValues("failed").Inc()
			continue
		}

		if _, err := s.Send(ctx, raw, templateName, vars, creds); err != nil {
			s.logger.WarnContext(ctx, "bulk send recipient failed",
				"position", i+1, "total", len(phoneNumbers), "to", raw, "error", err)
			result.Failed = append(result.Failed, domain.BulkFailure{Phone: raw, Error: err.Error()})
			bulkRecipientsCounter.WithLabelValues("failed").Inc()
			continue
		}

		formatted, _ := phone.Normalize(raw)
		result.Success = append(result.Success, formatted)
		bulkRecipientsCounter.WithLabelValues("success").Inc()
		s.logger.InfoContext(ctx, "bulk send recipient done",
			"position", i+1, "total", len(phoneNumbers), "to", formatted)
	}

	s.logger.InfoContext(ctx, "bulk send completed",
		"sent", result.TotalSent(), "failed", result.TotalFailed())
	return result, nil
}

// VerifyCredentials confirms that the credentials authenticate against the
// provider and that the claimed sending number is actually provisioned on
// that account. Both facts must hold: a valid auth token can belong to an
// account that does not own the claimed number.
//
// The contract is a yes/no gate, so every failure collapses to false; the
// underlying error is logged before being discarded.
func (s *Messenger) VerifyCredentials(ctx context.Context, creds domain.TenantCredentials) bool {
	client := s.clients.ForCredentials(creds)

	timer := prometheus.NewTimer(providerRequestDurationHist.WithLabelValues("verify"))
	defer timer.ObserveDuration()

	if _, err := client.FetchAccount(ctx); err != nil {
		s.logger.WarnContext(ctx, "credential verification failed at account check",
			"account_sid", creds.AccountSID, "error", err)
		credentialVerificationsCounter.WithLabelValues("rejected").Inc()
		return false
	}

	numbers, err := client.ListIncomingPhoneNumbers(ctx, creds.PhoneNumber)
	if err != nil {
		s.logger.WarnContext(ctx, "credential verification failed at number lookup",
			"account_sid", creds.AccountSID, "phone_number", creds.PhoneNumber, "error", err)
		credentialVerificationsCounter.WithLabelValues("rejected").Inc()
		return false
	}
	if len(numbers) == 0 {
		s.logger.WarnContext(ctx, "claimed number not provisioned on account",
			"account_sid", creds.AccountSID, "phone_number", creds.PhoneNumber)
		credentialVerificationsCounter.WithLabelValues("rejected").Inc()
		return false
	}

	credentialVerificationsCounter.WithLabelValues("verified").Inc()
	return true
}
