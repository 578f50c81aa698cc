package app

import (
	"net/url"
	"strings"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
)

const addressScheme = "whatsapp:"

// ParseInboundMessage normalizes a provider webhook payload (Twilio posts
// form-encoded fields) into an InboundMessage. The record is stamped with the
// current processing time; the payload carries no provider timestamp.
//
// This is a pure transformation: persistence and any business reaction to the
// inbound message are the caller's responsibility.
func (s *Messenger) ParseInboundMessage(payload url.Values) (*domain.InboundMessage, error) {
	if len(payload) == 0 {
		inboundMessagesCounter.WithLabelValues("invalid").Inc()
		return nil, &domain.InvalidWebhookPayloadError{Reason: "payload is empty"}
	}

	from := strings.TrimPrefix(payload.Get("From"), addressScheme)
	to := strings.TrimPrefix(payload.Get("To"), addressScheme)
	messageID := payload.Get("MessageSid")

	if from == "" || messageID == "" {
		inboundMessagesCounter.WithLabelValues("invalid").Inc()
		return nil, &domain.InvalidWebhookPayloadError{Reason: "missing sender or message identifier"}
	}

	msg := &domain.InboundMessage{
		From:      from,
		To:        to,
		Body:      payload.Get("Body"),
		MessageID: messageID,
		Timestamp: s.now(),
	}

	if mediaURL := payload.Get("MediaUrl0"); mediaURL != "" {
		msg.MediaURL = &mediaURL
	}
	if mediaType := payload.Get("MediaContentType0"); mediaType != "" {
		msg.MediaType = &mediaType
	}

	inboundMessagesCounter.WithLabelValues("ok").Inc()
	return msg, nil
}
