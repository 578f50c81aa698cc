package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesSentCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Name:      "messages_sent_total",
			Help:      "Total outbound WhatsApp messages, by template and outcome.",
		},
		[]string{"template", "status"}, // status: "success", "error"
	)

	bulkRecipientsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Name:      "bulk_recipients_total",
			Help:      "Total recipients processed by bulk sends, by outcome.",
		},
		[]string{"outcome"}, // "success", "failed"
	)

	providerRequestDurationHist = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "messaging",
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of gateway API calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"}, // "send", "verify"
	)

	credentialVerificationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Name:      "credential_verifications_total",
			Help:      "Total tenant credential verification attempts.",
		},
		[]string{"result"}, // "verified", "rejected"
	)

	inboundMessagesCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messaging",
			Name:      "inbound_messages_total",
			Help:      "Total inbound webhook messages processed.",
		},
		[]string{"status"}, // "ok", "invalid"
	)
)
