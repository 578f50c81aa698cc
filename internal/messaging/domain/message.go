package domain

import "time"

// TenantCredentials are one customer's own Twilio credentials, read from the
// users table. A send operation must never proceed while Verified is false;
// that gate belongs to the route layer (see server/http).
type TenantCredentials struct {
	AccountSID  string
	AuthToken   string
	PhoneNumber string
	Verified    bool
}

// OutboundMessage is a single message to be delivered through the gateway.
type OutboundMessage struct {
	To       string
	Body     string
	MediaURL string // optional
}

// BulkFailure records one recipient's failure inside a bulk send.
type BulkFailure struct {
	Phone string `json:"phone"`
	Error string `json:"error"`
}

// BulkSendResult aggregates per-recipient outcomes of a bulk send. Entries in
// Success and Failed keep the relative order of the input list, and every
// input destination appears in exactly one of the two.
type BulkSendResult struct {
	Success []string      `json:"success"`
	Failed  []BulkFailure `json:"failed"`
}

// TotalSent returns the number of successful sends.
func (r *BulkSendResult) TotalSent() int { return len(r.Success) }

// TotalFailed returns the number of failed sends.
func (r *BulkSendResult) TotalFailed() int { return len(r.Failed) }

// InboundMessage is a provider webhook normalized into our own shape.
// Timestamp is wall clock at processing time; the provider payload carries no
// timestamp of its own.
type InboundMessage struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Body      string    `json:"body"`
	MessageID string    `json:"messageId"`
	Timestamp time.Time `json:"timestamp"`
	MediaURL  *string   `json:"mediaUrl"`
	MediaType *string   `json:"mediaType"`
}
