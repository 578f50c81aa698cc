package domain

import "time"

// User is one customer account of the SaaS product. Identity itself lives
// with the external provider (Auth0); this record carries the local profile,
// plan/usage tracking, and the tenant's own Twilio credentials.
//
// Twilio credentials are written unverified and only flipped to verified
// after a successful verification round trip. They are stored in the clear;
// encryption at rest is a known gap, not solved here.
type User struct {
	ID      string  `json:"id"`
	Auth0ID string  `json:"auth0Id"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Avatar  *string `json:"avatar"`
	Plan    string  `json:"plan"`

	TwilioAccountSID  *string `json:"twilioAccountSid"`
	TwilioAuthToken   *string `json:"-"` // never serialized
	TwilioPhoneNumber *string `json:"twilioPhoneNumber"`

	IsActive       bool `json:"isActive"`
	TwilioVerified bool `json:"twilioVerified"`

	MessagesUsed  int `json:"messagesUsed"`
	MessagesLimit int `json:"messagesLimit"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasTwilioCredentials reports whether all three credential fields are on file.
func (u *User) HasTwilioCredentials() bool {
	return u.TwilioAccountSID != nil && *u.TwilioAccountSID != "" &&
		u.TwilioAuthToken != nil && *u.TwilioAuthToken != "" &&
		u.TwilioPhoneNumber != nil && *u.TwilioPhoneNumber != ""
}

// Contact is a contact-form submission. Anonymous submissions carry the
// literal user id "anonymous".
type Contact struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Campaign is a bulk-messaging campaign shown on the dashboard.
type Campaign struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	MessagesSent int       `json:"messagesSent"`
	ResponseRate string    `json:"responseRate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DashboardTemplate is the persisted, per-user template record used for
// dashboard display and approval-status tracking. It is distinct from the
// in-process registry the renderer reads.
type DashboardTemplate struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardStats is the headline block on the dashboard home page.
type DashboardStats struct {
	MessagesSent   int    `json:"messagesSent"`
	ResponseRate   string `json:"responseRate"`
	ActiveContacts int    `json:"activeContacts"`
	ConversionRate string `json:"conversionRate"`
}
