package domain

// TemplateCategory is the WhatsApp Business template category.
type TemplateCategory string

const (
	CategoryMarketing      TemplateCategory = "MARKETING"
	CategoryUtility        TemplateCategory = "UTILITY"
	CategoryAuthentication TemplateCategory = "AUTHENTICATION"
)

// Template is a pre-approved message body with positional {{n}} placeholders.
// Templates are immutable at runtime; the registry owns them.
//
// Variables lists human-readable names for the placeholders, in order. By
// convention its length equals the placeholder count, but a mismatch is a
// data-quality issue and not enforced; the renderer tolerates it.
type Template struct {
	ID        string           `json:"id,omitempty"`
	Name      string           `json:"name"`
	Category  TemplateCategory `json:"category"`
	Language  string           `json:"language"`
	Body      string           `json:"body"`
	Variables []string         `json:"variables,omitempty"`
}
