package template

import (
	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
)

// Registry is the static catalog of approved WhatsApp templates. It is
// populated once at process start and never mutated by send operations.
// Approval itself happens manually on the provider side; this catalog mirrors
// what has already been approved.
type Registry struct {
	templates []domain.Template
	byName    map[string]*domain.Template
}

// NewRegistry builds a registry over the given templates. With no arguments
// it loads the approved catalog.
func NewRegistry(templates ...domain.Template) *Registry {
	if len(templates) == 0 {
		templates = approvedTemplates()
	}
	r := &Registry{
		templates: templates,
		byName:    make(map[string]*domain.Template, len(templates)),
	}
	for i := range r.templates {
		r.byName[r.templates[i].Name] = &r.templates[i]
	}
	return r
}

// Get returns the named template, or a TemplateNotFoundError carrying the
// full list of registered names.
func (r *Registry) Get(name string) (*domain.Template, error) {
	tpl, ok := r.byName[name]
	if !ok {
		return nil, &domain.TemplateNotFoundError{Name: name, Available: r.Names()}
	}
	return tpl, nil
}

// Names lists the registered template names in catalog order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for i := range r.templates {
		names = append(names, r.templates[i].Name)
	}
	return names
}

// All returns the full catalog.
func (r *Registry) All() []domain.Template {
	out := make([]domain.Template, len(r.templates))
	copy(out, r.templates)
	return out
}

func approvedTemplates() []domain.Template {
	return []domain.Template{
		{
			ID:       "1",
			Name:     "welcome_series",
			Category: domain.CategoryMarketing,
			Language: "en",
			Body: "🎉 Welcome to AaraConnect!\n\nStart growing your business with professional WhatsApp messaging:\n" +
				"✅ Send bulk campaigns\n✅ Set up AI chatbots\n✅ Track analytics\n\n" +
				"Ready to get started? Visit your dashboard: {{1}}\n\nReply STOP to opt out anytime.",
			Variables: []string{"dashboard_url"},
		},
		{
			ID:       "2",
			Name:     "feature_announcement",
			Category: domain.CategoryMarketing,
			Language: "en",
			Body: "📢 New Feature Alert!\n\nAaraConnect now supports {{1}}!\n\nThis helps you:\n" +
				"• {{2}}\n• {{3}}\n• Improve customer engagement\n\n" +
				"Check it out in your dashboard today.\n\nQuestions? Reply to this message.",
			Variables: []string{"feature_name", "benefit_1", "benefit_2"},
		},
		{
			ID:       "3",
			Name:     "marketing_tips",
			Category: domain.CategoryMarketing,
			Language: "en",
			Body: "💡 WhatsApp Marketing Tip #{{1}}\n\n{{2}}\n\n" +
				"This strategy helped our clients increase response rates by {{3}}%.\n\n" +
				"Want to learn more tips? Visit: {{4}}\n\nReply TIPS for more marketing insights.",
			Variables: []string{"tip_number", "tip_content", "percentage", "learn_more_url"},
		},
		{
			ID:       "4",
			Name:     "success_story",
			Category: domain.CategoryMarketing,
			Language: "en",
			Body: "🌟 Success Story\n\n\"{{1}}\" - {{2}}, {{3}}\n\nSee how AaraConnect helped them achieve:\n" +
				"• {{4}} more customer responses\n• {{5}} time savings\n• Better customer satisfaction\n\n" +
				"Ready for similar results? Let's chat!",
			Variables: []string{"testimonial", "customer_name", "company_name", "response_increase", "time_savings"},
		},
		{
			ID:       "5",
			Name:     "limited_offer",
			Category: domain.CategoryMarketing,
			Language: "en",
			Body: "⏰ Limited Time: {{1}} Days Left\n\nGet {{2}}% off your AaraConnect upgrade!\n\n" +
				"✅ Unlock advanced features\n✅ Send more messages\n✅ Priority support\n\n" +
				"Use code: {{3}}\nExpires: {{4}}\n\nUpgrade now: {{5}}",
			Variables: []string{"days_left", "discount_percentage", "promo_code", "expiry_date", "upgrade_url"},
		},
	}
}
