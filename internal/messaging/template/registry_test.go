package template

import (
	"errors"
	"testing"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()

	tpl, err := reg.Get("welcome_series")
	require.NoError(t, err)
	assert.Equal(t, "welcome_series", tpl.Name)
	assert.Equal(t, domain.CategoryMarketing, tpl.Category)
	assert.Equal(t, "en", tpl.Language)
	assert.NotEmpty(t, tpl.Body)
}

func TestRegistryGetUnknownListsAvailableNames(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("nonexistent_template")
	require.Error(t, err)

	var notFound *domain.TemplateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "nonexistent_template", notFound.Name)
	assert.Equal(t, reg.Names(), notFound.Available)
	assert.Contains(t, err.Error(), "nonexistent_template")
	assert.Contains(t, err.Error(), "welcome_series")
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	names := reg.Names()

	assert.Equal(t, []string{
		"welcome_series",
		"feature_announcement",
		"marketing_tips",
		"success_story",
		"limited_offer",
	}, names)
}

func TestRegistryWithCustomCatalog(t *testing.T) {
	reg := NewRegistry(domain.Template{
		Name:     "otp_code",
		Category: domain.CategoryAuthentication,
		Language: "en",
		Body:     "Your code is {{1}}.",
	})

	tpl, err := reg.Get("otp_code")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryAuthentication, tpl.Category)

	_, err = reg.Get("welcome_series")
	assert.Error(t, err)
}
