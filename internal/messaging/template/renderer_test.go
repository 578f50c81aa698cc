package template

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSubstitutesVariablesInOrder(t *testing.T) {
	tpl := &domain.Template{
		Name: "test",
		Body: "Hello {{1}}, your order {{2}} ships on {{3}}.",
	}

	result := Render(tpl, []string{"Asha", "#42", "Friday"})
	assert.Equal(t, "Hello Asha, your order #42 ships on Friday.", result.Body)
	assert.Empty(t, result.Unfilled)
}

func TestRenderReplacesRepeatedPlaceholders(t *testing.T) {
	tpl := &domain.Template{Body: "{{1}} and {{1}} again, then {{2}}."}

	result := Render(tpl, []string{"first", "second"})
	assert.Equal(t, "first and first again, then second.", result.Body)
	assert.Empty(t, result.Unfilled)
}

func TestRenderLeavesUnfilledPlaceholders(t *testing.T) {
	tpl := &domain.Template{Body: "Tip #{{1}}: {{2}} ({{3}}% better)"}

	result := Render(tpl, []string{"7"})
	assert.Equal(t, "Tip #7: {{2}} ({{3}}% better)", result.Body)
	assert.Equal(t, []string{"{{2}}", "{{3}}"}, result.Unfilled)
}

func TestRenderWithNoVariablesReportsEveryPlaceholder(t *testing.T) {
	placeholderCount := regexp.MustCompile(`\{\{\d+\}\}`)

	for _, tpl := range NewRegistry().All() {
		tpl := tpl
		t.Run(tpl.Name, func(t *testing.T) {
			result := Render(&tpl, nil)
			assert.Equal(t, tpl.Body, result.Body)
			assert.Len(t, result.Unfilled, len(placeholderCount.FindAllString(tpl.Body, -1)))
		})
	}
}

func TestRenderFullyFilledCatalogLeavesNothingUnfilled(t *testing.T) {
	for _, tpl := range NewRegistry().All() {
		tpl := tpl
		t.Run(tpl.Name, func(t *testing.T) {
			vars := make([]string, len(tpl.Variables))
			for i := range vars {
				vars[i] = fmt.Sprintf("value%d", i+1)
			}

			result := Render(&tpl, vars)
			require.Empty(t, result.Unfilled,
				"catalog template should declare one variable per placeholder")
		})
	}
}
