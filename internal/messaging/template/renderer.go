package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Navaneethan2112/SiteRevamp/internal/messaging/domain"
)

var placeholderPattern = regexp.MustCompile(`\{\{\d+\}\}`)

// RenderResult is a rendered template body plus any placeholders left
// unfilled after substitution.
type RenderResult struct {
	Body     string
	Unfilled []string
}

// Render substitutes positional variables into the template body: every
// occurrence of {{i}} (1-based) is replaced with vars[i-1]. Placeholders with
// no matching variable remain literally in the output and are reported in
// Unfilled. That is a warning, not an error: preview callers depend on
// rendering partially-filled templates, so the permissive contract stays.
func Render(tpl *domain.Template, vars []string) RenderResult {
	body := tpl.Body
	for i, v := range vars {
		placeholder := fmt.Sprintf("{{%d}}", i+1)
		body = strings.ReplaceAll(body, placeholder, v)
	}

	return RenderResult{
		Body:     body,
		Unfilled: placeholderPattern.FindAllString(body, -1),
	}
}
