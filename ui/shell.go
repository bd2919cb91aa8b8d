package ui

import (
	"firefly/i18n"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// shell is embedded by every routed view. It owns the active locale and
// writes the document head when the view is prerendered or navigated to.
type shell struct {
	locale string
}

// enter resolves the locale for the current URL and applies the head. An
// empty title leaves the default document title.
func (s *shell) enter(ctx app.Context, title i18n.Key) {
	page := ctx.Page()
	s.locale = ResolveLocale(page.URL())

	var pageTitle string
	if title != "" {
		pageTitle = s.t(title)
	}
	NewHead(catalog, s.locale).Apply(page, pageTitle)
}

func (s *shell) lang() string {
	if s.locale == "" {
		return i18n.BaseLocale
	}
	return s.locale
}

func (s *shell) t(key i18n.Key) string {
	return catalog.T(s.lang(), key)
}
