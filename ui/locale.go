package ui

import (
	"net/url"

	"firefly/i18n"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

const (
	// LangParam selects a locale from the query string.
	LangParam = "lang"
	// DefaultLocaleEnv is handed to the browser through the app handler.
	DefaultLocaleEnv = "FIREFLY_DEFAULT_LOCALE"
)

var catalog = i18n.Default()

// ResolveLocale picks the active locale: the lang query parameter, then the
// browser language, then the configured default, then the base locale.
func ResolveLocale(u *url.URL) string {
	var candidates []string
	if u != nil {
		candidates = append(candidates, u.Query().Get(LangParam))
	}
	candidates = append(candidates, browserLanguage(), app.Getenv(DefaultLocaleEnv))

	if locale, ok := catalog.Match(candidates...); ok {
		return locale
	}
	return i18n.BaseLocale
}

func browserLanguage() string {
	if !app.IsClient {
		return ""
	}
	lang := app.Window().Get("navigator").Get("language")
	if !lang.Truthy() {
		return ""
	}
	return lang.String()
}
