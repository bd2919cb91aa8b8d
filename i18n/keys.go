// Package i18n resolves translation keys to locale specific strings and
// picks the supported locale closest to what a visitor asked for.
package i18n

// Key identifies a translated message.
type Key string

const (
	AppName Key = "App.name"

	HomeTitle Key = "HomePage.title"
	HomeIntro Key = "HomePage.intro"

	LoginTitle Key = "Login.title"

	NotFoundTitle       Key = "NotFoundPage.title"
	NotFoundHeading     Key = "NotFoundPage.heading"
	NotFoundDescription Key = "NotFoundPage.description"
	NotFoundHome        Key = "NotFoundPage.home"
)

// Translator resolves a key for a locale.
type Translator interface {
	T(locale string, key Key) string
}
