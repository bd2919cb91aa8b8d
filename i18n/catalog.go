package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every lookup falls back to.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var defaultCatalog = mustLoadEmbedded()

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the translated strings of every supported locale.
type Catalog struct {
	locales  map[string]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
	printers *catalog.Builder
}

// Default returns the catalog built from the embedded locale files.
func Default() *Catalog {
	return defaultCatalog
}

// Load reads every locales/*.yaml file of fsys. The base locale must be
// present and each file's locale must match its file name.
func Load(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	c := &Catalog{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		if err := c.add(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := c.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) add(p string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if locale == "" {
		return fmt.Errorf("%s: locale is required", p)
	}
	if locale != fromPath {
		return fmt.Errorf("%s: locale %q must match file name %q", p, locale, fromPath)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("%s: invalid locale %q: %w", p, locale, err)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("%s: messages are required", p)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("%s: blank message key", p)
		}
		messages[key] = value
	}
	c.locales[locale] = messages
	return nil
}

// build prepares the language matcher and the x/text message catalog. The
// base locale is always the first tag so it wins when nothing matches.
func (c *Catalog) build() error {
	base := language.MustParse(BaseLocale)
	c.tags = []language.Tag{base}
	for _, locale := range c.Locales() {
		if locale == BaseLocale {
			continue
		}
		c.tags = append(c.tags, language.MustParse(locale))
	}
	c.matcher = language.NewMatcher(c.tags)

	c.printers = catalog.NewBuilder(catalog.Fallback(base))
	for _, tag := range c.tags {
		for key, value := range c.locales[tag.String()] {
			if err := c.printers.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %q: %w", tag, key, err)
			}
		}
	}
	return nil
}

// Locales returns the supported locale identifiers, sorted.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for locale := range c.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message looks key up in locale, then in the base locale.
func (c *Catalog) Message(locale string, key Key) (string, bool) {
	if messages, ok := c.locales[locale]; ok {
		if value, ok := messages[string(key)]; ok {
			return value, true
		}
	}
	value, ok := c.locales[BaseLocale][string(key)]
	return value, ok
}

// T resolves key for locale. An unknown key resolves to itself.
func (c *Catalog) T(locale string, key Key) string {
	if value, ok := c.Message(locale, key); ok {
		return value
	}
	return string(key)
}

// Sprintf formats the message stored under key with args, using the
// printer of locale.
func (c *Catalog) Sprintf(locale string, key Key, args ...any) string {
	if _, ok := c.Message(locale, key); !ok {
		return string(key)
	}
	tag, ok := c.tag(locale)
	if !ok {
		tag = c.tags[0]
	}
	return message.NewPrinter(tag, message.Catalog(c.printers)).Sprintf(string(key), args...)
}

// Match returns the supported locale closest to the first candidate that
// matches at all. Blank and unparsable candidates are skipped.
func (c *Catalog) Match(candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		tag, err := language.Parse(candidate)
		if err != nil {
			continue
		}
		_, index, confidence := c.matcher.Match(tag)
		if confidence == language.No {
			continue
		}
		return c.tags[index].String(), true
	}
	return "", false
}

func (c *Catalog) tag(locale string) (language.Tag, bool) {
	for _, tag := range c.tags {
		if tag.String() == locale {
			return tag, true
		}
	}
	return language.Tag{}, false
}

func mustLoadEmbedded() *Catalog {
	c, err := Load(embeddedLocales)
	if err != nil {
		panic(err)
	}
	return c
}
