package ui

import (
	"strings"

	"firefly/i18n"
)

// Description is the meta description of every page.
const Description = "A Plex (+ Servarr, Ombi) monitoring service"

const titlePlaceholder = "%s"

// Head is the document metadata shared by every routed view.
type Head struct {
	TitleTemplate string
	DefaultTitle  string
	Lang          string
	Description   string
}

// HeadSetter is the part of app.Page that Head writes to.
type HeadSetter interface {
	SetTitle(string)
	SetLang(string)
	SetDescription(string)
}

func NewHead(tr i18n.Translator, locale string) Head {
	appTitle := tr.T(locale, i18n.AppName)
	return Head{
		TitleTemplate: titlePlaceholder + " - " + appTitle,
		DefaultTitle:  appTitle,
		Lang:          locale,
		Description:   Description,
	}
}

// Title applies the template to a page title. Without one the default
// title is used as is.
func (h Head) Title(page string) string {
	if page == "" {
		return h.DefaultTitle
	}
	return strings.Replace(h.TitleTemplate, titlePlaceholder, page, 1)
}

func (h Head) Apply(p HeadSetter, page string) {
	p.SetTitle(h.Title(page))
	p.SetLang(h.Lang)
	p.SetDescription(h.Description)
}
