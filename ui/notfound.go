package ui

import (
	"firefly/i18n"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// NotFoundPage is rendered for every path the route table does not name.
type NotFoundPage struct {
	app.Compo
	shell
	path string
}

func (p *NotFoundPage) OnPreRender(ctx app.Context) {
	p.enter(ctx, i18n.NotFoundTitle)
	p.path = currentPath(ctx)
}

func (p *NotFoundPage) OnNav(ctx app.Context) {
	p.enter(ctx, i18n.NotFoundTitle)
	p.path = currentPath(ctx)
	p.Update()
}

func (p *NotFoundPage) Render() app.UI {
	return app.Div().Class("container p-3 my-5 text-center").Body(
		app.H1().Class("display-1").Text("404"),
		app.H2().Text(p.t(i18n.NotFoundHeading)),
		app.If(p.path != "",
			app.P().Class("text-muted").Text(catalog.Sprintf(p.lang(), i18n.NotFoundDescription, p.path)),
		),
		app.A().Href("/").Text(p.t(i18n.NotFoundHome)),
	)
}

func currentPath(ctx app.Context) string {
	if u := ctx.Page().URL(); u != nil {
		return u.Path
	}
	return ""
}
