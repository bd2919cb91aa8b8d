package ui

import (
	"firefly/i18n"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// HomePage is the landing view.
type HomePage struct {
	app.Compo
	shell
}

func (h *HomePage) OnPreRender(ctx app.Context) {
	h.enter(ctx, i18n.HomeTitle)
}

func (h *HomePage) OnNav(ctx app.Context) {
	h.enter(ctx, i18n.HomeTitle)
	h.Update()
}

func (h *HomePage) Render() app.UI {
	return app.Div().Class("container p-3 my-5").Body(
		app.H1().Text(h.t(i18n.AppName)),
		app.P().Class("lead").Text(h.t(i18n.HomeIntro)),
		app.A().Class("btn btn-outline-primary").Href("/login").Text(h.t(i18n.LoginTitle)),
	)
}
