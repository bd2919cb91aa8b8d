package ui

import (
	"firefly/i18n"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// LoginPage is a static credential form. Nothing is submitted: the sign in
// button is a plain button without a handler.
type LoginPage struct {
	app.Compo
	shell
}

type loginField struct {
	ID          string
	Label       string
	Type        string
	Value       string
	Placeholder string
	ReadOnly    bool
}

var loginFields = []loginField{
	{
		ID:       "formPlaintextEmail",
		Label:    "Email",
		Type:     "text",
		Value:    "email@example.com",
		ReadOnly: true,
	},
	{
		ID:          "formPlaintextPassword",
		Label:       "Password",
		Type:        "password",
		Placeholder: "Password",
	},
}

const signInLabel = "Sign in"

func (p *LoginPage) OnPreRender(ctx app.Context) {
	p.enter(ctx, "")
}

func (p *LoginPage) OnNav(ctx app.Context) {
	p.enter(ctx, "")
	p.Update()
}

func (p *LoginPage) Render() app.UI {
	form := make([]app.UI, 0, len(loginFields)+1)
	for _, f := range loginFields {
		form = append(form, renderLoginField(f))
	}
	form = append(form, app.Button().Type("button").Class("btn btn-primary mb-4").Text(signInLabel))

	return app.Div().Class("container p-3 my-5 d-flex flex-column w-50").Body(
		app.H1().Text(p.t(i18n.LoginTitle)),
		app.Form().Body(form...),
	)
}

func renderLoginField(f loginField) app.UI {
	input := app.Input().
		ID(f.ID).
		Type(f.Type).
		ReadOnly(f.ReadOnly)
	if f.ReadOnly {
		input = input.Class("form-control-plaintext")
	} else {
		input = input.Class("form-control")
	}
	if f.Value != "" {
		input = input.Value(f.Value)
	}
	if f.Placeholder != "" {
		input = input.Placeholder(f.Placeholder)
	}

	return app.Div().Class("row mb-3").Body(
		app.Label().For(f.ID).Class("col-sm-2 col-form-label").Text(f.Label),
		app.Div().Class("col-sm-10").Body(input),
	)
}
