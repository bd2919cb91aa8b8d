package ui

import "github.com/maxence-charriere/go-app/v9/pkg/app"

// Wildcard is the path of the route matching any path.
const Wildcard = "*"

// wildcardPattern is what go-app gets for Wildcard. go-app tries exact
// routes before regexp ones, so the table order is kept.
const wildcardPattern = "^/.*$"

// Route maps a path to the view rendered for it.
type Route struct {
	Path string
	Name string
	New  func() app.Composer
}

// Routes returns the route table, evaluated in order.
func Routes() []Route {
	return []Route{
		{Path: "/", Name: "home", New: func() app.Composer { return &HomePage{} }},
		{Path: "/login", Name: "login", New: func() app.Composer { return &LoginPage{} }},
		{Path: Wildcard, Name: "not-found", New: func() app.Composer { return &NotFoundPage{} }},
	}
}

// Register installs the route table into go-app. Both binaries call it so
// the server prerenders what the browser would render.
func Register() {
	for _, r := range Routes() {
		if r.Path == Wildcard {
			app.RouteWithRegexpFunc(wildcardPattern, r.New)
			continue
		}
		app.RouteFunc(r.Path, r.New)
	}
}
