package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

func main() {
	// All navigation happens on the URL fragment, so a single root route
	// is enough; the Shell resolves "#/<page>" itself.
	app.Route("/", func() app.Composer { return &Shell{} })
	app.RunWhenOnBrowser()
}
