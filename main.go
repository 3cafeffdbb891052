package main

import (
	"os"

	"github.com/gobuffalo/buffalo/servers"

	"github.com/silverleaf-labs/persons-api/actions"
	"github.com/silverleaf-labs/persons-api/domain"
)

// main is the starting point for your Buffalo application.
// You can feel free and add to this `main` method, change
// what it does, etc...
// All we ask is that, at some point, you make sure to
// call `app.Serve()`, unless you don't want to start your
// application that is. :)
func main() {
	app := actions.App()
	if err := app.Serve(servers.New()); err != nil {
		if err.Error() != "context canceled" {
			domain.ErrLogger.Printf(err.Error())
			os.Exit(1)
		}
		os.Exit(0)
	}
}

/*
# Notes about `main.go`

## SSL Support

We recommend placing your application behind a proxy, such as
Apache or Nginx and letting them do the SSL heavy lifting
for you. https://gobuffalo.io/en/docs/proxy

## Buffalo Build

When `buffalo build` is run to compile your binary, this `main`
function will be at the heart of that binary. It is expected
that your `main` function will start your application using
the `app.Serve()` method.

*/
