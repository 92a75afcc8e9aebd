package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repo2txt/internal"
	"github.com/rios0rios0/repo2txt/internal/infrastructure/controllers"
)

// appContext bundles what main needs out of the container.
type appContext struct {
	App             *internal.AppInternal
	LocalController *controllers.LocalController
}

func injectAppContext() appContext {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var ctx appContext
	if err := container.Invoke(func(ai *internal.AppInternal, lc *controllers.LocalController) {
		ctx = appContext{App: ai, LocalController: lc}
	}); err != nil {
		panic(err)
	}

	return ctx
}
