package internal

import "github.com/rios0rios0/repo2txt/internal/domain/entities"

// AppInternal holds the controllers exposed as subcommands.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns every registered controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
