package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings requires a config file path and is loaded by the controllers layer.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(DefaultBinaryExtensions)
}
