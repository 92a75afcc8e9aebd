package commands

import (
	"os"

	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Progress bars go to stderr so stdout stays clean for prompts and results
	if err := container.Provide(func() ProgressFactory {
		return NewProgressBarFactory(os.Stderr)
	}); err != nil {
		return err
	}

	// Register stage and command constructors
	if err := container.Provide(NewReadmeLocator); err != nil {
		return err
	}
	if err := container.Provide(NewTreeWalker); err != nil {
		return err
	}
	if err := container.Provide(NewContentExporter); err != nil {
		return err
	}
	if err := container.Provide(NewExportCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *ExportCommand) Export {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
