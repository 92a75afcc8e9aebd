package commands

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress is the visual counter shown while a directory is processed.
type Progress interface {
	Add(num int) error
	Finish() error
}

// ProgressFactory creates a Progress for a directory with total entries.
type ProgressFactory func(total int, description string) Progress

// NewProgressBarFactory returns a factory drawing transient progress bars
// on out. Bars are cleared once their directory is done.
func NewProgressBarFactory(out io.Writer) ProgressFactory {
	return func(total int, description string) Progress {
		return progressbar.NewOptions(total,
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWriter(out),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
}
