package latexdir

import (
	"fmt"
	"os"

	"github.com/okaire/latexify/pkg/settings"
)

// Bootstrap creates the .latexify directory and writes the default settings
// file. It is safe to call multiple times: an existing config file is left
// untouched.
func Bootstrap(d Dir) error {
	if err := os.MkdirAll(d.Root(), 0o750); err != nil {
		return fmt.Errorf("latexdir: create root: %w", err)
	}

	if _, err := os.Stat(d.ConfigPath()); err == nil {
		return nil // already initialized
	}

	if err := settings.NewStore(d.ConfigPath()).Save(settings.Default()); err != nil {
		return fmt.Errorf("latexdir: write default config: %w", err)
	}

	return nil
}
