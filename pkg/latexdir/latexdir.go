// Package latexdir encapsulates all path knowledge for the ~/.latexify
// directory. It provides a Dir value object with accessors for the config
// file and the optional .env file.
package latexdir

import (
	"os"
	"path/filepath"
)

// Dir is a value object that resolves paths within a .latexify directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use Bootstrap to create the layout.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// DefaultRoot returns the per-user directory, ~/.latexify. It falls back to
// a relative .latexify when the home directory cannot be resolved.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".latexify"
	}

	return filepath.Join(home, ".latexify")
}

// Root returns the absolute path to the .latexify directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the settings file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// EnvPath returns the path to the optional .env file loaded at startup.
func (d Dir) EnvPath() string { return filepath.Join(d.root, ".env") }

// Exists reports whether the .latexify root directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}
