package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/skeeto/showerthoughts/internal/domain"
)

// Finder locates a workspace root by searching for showerthoughts.yaml
// upward from a start directory.
type Finder struct {
	ConfigFile string // defaults to "showerthoughts.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: "showerthoughts.yaml"}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// RootAt accepts dir as a workspace root only if the config file sits in
// that directory itself. No upward search, so a mistyped path cannot
// resolve to an ancestor's workspace.
func (f *Finder) RootAt(dir string) (string, error) {
	if dir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.rootat",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("dir is empty"),
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.rootat",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	abs = filepath.Clean(abs)
	if _, err := os.Stat(filepath.Join(abs, f.ConfigFile)); err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.rootat",
			Kind: domain.KindNotFound,
			Path: abs,
			Err:  domain.ErrNotFound,
		}
	}
	return abs, nil
}
