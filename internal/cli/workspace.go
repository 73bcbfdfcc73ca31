package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/skeeto/showerthoughts/internal/domain"
	"github.com/skeeto/showerthoughts/internal/infra/workspacefinder"
	"github.com/skeeto/showerthoughts/internal/topk"
)

type wsContext struct {
	root string // "" when no workspace was found
	cfg  domain.Config
}

// loadWorkspace resolves the workspace for a command. An explicit -w
// names the workspace root itself — only that directory is checked, so a
// mistyped path fails instead of resolving to an ancestor's config.
// Without -w the search goes upward from the working directory, and a
// missing workspace just means defaults and no report saving.
func loadWorkspace(explicit string) (wsContext, error) {
	var root string
	var err error

	if explicit != "" {
		root, err = workspacefinder.NewFinder().RootAt(explicit)
		if err != nil {
			return wsContext{}, err
		}
	} else {
		wd, werr := os.Getwd()
		if werr != nil {
			wd = "."
		}
		root, err = workspacefinder.NewFinder().FindRoot(wd)
		if err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				return wsContext{cfg: domain.DefaultConfig()}, nil
			}
			return wsContext{}, err
		}
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return wsContext{}, err
	}
	return wsContext{root: root, cfg: cfg}, nil
}

// resolveRunOptions applies config defaults to unset flags and validates
// the combination.
func resolveRunOptions(cfg domain.Config, k int, strategy string, width int) (int, topk.Strategy, int, error) {
	if k == 0 {
		k = cfg.Defaults.K
	}
	if strategy == "" {
		strategy = cfg.Defaults.Strategy
	}
	if width == 0 {
		width = cfg.Defaults.Width
	}

	st, err := topk.ParseStrategy(strategy)
	if err != nil {
		return 0, "", 0, err
	}
	if k < 1 {
		return 0, "", 0, &domain.OpError{
			Op:   "cli.resolve_options",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("k must be >= 1, got %d: %w", k, domain.ErrInvalidConfig),
		}
	}
	if width < 1 {
		return 0, "", 0, &domain.OpError{
			Op:   "cli.resolve_options",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("width must be >= 1, got %d: %w", width, domain.ErrInvalidConfig),
		}
	}
	return k, st, width, nil
}

// openInput returns the record stream and a label for reports. "-" or an
// empty path means stdin.
func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &domain.OpError{
			Op:   "cli.open_input",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	return f, path, nil
}
