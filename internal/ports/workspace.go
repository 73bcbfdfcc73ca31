package ports

import "github.com/skeeto/showerthoughts/internal/domain"

// WorkspaceInitializer scaffolds a workspace on disk.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
