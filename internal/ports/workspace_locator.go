package ports

// WorkspaceLocator resolves workspace roots. FindRoot searches upward
// from a start directory; RootAt accepts only a directory that is itself
// a root.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
	RootAt(dir string) (string, error)
}
