package domain

// Config represents the minimal showerthoughts configuration loaded from
// showerthoughts.yaml.
type Config struct {
	Defaults DefaultsConfig
	Fields   FieldMap
	Paths    PathsConfig
}

type DefaultsConfig struct {
	K        int
	Strategy string
	Width    int
}

// FieldMap locates the four required record fields inside a raw decoded
// object, as JSONPath expressions.
type FieldMap struct {
	Score   string
	Title   string
	Author  string
	Created string
}

type PathsConfig struct {
	RunsDir string
}

// WorkspaceSpec describes a workspace to initialize.
type WorkspaceSpec struct {
	Root string
}

// DefaultConfig provides sane defaults if showerthoughts.yaml is partially
// missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			K:        10000,
			Strategy: "heap",
			Width:    78,
		},
		Fields: DefaultFieldMap(),
		Paths: PathsConfig{
			RunsDir: "runs",
		},
	}
}

// DefaultFieldMap matches the reddit submission dump layout.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		Score:   "$.score",
		Title:   "$.title",
		Author:  "$.author",
		Created: "$.created_utc",
	}
}
