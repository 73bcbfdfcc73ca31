// Package domain contains the core model for showerthoughts.
//
// The domain is transport- and persistence-agnostic: it does not depend on
// JSON decoding, the filesystem, or the CLI. Infra/adapters map into/from
// these types.
package domain
