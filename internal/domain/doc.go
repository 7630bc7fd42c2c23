// Package domain contains the core domain model for domgen.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// cobra, or the filesystem. Infra/adapters map into/from these types.
package domain
