// Package domain contains the core model shared by the solvers, the usecases
// and the CLI: day and part identifiers, run results, workspace configuration
// and the error vocabulary.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML
// parsing, net/http, or the filesystem. Infra/adapters map into/from these types.
package domain
