package ports

import "github.com/jsfr/advent-of-code-2023/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
