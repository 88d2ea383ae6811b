package ports

import "github.com/jsfr/advent-of-code-2023/internal/domain"

// ArtifactStore persists run artifacts for later inspection.
type ArtifactStore interface {
	SaveRun(run domain.RunArtifact) (id string, err error)
}
