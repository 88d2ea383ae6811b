package ports

import "github.com/jsfr/advent-of-code-2023/internal/domain"

// AnswerLoader loads the pinned answers of a workspace.
type AnswerLoader interface {
	LoadAnswers() (domain.AnswerBook, error)
}
