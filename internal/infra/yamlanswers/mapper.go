package yamlanswers

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

func MapAnswers(path string, ya YAMLAnswers) (domain.AnswerBook, error) {
	book := make(domain.AnswerBook, len(ya.Answers))

	for key, parts := range ya.Answers {
		field := "answers." + key
		day, err := domain.ParseDay(key)
		if err != nil {
			return nil, invalidField(path, field, "not a day between 1 and 25")
		}
		if _, dup := book[day]; dup {
			return nil, invalidField(path, field, "day "+string(day)+" is listed twice")
		}

		pinned := map[domain.PartID]string{}
		for part, v := range map[domain.PartID]*string{
			domain.PartOne: parts.PartOne,
			domain.PartTwo: parts.PartTwo,
		} {
			if v == nil {
				continue
			}
			answer := strings.TrimSpace(*v)
			if answer == "" {
				return nil, invalidField(path, field+"."+partKey(part), "answer is empty")
			}
			pinned[part] = answer
		}
		book[day] = pinned
	}

	return book, nil
}

func partKey(p domain.PartID) string {
	if p == domain.PartOne {
		return "part_one"
	}
	return "part_two"
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlanswers.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  errors.Mark(errors.Newf("field %s: %s", field, msg), domain.ErrInvalidConfig),
	}
}
