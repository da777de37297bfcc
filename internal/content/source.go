package content

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/verba-en/backend/internal/models"
)

// Source is a pure lookup from level id to its fixed ordered question
// sequence. Levels are authored as content/level-N.json; a level without a
// file falls back to the built-in sample set so absent content is never
// fatal.
type Source struct {
	dir string
}

func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

func (s *Source) QuestionsFor(levelID int) ([]models.Question, error) {
	if levelID < 1 || levelID > models.LevelCount {
		return nil, fmt.Errorf("level %d outside catalog", levelID)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("level-%d.json", levelID))
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return SampleQuestions(), nil
	}
	if err != nil {
		log.Printf("[content] cannot read %s, serving sample set: %v", path, err)
		return SampleQuestions(), nil
	}

	var questions []models.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for i, q := range questions {
		if err := validate(q); err != nil {
			return nil, fmt.Errorf("%s question %d: %w", path, i+1, err)
		}
	}
	return questions, nil
}

// validate checks only what scoring requires: a known type, a correct index
// within the option bounds for choice questions, and a non-empty accepted
// set for fill-blank.
func validate(q models.Question) error {
	if !models.ValidQuestionTypes[q.Type] {
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	if q.IsChoice() {
		if len(q.Options) == 0 {
			return fmt.Errorf("choice question without options")
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("correct index %d outside %d options", q.Correct, len(q.Options))
		}
		return nil
	}
	if len(q.Accepted) == 0 {
		return fmt.Errorf("fill-blank question without accepted answers")
	}
	return nil
}
