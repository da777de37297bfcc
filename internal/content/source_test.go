package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verba-en/backend/internal/models"
)

func TestCatalog(t *testing.T) {
	levels := Catalog()

	if len(levels) != models.LevelCount {
		t.Fatalf("catalog has %d levels, want %d", len(levels), models.LevelCount)
	}
	for i, level := range levels {
		if level.ID != i+1 {
			t.Errorf("levels[%d].ID = %d, want %d", i, level.ID, i+1)
		}
		if level.MaxScore != 100 {
			t.Errorf("levels[%d].MaxScore = %d, want 100", i, level.MaxScore)
		}
	}
}

func TestQuestionsForFallsBackToSample(t *testing.T) {
	src := NewSource(t.TempDir())

	questions, err := src.QuestionsFor(1)
	if err != nil {
		t.Fatalf("QuestionsFor(1): %v", err)
	}
	if len(questions) != len(SampleQuestions()) {
		t.Errorf("got %d questions, want the %d sample questions", len(questions), len(SampleQuestions()))
	}
}

func TestQuestionsForReadsLevelFile(t *testing.T) {
	dir := t.TempDir()
	file := `[{"type":"multiple-choice","text":"Pick b.","options":["a","b"],"correct":1,"explanation":"b.","points":5}]`
	if err := os.WriteFile(filepath.Join(dir, "level-2.json"), []byte(file), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewSource(dir)
	questions, err := src.QuestionsFor(2)
	if err != nil {
		t.Fatalf("QuestionsFor(2): %v", err)
	}
	if len(questions) != 1 || questions[0].Points != 5 {
		t.Errorf("unexpected questions: %+v", questions)
	}
}

func TestQuestionsForRejectsMalformedDefinitions(t *testing.T) {
	dir := t.TempDir()

	bad := []string{
		`[{"type":"multiple-choice","text":"no options","correct":0,"points":5}]`,
		`[{"type":"multiple-choice","text":"bad index","options":["a","b"],"correct":2,"points":5}]`,
		`[{"type":"fill-blank","text":"no accepted","points":5}]`,
		`[{"type":"essay","text":"unknown type","points":5}]`,
	}

	src := NewSource(dir)
	for i, file := range bad {
		path := filepath.Join(dir, "level-3.json")
		if err := os.WriteFile(path, []byte(file), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := src.QuestionsFor(3); err == nil {
			t.Errorf("case %d: malformed definition accepted", i)
		}
	}
}

func TestQuestionsForOutOfRange(t *testing.T) {
	src := NewSource(t.TempDir())

	for _, id := range []int{0, -1, models.LevelCount + 1} {
		if _, err := src.QuestionsFor(id); err == nil {
			t.Errorf("QuestionsFor(%d) accepted an out-of-range level", id)
		}
	}
}

func TestSampleQuestionsAreValid(t *testing.T) {
	for i, q := range SampleQuestions() {
		if err := validate(q); err != nil {
			t.Errorf("sample question %d invalid: %v", i+1, err)
		}
	}
}
