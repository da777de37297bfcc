package quiz

import (
	"testing"

	"github.com/verba-en/backend/internal/models"
)

func TestGradedFillBlank(t *testing.T) {
	q := models.Question{
		Type:     models.TypeFillBlank,
		Accepted: []string{"proceed", "continue", "go ahead"},
		Points:   10,
	}

	tests := []struct {
		text string
		want bool
	}{
		{" Proceed ", true}, // trim + case-insensitive
		{"CONTINUE", true},
		{"go ahead", true},
		{"proceeded", false}, // no fuzzy matching
		{"go  ahead", false}, // inner whitespace is significant
		{"", false},
	}

	for _, tt := range tests {
		got := graded(q, Answer{Set: true, Text: tt.text})
		if got != tt.want {
			t.Errorf("graded(fill-blank, %q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	if graded(q, Answer{}) {
		t.Error("unset answer must not be awarded")
	}
}

func TestGradedChoice(t *testing.T) {
	q := models.Question{
		Type:    models.TypeMultipleChoice,
		Options: []string{"go", "goes", "going", "gone"},
		Correct: 1,
		Points:  10,
	}

	if !graded(q, Answer{Set: true, OptionIndex: 1}) {
		t.Error("correct index not awarded")
	}
	if graded(q, Answer{Set: true, OptionIndex: 0}) {
		t.Error("wrong index awarded")
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, maxScore, want int
	}{
		{25, 25, 100},
		{15, 25, 60},
		{0, 25, 0},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := Percentage(tt.score, tt.maxScore); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.maxScore, got, tt.want)
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		pct  int
		want models.ResultTier
	}{
		{100, models.TierTop},
		{90, models.TierTop},
		{89, models.TierHigh},
		{75, models.TierHigh},
		{74, models.TierModerate},
		{60, models.TierModerate},
		{59, models.TierLow},
		{0, models.TierLow},
	}

	for _, tt := range tests {
		if got := TierFor(tt.pct); got != tt.want {
			t.Errorf("TierFor(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}
