package quiz

import (
	"math"
	"strings"

	"github.com/verba-en/backend/internal/models"
)

// graded reports whether the answer earns the question's points. Choice types
// compare the selected index against the single correct index; fill-blank
// compares the trimmed, lowercased text against every accepted answer. No
// partial credit, no fuzzy matching.
func graded(q models.Question, a Answer) bool {
	if !a.Set {
		return false
	}

	if q.IsChoice() {
		return a.OptionIndex == q.Correct
	}

	text := strings.ToLower(strings.TrimSpace(a.Text))
	for _, accepted := range q.Accepted {
		if text == strings.ToLower(strings.TrimSpace(accepted)) {
			return true
		}
	}
	return false
}

// Percentage returns round(100 * score / maxScore). A zero maxScore scores 0.
func Percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(maxScore)))
}

// TierFor buckets a percentage for feedback messaging. Bounds are inclusive
// on the lower edge: [90,100] top, [75,90) high, [60,75) moderate, else low.
func TierFor(percentage int) models.ResultTier {
	switch {
	case percentage >= 90:
		return models.TierTop
	case percentage >= 75:
		return models.TierHigh
	case percentage >= 60:
		return models.TierModerate
	default:
		return models.TierLow
	}
}
