package progress

import (
	"testing"

	"github.com/verba-en/backend/internal/models"
)

func TestBadgesFor(t *testing.T) {
	tests := []struct {
		completed int
		want      []models.Badge
	}{
		{0, nil},
		{1, []models.Badge{models.BadgeBeginner}},
		{4, []models.Badge{models.BadgeBeginner}},
		{5, []models.Badge{models.BadgeBeginner, models.BadgeIntermediate}},
		{11, []models.Badge{models.BadgeBeginner, models.BadgeIntermediate}},
		{12, []models.Badge{models.BadgeBeginner, models.BadgeIntermediate, models.BadgeAdvanced}},
		{19, []models.Badge{models.BadgeBeginner, models.BadgeIntermediate, models.BadgeAdvanced}},
		{20, []models.Badge{models.BadgeBeginner, models.BadgeIntermediate, models.BadgeAdvanced, models.BadgeExpert}},
	}

	for _, tt := range tests {
		got := BadgesFor(tt.completed)
		if len(got) != len(tt.want) {
			t.Errorf("BadgesFor(%d) = %v, want %v", tt.completed, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("BadgesFor(%d)[%d] = %q, want %q", tt.completed, i, got[i], tt.want[i])
			}
		}
	}
}
