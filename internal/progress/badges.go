package progress

import "github.com/verba-en/backend/internal/models"

// badgeThresholds maps completion counts to the badge unlocked at that count.
// Order matters: checked lowest first so BadgesFor returns badges in the
// order they were earned.
var badgeThresholds = []struct {
	Count int
	Badge models.Badge
}{
	{1, models.BadgeBeginner},
	{5, models.BadgeIntermediate},
	{12, models.BadgeAdvanced},
	{20, models.BadgeExpert},
}

// BadgesFor returns the badges earned at the given completion count. It is a
// pure function of the count; the service unions the result with already
// earned badges so a badge, once earned, is never removed.
func BadgesFor(completedCount int) []models.Badge {
	var earned []models.Badge
	for _, t := range badgeThresholds {
		if completedCount >= t.Count {
			earned = append(earned, t.Badge)
		}
	}
	return earned
}
