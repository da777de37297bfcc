package content

import (
	"fmt"

	"github.com/verba-en/backend/internal/models"
)

// Catalog returns the static level descriptors shown on the level-selection
// screen. Labels only; the progress invariants do not depend on them.
func Catalog() []models.Level {
	levels := make([]models.Level, models.LevelCount)
	for i := range levels {
		id := i + 1
		levels[i] = models.Level{
			ID:          id,
			Title:       fmt.Sprintf("Variant %d", id),
			Description: fmt.Sprintf("Complete variant %d of the EGE English exam", id),
			MaxScore:    100,
		}
	}
	return levels
}
