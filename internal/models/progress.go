package models

import "time"

// LevelCount is the number of quiz levels. Levels are identified 1..LevelCount.
const LevelCount = 20

type Badge string

const (
	BadgeBeginner     Badge = "beginner"
	BadgeIntermediate Badge = "intermediate"
	BadgeAdvanced     Badge = "advanced"
	BadgeExpert       Badge = "expert"
)

// ProgressRecord is the whole persisted state for one learner. It is always
// written wholesale — derived fields (TotalScore, CurrentLevel, Badges) are
// recomputed on every mutation, never patched individually.
//
// JSON keys match the record the Mini App front-end consumes.
type ProgressRecord struct {
	TotalScore      int         `json:"totalScore"`
	CurrentLevel    int         `json:"currentLevel"`
	CompletedLevels []int       `json:"completedLevels"`
	LevelScores     map[int]int `json:"levelScores"`
	Badges          []Badge     `json:"badges"`
	LastUpdated     time.Time   `json:"lastUpdated"`
}

// DefaultProgress returns the record a learner starts with.
func DefaultProgress() *ProgressRecord {
	return &ProgressRecord{
		TotalScore:      0,
		CurrentLevel:    1,
		CompletedLevels: []int{},
		LevelScores:     map[int]int{},
		Badges:          []Badge{},
		LastUpdated:     time.Now().UTC(),
	}
}

// Completed reports whether the given level is in the completed set.
func (p *ProgressRecord) Completed(levelID int) bool {
	for _, id := range p.CompletedLevels {
		if id == levelID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge has been earned.
func (p *ProgressRecord) HasBadge(b Badge) bool {
	for _, earned := range p.Badges {
		if earned == b {
			return true
		}
	}
	return false
}

// CompletionResult is returned from recording a level completion. Persisted
// is false when the durable write failed — the record is still authoritative
// in memory, but the UI should warn that progress may not be saved.
type CompletionResult struct {
	Progress  *ProgressRecord `json:"progress"`
	Persisted bool            `json:"persisted"`
}

// ProgressResponse wraps a read of the progress record. Persisted is false
// when the record was served from an in-memory fallback because the durable
// store could not be read.
type ProgressResponse struct {
	Progress  *ProgressRecord `json:"progress"`
	Persisted bool            `json:"persisted"`
}

// LevelStatus merges a catalog entry with the learner's progress, for the
// level-selection screen.
type LevelStatus struct {
	Level     Level `json:"level"`
	Unlocked  bool  `json:"unlocked"`
	Completed bool  `json:"completed"`
	BestScore int   `json:"best_score"`
}
