package progress

import (
	"errors"
	"testing"

	"github.com/verba-en/backend/internal/models"
)

// fakeStore is an in-memory Persistence with switchable failures.
type fakeStore struct {
	records  map[int64]*models.ProgressRecord
	failLoad bool
	failSave bool
	saves    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[int64]*models.ProgressRecord)}
}

func (f *fakeStore) Load(learnerID int64) (*models.ProgressRecord, error) {
	if f.failLoad {
		return nil, errors.New("store unavailable")
	}
	return f.records[learnerID], nil
}

func (f *fakeStore) Save(learnerID int64, rec *models.ProgressRecord) error {
	if f.failSave {
		return errors.New("store unavailable")
	}
	f.saves++
	f.records[learnerID] = rec
	return nil
}

func (f *fakeStore) Delete(learnerID int64) error {
	if f.failSave {
		return errors.New("store unavailable")
	}
	delete(f.records, learnerID)
	return nil
}

const learner = int64(1)

func TestGetProgressDefaults(t *testing.T) {
	svc := NewService(newFakeStore())

	rec, persisted := svc.GetProgress(learner)
	if !persisted {
		t.Error("expected a clean read to report persisted")
	}
	if rec.TotalScore != 0 || rec.CurrentLevel != 1 {
		t.Errorf("default record = total %d, level %d; want 0, 1", rec.TotalScore, rec.CurrentLevel)
	}
	if len(rec.CompletedLevels) != 0 || len(rec.LevelScores) != 0 || len(rec.Badges) != 0 {
		t.Errorf("default record not empty: %+v", rec)
	}
}

func TestTotalScoreAlwaysSumOfLevelScores(t *testing.T) {
	svc := NewService(newFakeStore())

	completions := []struct{ level, score int }{
		{1, 40}, {2, 55}, {1, 30}, {3, 70}, {2, 80}, {2, 10},
	}

	for _, c := range completions {
		result, err := svc.RecordCompletion(learner, c.level, c.score)
		if err != nil {
			t.Fatalf("RecordCompletion(%d, %d): %v", c.level, c.score, err)
		}

		sum := 0
		for _, s := range result.Progress.LevelScores {
			sum += s
		}
		if result.Progress.TotalScore != sum {
			t.Errorf("after (%d, %d): totalScore %d != sum %d", c.level, c.score, result.Progress.TotalScore, sum)
		}
	}
}

func TestRecordCompletionIdempotentOnCompletedSet(t *testing.T) {
	svc := NewService(newFakeStore())

	svc.RecordCompletion(learner, 1, 50)
	result, _ := svc.RecordCompletion(learner, 1, 50)

	if len(result.Progress.CompletedLevels) != 1 {
		t.Errorf("completedLevels = %v, want exactly [1]", result.Progress.CompletedLevels)
	}
}

func TestBestScoreWins(t *testing.T) {
	svc := NewService(newFakeStore())

	svc.RecordCompletion(learner, 1, 50)
	result, _ := svc.RecordCompletion(learner, 1, 30)

	if got := result.Progress.LevelScores[1]; got != 50 {
		t.Errorf("levelScores[1] = %d after lower re-completion, want 50", got)
	}

	result, _ = svc.RecordCompletion(learner, 1, 90)
	if got := result.Progress.LevelScores[1]; got != 90 {
		t.Errorf("levelScores[1] = %d after higher re-completion, want 90", got)
	}
}

func TestCurrentLevelFormula(t *testing.T) {
	svc := NewService(newFakeStore())

	for level := 1; level <= models.LevelCount; level++ {
		result, err := svc.RecordCompletion(learner, level, 10)
		if err != nil {
			t.Fatalf("RecordCompletion(%d): %v", level, err)
		}

		want := level + 1
		if want > models.LevelCount {
			want = models.LevelCount
		}
		if result.Progress.CurrentLevel != want {
			t.Errorf("after %d completions currentLevel = %d, want %d", level, result.Progress.CurrentLevel, want)
		}
	}
}

func TestIsLevelUnlocked(t *testing.T) {
	svc := NewService(newFakeStore())

	if unlocked, err := svc.IsLevelUnlocked(learner, 1); err != nil || !unlocked {
		t.Errorf("IsLevelUnlocked(1) = %v, %v; want true, nil", unlocked, err)
	}
	if unlocked, _ := svc.IsLevelUnlocked(learner, 2); unlocked {
		t.Error("level 2 unlocked without completing level 1")
	}

	svc.RecordCompletion(learner, 1, 40)

	if unlocked, _ := svc.IsLevelUnlocked(learner, 2); !unlocked {
		t.Error("level 2 locked after completing level 1")
	}
	if unlocked, _ := svc.IsLevelUnlocked(learner, 3); unlocked {
		t.Error("level 3 unlocked after completing only level 1")
	}
}

func TestUnknownLevelRejectedWithoutMutation(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	for _, level := range []int{0, -1, models.LevelCount + 1, 99} {
		if _, err := svc.RecordCompletion(learner, level, 10); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("RecordCompletion(%d) error = %v, want ErrUnknownLevel", level, err)
		}
		if _, err := svc.IsLevelUnlocked(learner, level); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("IsLevelUnlocked(%d) error = %v, want ErrUnknownLevel", level, err)
		}
	}

	if store.saves != 0 {
		t.Errorf("store saw %d writes from rejected calls, want 0", store.saves)
	}
	rec, _ := svc.GetProgress(learner)
	if len(rec.CompletedLevels) != 0 {
		t.Errorf("rejected calls mutated state: %v", rec.CompletedLevels)
	}
}

func TestBadgeThresholds(t *testing.T) {
	svc := NewService(newFakeStore())

	wantAt := map[int][]models.Badge{
		5:  {models.BadgeBeginner, models.BadgeIntermediate},
		12: {models.BadgeBeginner, models.BadgeIntermediate, models.BadgeAdvanced},
		20: {models.BadgeBeginner, models.BadgeIntermediate, models.BadgeAdvanced, models.BadgeExpert},
	}

	for level := 1; level <= models.LevelCount; level++ {
		result, _ := svc.RecordCompletion(learner, level, 10)

		if want, ok := wantAt[level]; ok {
			if len(result.Progress.Badges) != len(want) {
				t.Errorf("at %d completions badges = %v, want %v", level, result.Progress.Badges, want)
				continue
			}
			for i := range want {
				if result.Progress.Badges[i] != want[i] {
					t.Errorf("at %d completions badges[%d] = %q, want %q", level, i, result.Progress.Badges[i], want[i])
				}
			}
		}
	}
}

func TestBadgesNeverRemoved(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	// Seed a record with a badge beyond its completion count, as if earned
	// under an older threshold table.
	store.records[learner] = &models.ProgressRecord{
		CompletedLevels: []int{1},
		LevelScores:     map[int]int{1: 10},
		Badges:          []models.Badge{models.BadgeBeginner, models.BadgeExpert},
	}

	result, _ := svc.RecordCompletion(learner, 2, 10)
	if !result.Progress.HasBadge(models.BadgeExpert) {
		t.Error("previously earned badge was removed by a later completion")
	}
}

func TestSaveFailureSurfacedNotRaised(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	svc.RecordCompletion(learner, 1, 40)

	store.failSave = true
	result, err := svc.RecordCompletion(learner, 2, 60)
	if err != nil {
		t.Fatalf("save failure must not raise: %v", err)
	}
	if result.Persisted {
		t.Error("persisted = true on failed write")
	}

	// In-memory state moved forward regardless.
	if !result.Progress.Completed(2) {
		t.Error("in-memory record missing the completion after failed write")
	}
	rec, persisted := svc.GetProgress(learner)
	if persisted {
		t.Error("read after failed write should report non-durable state")
	}
	if rec.TotalScore != 100 {
		t.Errorf("in-memory totalScore = %d, want 100", rec.TotalScore)
	}

	// The previously persisted value is untouched.
	if stored := store.records[learner]; stored == nil || stored.Completed(2) {
		t.Error("durable slot changed despite failed write")
	}
}

func TestLoadFailureFallsBackToDefaults(t *testing.T) {
	store := newFakeStore()
	store.failLoad = true
	svc := NewService(store)

	rec, persisted := svc.GetProgress(learner)
	if persisted {
		t.Error("read from fallback record should report non-durable state")
	}
	if rec.CurrentLevel != 1 || len(rec.CompletedLevels) != 0 {
		t.Errorf("fallback record not default: %+v", rec)
	}
}

func TestReset(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	for level := 1; level <= 6; level++ {
		svc.RecordCompletion(learner, level, 50)
	}

	result, err := svc.Reset(learner)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !result.Persisted {
		t.Error("reset against a healthy store should persist")
	}
	if result.Progress.TotalScore != 0 || result.Progress.CurrentLevel != 1 ||
		len(result.Progress.CompletedLevels) != 0 || len(result.Progress.Badges) != 0 {
		t.Errorf("record after reset not default: %+v", result.Progress)
	}
	if store.records[learner] != nil {
		t.Error("durable slot still holds a record after reset")
	}
}
