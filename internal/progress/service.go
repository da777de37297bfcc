package progress

import (
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/verba-en/backend/internal/models"
)

// ErrUnknownLevel is returned for level ids outside [1, LevelCount]. The
// operation that saw it has not mutated any state.
var ErrUnknownLevel = errors.New("unknown level id")

// Persistence is the durable slot the service writes records to. *Store
// implements it; tests substitute an in-memory fake.
type Persistence interface {
	Load(learnerID int64) (*models.ProgressRecord, error)
	Save(learnerID int64, rec *models.ProgressRecord) error
	Delete(learnerID int64) error
}

// Service owns learner progress. The in-memory record is the source of truth
// for the session; persistence failures are logged and surfaced through the
// Persisted flag, never raised to the caller as an error.
type Service struct {
	store Persistence

	mu    sync.Mutex
	cache map[int64]*models.ProgressRecord
	dirty map[int64]bool // latest record not durably written
}

func NewService(store Persistence) *Service {
	return &Service{
		store: store,
		cache: make(map[int64]*models.ProgressRecord),
		dirty: make(map[int64]bool),
	}
}

// current returns the learner's record, loading it on first access. Never
// fails: a store read failure falls back to the default record, flagged
// non-durable. Caller must hold s.mu.
func (s *Service) current(learnerID int64) *models.ProgressRecord {
	if rec, ok := s.cache[learnerID]; ok {
		return rec
	}

	rec, err := s.store.Load(learnerID)
	if err != nil {
		log.Printf("[progress] load failed for learner %d, serving defaults: %v", learnerID, err)
		rec = models.DefaultProgress()
		s.dirty[learnerID] = true
	} else if rec == nil {
		rec = models.DefaultProgress()
	}
	normalize(rec)

	s.cache[learnerID] = rec
	return rec
}

// normalize repairs zero-value fields after JSON decoding so the rest of the
// service can assume non-nil maps and slices.
func normalize(rec *models.ProgressRecord) {
	if rec.CompletedLevels == nil {
		rec.CompletedLevels = []int{}
	}
	if rec.LevelScores == nil {
		rec.LevelScores = map[int]int{}
	}
	if rec.Badges == nil {
		rec.Badges = []models.Badge{}
	}
	if rec.CurrentLevel < 1 {
		rec.CurrentLevel = 1
	}
}

// GetProgress returns the current record, initializing defaults if none
// exists. The bool reports whether the record matches durable storage.
func (s *Service) GetProgress(learnerID int64) (*models.ProgressRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.current(learnerID)
	return clone(rec), !s.dirty[learnerID]
}

// IsLevelUnlocked reports whether the level is playable: level 1 always is,
// level k>1 iff level k-1 has been completed.
func (s *Service) IsLevelUnlocked(learnerID int64, levelID int) (bool, error) {
	if levelID < 1 || levelID > models.LevelCount {
		return false, ErrUnknownLevel
	}
	if levelID == 1 {
		return true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current(learnerID).Completed(levelID - 1), nil
}

// RecordCompletion applies one completed level attempt: the completion set
// grows idempotently, the level keeps its best score, and the derived fields
// are recomputed before the whole record is written in one atomic replace.
func (s *Service) RecordCompletion(learnerID int64, levelID, achievedScore int) (*models.CompletionResult, error) {
	if levelID < 1 || levelID > models.LevelCount {
		return nil, ErrUnknownLevel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := clone(s.current(learnerID))

	if !rec.Completed(levelID) {
		rec.CompletedLevels = append(rec.CompletedLevels, levelID)
		sort.Ints(rec.CompletedLevels)
	}

	// Best score wins, never decreases.
	if best := rec.LevelScores[levelID]; achievedScore > best {
		rec.LevelScores[levelID] = achievedScore
	} else if _, ok := rec.LevelScores[levelID]; !ok {
		rec.LevelScores[levelID] = max(achievedScore, 0)
	}

	s.recompute(rec)
	rec.LastUpdated = time.Now().UTC()

	persisted := true
	if err := s.store.Save(learnerID, rec); err != nil {
		log.Printf("[progress] save failed for learner %d, progress may not be saved: %v", learnerID, err)
		persisted = false
	}

	s.cache[learnerID] = rec
	s.dirty[learnerID] = !persisted

	return &models.CompletionResult{Progress: clone(rec), Persisted: persisted}, nil
}

// recompute rebuilds the derived fields from completedLevels and levelScores.
func (s *Service) recompute(rec *models.ProgressRecord) {
	total := 0
	for _, score := range rec.LevelScores {
		total += score
	}
	rec.TotalScore = total

	rec.CurrentLevel = len(rec.CompletedLevels) + 1
	if rec.CurrentLevel > models.LevelCount {
		rec.CurrentLevel = models.LevelCount
	}

	// Union newly qualified badges with what is already earned: a badge is
	// never removed once granted.
	for _, b := range BadgesFor(len(rec.CompletedLevels)) {
		if !rec.HasBadge(b) {
			rec.Badges = append(rec.Badges, b)
		}
	}
}

// Reset discards the record and reinitializes defaults. Irreversible; the
// confirmation step lives in the UI.
func (s *Service) Reset(learnerID int64) (*models.CompletionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	persisted := true
	if err := s.store.Delete(learnerID); err != nil {
		log.Printf("[progress] reset failed for learner %d: %v", learnerID, err)
		persisted = false
	}

	rec := models.DefaultProgress()
	s.cache[learnerID] = rec
	s.dirty[learnerID] = !persisted

	return &models.CompletionResult{Progress: clone(rec), Persisted: persisted}, nil
}

func clone(rec *models.ProgressRecord) *models.ProgressRecord {
	out := *rec
	out.CompletedLevels = append([]int{}, rec.CompletedLevels...)
	out.LevelScores = make(map[int]int, len(rec.LevelScores))
	for k, v := range rec.LevelScores {
		out.LevelScores[k] = v
	}
	out.Badges = append([]models.Badge{}, rec.Badges...)
	return &out
}
