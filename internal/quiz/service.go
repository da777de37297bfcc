package quiz

import (
	"errors"
	"fmt"
	"sync"

	"github.com/verba-en/backend/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrLevelLocked     = errors.New("level is locked")
)

// ContentSource supplies the fixed question sequence for a level.
type ContentSource interface {
	QuestionsFor(levelID int) ([]models.Question, error)
}

// ProgressKeeper is the slice of the progress service the quiz engine needs:
// the unlock gate at session start and the single completion report on submit.
type ProgressKeeper interface {
	IsLevelUnlocked(learnerID int64, levelID int) (bool, error)
	RecordCompletion(learnerID int64, levelID, achievedScore int) (*models.CompletionResult, error)
}

// Service owns the in-memory registry of live sessions. Sessions are never
// persisted; abandoning one leaves no trace beyond its submit-time effect on
// the progress record.
type Service struct {
	content  ContentSource
	progress ProgressKeeper

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewService(content ContentSource, progress ProgressKeeper) *Service {
	return &Service{
		content:  content,
		progress: progress,
		sessions: make(map[string]*Session),
	}
}

// StartSession begins a level attempt. The level must exist and be unlocked
// for this learner.
func (s *Service) StartSession(learnerID int64, levelID int) (*Session, error) {
	unlocked, err := s.progress.IsLevelUnlocked(learnerID, levelID)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, ErrLevelLocked
	}

	questions, err := s.content.QuestionsFor(levelID)
	if err != nil {
		return nil, fmt.Errorf("load level %d questions: %w", levelID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("level %d has no questions", levelID)
	}

	session := newSession(learnerID, levelID, questions)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// Get returns the learner's session. Another learner's session id is treated
// as not found rather than forbidden.
func (s *Service) Get(learnerID int64, sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.LearnerID != learnerID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Submit grades the session and records the completion. The session is kept
// in the registry so repeated submits return the same result.
func (s *Service) Submit(learnerID int64, sessionID string) (*models.SubmitResponse, error) {
	session, err := s.Get(learnerID, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Submit(s.progress)
}
