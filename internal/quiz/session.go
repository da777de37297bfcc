package quiz

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/verba-en/backend/internal/models"
)

var (
	// ErrInvalidTransition signals a caller bug: an advance or submit without
	// a required answer, a retreat at cursor 0, or any mutation after
	// submission. The session state is unchanged.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrInvalidAnswer signals an answer whose shape does not match the
	// question under the cursor (wrong kind, or option index out of bounds).
	ErrInvalidAnswer = errors.New("answer does not match question")
)

// Answer is one filled slot. OptionIndex is meaningful for choice questions,
// Text for fill-blank.
type Answer struct {
	Set         bool
	OptionIndex int
	Text        string
}

// entry pairs a question with its answer slot. Keeping the pair explicit
// means reordering or filtering questions can never misalign answers.
type entry struct {
	question models.Question
	answer   Answer
}

// Session is one level attempt. It is ephemeral: it lives in the registry for
// the duration of the attempt and its only lasting effect is the single
// RecordCompletion call made on submit.
type Session struct {
	ID        string
	LearnerID int64
	LevelID   int

	mu      sync.Mutex
	entries []entry
	cursor  int
	state   models.SessionState
	result  *models.SubmitResponse
}

// completionRecorder is the single side effect a session has on the world.
type completionRecorder interface {
	RecordCompletion(learnerID int64, levelID, achievedScore int) (*models.CompletionResult, error)
}

func newSession(learnerID int64, levelID int, questions []models.Question) *Session {
	entries := make([]entry, len(questions))
	for i, q := range questions {
		entries[i] = entry{question: q}
	}
	return &Session{
		ID:        uuid.NewString(),
		LearnerID: learnerID,
		LevelID:   levelID,
		entries:   entries,
		state:     models.StateAnswering,
	}
}

// SelectAnswer writes the answer slot for the question under the cursor. The
// cursor does not move; answering the same question again overwrites.
func (s *Session) SelectAnswer(req models.AnswerRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.StateAnswering {
		return ErrInvalidTransition
	}

	q := s.entries[s.cursor].question
	var a Answer
	switch {
	case q.IsChoice():
		if req.OptionIndex == nil {
			return ErrInvalidAnswer
		}
		if *req.OptionIndex < 0 || *req.OptionIndex >= len(q.Options) {
			return ErrInvalidAnswer
		}
		a = Answer{Set: true, OptionIndex: *req.OptionIndex}
	default: // fill-blank
		if req.Text == nil {
			return ErrInvalidAnswer
		}
		a = Answer{Set: true, Text: *req.Text}
	}

	s.entries[s.cursor].answer = a
	return nil
}

// Advance moves to the next question. The current question must be answered;
// a question can only be left forward once it holds an answer, which is what
// guarantees every slot is set by the time the last index is reachable.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.StateAnswering {
		return ErrInvalidTransition
	}
	if !s.entries[s.cursor].answer.Set || s.cursor >= len(s.entries)-1 {
		return ErrInvalidTransition
	}

	s.cursor++
	return nil
}

// Retreat moves to the previous question. The current question need not be
// answered.
func (s *Session) Retreat() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.StateAnswering {
		return ErrInvalidTransition
	}
	if s.cursor == 0 {
		return ErrInvalidTransition
	}

	s.cursor--
	return nil
}

// Submit grades the attempt and reports it to the progress store exactly
// once. Valid only on the last question with its answer set. A submit after
// submission is a no-op returning the already-computed result, so a level
// attempt can never be double-counted.
func (s *Session) Submit(recorder completionRecorder) (*models.SubmitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == models.StateSubmitted {
		return s.result, nil
	}
	if s.cursor != len(s.entries)-1 || !s.entries[s.cursor].answer.Set {
		return nil, ErrInvalidTransition
	}

	score, maxScore, correct := 0, 0, 0
	review := make([]models.QuestionReview, len(s.entries))
	for i, e := range s.entries {
		maxScore += e.question.Points
		awarded := 0
		ok := graded(e.question, e.answer)
		if ok {
			awarded = e.question.Points
			score += awarded
			correct++
		}
		review[i] = models.QuestionReview{Question: e.question, Correct: ok, Awarded: awarded}
	}

	pct := Percentage(score, maxScore)
	result := &models.SubmitResponse{
		Score:        score,
		MaxScore:     maxScore,
		Percentage:   pct,
		Tier:         TierFor(pct),
		CorrectCount: correct,
		Review:       review,
	}

	completion, err := recorder.RecordCompletion(s.LearnerID, s.LevelID, score)
	if err != nil {
		// Caller contract violation (unknown level); the session stays
		// answerable rather than swallowing the score.
		return nil, err
	}
	result.Progress = completion.Progress
	result.Persisted = completion.Persisted

	s.state = models.StateSubmitted
	s.result = result
	return result, nil
}

// Snapshot renders the client view of the attempt.
func (s *Session) Snapshot() models.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	answered := make([]bool, len(s.entries))
	for i, e := range s.entries {
		answered[i] = e.answer.Set
	}

	return models.SessionResponse{
		ID:            s.ID,
		LevelID:       s.LevelID,
		State:         s.state,
		Cursor:        s.cursor,
		QuestionCount: len(s.entries),
		Question:      s.entries[s.cursor].question.View(),
		Answered:      answered,
	}
}
