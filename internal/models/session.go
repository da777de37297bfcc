package models

type SessionState string

const (
	StateAnswering SessionState = "answering"
	StateSubmitted SessionState = "submitted"
)

// ResultTier buckets a submitted attempt's percentage for feedback messaging.
type ResultTier string

const (
	TierTop      ResultTier = "top"      // [90, 100]
	TierHigh     ResultTier = "high"     // [75, 90)
	TierModerate ResultTier = "moderate" // [60, 75)
	TierLow      ResultTier = "low"      // [0, 60)
)

// AnswerRequest carries one answer for the question under the cursor.
// Exactly one of OptionIndex or Text must be set, matching the question type.
type AnswerRequest struct {
	OptionIndex *int    `json:"option_index,omitempty"`
	Text        *string `json:"text,omitempty"`
}

// SessionResponse is the client's view of an in-flight attempt: the current
// question with the answer key stripped, plus which slots are answered.
type SessionResponse struct {
	ID            string       `json:"id"`
	LevelID       int          `json:"level_id"`
	State         SessionState `json:"state"`
	Cursor        int          `json:"cursor"`
	QuestionCount int          `json:"question_count"`
	Question      QuestionView `json:"question"`
	Answered      []bool       `json:"answered"`
}

// QuestionReview is one graded question in the post-submission breakdown,
// with the full question (answer key and explanation included).
type QuestionReview struct {
	Question Question `json:"question"`
	Correct  bool     `json:"correct"`
	Awarded  int      `json:"awarded"`
}

type SubmitResponse struct {
	Score        int              `json:"score"`
	MaxScore     int              `json:"max_score"`
	Percentage   int              `json:"percentage"`
	Tier         ResultTier       `json:"tier"`
	CorrectCount int              `json:"correct_count"`
	Review       []QuestionReview `json:"review"`
	Progress     *ProgressRecord  `json:"progress"`
	Persisted    bool             `json:"persisted"`
}
