package models

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeReading        QuestionType = "reading"
	TypeFillBlank      QuestionType = "fill-blank"
)

var ValidQuestionTypes = map[QuestionType]bool{
	TypeMultipleChoice: true,
	TypeReading:        true,
	TypeFillBlank:      true,
}

// Passage is the reading text attached to reading-comprehension questions.
type Passage struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Question is a tagged variant over the three question types. Choice types
// (multiple-choice, reading) use Options and Correct; fill-blank uses
// Accepted, matched case-insensitively after trimming.
type Question struct {
	Type        QuestionType `json:"type"`
	Text        string       `json:"text"`
	Instruction string       `json:"instruction,omitempty"`
	Sentence    string       `json:"sentence,omitempty"`
	Passage     *Passage     `json:"passage,omitempty"`
	Options     []string     `json:"options,omitempty"`
	Correct     int          `json:"correct"`
	Accepted    []string     `json:"accepted,omitempty"`
	Explanation string       `json:"explanation"`
	Points      int          `json:"points"`
}

// IsChoice reports whether the question is answered by option index.
func (q Question) IsChoice() bool {
	return q.Type == TypeMultipleChoice || q.Type == TypeReading
}

// QuestionView is a Question with the answer key and explanation stripped,
// safe to send to the client during an attempt.
type QuestionView struct {
	Type        QuestionType `json:"type"`
	Text        string       `json:"text"`
	Instruction string       `json:"instruction,omitempty"`
	Sentence    string       `json:"sentence,omitempty"`
	Passage     *Passage     `json:"passage,omitempty"`
	Options     []string     `json:"options,omitempty"`
	Points      int          `json:"points"`
}

// View strips the answer key from a question.
func (q Question) View() QuestionView {
	return QuestionView{
		Type:        q.Type,
		Text:        q.Text,
		Instruction: q.Instruction,
		Sentence:    q.Sentence,
		Passage:     q.Passage,
		Options:     q.Options,
		Points:      q.Points,
	}
}

// Level is a static catalog descriptor. The progress invariants are
// independent of these labels.
type Level struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MaxScore    int    `json:"max_score"`
}
