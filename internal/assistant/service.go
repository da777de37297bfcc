package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/verba-en/backend/internal/models"
)

const systemPrompt = "You are a patient English tutor inside a book-reading app for Russian-speaking " +
	"EGE students. Answer briefly and in simple English. When asked to translate, translate to Russian."

// Service turns assist requests into prompts and proxies them to the
// configured LLM client. Replies are not cached; a slow reply arriving after
// the learner moved on is acceptable.
type Service struct {
	llm   LLMClient
	model string
}

func NewService(llm LLMClient, model string) *Service {
	return &Service{llm: llm, model: model}
}

func (s *Service) Assist(ctx context.Context, req models.AssistRequest) (*models.AssistResponse, error) {
	reply, err := s.llm.Complete(ctx, systemPrompt, buildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("assistant request: %w", err)
	}
	return &models.AssistResponse{Reply: reply, Model: s.model}, nil
}

func buildPrompt(req models.AssistRequest) string {
	var b strings.Builder
	switch req.Kind {
	case models.AssistTranslate:
		b.WriteString("Translate this to Russian: ")
	case models.AssistDefine:
		b.WriteString("Define this word or phrase for a learner, with one example sentence: ")
	default:
		b.WriteString("Explain this in simple English: ")
	}
	b.WriteString(req.Text)

	if req.Context != "" {
		b.WriteString("\n\nIt appears in this passage:\n")
		b.WriteString(req.Context)
	}
	return b.String()
}
