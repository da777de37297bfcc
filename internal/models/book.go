package models

// BookInfo mirrors the original /api/book-info payload.
type BookInfo struct {
	Title      string `json:"title"`
	TotalPages int    `json:"totalPages"`
	HasContent bool   `json:"hasContent"`
}

// BookContent mirrors the original /api/book-content payload.
type BookContent struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
	Title      string   `json:"title,omitempty"`
	Pages      []string `json:"pages,omitempty"`
	TotalPages int      `json:"totalPages,omitempty"`
}

// AssistKind selects the assistant task for a request.
type AssistKind string

const (
	AssistExplain   AssistKind = "explain"
	AssistTranslate AssistKind = "translate"
	AssistDefine    AssistKind = "define"
)

var ValidAssistKinds = map[AssistKind]bool{
	AssistExplain:   true,
	AssistTranslate: true,
	AssistDefine:    true,
}

type AssistRequest struct {
	Kind    AssistKind `json:"kind"`
	Text    string     `json:"text"`
	Context string     `json:"context,omitempty"`
}

type AssistResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}
