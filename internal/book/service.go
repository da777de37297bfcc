package book

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/verba-en/backend/internal/models"
)

// Service holds the currently loaded book. A missing book is a normal state:
// the endpoints report "no book loaded" and the reader falls back to its
// sample content.
type Service struct {
	mu    sync.RWMutex
	title string
	pages []string
}

func NewService() *Service {
	return &Service{}
}

// LoadFromDir finds the first PDF in dir and loads it. The directory is
// created if it does not exist so a fresh deploy has somewhere to drop the
// book.
func (s *Service) LoadFromDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create books dir: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read books dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		text, err := ExtractText(path)
		if err != nil {
			return fmt.Errorf("process %s: %w", entry.Name(), err)
		}

		pages := Paginate(text, pageSize)

		s.mu.Lock()
		s.title = strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		s.pages = pages
		s.mu.Unlock()

		log.Printf("[book] loaded %q: %d pages", s.title, len(pages))
		return nil
	}

	log.Printf("[book] no PDF found in %s, reader will use sample content", dir)
	return nil
}

func (s *Service) Info() models.BookInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	title := s.title
	if title == "" {
		title = "Sample Book"
	}
	return models.BookInfo{
		Title:      title,
		TotalPages: len(s.pages),
		HasContent: len(s.pages) > 0,
	}
}

func (s *Service) Content() models.BookContent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.pages) == 0 {
		return models.BookContent{Success: false, Message: "No book loaded yet"}
	}
	return models.BookContent{
		Success:    true,
		Title:      s.title,
		Pages:      s.pages,
		TotalPages: len(s.pages),
	}
}
