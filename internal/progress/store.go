package progress

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/verba-en/backend/internal/models"
)

// Store keeps one JSONB slot per learner. The record is always written
// wholesale — there is no partial-field persistence.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the stored record, or (nil, nil) when the learner has no
// record yet. Absence is not an error.
func (s *Store) Load(learnerID int64) (*models.ProgressRecord, error) {
	var raw []byte
	err := s.db.QueryRow(
		`SELECT record FROM progress_records WHERE learner_id = $1`,
		learnerID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var rec models.ProgressRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	return &rec, nil
}

// Save replaces the learner's slot with the given record in one write.
func (s *Store) Save(learnerID int64, rec *models.ProgressRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO progress_records (learner_id, record, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (learner_id) DO UPDATE SET record = $2, updated_at = NOW()`,
		learnerID, raw,
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Delete discards the learner's slot.
func (s *Store) Delete(learnerID int64) error {
	_, err := s.db.Exec(
		`DELETE FROM progress_records WHERE learner_id = $1`,
		learnerID,
	)
	if err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
