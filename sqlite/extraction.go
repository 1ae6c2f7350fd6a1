package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ faqdoc.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements faqdoc.ExtractionService using SQLite.
// Each extraction row owns its FAQ items; items are stored in extraction
// order and reloaded in the same order.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// hashItems computes xxHash over the question/answer pairs and returns a
// hex string. Two extractions with identical items hash identically
// regardless of source URL or timing.
func hashItems(items []faqdoc.FAQItem) string {
	h := xxhash.New()
	for _, item := range items {
		h.WriteString(item.Question)
		h.WriteString("\x00")
		h.WriteString(item.Answer)
		h.WriteString("\x00")
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h.Sum64())
	return hex.EncodeToString(b)
}

// CreateExtraction persists an extraction and its items atomically.
// Returns ECONFLICT when the newest stored extraction for the same source
// URL already holds identical items, so re-crawls of unchanged pages don't
// accumulate copies.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *faqdoc.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}

	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()
	e.ContentHash = hashItems(e.Items)

	var lastHash string
	err := s.db.QueryRowContext(ctx, `
		SELECT content_hash FROM extractions
		WHERE source_url = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, e.SourceURL).Scan(&lastHash)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil && lastHash == e.ContentHash {
		return faqdoc.Errorf(faqdoc.ECONFLICT, "extraction unchanged for %s", e.SourceURL)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO extractions (id, source_url, title, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.ID, e.SourceURL, e.Title, e.ContentHash, e.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, item := range e.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO faq_items (extraction_id, position, question, answer, answer_html)
			VALUES (?, ?, ?, ?, ?)
		`, e.ID, i, item.Question, item.Answer, item.AnswerHTML)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindExtractionByID retrieves an extraction and its items by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*faqdoc.Extraction, error) {
	var e faqdoc.Extraction
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content_hash, created_at
		FROM extractions
		WHERE id = ?
	`, id).Scan(&e.ID, &e.SourceURL, &e.Title, &e.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, faqdoc.Errorf(faqdoc.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	if err := s.loadItems(ctx, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter faqdoc.ExtractionFilter) ([]*faqdoc.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, content_hash, created_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*faqdoc.Extraction
	for rows.Next() {
		var e faqdoc.Extraction
		var createdAt string

		if err := rows.Scan(&e.ID, &e.SourceURL, &e.Title, &e.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		extractions = append(extractions, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, e := range extractions {
		if err := s.loadItems(ctx, e); err != nil {
			return nil, err
		}
	}

	return extractions, nil
}

// DeleteExtraction permanently removes an extraction and its items.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return faqdoc.Errorf(faqdoc.ENOTFOUND, "extraction not found")
	}

	return nil
}

// loadItems populates e.Items in stored order.
func (s *ExtractionService) loadItems(ctx context.Context, e *faqdoc.Extraction) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question, answer, answer_html
		FROM faq_items
		WHERE extraction_id = ?
		ORDER BY position ASC
	`, e.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item faqdoc.FAQItem
		if err := rows.Scan(&item.Question, &item.Answer, &item.AnswerHTML); err != nil {
			return err
		}
		e.Items = append(e.Items, item)
	}

	return rows.Err()
}
