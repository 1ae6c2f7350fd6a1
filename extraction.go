package faqdoc

import (
	"context"
	"time"
)

// Extraction represents one stored extraction run for a page.
type Extraction struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Items       []FAQItem `json:"items"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Eligible reports whether the run qualifies for FAQPage structured data.
func (e *Extraction) Eligible() bool {
	return len(e.Items) >= MinSchemaItems
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "extraction source URL required")
	}
	for _, item := range e.Items {
		if !item.Valid() {
			return Errorf(EINVALID, "extraction item %q below minimum length", item.Question)
		}
	}
	return nil
}

// ExtractionService represents a service for managing stored extractions.
type ExtractionService interface {
	// CreateExtraction stores a new extraction run with its items.
	CreateExtraction(ctx context.Context, extraction *Extraction) error

	// FindExtractionByID retrieves an extraction and its items by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter,
	// newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction and its items.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
