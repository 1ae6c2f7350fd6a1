package mock

import (
	"context"

	"github.com/Birds-of-Eden/faqdoc"
)

var _ faqdoc.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of faqdoc.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, extraction *faqdoc.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*faqdoc.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter faqdoc.ExtractionFilter) ([]*faqdoc.Extraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *faqdoc.Extraction) error {
	return s.CreateExtractionFn(ctx, extraction)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*faqdoc.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter faqdoc.ExtractionFilter) ([]*faqdoc.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
