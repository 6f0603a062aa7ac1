package mock

import (
	"context"

	"github.com/dcsstech/kbportal"
)

var _ kbportal.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of kbportal.CatalogService.
type CatalogService struct {
	ListDocumentsFn    func(ctx context.Context) ([]*kbportal.Document, error)
	FindDocumentByIDFn func(ctx context.Context, id string) (*kbportal.Document, error)
	CreateDocumentFn   func(ctx context.Context, draft kbportal.DocumentDraft) (*kbportal.Document, error)
	UpdateDocumentFn   func(ctx context.Context, id string, upd kbportal.DocumentUpdate) (*kbportal.Document, error)
	ToggleFavoriteFn   func(ctx context.Context, id string) (*kbportal.Document, error)
}

func (s *CatalogService) ListDocuments(ctx context.Context) ([]*kbportal.Document, error) {
	return s.ListDocumentsFn(ctx)
}

func (s *CatalogService) FindDocumentByID(ctx context.Context, id string) (*kbportal.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *CatalogService) CreateDocument(ctx context.Context, draft kbportal.DocumentDraft) (*kbportal.Document, error) {
	return s.CreateDocumentFn(ctx, draft)
}

func (s *CatalogService) UpdateDocument(ctx context.Context, id string, upd kbportal.DocumentUpdate) (*kbportal.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *CatalogService) ToggleFavorite(ctx context.Context, id string) (*kbportal.Document, error) {
	return s.ToggleFavoriteFn(ctx, id)
}
