package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dcsstech/kbportal"
	"github.com/google/uuid"
)

// Ensure CatalogService implements kbportal.CatalogService at compile time.
var _ kbportal.CatalogService = (*CatalogService)(nil)

// CatalogService is an in-memory document catalog. It is safe for
// concurrent use by multiple goroutines. Documents are held in
// insertion order with the most recently created first.
type CatalogService struct {
	mu   sync.Mutex
	docs []*kbportal.Document

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// NewCatalogService creates a catalog seeded with the given documents.
// The seed slice is deep-copied.
func NewCatalogService(seed []*kbportal.Document) *CatalogService {
	docs := make([]*kbportal.Document, 0, len(seed))
	for _, d := range seed {
		docs = append(docs, d.Clone())
	}
	return &CatalogService{docs: docs, Now: time.Now}
}

// ListDocuments returns all documents in insertion order, most recently
// created first.
func (s *CatalogService) ListDocuments(ctx context.Context) ([]*kbportal.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*kbportal.Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, d.Clone())
	}
	return out, nil
}

// FindDocumentByID retrieves a document by ID.
func (s *CatalogService) FindDocumentByID(ctx context.Context, id string) (*kbportal.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.find(id)
	if doc == nil {
		return nil, kbportal.Errorf(kbportal.ENOTFOUND, "document not found")
	}
	return doc.Clone(), nil
}

// CreateDocument assigns a fresh unique ID, stamps today's date, clears
// the favorite flag, and prepends the document to the catalog.
func (s *CatalogService) CreateDocument(ctx context.Context, draft kbportal.DocumentDraft) (*kbportal.Document, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := &kbportal.Document{
		ID:           uuid.New().String(),
		Title:        draft.Title,
		Type:         draft.Type,
		Manufacturer: draft.Manufacturer,
		ModelSeries:  draft.ModelSeries,
		LastUpdated:  s.today(),
		BoxLink:      draft.BoxLink,
		IsFavorite:   false,
		Tags:         append([]string(nil), draft.Tags...),
		Description:  draft.Description,
	}
	s.docs = append([]*kbportal.Document{doc}, s.docs...)
	return doc.Clone(), nil
}

// UpdateDocument replaces all mutable fields on the document matching
// id and bumps LastUpdated to today. The ID is preserved.
func (s *CatalogService) UpdateDocument(ctx context.Context, id string, upd kbportal.DocumentUpdate) (*kbportal.Document, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.find(id)
	if doc == nil {
		return nil, kbportal.Errorf(kbportal.ENOTFOUND, "document not found")
	}

	doc.Title = upd.Title
	doc.Type = upd.Type
	doc.Manufacturer = upd.Manufacturer
	doc.ModelSeries = upd.ModelSeries
	doc.BoxLink = upd.BoxLink
	doc.Tags = append([]string(nil), upd.Tags...)
	doc.Description = upd.Description
	doc.LastUpdated = s.today()
	return doc.Clone(), nil
}

// ToggleFavorite flips the favorite flag in place. Favoriting is
// metadata, not content, so LastUpdated is left untouched.
func (s *CatalogService) ToggleFavorite(ctx context.Context, id string) (*kbportal.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.find(id)
	if doc == nil {
		return nil, kbportal.Errorf(kbportal.ENOTFOUND, "document not found")
	}

	doc.IsFavorite = !doc.IsFavorite
	return doc.Clone(), nil
}

// find returns the stored document with the given ID, or nil.
// Callers must hold s.mu.
func (s *CatalogService) find(id string) *kbportal.Document {
	for _, d := range s.docs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (s *CatalogService) today() string {
	return s.Now().Format(kbportal.DateFormat)
}
