package kbportal

import "context"

// DateFormat is the calendar-date layout used for Document.LastUpdated.
// Documents carry a date, not a timestamp.
const DateFormat = "2006-01-02"

// EquipmentType classifies a document by the equipment it covers.
type EquipmentType string

// EquipmentType constants. LIBRARY covers tape libraries.
const (
	EquipmentServer  EquipmentType = "SERVER"
	EquipmentStorage EquipmentType = "STORAGE"
	EquipmentNetwork EquipmentType = "NETWORK"
	EquipmentLibrary EquipmentType = "LIBRARY"
	EquipmentGeneral EquipmentType = "GENERAL"
)

// Valid reports whether t is a known equipment type.
func (t EquipmentType) Valid() bool {
	switch t {
	case EquipmentServer, EquipmentStorage, EquipmentNetwork, EquipmentLibrary, EquipmentGeneral:
		return true
	}
	return false
}

// Document represents one maintenance procedure in the catalog.
// The ID is assigned by the store and immutable afterwards. LastUpdated
// is bumped on every content-mutating update and only then; toggling the
// favorite flag is metadata and leaves it untouched.
type Document struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Type         EquipmentType `json:"type"`
	Manufacturer string        `json:"manufacturer"`
	ModelSeries  string        `json:"modelSeries"`
	LastUpdated  string        `json:"lastUpdated"`
	BoxLink      string        `json:"boxLink"`
	IsFavorite   bool          `json:"isFavorite"`
	Tags         []string      `json:"tags"`
	Description  string        `json:"description,omitempty"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	other := *d
	other.Tags = append([]string(nil), d.Tags...)
	return &other
}

// DocumentDraft is a document payload missing the store-assigned fields
// (id, lastUpdated, favorite flag), supplied to CreateDocument.
type DocumentDraft struct {
	Title        string        `json:"title"`
	Type         EquipmentType `json:"type"`
	Manufacturer string        `json:"manufacturer"`
	ModelSeries  string        `json:"modelSeries"`
	BoxLink      string        `json:"boxLink"`
	Tags         []string      `json:"tags"`
	Description  string        `json:"description,omitempty"`
}

// Validate returns an error if the draft contains invalid fields.
func (d *DocumentDraft) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if !d.Type.Valid() {
		return Errorf(EINVALID, "unknown equipment type %q", d.Type)
	}
	return nil
}

// DocumentUpdate carries replacement values for all mutable fields of a
// document. Updates are whole-field replacements, not patches.
type DocumentUpdate struct {
	Title        string        `json:"title"`
	Type         EquipmentType `json:"type"`
	Manufacturer string        `json:"manufacturer"`
	ModelSeries  string        `json:"modelSeries"`
	BoxLink      string        `json:"boxLink"`
	Tags         []string      `json:"tags"`
	Description  string        `json:"description,omitempty"`
}

// Validate returns an error if the update contains invalid fields.
func (u *DocumentUpdate) Validate() error {
	if u.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if !u.Type.Valid() {
		return Errorf(EINVALID, "unknown equipment type %q", u.Type)
	}
	return nil
}

// CatalogService manages the authoritative set of maintenance documents.
type CatalogService interface {
	// ListDocuments returns all documents in insertion order, most
	// recently created first.
	ListDocuments(ctx context.Context) ([]*Document, error)

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// CreateDocument assigns a fresh ID, stamps today's date, clears the
	// favorite flag, and prepends the document to the catalog.
	CreateDocument(ctx context.Context, draft DocumentDraft) (*Document, error)

	// UpdateDocument replaces all mutable fields and bumps LastUpdated.
	// Returns ENOTFOUND if the document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// ToggleFavorite flips the favorite flag in place without touching
	// LastUpdated. Returns ENOTFOUND if the document does not exist.
	ToggleFavorite(ctx context.Context, id string) (*Document, error)
}

// Manufacturers returns the distinct manufacturers across docs in
// first-seen order.
func Manufacturers(docs []*Document) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range docs {
		if !seen[d.Manufacturer] {
			seen[d.Manufacturer] = true
			out = append(out, d.Manufacturer)
		}
	}
	return out
}

// Tags returns the distinct tags across docs in first-seen order.
func Tags(docs []*Document) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range docs {
		for _, tag := range d.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out
}
