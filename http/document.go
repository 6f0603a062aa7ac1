package http

import (
	"net/http"

	"github.com/dcsstech/kbportal"
	"github.com/gin-gonic/gin"
)

// handleListDocuments returns the ordered visible subset of the catalog
// for the session's category filter and the q query parameter. Passing
// a category parameter updates the session-scoped filter, mirroring a
// sidebar click.
func (s *Server) handleListDocuments(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		filter := kbportal.CategoryFilter(category)
		if !filter.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category filter"})
			return
		}
		s.mu.Lock()
		s.filter = filter
		s.mu.Unlock()
	}

	s.mu.Lock()
	filter := s.filter
	s.mu.Unlock()

	docs, err := s.catalog.ListDocuments(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	visible := kbportal.FilterDocuments(docs, filter, c.Query("q"))
	if visible == nil {
		visible = []*kbportal.Document{}
	}
	c.JSON(http.StatusOK, visible)
}

// handleFindDocument returns one document by ID.
func (s *Server) handleFindDocument(c *gin.Context) {
	doc, err := s.catalog.FindDocumentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// handleCreateDocument creates a document from an ADMIN session.
func (s *Server) handleCreateDocument(c *gin.Context) {
	var draft kbportal.DocumentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document payload"})
		return
	}

	doc, err := s.catalog.CreateDocument(c.Request.Context(), draft)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// handleUpdateDocument replaces a document's content fields.
func (s *Server) handleUpdateDocument(c *gin.Context) {
	var upd kbportal.DocumentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document payload"})
		return
	}

	doc, err := s.catalog.UpdateDocument(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// handleToggleFavorite flips a document's favorite flag.
func (s *Server) handleToggleFavorite(c *gin.Context) {
	doc, err := s.catalog.ToggleFavorite(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// handleMetadata returns the distinct manufacturers and tags across the
// catalog for sidebar and tag-cloud rendering.
func (s *Server) handleMetadata(c *gin.Context) {
	docs, err := s.catalog.ListDocuments(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"manufacturers": kbportal.Manufacturers(docs),
		"tags":          kbportal.Tags(docs),
	})
}
