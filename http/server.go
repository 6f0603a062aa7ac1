// Package http exposes the portal over HTTP using gin. It is the only
// untrusted entry point into the process: the access gate is enforced
// here, at the request boundary, before any mutation reaches the
// stores.
package http

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/dcsstech/kbportal"
	"github.com/dcsstech/kbportal/assistant"
	"github.com/gin-gonic/gin"
)

// Server is the portal HTTP server. It owns the single-slot
// authentication session: this deployment model serves one interactive
// user per process instance, so logging in replaces any prior session
// and no per-request token is issued.
type Server struct {
	catalog   kbportal.CatalogService
	accounts  kbportal.AccountService
	explainer kbportal.Explainer
	session   *assistant.Session
	logger    *slog.Logger
	router    *gin.Engine

	mu      sync.Mutex
	current *kbportal.Account
	filter  kbportal.CategoryFilter
}

// NewServer creates a Server wired to the given services.
func NewServer(
	catalog kbportal.CatalogService,
	accounts kbportal.AccountService,
	explainer kbportal.Explainer,
	session *assistant.Session,
	logger *slog.Logger,
) *Server {
	s := &Server{
		catalog:   catalog,
		accounts:  accounts,
		explainer: explainer,
		session:   session,
		logger:    logger,
		filter:    kbportal.FilterAll,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.POST("/login", s.handleLogin)

	authed := api.Group("", s.requireSession)
	authed.POST("/logout", s.requireOp(kbportal.OpLogout), s.handleLogout)
	authed.GET("/session", s.handleSession)

	authed.GET("/documents", s.requireOp(kbportal.OpListDocuments), s.handleListDocuments)
	authed.GET("/documents/:id", s.requireOp(kbportal.OpListDocuments), s.handleFindDocument)
	authed.POST("/documents", s.requireOp(kbportal.OpCreateDocument), s.handleCreateDocument)
	authed.PUT("/documents/:id", s.requireOp(kbportal.OpUpdateDocument), s.handleUpdateDocument)
	authed.POST("/documents/:id/favorite", s.requireOp(kbportal.OpToggleFavorite), s.handleToggleFavorite)
	authed.GET("/metadata", s.requireOp(kbportal.OpListDocuments), s.handleMetadata)

	authed.GET("/accounts", s.requireOp(kbportal.OpManageAccounts), s.handleListAccounts)
	authed.POST("/accounts", s.requireOp(kbportal.OpCreateAccount), s.handleCreateAccount)

	authed.GET("/assistant/messages", s.requireOp(kbportal.OpOpenAssistant), s.handleListTurns)
	authed.POST("/assistant/messages", s.requireOp(kbportal.OpOpenAssistant), s.handleSendMessage)
	authed.POST("/assistant/reset", s.requireOp(kbportal.OpOpenAssistant), s.handleResetAssistant)

	authed.GET("/explain/:term", s.requireOp(kbportal.OpExplainTerm), s.handleExplainTerm)

	s.router = router
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// currentAccount returns the active session's account, or nil.
func (s *Server) currentAccount() *kbportal.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// requireSession aborts with 401 when no user is logged in.
func (s *Server) requireSession(c *gin.Context) {
	if s.currentAccount() == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
	}
}

// requireOp consults the access gate for the active session's role
// before the handler runs. Nothing below this layer re-checks it.
func (s *Server) requireOp(op kbportal.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := s.currentAccount()
		if account == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		if !account.Role.Can(op) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		}
	}
}

// renderError writes an application error as JSON with a status code
// derived from its code.
func renderError(c *gin.Context, err error) {
	c.JSON(statusFromCode(kbportal.ErrorCode(err)), gin.H{"error": kbportal.ErrorMessage(err)})
}

func statusFromCode(code string) int {
	switch code {
	case kbportal.EINVALID:
		return http.StatusBadRequest
	case kbportal.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case kbportal.ENOTFOUND:
		return http.StatusNotFound
	case kbportal.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
