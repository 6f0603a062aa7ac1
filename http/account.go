package http

import (
	"net/http"

	"github.com/dcsstech/kbportal"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// handleLogin authenticates against the account store. Logging in
// replaces any prior session.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	account, err := s.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}

	s.mu.Lock()
	s.current = account
	s.mu.Unlock()

	s.logger.Info("login", "account", account.ID, "role", account.Role)
	c.JSON(http.StatusOK, account)
}

// handleLogout clears the session and resets the session-scoped
// category filter to its default.
func (s *Server) handleLogout(c *gin.Context) {
	s.mu.Lock()
	s.current = nil
	s.filter = kbportal.FilterAll
	s.mu.Unlock()

	c.Status(http.StatusNoContent)
}

// handleSession returns the active session's account and filter.
func (s *Server) handleSession(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"account": s.current, "filter": s.filter})
}

// handleListAccounts returns all accounts. Passwords never serialize.
func (s *Server) handleListAccounts(c *gin.Context) {
	accounts, err := s.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// handleCreateAccount creates a new account from an ADMIN session.
func (s *Server) handleCreateAccount(c *gin.Context) {
	var draft kbportal.AccountDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account payload"})
		return
	}

	account, err := s.accounts.CreateAccount(c.Request.Context(), draft)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}
