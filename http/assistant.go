package http

import (
	"net/http"

	"github.com/dcsstech/kbportal"
	"github.com/gin-gonic/gin"
)

type sendMessageRequest struct {
	Message string `json:"message"`
}

// handleListTurns returns the conversation transcript.
func (s *Server) handleListTurns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"turns": s.session.Turns(), "busy": s.session.Busy()})
}

// handleSendMessage submits one message to the assistant session.
// Empty messages and busy sessions are rejected outright. A boundary
// failure is not an HTTP error; the transcript simply comes back
// without an assistant turn and the user retries.
func (s *Server) handleSendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message payload"})
		return
	}

	if err := s.session.Send(c.Request.Context(), req.Message); err != nil {
		switch kbportal.ErrorCode(err) {
		case kbportal.EINVALID, kbportal.ECONFLICT:
			renderError(c, err)
			return
		}
		// Boundary failure: already logged by the session.
	}

	c.JSON(http.StatusOK, gin.H{"turns": s.session.Turns(), "busy": s.session.Busy()})
}

// handleResetAssistant starts a fresh conversation with the seeded
// greeting, as when the assistant panel is reopened.
func (s *Server) handleResetAssistant(c *gin.Context) {
	s.session.Reset()
	c.JSON(http.StatusOK, gin.H{"turns": s.session.Turns(), "busy": s.session.Busy()})
}

// handleExplainTerm resolves a technical term into a grounded
// explanation. Once the call settles the result is always renderable;
// boundary failures surface as the fixed fallback text, not as errors.
func (s *Server) handleExplainTerm(c *gin.Context) {
	result, err := s.explainer.Explain(c.Request.Context(), c.Param("term"))
	if err != nil {
		renderError(c, err)
		return
	}
	if result.Sources == nil {
		result.Sources = []kbportal.Source{}
	}
	c.JSON(http.StatusOK, result)
}
