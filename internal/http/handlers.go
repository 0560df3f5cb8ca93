// README: HTTP handlers for the chat endpoint and session management.
package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Domain    string `json:"domain"`
}

func (s *Server) HandleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	res, err := s.supervisor.Process(c.Request.Context(), req.Message, req.SessionID, req.UserID)
	if err != nil {
		log.Printf("chat processing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		SessionID: res.SessionID,
		Reply:     res.Reply,
		Domain:    string(res.Domain),
	})
}

type capabilityView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Examples []string `json:"examples,omitempty"`
}

func (s *Server) HandleCapabilities(c *gin.Context) {
	caps := s.registry.Available()
	out := make([]capabilityView, 0, len(caps))
	for _, cp := range caps {
		out = append(out, capabilityView{
			ID:       cp.ID,
			Name:     cp.Name,
			Status:   string(cp.Status),
			Examples: cp.Examples,
		})
	}
	c.JSON(http.StatusOK, gin.H{"capabilities": out})
}

func (s *Server) HandleHistory(c *gin.Context) {
	sessionID := c.Param("id")
	msgs, err := s.store.History(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("history lookup failed session=%s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "messages": msgs})
}

func (s *Server) HandleDeleteSession(c *gin.Context) {
	sessionID := c.Param("id")
	if err := s.store.Delete(c.Request.Context(), sessionID); err != nil {
		log.Printf("session delete failed session=%s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
