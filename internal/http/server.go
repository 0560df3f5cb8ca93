// README: API gateway; registers HTTP routes and delegates to the supervisor.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Darkcom18/airlines-agent/internal/capability"
	"github.com/Darkcom18/airlines-agent/internal/http/middleware"
	"github.com/Darkcom18/airlines-agent/internal/modules/conversation"
	"github.com/Darkcom18/airlines-agent/internal/modules/supervisor"
)

type ServerDeps struct {
	Supervisor *supervisor.Service
	Registry   *capability.Registry
	Store      *conversation.Store
	APIKey     string
}

type Server struct {
	supervisor *supervisor.Service
	registry   *capability.Registry
	store      *conversation.Store
	apiKey     string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		supervisor: deps.Supervisor,
		registry:   deps.Registry,
		store:      deps.Store,
		apiKey:     deps.APIKey,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api/v1", middleware.APIKey(s.apiKey))
	api.POST("/chat", s.HandleChat)
	api.GET("/capabilities", s.HandleCapabilities)
	api.GET("/sessions/:id/history", s.HandleHistory)
	api.DELETE("/sessions/:id", s.HandleDeleteSession)

	return r
}
