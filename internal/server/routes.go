package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Root - service banner
	s.echo.GET("/", s.handleRoot)

	// Realtime event stream
	s.echo.GET("/ws", s.handleWebSocket)

	// Stream management. The mix of /api/v1/admin and /api/admin prefixes is
	// the contract the admin frontend already speaks.
	s.echo.GET("/api/v1/admin/streams", s.handleListStreams)
	s.echo.POST("/api/v1/admin/streams", s.handleAddStream)
	s.echo.PUT("/api/admin/streams/:streamId", s.handleUpdateStream)
	s.echo.DELETE("/api/admin/streams/:streamId", s.handleDeleteStream)
	s.echo.POST("/api/admin/streams/:streamId/toggle", s.handleToggleStream)
	s.echo.GET("/api/v1/admin/streams/:streamId/debate", s.handleGetStreamDebate)
	s.echo.PUT("/api/v1/admin/streams/:streamId/debate", s.handleSetStreamDebate)
	s.echo.DELETE("/api/v1/admin/streams/:streamId/debate", s.handleRemoveStreamDebate)

	// Live control
	s.echo.POST("/api/v1/admin/live/start", s.handleStartLive)
	s.echo.POST("/api/v1/admin/live/stop", s.handleStopLive)
	s.echo.POST("/api/v1/admin/live/update-votes", s.handleUpdateVotes)
	s.echo.POST("/api/v1/admin/live/reset-votes", s.handleResetVotes)
	s.echo.GET("/api/v1/admin/live/viewers", s.handleGetViewers)
	s.echo.POST("/api/v1/admin/live/broadcast-viewers", s.handleBroadcastViewers)

	// AI control and content
	s.echo.POST("/api/v1/admin/ai/start", s.handleStartAI)
	s.echo.POST("/api/v1/admin/ai/stop", s.handleStopAI)
	s.echo.POST("/api/v1/admin/ai/toggle", s.handleToggleAI)
	s.echo.GET("/api/v1/admin/ai-content/list", s.handleListAIContent)
	s.echo.POST("/api/v1/admin/ai-content", s.handleCreateAIContent)
	s.echo.GET("/api/v1/admin/ai-content/:contentId/comments", s.handleAIContentComments)
	s.echo.DELETE("/api/v1/admin/ai-content/:contentId/comments/:commentId", s.handleDeleteAIComment)
	s.echo.DELETE("/api/admin/ai/content/:contentId", s.handleDeleteAIContent)

	// Debates
	s.echo.GET("/api/v1/admin/debates", s.handleListDebates)
	s.echo.POST("/api/v1/admin/debates", s.handleCreateDebate)
	s.echo.GET("/api/v1/admin/debates/:debateId", s.handleGetDebate)
	s.echo.PUT("/api/v1/admin/debates/:debateId", s.handleUpdateDebate)

	// Debate flow
	s.echo.GET("/api/admin/debate-flow", s.handleGetDebateFlow)
	s.echo.POST("/api/admin/debate-flow", s.handleSaveDebateFlow)
	s.echo.POST("/api/admin/debate-flow/control", s.handleDebateFlowControl)

	// Dashboard and statistics
	s.echo.GET("/api/v1/admin/dashboard", s.handleDashboard)
	s.echo.GET("/api/admin/miniprogram/users", s.handleListUsers)
	s.echo.GET("/api/admin/votes/statistics", s.handleVoteStatistics)
	s.echo.GET("/api/v1/admin/votes/statistics", s.handleVoteStatisticsFiltered)

	// Viewer-facing endpoints
	s.echo.POST("/api/v1/user-vote", s.handleUserVote)
	s.echo.GET("/api/v1/votes", s.handleGetVotes)
	s.echo.GET("/api/v1/debate-topic", s.handleDebateTopic)
	s.echo.GET("/api/v1/ai-content", s.handlePublicAIContent)
	s.echo.GET("/api/users", s.handleListAPIUsers)
	s.echo.POST("/api/users", s.handleCreateAPIUser)
}
