// Package server is the HTTP surface for the UI layer. Handlers call store
// operations and render their results; they never touch the persisted blobs
// directly.
package server

import (
	"strconv"

	"newsverify/internal/metrics"
	"newsverify/internal/progress"
	"newsverify/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	store *store.Store
	prog  *progress.Tracker
}

func New(st *store.Store) *Server {
	return &Server{store: st, prog: progress.NewTracker(0)}
}

// Router builds the gin engine with all API routes.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(countRequests())

	r.GET("/", s.healthCheck)
	r.GET("/health", s.healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/news", s.listNews)
	api.POST("/news", s.addNews)
	api.DELETE("/news", s.removeAllNews)
	api.DELETE("/news/imported", s.clearImported)
	api.GET("/news/:id", s.getNews)
	api.GET("/news/:id/comments", s.getComments)
	api.POST("/news/:id/votes", s.addVote)
	api.POST("/news/:id/likes", s.addLike)
	api.DELETE("/news/:id/likes", s.removeLike)
	api.GET("/progress", s.getProgress)
	api.POST("/reset", s.resetMockData)
	return r
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "service": "newsverify"})
}

func (s *Server) getProgress(c *gin.Context) {
	active, value := s.prog.Snapshot()
	c.JSON(200, gin.H{"active": active, "value": value})
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "invalid news id"})
		return 0, false
	}
	return id, true
}
