// Package api serves a parsed timetable over a read-only JSON API.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"horactl/pkg/timetable"
)

// Error is an HTTP status with a message for the client
type Error struct {
	Code    int
	Message string
}

// HandlerFunc returns either a JSON-serialisable result or an error
type HandlerFunc func(ctx *gin.Context) (any, *Error)

// ResolveEndpoint adapts a HandlerFunc to gin
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

// Server answers lookups against a schedule that never changes after start-up,
// so handlers read it without locking.
type Server struct {
	sched *timetable.Schedule
	now   func() time.Time
}

// NewServer creates a server for sched. now defaults to time.Now.
func NewServer(sched *timetable.Schedule, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{sched: sched, now: now}
}

// Router builds the gin engine with every route mounted under /api
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	g := r.Group("/api")
	g.GET("/entries", ResolveEndpoint(s.listEntries))
	g.GET("/rooms", ResolveEndpoint(s.listRooms))
	g.GET("/professors", ResolveEndpoint(s.listProfessors))
	g.GET("/professors/:name", ResolveEndpoint(s.getProfessor))
	g.GET("/professors/:name/now", ResolveEndpoint(s.getProfessorNow))
	g.GET("/search", ResolveEndpoint(s.search))
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}
