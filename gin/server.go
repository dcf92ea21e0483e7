// Package gin exposes the crawl and result services over HTTP using the gin
// router.
package gin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/faqcrawl"
	"github.com/gin-gonic/gin"
)

// ShutdownTimeout bounds graceful shutdown in Close.
const ShutdownTimeout = 10 * time.Second

// Server serves the HTTP API.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine

	// Addr is the address to listen on, e.g. ":5000".
	Addr string

	// CrawlService runs crawls for POST /scrape. Required.
	CrawlService faqcrawl.CrawlService

	// ResultService persists results. When nil, results are not saved and the
	// /results endpoints report EUNAVAILABLE.
	ResultService faqcrawl.ResultService

	// Logger receives request and error logs. Defaults to discarding.
	Logger *slog.Logger
}

// NewServer returns a new instance of Server with its routes registered.
// The gin mode is left to the caller.
func NewServer() *Server {
	s := &Server{
		router: gin.New(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.Use(gin.Recovery(), s.logRequests)

	s.router.GET("/health", s.handleHealth)
	s.router.POST("/scrape", s.handleScrape)
	s.router.GET("/results", s.handleResultList)
	s.router.GET("/results/:id", s.handleResultView)
	s.router.DELETE("/results/:id", s.handleResultDelete)

	return s
}

// Handler returns the router, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open starts listening on Addr and serves requests in the background.
func (s *Server) Open() (err error) {
	if s.CrawlService == nil {
		return faqcrawl.Errorf(faqcrawl.EINVALID, "crawl service is required")
	}
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("serve", "err", err)
		}
	}()

	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) logRequests(c *gin.Context) {
	begin := time.Now()
	c.Next()
	s.Logger.Info("request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(begin),
	)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Error prints and logs an error, translating its code to an HTTP status.
func (s *Server) Error(c *gin.Context, err error) {
	code, message := faqcrawl.ErrorCode(err), faqcrawl.ErrorMessage(err)

	if code == faqcrawl.EINTERNAL {
		s.Logger.Error("http error", "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
	}

	c.AbortWithStatusJSON(ErrorStatusCode(code), gin.H{"error": message})
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	faqcrawl.ECONFLICT:    http.StatusConflict,
	faqcrawl.EINVALID:     http.StatusBadRequest,
	faqcrawl.ENOTFOUND:    http.StatusNotFound,
	faqcrawl.EUNAVAILABLE: http.StatusServiceUnavailable,
	faqcrawl.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}
