package main

import (
	"fmt"

	faqgin "github.com/fwojciec/faqcrawl/gin"
	"github.com/gin-gonic/gin"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)

	s := faqgin.NewServer()
	s.Addr = c.Addr
	s.CrawlService = deps.Crawls
	s.ResultService = deps.Results
	s.Logger = deps.Logger

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stderr, "Listening on %s\n", s.URL())

	<-deps.Ctx.Done()

	fmt.Fprintln(deps.Stderr, "Shutting down")
	return s.Close()
}
