package gin

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/faqcrawl"
	"github.com/gin-gonic/gin"
)

// defaultResultLimit caps GET /results when no limit is given.
const defaultResultLimit = 20

// handleScrape runs one crawl. The result is saved when a ResultService is
// configured; a failed save is logged and does not fail the request.
// Unlike other routes, a crawl failure returns its description with the 500.
func (s *Server) handleScrape(c *gin.Context) {
	var req faqcrawl.CrawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.Error(c, faqcrawl.Errorf(faqcrawl.EINVALID, "invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		s.Error(c, err)
		return
	}
	req.Normalize()

	result, err := s.CrawlService.Crawl(c.Request.Context(), req)
	if err != nil {
		// An unexpected crawl failure is reported with its description.
		if faqcrawl.ErrorCode(err) == faqcrawl.EINTERNAL {
			s.Logger.Error("crawl failed", "url", req.URL, "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		s.Error(c, err)
		return
	}

	if s.ResultService != nil {
		saved, err := s.ResultService.SaveResult(c.Request.Context(), result)
		if err != nil {
			s.Logger.Error("save result", "website", result.Website, "err", err)
		} else {
			c.Header("X-Result-ID", saved.ID)
		}
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleResultList(c *gin.Context) {
	if !s.requireResults(c) {
		return
	}

	filter := faqcrawl.ResultFilter{Limit: defaultResultLimit}
	if website := c.Query("website"); website != "" {
		website = faqcrawl.NormalizeWebsite(website)
		filter.Website = &website
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.Error(c, faqcrawl.Errorf(faqcrawl.EINVALID, "limit must be a positive integer"))
			return
		}
		filter.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.Error(c, faqcrawl.Errorf(faqcrawl.EINVALID, "offset must be a non-negative integer"))
			return
		}
		filter.Offset = n
	}

	results, err := s.ResultService.FindResults(c.Request.Context(), filter)
	if err != nil {
		s.Error(c, err)
		return
	}
	if results == nil {
		results = []*faqcrawl.SavedResult{}
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (s *Server) handleResultView(c *gin.Context) {
	if !s.requireResults(c) {
		return
	}

	saved, err := s.ResultService.FindResultByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

func (s *Server) handleResultDelete(c *gin.Context) {
	if !s.requireResults(c) {
		return
	}

	if err := s.ResultService.DeleteResult(c.Request.Context(), c.Param("id")); err != nil {
		s.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) requireResults(c *gin.Context) bool {
	if s.ResultService == nil {
		s.Error(c, faqcrawl.Errorf(faqcrawl.EUNAVAILABLE, "result storage is not enabled"))
		return false
	}
	return true
}
