package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/resumatch/candidate-search/internal/api/metrics"
	"github.com/resumatch/candidate-search/internal/core/ports"
)

type SearchHandler struct {
	candidates ports.CandidateService
}

func NewSearchHandler(candidates ports.CandidateService) *SearchHandler {
	return &SearchHandler{candidates: candidates}
}

// Search ranks the collection against a free-text query. No match is a 200
// with an empty array.
//
// @Summary      Search candidates
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      searchRequest  true  "Search query"
// @Success      200   {array}   domain.SearchResult
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	start := time.Now()
	results, err := h.candidates.Search(c.Request().Context(), req.Query)
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return err
	}

	outcome := "hit"
	if len(results) == 0 {
		outcome = "empty"
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	metrics.SearchResults.Observe(float64(len(results)))

	return c.JSON(http.StatusOK, results)
}
