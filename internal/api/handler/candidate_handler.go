package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumatch/candidate-search/internal/api/metrics"
	"github.com/resumatch/candidate-search/internal/core/domain"
	"github.com/resumatch/candidate-search/internal/core/ports"
)

type CandidateHandler struct {
	candidates ports.CandidateService
}

func NewCandidateHandler(candidates ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

// Upload stores a resume with placeholder metadata.
//
// @Summary      Upload a resume
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file      formData  file    true   "PDF resume"
// @Param        category  formData  string  true   "Job category"
// @Param        summary   formData  string  false  "Summary; generated when empty"
// @Success      201  {object}  domain.CandidateRecord
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /upload [post]
func (h *CandidateHandler) Upload(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	in := ports.UploadInput{
		Category: c.FormValue("category"),
		Summary:  c.FormValue("summary"),
	}

	fh, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}
	if fh != nil {
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
		}
		defer f.Close()

		in.Filename = fh.Filename
		in.ContentType = fh.Header.Get(echo.HeaderContentType)
		in.Size = fh.Size
		in.Content = f
	}

	created, err := h.candidates.Upload(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.UploadsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.UploadsTotal.WithLabelValues("accepted").Inc()

	return c.JSON(http.StatusCreated, created)
}

// List returns every stored candidate in insertion order.
//
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CandidateRecord
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /upload/all [get]
func (h *CandidateHandler) List(c echo.Context) error {
	items, err := h.candidates.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.CandidateRecord{}
	}
	return c.JSON(http.StatusOK, items)
}

// Delete removes a candidate.
//
// @Summary      Delete a candidate
// @Tags         candidates
// @Security     BearerAuth
// @Param        id   path  string  true  "Candidate ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /upload/{id} [delete]
func (h *CandidateHandler) Delete(c echo.Context) error {
	if err := h.candidates.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
