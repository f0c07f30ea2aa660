package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
	"github.com/senior-care-guide/internal/middleware"
	"github.com/senior-care-guide/internal/validation"
)

// previewReasons is how many reasons the summary card shows.
const previewReasons = 3

type recommendationResponse struct {
	domain.Recommendation
	Preview []string `json:"preview"`
}

type evaluateRequest struct {
	domain.Assessment
	Language string `json:"lang,omitempty"`
}

type languageRequest struct {
	Language string `json:"language" binding:"required"`
}

type languageResponse struct {
	Language  i18n.Language   `json:"language"`
	Supported []i18n.Language `json:"supported"`
}

func newRecommendationResponse(rec domain.Recommendation) recommendationResponse {
	return recommendationResponse{Recommendation: rec, Preview: rec.Preview(previewReasons)}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   Version,
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"today":     s.session.Today(),
		"due_count": s.session.DueCount(),
	})
}

func (s *Server) handleGetAssessment(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Assessment())
}

func (s *Server) handlePutAssessment(c *gin.Context) {
	var a domain.Assessment
	if err := c.ShouldBindJSON(&a); err != nil {
		s.badRequest(c, err)
		return
	}

	if err := s.session.SetAssessment(c.Request.Context(), a); err != nil {
		s.respondError(c, http.StatusBadRequest, domain.ErrCodeValidation, "invalid assessment", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessment":     s.session.Assessment(),
		"recommendation": newRecommendationResponse(s.session.Recommendation()),
	})
}

func (s *Server) handleGetRecommendation(c *gin.Context) {
	code := c.Query("lang")
	if code == "" {
		c.JSON(http.StatusOK, newRecommendationResponse(s.session.Recommendation()))
		return
	}

	lang, err := i18n.ParseLanguage(code)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, domain.ErrCodeInvalidInput, "unsupported language", err.Error())
		return
	}
	c.JSON(http.StatusOK, newRecommendationResponse(s.session.RecommendationIn(lang)))
}

// handleEvaluate classifies the posted answers without touching the session.
func (s *Server) handleEvaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	code := req.Language
	if code == "" {
		code = c.Query("lang")
	}
	lang := s.session.Language()
	if code != "" {
		parsed, err := i18n.ParseLanguage(code)
		if err != nil {
			s.respondError(c, http.StatusBadRequest, domain.ErrCodeInvalidInput, "unsupported language", err.Error())
			return
		}
		lang = parsed
	}

	c.JSON(http.StatusOK, newRecommendationResponse(s.recommender.Recommend(req.Assessment, lang)))
}

func (s *Server) handleGetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, languageResponse{Language: s.session.Language(), Supported: i18n.Supported()})
}

func (s *Server) handlePutLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	lang, err := s.session.SetLanguage(c.Request.Context(), req.Language)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, domain.ErrCodeInvalidInput, "unsupported language", err.Error())
		return
	}

	c.JSON(http.StatusOK, languageResponse{Language: lang, Supported: i18n.Supported()})
}

func (s *Server) handleCatalog(c *gin.Context) {
	lang, err := i18n.ParseLanguage(c.Param("lang"))
	if err != nil {
		s.respondError(c, http.StatusNotFound, domain.ErrCodeNotFound, "unknown language", err.Error())
		return
	}

	catalog, err := i18n.Catalog(lang)
	if err != nil {
		s.respondError(c, http.StatusNotFound, domain.ErrCodeNotFound, "unknown language", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "messages": catalog})
}

func (s *Server) handleListWaitlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"today":    s.session.Today(),
		"items":    s.session.WaitlistView(),
		"dueCount": s.session.DueCount(),
	})
}

// handleAddWaitlistItem tracks a new application. An unset or non-positive
// followUpEveryDays becomes 14; other values are clamped to 3-60 rather than refused.
func (s *Server) handleAddWaitlistItem(c *gin.Context) {
	var draft domain.WaitlistDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		s.badRequest(c, err)
		return
	}

	item, ok := s.session.AddWaitlistItem(c.Request.Context(), draft)
	if !ok {
		s.respondError(c, http.StatusUnprocessableEntity, domain.ErrCodeRejected, domain.ErrBlankFacility.Error(), "")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleDueItems(c *gin.Context) {
	items := s.session.DueItems()
	c.JSON(http.StatusOK, gin.H{
		"today": s.session.Today(),
		"items": items,
		"count": len(items),
	})
}

func (s *Server) handleFollowUp(c *gin.Context) {
	item, ok := s.session.MarkFollowedUp(c.Request.Context(), c.Param("id"))
	if !ok {
		s.respondError(c, http.StatusNotFound, domain.ErrCodeNotFound, "waitlist item not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) handleRemoveWaitlistItem(c *gin.Context) {
	if !s.session.RemoveWaitlistItem(c.Request.Context(), c.Param("id")) {
		s.respondError(c, http.StatusNotFound, domain.ErrCodeNotFound, "waitlist item not found", c.Param("id"))
		return
	}
	c.Status(http.StatusNoContent)
}

// badRequest reports a binding failure, listing field errors when there are any.
func (s *Server) badRequest(c *gin.Context, err error) {
	formatted := validation.FormatError(err)

	var fieldErrs validation.Errors
	if errors.As(formatted, &fieldErrs) {
		apiErr := domain.NewAPIError(domain.ErrCodeValidation, "invalid request", fieldErrs.Error(), c.GetString(middleware.RequestIDKey))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"code":       apiErr.Code,
			"message":    apiErr.Message,
			"details":    apiErr.Details,
			"timestamp":  apiErr.Timestamp,
			"request_id": apiErr.RequestID,
			"fields":     fieldErrs,
		})
		return
	}

	s.respondError(c, http.StatusBadRequest, domain.ErrCodeInvalidInput, "malformed request body", strings.TrimSpace(err.Error()))
}

func (s *Server) respondError(c *gin.Context, status int, code, message, details string) {
	apiErr := domain.NewAPIError(code, message, details, c.GetString(middleware.RequestIDKey))
	c.AbortWithStatusJSON(status, apiErr)
}
