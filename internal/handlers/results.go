package handlers

import (
	"net/http"

	"exam-platform-backend/internal/middleware"
	"exam-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultsHandler struct {
	scoringService *services.ScoringService
}

func NewResultsHandler(scoringService *services.ScoringService) *ResultsHandler {
	return &ResultsHandler{scoringService: scoringService}
}

type SubmitExamRequest struct {
	Answers      []services.SubmittedAnswer `json:"answers"`
	TimeSpent    int                        `json:"time_spent" binding:"min=0"`
	AttemptToken string                     `json:"attempt_token"`
}

// Submit godoc
// @Summary      Submit an exam for grading
// @Description  Grades the submitted answers against the answer key and stores the result. With an attempt token, retries return the originally stored result.
// @Tags         results
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitExamRequest true "Submitted answers"
// @Success      200 {object} services.ResultSummary
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/results/submit [post]
func (h *ResultsHandler) Submit(c *gin.Context) {
	var req SubmitExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := h.scoringService.Grade(middleware.UserID(c), req.AttemptToken, req.Answers, req.TimeSpent)
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetResult godoc
// @Summary      Fetch one graded result
// @Description  Full per-question breakdown with correct answers revealed. Owner-only; anything else is a 404.
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        resultId path string true "Result id"
// @Success      200 {object} services.ResultDetail
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/results/{resultId} [get]
func (h *ResultsHandler) GetResult(c *gin.Context) {
	detail, err := h.scoringService.Retrieve(c.Param("resultId"), middleware.UserID(c))
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListResults godoc
// @Summary      Exam history
// @Description  Result summaries for the current user, newest first, without per-question detail
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Result
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/results [get]
func (h *ResultsHandler) ListResults(c *gin.Context) {
	results, err := h.scoringService.ListForUser(middleware.UserID(c))
	if err != nil {
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
