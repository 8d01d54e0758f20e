package handlers

import (
	"net/http"

	"exam-platform-backend/internal/middleware"
	"exam-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	examService *services.ExamService
}

func NewExamHandler(examService *services.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

// GetQuestions godoc
// @Summary      Issue an exam question set
// @Description  Returns a randomized question set without answer keys, the time limit and a single-use attempt token
// @Tags         exam
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.ExamPaper
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/exam/questions [get]
func (h *ExamHandler) GetQuestions(c *gin.Context) {
	paper, err := h.examService.IssueExam(middleware.UserID(c))
	if err != nil {
		if statusFromError(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no questions available"})
			return
		}
		c.JSON(statusFromError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, paper)
}
