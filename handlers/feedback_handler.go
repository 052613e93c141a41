package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/response"
	"github.com/hwlab/portal-go/services"
	"github.com/hwlab/portal-go/utils"
)

type FeedbackHandler struct {
	svc *services.FeedbackService
}

func NewFeedbackHandler(svc *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

func feedbackErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrTicketNotFound),
		errors.Is(err, services.ErrRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotTicketOwner),
		errors.Is(err, services.ErrNotRequestOwner):
		return http.StatusForbidden
	case errors.Is(err, services.ErrFeedbackNotEligible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrDuplicateFeedback):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SubmitAssistance godoc
// @Summary Rate a resolved assistance ticket
// @Tags feedback
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AssistanceFeedbackDTO true "Feedback"
// @Success 201 {object} models.AssistanceFeedback
// @Failure 409 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /feedback/assistance [post]
func (h *FeedbackHandler) SubmitAssistance(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.AssistanceFeedbackDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	fb, err := h.svc.SubmitAssistance(claims.StudentID, input)
	if err != nil {
		c.JSON(feedbackErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, fb)
}

func (h *FeedbackHandler) SubmitBorrowing(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.BorrowingFeedbackDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	fb, err := h.svc.SubmitBorrowing(claims.StudentID, input)
	if err != nil {
		c.JSON(feedbackErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, fb)
}

func (h *FeedbackHandler) Pending(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	tickets, requests, err := h.svc.PendingForStudent(claims.StudentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assistance": tickets,
		"borrowing":  requests,
	})
}

// Browse serves the admin feedback page.
func (h *FeedbackHandler) Browse(c *gin.Context) {
	var filter dto.FeedbackFilterDTO
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	assistance, borrowing, err := h.svc.Browse(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assistance": assistance,
		"borrowing":  borrowing,
	})
}
