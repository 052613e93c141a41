package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hwlab/portal-go/response"
	"github.com/hwlab/portal-go/services"
	"github.com/hwlab/portal-go/utils"
)

type StudentHandler struct {
	svc       *services.StudentService
	tickets   *services.TicketService
	borrowing *services.BorrowingService
	feedback  *services.FeedbackService
}

func NewStudentHandler(svc *services.StudentService, tickets *services.TicketService,
	borrowing *services.BorrowingService, feedback *services.FeedbackService) *StudentHandler {
	return &StudentHandler{svc: svc, tickets: tickets, borrowing: borrowing, feedback: feedback}
}

// Lookup godoc
// @Summary Look up a student for a phone request
// @Tags students
// @Security BearerAuth
// @Produce json
// @Param identifier query string true "Student number or email"
// @Success 200 {object} models.Student
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/students/lookup [get]
func (h *StudentHandler) Lookup(c *gin.Context) {
	identifier := c.Query("identifier")
	if identifier == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "identifier is required"})
		return
	}

	student, suggestions, err := h.svc.Lookup(identifier)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":       "student not found",
				"suggestions": suggestions,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, student)
}

// Home bundles what the student landing page needs in one round trip.
func (h *StudentHandler) Home(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	if _, err := h.borrowing.SweepOverdue(); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	stats, err := h.svc.Stats(claims.StudentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	tickets, err := h.tickets.ListByStudent(claims.StudentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	requests, err := h.borrowing.ListByStudent(claims.StudentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	pendingTickets, pendingRequests, err := h.feedback.PendingForStudent(claims.StudentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":      stats,
		"tickets":    tickets,
		"borrowings": requests,
		"pending_feedback": gin.H{
			"assistance": pendingTickets,
			"borrowing":  pendingRequests,
		},
	})
}
