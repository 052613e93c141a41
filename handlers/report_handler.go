package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/response"
	"github.com/hwlab/portal-go/services"
)

const dashboardRecentLimit = 5

type ReportHandler struct {
	svc       *services.ReportService
	tickets   *services.TicketService
	borrowing *services.BorrowingService
}

func NewReportHandler(svc *services.ReportService, tickets *services.TicketService,
	borrowing *services.BorrowingService) *ReportHandler {
	return &ReportHandler{svc: svc, tickets: tickets, borrowing: borrowing}
}

func bindRange(c *gin.Context) (dto.ReportRangeDTO, bool) {
	var input dto.ReportRangeDTO
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return input, false
	}
	return input, true
}

func reportError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidDate) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
}

// Overview godoc
// @Summary Overview statistics for a date range
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.OverviewStats
// @Router /admin/reports/overview [get]
func (h *ReportHandler) Overview(c *gin.Context) {
	input, ok := bindRange(c)
	if !ok {
		return
	}

	stats, err := h.svc.Overview(input)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) Tickets(c *gin.Context) {
	input, ok := bindRange(c)
	if !ok {
		return
	}

	analytics, err := h.svc.Tickets(input)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *ReportHandler) Equipment(c *gin.Context) {
	input, ok := bindRange(c)
	if !ok {
		return
	}

	analytics, err := h.svc.Equipment(input)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *ReportHandler) Students(c *gin.Context) {
	input, ok := bindRange(c)
	if !ok {
		return
	}

	analytics, err := h.svc.Students(input)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *ReportHandler) Feedback(c *gin.Context) {
	input, ok := bindRange(c)
	if !ok {
		return
	}

	assistance, borrowing, err := h.svc.Feedback(input)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"assistance": assistance,
		"borrowing":  borrowing,
	})
}

// Dashboard serves the admin landing page in one round trip: counters
// plus the latest tickets and borrowing requests.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	counts, err := h.svc.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	recentTickets, err := h.tickets.ListRecent(dashboardRecentLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	recentBorrowings, err := h.borrowing.ListRecent(dashboardRecentLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":            counts,
		"recent_tickets":    recentTickets,
		"recent_borrowings": recentBorrowings,
	})
}
