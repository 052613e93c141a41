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

type BorrowingHandler struct {
	svc *services.BorrowingService
}

func NewBorrowingHandler(svc *services.BorrowingService) *BorrowingHandler {
	return &BorrowingHandler{svc: svc}
}

func borrowingErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotRequestOwner):
		return http.StatusForbidden
	case errors.Is(err, services.ErrCannotCancelRequest):
		return http.StatusConflict
	case errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrEquipmentUnavailable):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrPastDate):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrStockOverflow):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Create godoc
// @Summary Submit a borrowing request
// @Tags borrowings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBorrowingDTO true "Request"
// @Success 201 {object} models.BorrowingRequest
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /borrowings [post]
func (h *BorrowingHandler) Create(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.CreateBorrowingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.CreateRequest(claims.StudentID, input)
	if err != nil {
		c.JSON(borrowingErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, req)
}

func (h *BorrowingHandler) CreatePhone(c *gin.Context) {
	var input dto.PhoneBorrowingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.CreatePhoneRequest(input)
	if err != nil {
		c.JSON(borrowingErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, req)
}

func (h *BorrowingHandler) ListMine(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	reqs, err := h.svc.ListByStudent(claims.StudentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

func (h *BorrowingHandler) ListRecent(c *gin.Context) {
	reqs, err := h.svc.ListRecent(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

func (h *BorrowingHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	req, err := h.svc.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

// UpdateStatus godoc
// @Summary Move a borrowing request through its lifecycle
// @Tags borrowings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Request ID"
// @Param request body dto.UpdateBorrowingDTO true "Update"
// @Success 200 {object} models.BorrowingRequest
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /admin/borrowings/{id} [put]
func (h *BorrowingHandler) UpdateStatus(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	var input dto.UpdateBorrowingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.UpdateStatus(claims.AdminID, id, input)
	if err != nil {
		c.JSON(borrowingErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, req)
}

func (h *BorrowingHandler) Cancel(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	req, err := h.svc.CancelRequest(claims.StudentID, id)
	if err != nil {
		c.JSON(borrowingErrorStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, req)
}
