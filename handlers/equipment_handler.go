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

type EquipmentHandler struct {
	svc *services.EquipmentService
}

func NewEquipmentHandler(svc *services.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

// ListInStock is the student-facing catalog: available items with stock.
func (h *EquipmentHandler) ListInStock(c *gin.Context) {
	items, err := h.svc.ListInStock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *EquipmentHandler) List(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *EquipmentHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	item, err := h.svc.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *EquipmentHandler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Create godoc
// @Summary Register new equipment
// @Tags equipment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEquipmentDTO true "Equipment"
// @Success 201 {object} models.Equipment
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var input dto.CreateEquipmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.svc.Add(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *EquipmentHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	var input dto.UpdateEquipmentStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.UpdateStatus(id, input.Status); err != nil {
		if errors.Is(err, services.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Status updated"})
}

// UploadPhoto accepts a multipart image and stores it in object storage.
func (h *EquipmentHandler) UploadPhoto(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	object, err := h.svc.UploadPhoto(c.Request.Context(), id, file, fileHeader.Size, contentType)
	if err != nil {
		if errors.Is(err, services.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Photo uploaded", Data: object})
}

func (h *EquipmentHandler) PhotoURL(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid equipment id"})
		return
	}

	url, err := h.svc.PhotoURL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if url == "" {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "no photo on file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
