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

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Create godoc
// @Summary Add a staff account
// @Tags admins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminDTO true "Admin"
// @Success 201 {object} models.Admin
// @Failure 409 {object} response.ErrorResponse
// @Router /admin/admins [post]
func (h *AdminHandler) Create(c *gin.Context) {
	var input dto.CreateAdminDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	admin, err := h.svc.AddAdmin(input)
	if err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, admin)
}

func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, admins)
}

// UpdateProfile returns a fresh token alongside the updated row.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	admin, token, err := h.svc.UpdateProfile(claims.AdminID, input)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.SetCookie("token", token, 86400, "/", "", false, true)
	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Profile updated", Data: gin.H{
		"admin": admin,
		"token": token,
	}})
}

func (h *AdminHandler) ChangePassword(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input dto.ChangePasswordDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.ChangePassword(claims.AdminID, input); err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrAdminNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password changed"})
}
