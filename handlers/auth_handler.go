package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/response"
	"github.com/hwlab/portal-go/services"
	"github.com/hwlab/portal-go/types"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// VerifyStudent godoc
// @Summary Verify a student by email and student number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentVerifyDTO true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /students/verify [post]
func (h *AuthHandler) VerifyStudent(c *gin.Context) {
	var input dto.StudentVerifyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	student, token, err := h.svc.VerifyStudent(input.Email, input.StudentID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Email and student ID do not match our records"})
		return
	}

	c.SetCookie("token", token, 86400, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		Kind:     string(types.KindStudent),
		FullName: student.FullName(),
		Email:    student.Email,
	})
}

// AdminLogin godoc
// @Summary Admin login with username or email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginDTO true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var input dto.AdminLoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	admin, token, err := h.svc.LoginAdmin(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	c.SetCookie("token", token, 86400, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		Kind:     string(types.KindAdmin),
		FullName: admin.FullName,
		Email:    admin.Email,
		Role:     string(admin.Role),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out"})
}
