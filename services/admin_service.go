package services

import (
	"errors"

	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/middleware"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminExists   = errors.New("username or email already taken")
	ErrAdminNotFound = errors.New("admin not found")
	ErrWrongPassword = errors.New("current password is incorrect")
)

type AdminService struct {
	Repos *repositories.Repos
}

func NewAdminService(repos *repositories.Repos) *AdminService {
	return &AdminService{Repos: repos}
}

func (s *AdminService) AddAdmin(input dto.CreateAdminDTO) (models.Admin, error) {
	exists, err := s.Repos.Admin.ExistsByUsernameOrEmail(input.Username, input.Email)
	if err != nil {
		return models.Admin{}, err
	}
	if exists {
		return models.Admin{}, ErrAdminExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, err
	}

	role := models.RoleLabTechnician
	if input.Role != "" {
		role = models.AdminRole(input.Role)
	}

	admin := models.Admin{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
		Role:     role,
	}

	if err := s.Repos.Admin.Create(&admin); err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

func (s *AdminService) List() ([]models.Admin, error) {
	return s.Repos.Admin.List()
}

// UpdateProfile saves the new name and email, then re-issues the token so
// the session snapshot matches the row straight away.
func (s *AdminService) UpdateProfile(adminID uint, input dto.UpdateProfileDTO) (models.Admin, string, error) {
	admin, err := s.Repos.Admin.GetByID(adminID)
	if err != nil {
		return models.Admin{}, "", ErrAdminNotFound
	}

	admin.FullName = input.FullName
	admin.Email = input.Email

	if err := s.Repos.Admin.Save(&admin); err != nil {
		return models.Admin{}, "", err
	}

	token, err := middleware.GenerateAdminToken(admin)
	if err != nil {
		return models.Admin{}, "", err
	}
	return admin, token, nil
}

func (s *AdminService) ChangePassword(adminID uint, input dto.ChangePasswordDTO) error {
	admin, err := s.Repos.Admin.GetByID(adminID)
	if err != nil {
		return ErrAdminNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin.Password = string(hashed)
	return s.Repos.Admin.Save(&admin)
}
