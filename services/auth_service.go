package services

import (
	"errors"

	"github.com/hwlab/portal-go/middleware"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	Repos *repositories.Repos
}

func NewAuthService(repos *repositories.Repos) *AuthService {
	return &AuthService{Repos: repos}
}

// VerifyStudent checks the email and student number as a pair. Any failure
// collapses to ErrInvalidCredentials so the response does not reveal which
// half was wrong.
func (s *AuthService) VerifyStudent(email, studentID string) (models.Student, string, error) {
	student, err := s.Repos.Student.GetByEmailAndID(email, studentID)
	if err != nil {
		return models.Student{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateStudentToken(student)
	if err != nil {
		return models.Student{}, "", err
	}

	return student, token, nil
}

// LoginAdmin accepts the username or the email as identifier.
func (s *AuthService) LoginAdmin(identifier, password string) (models.Admin, string, error) {
	admin, err := s.Repos.Admin.GetByUsernameOrEmail(identifier)
	if err != nil {
		return models.Admin{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return models.Admin{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateAdminToken(admin)
	if err != nil {
		return models.Admin{}, "", err
	}

	return admin, token, nil
}
