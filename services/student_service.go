package services

import (
	"errors"

	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
)

var ErrStudentNotFound = errors.New("student not found")

const suggestionLimit = 3

type StudentService struct {
	Repos *repositories.Repos
}

func NewStudentService(repos *repositories.Repos) *StudentService {
	return &StudentService{Repos: repos}
}

// Lookup resolves a student number or email for the phone-request form.
// On a miss it returns near matches so staff can correct typos without
// putting the caller on hold.
func (s *StudentService) Lookup(identifier string) (models.Student, []models.Student, error) {
	student, err := s.Repos.Student.FindByIdentifier(identifier)
	if err == nil {
		return student, nil, nil
	}

	suggestions, suggestErr := s.Repos.Student.Suggest(identifier, suggestionLimit)
	if suggestErr != nil {
		return models.Student{}, nil, suggestErr
	}
	return models.Student{}, suggestions, ErrStudentNotFound
}

func (s *StudentService) Stats(studentID string) (dto.StudentStats, error) {
	return s.Repos.Student.Stats(studentID)
}
