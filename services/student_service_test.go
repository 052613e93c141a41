package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupStudentServiceMocks(t *testing.T) (*StudentService, *mock_repositories.MockStudentRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockStudent := mock_repositories.NewMockStudentRepo(ctrl)
	repos := &repositories.Repos{Student: mockStudent}
	svc := NewStudentService(repos)
	return svc, mockStudent
}

func TestLookup_ExactMatch(t *testing.T) {
	svc, mockStudent := setupStudentServiceMocks(t)

	student := models.Student{StudentID: "ST001", Email: "alice.johnson@student.edu"}
	mockStudent.EXPECT().FindByIdentifier("ST001").Return(student, nil)

	got, suggestions, err := svc.Lookup("ST001")
	assert.NoError(t, err)
	assert.Equal(t, "ST001", got.StudentID)
	assert.Nil(t, suggestions)
}

func TestLookup_MissReturnsSuggestions(t *testing.T) {
	svc, mockStudent := setupStudentServiceMocks(t)

	mockStudent.EXPECT().FindByIdentifier("johnson").Return(models.Student{}, gorm.ErrRecordNotFound)
	mockStudent.EXPECT().Suggest("johnson", 3).Return([]models.Student{
		{StudentID: "ST001", LastName: "Johnson"},
	}, nil)

	_, suggestions, err := svc.Lookup("johnson")
	assert.Equal(t, ErrStudentNotFound, err)
	assert.Len(t, suggestions, 1)
}
