package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hwlab/portal-go/middleware"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupAuthServiceMocks(t *testing.T) (*AuthService, *mock_repositories.MockStudentRepo, *mock_repositories.MockAdminRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockStudent := mock_repositories.NewMockStudentRepo(ctrl)
	mockAdmin := mock_repositories.NewMockAdminRepo(ctrl)
	repos := &repositories.Repos{
		Student: mockStudent,
		Admin:   mockAdmin,
	}
	svc := NewAuthService(repos)
	return svc, mockStudent, mockAdmin
}

func stubStudentToken(t *testing.T, token string) {
	old := middleware.GenerateStudentToken
	middleware.GenerateStudentToken = func(models.Student) (string, error) { return token, nil }
	t.Cleanup(func() { middleware.GenerateStudentToken = old })
}

func stubAdminToken(t *testing.T, token string) {
	old := middleware.GenerateAdminToken
	middleware.GenerateAdminToken = func(models.Admin) (string, error) { return token, nil }
	t.Cleanup(func() { middleware.GenerateAdminToken = old })
}

// --------------------- VerifyStudent ---------------------
func TestVerifyStudent_Success(t *testing.T) {
	svc, mockStudent, _ := setupAuthServiceMocks(t)
	stubStudentToken(t, "token123")

	student := models.Student{StudentID: "ST001", Email: "alice@student.edu", FirstName: "Alice", LastName: "Johnson"}
	mockStudent.EXPECT().GetByEmailAndID("alice@student.edu", "ST001").Return(student, nil)

	got, token, err := svc.VerifyStudent("alice@student.edu", "ST001")
	assert.NoError(t, err)
	assert.Equal(t, "ST001", got.StudentID)
	assert.Equal(t, "token123", token)
}

func TestVerifyStudent_MismatchedPair(t *testing.T) {
	svc, mockStudent, _ := setupAuthServiceMocks(t)

	mockStudent.EXPECT().GetByEmailAndID("alice@student.edu", "ST999").
		Return(models.Student{}, gorm.ErrRecordNotFound)

	_, _, err := svc.VerifyStudent("alice@student.edu", "ST999")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- LoginAdmin ---------------------
func TestLoginAdmin_Success(t *testing.T) {
	svc, _, mockAdmin := setupAuthServiceMocks(t)
	stubAdminToken(t, "admintoken")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := models.Admin{ID: 1, Username: "admin", Password: string(hashed), Role: models.RoleSuperAdmin}

	mockAdmin.EXPECT().GetByUsernameOrEmail("admin").Return(admin, nil)

	got, token, err := svc.LoginAdmin("admin", "admin123")
	assert.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, "admintoken", token)
}

func TestLoginAdmin_ByEmail(t *testing.T) {
	svc, _, mockAdmin := setupAuthServiceMocks(t)
	stubAdminToken(t, "admintoken")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("tech123"), bcrypt.DefaultCost)
	admin := models.Admin{ID: 2, Username: "tech1", Email: "tech1@hwlab.edu", Password: string(hashed)}

	mockAdmin.EXPECT().GetByUsernameOrEmail("tech1@hwlab.edu").Return(admin, nil)

	_, _, err := svc.LoginAdmin("tech1@hwlab.edu", "tech123")
	assert.NoError(t, err)
}

func TestLoginAdmin_WrongPassword(t *testing.T) {
	svc, _, mockAdmin := setupAuthServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := models.Admin{ID: 1, Username: "admin", Password: string(hashed)}

	mockAdmin.EXPECT().GetByUsernameOrEmail("admin").Return(admin, nil)

	_, _, err := svc.LoginAdmin("admin", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLoginAdmin_UnknownUser(t *testing.T) {
	svc, _, mockAdmin := setupAuthServiceMocks(t)

	mockAdmin.EXPECT().GetByUsernameOrEmail("ghost").Return(models.Admin{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginAdmin("ghost", "whatever")
	assert.Equal(t, ErrInvalidCredentials, err)
}
