package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// --------------------- Setup ---------------------
func setupAdminServiceMocks(t *testing.T) (*AdminService, *mock_repositories.MockAdminRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAdmin := mock_repositories.NewMockAdminRepo(ctrl)
	repos := &repositories.Repos{Admin: mockAdmin}
	svc := NewAdminService(repos)
	return svc, mockAdmin
}

// --------------------- AddAdmin ---------------------
func TestAddAdmin_Success(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)

	mockAdmin.EXPECT().ExistsByUsernameOrEmail("tech2", "tech2@hwlab.edu").Return(false, nil)
	mockAdmin.EXPECT().Create(gomock.Any()).DoAndReturn(func(admin *models.Admin) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("secret123")))
		assert.Equal(t, models.RoleLabTechnician, admin.Role)
		return nil
	})

	input := dto.CreateAdminDTO{
		Username: "tech2",
		Email:    "tech2@hwlab.edu",
		Password: "secret123",
		FullName: "Second Tech",
	}
	admin, err := svc.AddAdmin(input)
	assert.NoError(t, err)
	assert.Equal(t, "tech2", admin.Username)
}

func TestAddAdmin_Duplicate(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)

	mockAdmin.EXPECT().ExistsByUsernameOrEmail("admin", "admin@hwlab.edu").Return(true, nil)

	input := dto.CreateAdminDTO{Username: "admin", Email: "admin@hwlab.edu", Password: "secret123", FullName: "X"}
	_, err := svc.AddAdmin(input)
	assert.Equal(t, ErrAdminExists, err)
}

// --------------------- UpdateProfile ---------------------
func TestUpdateProfile_ReissuesToken(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)
	stubAdminToken(t, "freshtoken")

	existing := models.Admin{ID: 7, Username: "tech1", FullName: "Old Name", Email: "old@hwlab.edu"}
	mockAdmin.EXPECT().GetByID(uint(7)).Return(existing, nil)
	mockAdmin.EXPECT().Save(gomock.Any()).DoAndReturn(func(admin *models.Admin) error {
		assert.Equal(t, "New Name", admin.FullName)
		assert.Equal(t, "new@hwlab.edu", admin.Email)
		return nil
	})

	input := dto.UpdateProfileDTO{FullName: "New Name", Email: "new@hwlab.edu"}
	admin, token, err := svc.UpdateProfile(7, input)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", admin.FullName)
	assert.Equal(t, "freshtoken", token)
}

// --------------------- ChangePassword ---------------------
func TestChangePassword_Success(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass12"), bcrypt.DefaultCost)
	existing := models.Admin{ID: 7, Password: string(hashed)}
	mockAdmin.EXPECT().GetByID(uint(7)).Return(existing, nil)
	mockAdmin.EXPECT().Save(gomock.Any()).DoAndReturn(func(admin *models.Admin) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("newpass12")))
		return nil
	})

	err := svc.ChangePassword(7, dto.ChangePasswordDTO{CurrentPassword: "oldpass12", NewPassword: "newpass12"})
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, mockAdmin := setupAdminServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("oldpass12"), bcrypt.DefaultCost)
	mockAdmin.EXPECT().GetByID(uint(7)).Return(models.Admin{ID: 7, Password: string(hashed)}, nil)

	err := svc.ChangePassword(7, dto.ChangePasswordDTO{CurrentPassword: "guess", NewPassword: "newpass12"})
	assert.Equal(t, ErrWrongPassword, err)
}
