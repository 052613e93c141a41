package repositories

import (
	"github.com/hwlab/portal-go/db"
	"github.com/hwlab/portal-go/models"
)

type AdminRepo interface {
	GetByUsernameOrEmail(identifier string) (models.Admin, error)
	GetByID(id uint) (models.Admin, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	Create(admin *models.Admin) error
	Save(admin *models.Admin) error
	List() ([]models.Admin, error)
}

type DBAdminRepo struct{}

func (r *DBAdminRepo) GetByUsernameOrEmail(identifier string) (models.Admin, error) {
	var admin models.Admin
	err := db.DB.Where("username = ? OR email = ?", identifier, identifier).First(&admin).Error
	return admin, err
}

func (r *DBAdminRepo) GetByID(id uint) (models.Admin, error) {
	var admin models.Admin
	err := db.DB.First(&admin, id).Error
	return admin, err
}

func (r *DBAdminRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.Admin{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *DBAdminRepo) Create(admin *models.Admin) error {
	return db.DB.Create(admin).Error
}

func (r *DBAdminRepo) Save(admin *models.Admin) error {
	return db.DB.Save(admin).Error
}

func (r *DBAdminRepo) List() ([]models.Admin, error) {
	var admins []models.Admin
	err := db.DB.Order("full_name").Find(&admins).Error
	return admins, err
}
