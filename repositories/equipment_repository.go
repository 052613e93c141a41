package repositories

import (
	"github.com/hwlab/portal-go/db"
	"github.com/hwlab/portal-go/models"
)

type EquipmentRepo interface {
	Create(item *models.Equipment) error
	GetByID(id uint) (models.Equipment, error)
	List() ([]models.Equipment, error)
	ListInStock() ([]models.Equipment, error)
	Categories() ([]models.EquipmentCategory, error)
	UpdateStatus(id uint, status models.EquipmentStatus) error
	SetPhotoObject(id uint, object string) error
}

type DBEquipmentRepo struct{}

func (r *DBEquipmentRepo) Create(item *models.Equipment) error {
	return db.DB.Create(item).Error
}

func (r *DBEquipmentRepo) GetByID(id uint) (models.Equipment, error) {
	var item models.Equipment
	err := db.DB.Preload("Category").First(&item, id).Error
	return item, err
}

func (r *DBEquipmentRepo) List() ([]models.Equipment, error) {
	var items []models.Equipment
	err := db.DB.Preload("Category").Order("name").Find(&items).Error
	return items, err
}

// ListInStock returns what students can actually request: available status
// with at least one unit on the shelf.
func (r *DBEquipmentRepo) ListInStock() ([]models.Equipment, error) {
	var items []models.Equipment
	err := db.DB.Preload("Category").
		Where("status = ? AND quantity_available > 0", models.EquipmentStatusAvailable).
		Order("name").
		Find(&items).Error
	return items, err
}

func (r *DBEquipmentRepo) Categories() ([]models.EquipmentCategory, error) {
	var categories []models.EquipmentCategory
	err := db.DB.Order("name").Find(&categories).Error
	return categories, err
}

func (r *DBEquipmentRepo) UpdateStatus(id uint, status models.EquipmentStatus) error {
	return db.DB.Model(&models.Equipment{}).Where("id = ?", id).Update("status", status).Error
}

func (r *DBEquipmentRepo) SetPhotoObject(id uint, object string) error {
	return db.DB.Model(&models.Equipment{}).Where("id = ?", id).Update("photo_object", object).Error
}
