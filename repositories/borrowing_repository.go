package repositories

import (
	"errors"
	"time"

	"github.com/hwlab/portal-go/db"
	"github.com/hwlab/portal-go/models"
	"gorm.io/gorm"
)

var ErrInventoryExhausted = errors.New("inventory adjustment out of range")

type BorrowingRepo interface {
	Create(req *models.BorrowingRequest) error
	GetByID(id uint) (models.BorrowingRequest, error)
	FindByStudent(studentID string) ([]models.BorrowingRequest, error)
	FindRecent(limit int) ([]models.BorrowingRequest, error)
	Save(req *models.BorrowingRequest) error
	UpdateWithInventory(req *models.BorrowingRequest, delta int) error
	MarkOverdue(now time.Time) (int64, error)
}

type DBBorrowingRepo struct{}

func (r *DBBorrowingRepo) Create(req *models.BorrowingRequest) error {
	return db.DB.Create(req).Error
}

func (r *DBBorrowingRepo) GetByID(id uint) (models.BorrowingRequest, error) {
	var req models.BorrowingRequest
	err := db.DB.Preload("Student").Preload("Equipment").Preload("Approver").First(&req, id).Error
	return req, err
}

func (r *DBBorrowingRepo) FindByStudent(studentID string) ([]models.BorrowingRequest, error) {
	var reqs []models.BorrowingRequest
	err := db.DB.Where("student_id = ?", studentID).
		Preload("Equipment").
		Order("created_at desc").
		Find(&reqs).Error
	return reqs, err
}

func (r *DBBorrowingRepo) FindRecent(limit int) ([]models.BorrowingRequest, error) {
	var reqs []models.BorrowingRequest
	err := db.DB.Preload("Student").Preload("Equipment").Preload("Approver").
		Order("created_at desc").
		Limit(limit).
		Find(&reqs).Error
	return reqs, err
}

func (r *DBBorrowingRepo) Save(req *models.BorrowingRequest) error {
	return db.DB.Save(req).Error
}

// UpdateWithInventory saves the request and applies the stock delta in one
// transaction. The guarded UPDATE keeps quantity_available inside
// [0, total_quantity]; zero rows affected means the adjustment would leave
// the range and the whole transaction rolls back.
func (r *DBBorrowingRepo) UpdateWithInventory(req *models.BorrowingRequest, delta int) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(req).Error; err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		result := tx.Exec(`
			UPDATE equipment
			SET quantity_available = quantity_available + ?
			WHERE id = ?
			AND quantity_available + ? >= 0
			AND quantity_available + ? <= total_quantity`,
			delta, req.EquipmentID, delta, delta)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInventoryExhausted
		}
		return nil
	})
}

// MarkOverdue flips active loans past their due date. Run on demand before
// dashboards and reports rather than from a scheduler.
func (r *DBBorrowingRepo) MarkOverdue(now time.Time) (int64, error) {
	result := db.DB.Model(&models.BorrowingRequest{}).
		Where("status = ? AND due_date < ?", models.BorrowingStatusActive, now).
		Update("status", models.BorrowingStatusOverdue)
	return result.RowsAffected, result.Error
}
