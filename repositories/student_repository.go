package repositories

import (
	"github.com/hwlab/portal-go/db"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/models"
)

type StudentRepo interface {
	GetByEmailAndID(email, studentID string) (models.Student, error)
	GetByStudentID(studentID string) (models.Student, error)
	FindByIdentifier(identifier string) (models.Student, error)
	Suggest(identifier string, limit int) ([]models.Student, error)
	Stats(studentID string) (dto.StudentStats, error)
}

type DBStudentRepo struct{}

func (r *DBStudentRepo) GetByEmailAndID(email, studentID string) (models.Student, error) {
	var student models.Student
	err := db.DB.Where("email = ? AND student_id = ?", email, studentID).First(&student).Error
	return student, err
}

func (r *DBStudentRepo) GetByStudentID(studentID string) (models.Student, error) {
	var student models.Student
	err := db.DB.Where("student_id = ?", studentID).First(&student).Error
	return student, err
}

// FindByIdentifier matches either the student number or the email exactly.
func (r *DBStudentRepo) FindByIdentifier(identifier string) (models.Student, error) {
	var student models.Student
	err := db.DB.Where("student_id = ? OR email = ?", identifier, identifier).First(&student).Error
	return student, err
}

func (r *DBStudentRepo) Suggest(identifier string, limit int) ([]models.Student, error) {
	var students []models.Student
	pattern := "%" + identifier + "%"
	err := db.DB.
		Where("student_id ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			pattern, pattern, pattern, pattern).
		Limit(limit).
		Find(&students).Error
	return students, err
}

func (r *DBStudentRepo) Stats(studentID string) (dto.StudentStats, error) {
	var stats dto.StudentStats
	err := db.DB.Raw(`
		SELECT
		(SELECT COUNT(*) FROM assistance_tickets WHERE student_id = ? AND status IN ('pending', 'assigned', 'in_progress')) AS open_tickets,
		(SELECT COUNT(*) FROM assistance_tickets WHERE student_id = ? AND status = 'resolved') AS resolved_tickets,
		(SELECT COUNT(*) FROM borrowing_requests WHERE student_id = ? AND status IN ('active', 'overdue')) AS active_loans,
		(SELECT COUNT(*) FROM borrowing_requests WHERE student_id = ? AND status IN ('pending', 'approved')) AS pending_requests`,
		studentID, studentID, studentID, studentID).Scan(&stats).Error
	return stats, err
}
