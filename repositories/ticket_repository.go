package repositories

import (
	"github.com/hwlab/portal-go/db"
	"github.com/hwlab/portal-go/models"
)

type TicketRepo interface {
	Create(ticket *models.AssistanceTicket) error
	GetByID(id uint) (models.AssistanceTicket, error)
	FindByStudent(studentID string) ([]models.AssistanceTicket, error)
	FindRecent(limit int) ([]models.AssistanceTicket, error)
	Save(ticket *models.AssistanceTicket) error
	AddComment(comment *models.TicketComment) error
	Comments(ticketID uint, includeInternal bool) ([]models.TicketComment, error)
	Types() ([]models.AssistanceType, error)
}

type DBTicketRepo struct{}

func (r *DBTicketRepo) Create(ticket *models.AssistanceTicket) error {
	return db.DB.Create(ticket).Error
}

func (r *DBTicketRepo) GetByID(id uint) (models.AssistanceTicket, error) {
	var ticket models.AssistanceTicket
	err := db.DB.Preload("Student").Preload("Type").Preload("Assignee").First(&ticket, id).Error
	return ticket, err
}

func (r *DBTicketRepo) FindByStudent(studentID string) ([]models.AssistanceTicket, error) {
	var tickets []models.AssistanceTicket
	err := db.DB.Where("student_id = ?", studentID).
		Preload("Type").Preload("Assignee").
		Order("created_at desc").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) FindRecent(limit int) ([]models.AssistanceTicket, error) {
	var tickets []models.AssistanceTicket
	err := db.DB.Preload("Student").Preload("Type").Preload("Assignee").
		Order("created_at desc").
		Limit(limit).
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) Save(ticket *models.AssistanceTicket) error {
	return db.DB.Save(ticket).Error
}

func (r *DBTicketRepo) AddComment(comment *models.TicketComment) error {
	return db.DB.Create(comment).Error
}

func (r *DBTicketRepo) Comments(ticketID uint, includeInternal bool) ([]models.TicketComment, error) {
	var comments []models.TicketComment
	query := db.DB.Where("ticket_id = ?", ticketID).Preload("Admin").Order("created_at")
	if !includeInternal {
		query = query.Where("is_internal = false")
	}
	err := query.Find(&comments).Error
	return comments, err
}

func (r *DBTicketRepo) Types() ([]models.AssistanceType, error) {
	var types []models.AssistanceType
	err := db.DB.Order("name").Find(&types).Error
	return types, err
}
