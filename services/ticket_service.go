package services

import (
	"errors"
	"time"

	"github.com/hwlab/portal-go/config"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/utils"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrNotTicketOwner   = errors.New("ticket belongs to another student")
	ErrCannotCancel     = errors.New("ticket can no longer be cancelled")
	ErrNumbersExhausted = errors.New("could not allocate a unique number")
)

type TicketService struct {
	Repos *repositories.Repos
}

func NewTicketService(repos *repositories.Repos) *TicketService {
	return &TicketService{Repos: repos}
}

func (s *TicketService) CreateTicket(studentID string, input dto.CreateTicketDTO) (models.AssistanceTicket, error) {
	typeID := input.AssistanceTypeID
	ticket := models.AssistanceTicket{
		StudentID:        studentID,
		AssistanceTypeID: &typeID,
		Title:            input.Title,
		Description:      input.Description,
		Priority:         priorityOrDefault(input.Priority),
		Status:           models.TicketStatusPending,
	}

	if err := s.createWithNumber(&ticket); err != nil {
		return models.AssistanceTicket{}, err
	}
	return ticket, nil
}

// CreatePhoneTicket records a walk-in or phone request on a student's
// behalf. The admin taking the call becomes the assignee, but the ticket
// still enters the queue as pending. The assistance type is optional on
// this path since callers rarely know the categories.
func (s *TicketService) CreatePhoneTicket(adminID uint, input dto.PhoneTicketDTO) (models.AssistanceTicket, error) {
	if _, err := s.Repos.Student.GetByStudentID(input.StudentID); err != nil {
		return models.AssistanceTicket{}, ErrStudentNotFound
	}

	ticket := models.AssistanceTicket{
		StudentID:        input.StudentID,
		AssistanceTypeID: input.AssistanceTypeID,
		Title:            input.Title,
		Description:      input.Description,
		Priority:         priorityOrDefault(input.Priority),
		Status:           models.TicketStatusPending,
		AssignedTo:       &adminID,
		PhoneRequest:     true,
		CallerNotes:      input.CallerNotes,
	}

	if err := s.createWithNumber(&ticket); err != nil {
		return models.AssistanceTicket{}, err
	}
	return ticket, nil
}

func (s *TicketService) createWithNumber(ticket *models.AssistanceTicket) error {
	for attempt := 0; attempt < config.NumberAttempts; attempt++ {
		ticket.TicketNumber = utils.GenerateTicketNumber(time.Now())
		err := s.Repos.Ticket.Create(ticket)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return ErrNumbersExhausted
}

func (s *TicketService) ListByStudent(studentID string) ([]models.AssistanceTicket, error) {
	return s.Repos.Ticket.FindByStudent(studentID)
}

func (s *TicketService) ListRecent(limit int) ([]models.AssistanceTicket, error) {
	return s.Repos.Ticket.FindRecent(limit)
}

func (s *TicketService) Get(id uint) (models.AssistanceTicket, error) {
	ticket, err := s.Repos.Ticket.GetByID(id)
	if err != nil {
		return models.AssistanceTicket{}, ErrTicketNotFound
	}
	return ticket, nil
}

// UpdateTicket applies an admin edit in one shot: status, assignment and
// schedule together, plus an optional comment. There is no transition
// check on the admin side.
func (s *TicketService) UpdateTicket(adminID uint, id uint, input dto.UpdateTicketDTO) (models.AssistanceTicket, error) {
	ticket, err := s.Repos.Ticket.GetByID(id)
	if err != nil {
		return models.AssistanceTicket{}, ErrTicketNotFound
	}

	newStatus := models.TicketStatus(input.Status)
	if newStatus == models.TicketStatusResolved && ticket.Status != models.TicketStatusResolved {
		now := time.Now()
		ticket.ResolvedAt = &now
	}
	ticket.Status = newStatus

	if input.AssignedTo != nil {
		ticket.AssignedTo = input.AssignedTo
	}
	if input.ScheduledDate != nil {
		parsed, err := utils.ParseDate(*input.ScheduledDate)
		if err != nil {
			return models.AssistanceTicket{}, ErrInvalidDate
		}
		date := utils.ToDate(parsed)
		ticket.ScheduledDate = &date
	}
	if input.ScheduledTime != nil {
		ticket.ScheduledTime = input.ScheduledTime
	}

	if err := s.Repos.Ticket.Save(&ticket); err != nil {
		return models.AssistanceTicket{}, err
	}

	if input.Comment != "" {
		comment := models.TicketComment{
			TicketID:   ticket.ID,
			AdminID:    &adminID,
			Comment:    input.Comment,
			IsInternal: input.IsInternal,
		}
		if err := s.Repos.Ticket.AddComment(&comment); err != nil {
			return models.AssistanceTicket{}, err
		}
	}

	return ticket, nil
}

func (s *TicketService) AddComment(adminID uint, ticketID uint, input dto.AddCommentDTO) (models.TicketComment, error) {
	if _, err := s.Repos.Ticket.GetByID(ticketID); err != nil {
		return models.TicketComment{}, ErrTicketNotFound
	}

	comment := models.TicketComment{
		TicketID:   ticketID,
		AdminID:    &adminID,
		Comment:    input.Comment,
		IsInternal: input.IsInternal,
	}
	err := s.Repos.Ticket.AddComment(&comment)
	return comment, err
}

func (s *TicketService) Comments(ticketID uint, includeInternal bool) ([]models.TicketComment, error) {
	return s.Repos.Ticket.Comments(ticketID, includeInternal)
}

// StudentComments scopes the thread to the owning student and filters
// out internal notes.
func (s *TicketService) StudentComments(studentID string, ticketID uint) ([]models.TicketComment, error) {
	ticket, err := s.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return nil, ErrTicketNotFound
	}
	if ticket.StudentID != studentID {
		return nil, ErrNotTicketOwner
	}
	return s.Repos.Ticket.Comments(ticketID, false)
}

// CancelTicket lets a student withdraw their own ticket while it is still
// pending or assigned. Anything further along stays with the lab.
func (s *TicketService) CancelTicket(studentID string, id uint) (models.AssistanceTicket, error) {
	ticket, err := s.Repos.Ticket.GetByID(id)
	if err != nil {
		return models.AssistanceTicket{}, ErrTicketNotFound
	}
	if ticket.StudentID != studentID {
		return models.AssistanceTicket{}, ErrNotTicketOwner
	}
	if !ticket.Status.CancellableByStudent() {
		return models.AssistanceTicket{}, ErrCannotCancel
	}

	ticket.Status = models.TicketStatusCancelled
	if err := s.Repos.Ticket.Save(&ticket); err != nil {
		return models.AssistanceTicket{}, err
	}
	return ticket, nil
}

func (s *TicketService) Types() ([]models.AssistanceType, error) {
	return s.Repos.Ticket.Types()
}

func priorityOrDefault(priority string) models.TicketPriority {
	if priority == "" {
		return models.PriorityMedium
	}
	return models.TicketPriority(priority)
}
