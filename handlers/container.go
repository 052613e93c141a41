package handlers

import (
	"github.com/hwlab/portal-go/services"
)

type Handlers struct {
	Auth      *AuthHandler
	Student   *StudentHandler
	Ticket    *TicketHandler
	Borrowing *BorrowingHandler
	Equipment *EquipmentHandler
	Admin     *AdminHandler
	Feedback  *FeedbackHandler
	Report    *ReportHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(svc.Auth),
		Student:   NewStudentHandler(svc.Student, svc.Ticket, svc.Borrowing, svc.Feedback),
		Ticket:    NewTicketHandler(svc.Ticket),
		Borrowing: NewBorrowingHandler(svc.Borrowing),
		Equipment: NewEquipmentHandler(svc.Equipment),
		Admin:     NewAdminHandler(svc.Admin),
		Feedback:  NewFeedbackHandler(svc.Feedback),
		Report:    NewReportHandler(svc.Report, svc.Ticket, svc.Borrowing),
	}
}
