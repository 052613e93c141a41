package services

import "github.com/hwlab/portal-go/repositories"

type Services struct {
	Auth      *AuthService
	Student   *StudentService
	Ticket    *TicketService
	Borrowing *BorrowingService
	Equipment *EquipmentService
	Admin     *AdminService
	Feedback  *FeedbackService
	Report    *ReportService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Auth:      NewAuthService(repos),
		Student:   NewStudentService(repos),
		Ticket:    NewTicketService(repos),
		Borrowing: NewBorrowingService(repos),
		Equipment: NewEquipmentService(repos),
		Admin:     NewAdminService(repos),
		Feedback:  NewFeedbackService(repos),
		Report:    NewReportService(repos),
	}
}
