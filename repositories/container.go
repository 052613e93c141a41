package repositories

type Repos struct {
	Student   StudentRepo
	Admin     AdminRepo
	Equipment EquipmentRepo
	Ticket    TicketRepo
	Borrowing BorrowingRepo
	Feedback  FeedbackRepo
	Report    ReportRepo
}

func New() *Repos {
	return &Repos{
		Student:   &DBStudentRepo{},
		Admin:     &DBAdminRepo{},
		Equipment: &DBEquipmentRepo{},
		Ticket:    &DBTicketRepo{},
		Borrowing: &DBBorrowingRepo{},
		Feedback:  &DBFeedbackRepo{},
		Report:    &DBReportRepo{},
	}
}
