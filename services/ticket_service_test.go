package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupTicketServiceMocks(t *testing.T) (*TicketService, *mock_repositories.MockTicketRepo, *mock_repositories.MockStudentRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock_repositories.NewMockTicketRepo(ctrl)
	mockStudent := mock_repositories.NewMockStudentRepo(ctrl)
	repos := &repositories.Repos{
		Ticket:  mockTicket,
		Student: mockStudent,
	}
	svc := NewTicketService(repos)
	return svc, mockTicket, mockStudent
}

// --------------------- CreateTicket ---------------------
func TestCreateTicket_Success(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	var created models.AssistanceTicket
	mockTicket.EXPECT().Create(gomock.Any()).DoAndReturn(func(ticket *models.AssistanceTicket) error {
		created = *ticket
		return nil
	})

	input := dto.CreateTicketDTO{
		AssistanceTypeID: 2,
		Title:            "Oscilloscope probe help",
		Description:      "Cannot get a stable trigger",
	}
	ticket, err := svc.CreateTicket("ST001", input)
	assert.NoError(t, err)
	assert.Equal(t, "ST001", ticket.StudentID)
	assert.Equal(t, models.TicketStatusPending, ticket.Status)
	assert.Equal(t, models.PriorityMedium, ticket.Priority)
	assert.True(t, strings.HasPrefix(created.TicketNumber, "TK"))
	assert.Len(t, created.TicketNumber, 14)
}

func TestCreateTicket_RetriesOnDuplicateNumber(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	gomock.InOrder(
		mockTicket.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey),
		mockTicket.EXPECT().Create(gomock.Any()).Return(nil),
	)

	input := dto.CreateTicketDTO{AssistanceTypeID: 1, Title: "t", Description: "d"}
	_, err := svc.CreateTicket("ST001", input)
	assert.NoError(t, err)
}

func TestCreateTicket_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(3)

	input := dto.CreateTicketDTO{AssistanceTypeID: 1, Title: "t", Description: "d"}
	_, err := svc.CreateTicket("ST001", input)
	assert.Equal(t, ErrNumbersExhausted, err)
}

func TestCreateTicket_PropagatesOtherErrors(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	dbErr := errors.New("connection refused")
	mockTicket.EXPECT().Create(gomock.Any()).Return(dbErr)

	input := dto.CreateTicketDTO{AssistanceTypeID: 1, Title: "t", Description: "d"}
	_, err := svc.CreateTicket("ST001", input)
	assert.Equal(t, dbErr, err)
}

// --------------------- CreatePhoneTicket ---------------------
// Phone tickets start in pending like any other ticket; the receiving
// admin is only pre-assigned.
func TestCreatePhoneTicket_PendingWithReceivingAdminAssigned(t *testing.T) {
	svc, mockTicket, mockStudent := setupTicketServiceMocks(t)

	mockStudent.EXPECT().GetByStudentID("ST002").Return(models.Student{StudentID: "ST002"}, nil)
	mockTicket.EXPECT().Create(gomock.Any()).Return(nil)

	typeID := uint(1)
	input := dto.PhoneTicketDTO{
		StudentID:        "ST002",
		AssistanceTypeID: &typeID,
		Title:            "Called about soldering station",
		Description:      "Iron not heating",
		CallerNotes:      "Prefers afternoon slots",
	}
	ticket, err := svc.CreatePhoneTicket(7, input)
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusPending, ticket.Status)
	assert.Equal(t, uint(7), *ticket.AssignedTo)
	assert.True(t, ticket.PhoneRequest)
	assert.Equal(t, "Prefers afternoon slots", ticket.CallerNotes)
}

// Callers rarely know the categories, so the type may be omitted.
func TestCreatePhoneTicket_TypeOptional(t *testing.T) {
	svc, mockTicket, mockStudent := setupTicketServiceMocks(t)

	mockStudent.EXPECT().GetByStudentID("ST002").Return(models.Student{StudentID: "ST002"}, nil)
	mockTicket.EXPECT().Create(gomock.Any()).Return(nil)

	input := dto.PhoneTicketDTO{StudentID: "ST002", Title: "t", Description: "d"}
	ticket, err := svc.CreatePhoneTicket(7, input)
	assert.NoError(t, err)
	assert.Nil(t, ticket.AssistanceTypeID)
}

func TestCreatePhoneTicket_UnknownStudent(t *testing.T) {
	svc, _, mockStudent := setupTicketServiceMocks(t)

	mockStudent.EXPECT().GetByStudentID("ST999").Return(models.Student{}, gorm.ErrRecordNotFound)

	input := dto.PhoneTicketDTO{StudentID: "ST999", Title: "t", Description: "d"}
	_, err := svc.CreatePhoneTicket(7, input)
	assert.Equal(t, ErrStudentNotFound, err)
}

// --------------------- UpdateTicket ---------------------
func TestUpdateTicket_ResolvedStampsTimestampAndComments(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	existing := models.AssistanceTicket{ID: 4, StudentID: "ST001", Status: models.TicketStatusInProgress}
	mockTicket.EXPECT().GetByID(uint(4)).Return(existing, nil)
	mockTicket.EXPECT().Save(gomock.Any()).DoAndReturn(func(ticket *models.AssistanceTicket) error {
		assert.Equal(t, models.TicketStatusResolved, ticket.Status)
		assert.NotNil(t, ticket.ResolvedAt)
		return nil
	})
	mockTicket.EXPECT().AddComment(gomock.Any()).DoAndReturn(func(comment *models.TicketComment) error {
		assert.Equal(t, uint(4), comment.TicketID)
		assert.Equal(t, "Replaced the probe", comment.Comment)
		return nil
	})

	input := dto.UpdateTicketDTO{Status: "resolved", Comment: "Replaced the probe"}
	ticket, err := svc.UpdateTicket(7, 4, input)
	assert.NoError(t, err)
	assert.NotNil(t, ticket.ResolvedAt)
}

func TestUpdateTicket_AlreadyResolvedKeepsTimestamp(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	existing := models.AssistanceTicket{ID: 4, Status: models.TicketStatusResolved}
	mockTicket.EXPECT().GetByID(uint(4)).Return(existing, nil)
	mockTicket.EXPECT().Save(gomock.Any()).Return(nil)

	input := dto.UpdateTicketDTO{Status: "resolved"}
	ticket, err := svc.UpdateTicket(7, 4, input)
	assert.NoError(t, err)
	assert.Nil(t, ticket.ResolvedAt)
}

func TestUpdateTicket_NotFound(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(99)).Return(models.AssistanceTicket{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateTicket(7, 99, dto.UpdateTicketDTO{Status: "assigned"})
	assert.Equal(t, ErrTicketNotFound, err)
}

// --------------------- StudentComments ---------------------
func TestStudentComments_OwnerSeesExternalThread(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	existing := models.AssistanceTicket{ID: 4, StudentID: "ST001"}
	mockTicket.EXPECT().GetByID(uint(4)).Return(existing, nil)
	mockTicket.EXPECT().Comments(uint(4), false).Return([]models.TicketComment{
		{ID: 1, TicketID: 4, Comment: "On it"},
	}, nil)

	comments, err := svc.StudentComments("ST001", 4)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestStudentComments_OtherStudentsTicketRejected(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	existing := models.AssistanceTicket{ID: 4, StudentID: "ST002"}
	mockTicket.EXPECT().GetByID(uint(4)).Return(existing, nil)

	_, err := svc.StudentComments("ST001", 4)
	assert.Equal(t, ErrNotTicketOwner, err)
}

// --------------------- CancelTicket ---------------------
func TestCancelTicket_PendingSucceeds(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	existing := models.AssistanceTicket{ID: 3, StudentID: "ST001", Status: models.TicketStatusPending}
	mockTicket.EXPECT().GetByID(uint(3)).Return(existing, nil)
	mockTicket.EXPECT().Save(gomock.Any()).Return(nil)

	ticket, err := svc.CancelTicket("ST001", 3)
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusCancelled, ticket.Status)
}

func TestCancelTicket_InProgressRejected(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	existing := models.AssistanceTicket{ID: 3, StudentID: "ST001", Status: models.TicketStatusInProgress}
	mockTicket.EXPECT().GetByID(uint(3)).Return(existing, nil)

	_, err := svc.CancelTicket("ST001", 3)
	assert.Equal(t, ErrCannotCancel, err)
}

func TestCancelTicket_OtherStudentsTicket(t *testing.T) {
	svc, mockTicket, _ := setupTicketServiceMocks(t)

	existing := models.AssistanceTicket{ID: 3, StudentID: "ST002", Status: models.TicketStatusPending}
	mockTicket.EXPECT().GetByID(uint(3)).Return(existing, nil)

	_, err := svc.CancelTicket("ST001", 3)
	assert.Equal(t, ErrNotTicketOwner, err)
}
