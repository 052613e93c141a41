package services

import (
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
func setupFeedbackServiceMocks(t *testing.T) (*FeedbackService,
	*mock_repositories.MockFeedbackRepo,
	*mock_repositories.MockTicketRepo,
	*mock_repositories.MockBorrowingRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockFeedback := mock_repositories.NewMockFeedbackRepo(ctrl)
	mockTicket := mock_repositories.NewMockTicketRepo(ctrl)
	mockBorrowing := mock_repositories.NewMockBorrowingRepo(ctrl)
	repos := &repositories.Repos{
		Feedback:  mockFeedback,
		Ticket:    mockTicket,
		Borrowing: mockBorrowing,
	}
	svc := NewFeedbackService(repos)
	return svc, mockFeedback, mockTicket, mockBorrowing
}

func resolvedTicket() models.AssistanceTicket {
	return models.AssistanceTicket{ID: 4, StudentID: "ST001", Status: models.TicketStatusResolved}
}

// --------------------- SubmitAssistance ---------------------
func TestSubmitAssistance_Success(t *testing.T) {
	svc, mockFeedback, mockTicket, _ := setupFeedbackServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(4)).Return(resolvedTicket(), nil)
	mockFeedback.EXPECT().HasAssistance(uint(4), "ST001").Return(false, nil)
	mockFeedback.EXPECT().CreateAssistance(gomock.Any()).DoAndReturn(func(fb *models.AssistanceFeedback) error {
		assert.Equal(t, uint(4), fb.TicketID)
		assert.True(t, fb.WouldRecommend)
		return nil
	})

	input := dto.AssistanceFeedbackDTO{TicketID: 4, Rating: 5, Satisfaction: "very_satisfied"}
	fb, err := svc.SubmitAssistance("ST001", input)
	assert.NoError(t, err)
	assert.Equal(t, models.SatisfactionVerySatisfied, fb.Satisfaction)
}

func TestSubmitAssistance_UnresolvedTicket(t *testing.T) {
	svc, _, mockTicket, _ := setupFeedbackServiceMocks(t)

	ticket := resolvedTicket()
	ticket.Status = models.TicketStatusInProgress
	mockTicket.EXPECT().GetByID(uint(4)).Return(ticket, nil)

	input := dto.AssistanceFeedbackDTO{TicketID: 4, Rating: 4, Satisfaction: "satisfied"}
	_, err := svc.SubmitAssistance("ST001", input)
	assert.Equal(t, ErrFeedbackNotEligible, err)
}

func TestSubmitAssistance_Duplicate(t *testing.T) {
	svc, mockFeedback, mockTicket, _ := setupFeedbackServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(4)).Return(resolvedTicket(), nil)
	mockFeedback.EXPECT().HasAssistance(uint(4), "ST001").Return(true, nil)

	input := dto.AssistanceFeedbackDTO{TicketID: 4, Rating: 4, Satisfaction: "satisfied"}
	_, err := svc.SubmitAssistance("ST001", input)
	assert.Equal(t, ErrDuplicateFeedback, err)
}

// The pre-check can race a concurrent submit; the unique index catches it.
func TestSubmitAssistance_DuplicateRace(t *testing.T) {
	svc, mockFeedback, mockTicket, _ := setupFeedbackServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(4)).Return(resolvedTicket(), nil)
	mockFeedback.EXPECT().HasAssistance(uint(4), "ST001").Return(false, nil)
	mockFeedback.EXPECT().CreateAssistance(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	input := dto.AssistanceFeedbackDTO{TicketID: 4, Rating: 4, Satisfaction: "satisfied"}
	_, err := svc.SubmitAssistance("ST001", input)
	assert.Equal(t, ErrDuplicateFeedback, err)
}

func TestSubmitAssistance_NotOwner(t *testing.T) {
	svc, _, mockTicket, _ := setupFeedbackServiceMocks(t)

	mockTicket.EXPECT().GetByID(uint(4)).Return(resolvedTicket(), nil)

	input := dto.AssistanceFeedbackDTO{TicketID: 4, Rating: 4, Satisfaction: "satisfied"}
	_, err := svc.SubmitAssistance("ST002", input)
	assert.Equal(t, ErrNotTicketOwner, err)
}

// --------------------- SubmitBorrowing ---------------------
func TestSubmitBorrowing_Success(t *testing.T) {
	svc, mockFeedback, _, mockBorrowing := setupFeedbackServiceMocks(t)

	req := models.BorrowingRequest{ID: 10, StudentID: "ST001", Status: models.BorrowingStatusReturned}
	mockBorrowing.EXPECT().GetByID(uint(10)).Return(req, nil)
	mockFeedback.EXPECT().HasBorrowing(uint(10), "ST001").Return(false, nil)
	mockFeedback.EXPECT().CreateBorrowing(gomock.Any()).Return(nil)

	recommend := false
	input := dto.BorrowingFeedbackDTO{
		RequestID:       10,
		Rating:          2,
		Satisfaction:    "dissatisfied",
		EquipmentIssues: "Probe tip was bent",
		WouldRecommend:  &recommend,
	}
	fb, err := svc.SubmitBorrowing("ST001", input)
	assert.NoError(t, err)
	assert.False(t, fb.WouldRecommend)
	assert.Equal(t, "Probe tip was bent", fb.EquipmentIssues)
}

func TestSubmitBorrowing_StillActive(t *testing.T) {
	svc, _, _, mockBorrowing := setupFeedbackServiceMocks(t)

	req := models.BorrowingRequest{ID: 10, StudentID: "ST001", Status: models.BorrowingStatusActive}
	mockBorrowing.EXPECT().GetByID(uint(10)).Return(req, nil)

	input := dto.BorrowingFeedbackDTO{RequestID: 10, Rating: 3, Satisfaction: "neutral"}
	_, err := svc.SubmitBorrowing("ST001", input)
	assert.Equal(t, ErrFeedbackNotEligible, err)
}

// --------------------- PendingForStudent ---------------------
func TestPendingForStudent(t *testing.T) {
	svc, mockFeedback, _, _ := setupFeedbackServiceMocks(t)

	tickets := []models.AssistanceTicket{{ID: 4}}
	requests := []models.BorrowingRequest{{ID: 10}, {ID: 11}}
	mockFeedback.EXPECT().EligibleAssistance("ST001").Return(tickets, nil)
	mockFeedback.EXPECT().EligibleBorrowing("ST001").Return(requests, nil)

	gotTickets, gotRequests, err := svc.PendingForStudent("ST001")
	assert.NoError(t, err)
	assert.Len(t, gotTickets, 1)
	assert.Len(t, gotRequests, 2)
}
