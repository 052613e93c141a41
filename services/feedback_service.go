package services

import (
	"errors"

	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"gorm.io/gorm"
)

var (
	ErrFeedbackNotEligible = errors.New("feedback is only accepted for completed requests")
	ErrDuplicateFeedback   = errors.New("feedback already submitted")
)

const feedbackPageSize = 20

type FeedbackService struct {
	Repos *repositories.Repos
}

func NewFeedbackService(repos *repositories.Repos) *FeedbackService {
	return &FeedbackService{Repos: repos}
}

// SubmitAssistance accepts one rating per resolved ticket. The unique
// index backs up the pre-check, so a racing double submit still comes
// back as ErrDuplicateFeedback.
func (s *FeedbackService) SubmitAssistance(studentID string, input dto.AssistanceFeedbackDTO) (models.AssistanceFeedback, error) {
	ticket, err := s.Repos.Ticket.GetByID(input.TicketID)
	if err != nil {
		return models.AssistanceFeedback{}, ErrTicketNotFound
	}
	if ticket.StudentID != studentID {
		return models.AssistanceFeedback{}, ErrNotTicketOwner
	}
	if ticket.Status != models.TicketStatusResolved {
		return models.AssistanceFeedback{}, ErrFeedbackNotEligible
	}

	exists, err := s.Repos.Feedback.HasAssistance(input.TicketID, studentID)
	if err != nil {
		return models.AssistanceFeedback{}, err
	}
	if exists {
		return models.AssistanceFeedback{}, ErrDuplicateFeedback
	}

	fb := models.AssistanceFeedback{
		TicketID:               input.TicketID,
		StudentID:              studentID,
		Rating:                 input.Rating,
		Satisfaction:           models.SatisfactionLevel(input.Satisfaction),
		ResponseTimeRating:     input.ResponseTimeRating,
		ServiceQualityRating:   input.ServiceQualityRating,
		StaffHelpfulnessRating: input.StaffHelpfulnessRating,
		Comment:                input.Comment,
		Suggestions:            input.Suggestions,
		WouldRecommend:         recommendOrDefault(input.WouldRecommend),
	}

	if err := s.Repos.Feedback.CreateAssistance(&fb); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.AssistanceFeedback{}, ErrDuplicateFeedback
		}
		return models.AssistanceFeedback{}, err
	}
	return fb, nil
}

func (s *FeedbackService) SubmitBorrowing(studentID string, input dto.BorrowingFeedbackDTO) (models.BorrowingFeedback, error) {
	req, err := s.Repos.Borrowing.GetByID(input.RequestID)
	if err != nil {
		return models.BorrowingFeedback{}, ErrRequestNotFound
	}
	if req.StudentID != studentID {
		return models.BorrowingFeedback{}, ErrNotRequestOwner
	}
	if req.Status != models.BorrowingStatusReturned {
		return models.BorrowingFeedback{}, ErrFeedbackNotEligible
	}

	exists, err := s.Repos.Feedback.HasBorrowing(input.RequestID, studentID)
	if err != nil {
		return models.BorrowingFeedback{}, err
	}
	if exists {
		return models.BorrowingFeedback{}, ErrDuplicateFeedback
	}

	fb := models.BorrowingFeedback{
		RequestID:                input.RequestID,
		StudentID:                studentID,
		Rating:                   input.Rating,
		Satisfaction:             models.SatisfactionLevel(input.Satisfaction),
		EquipmentConditionRating: input.EquipmentConditionRating,
		ServiceQualityRating:     input.ServiceQualityRating,
		ProcessEfficiencyRating:  input.ProcessEfficiencyRating,
		Comment:                  input.Comment,
		Suggestions:              input.Suggestions,
		EquipmentIssues:          input.EquipmentIssues,
		WouldRecommend:           recommendOrDefault(input.WouldRecommend),
	}

	if err := s.Repos.Feedback.CreateBorrowing(&fb); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.BorrowingFeedback{}, ErrDuplicateFeedback
		}
		return models.BorrowingFeedback{}, err
	}
	return fb, nil
}

// Browse serves the admin feedback page off the summary views.
func (s *FeedbackService) Browse(filter dto.FeedbackFilterDTO) ([]models.AssistanceFeedbackSummary, []models.BorrowingFeedbackSummary, error) {
	var assistance []models.AssistanceFeedbackSummary
	var borrowing []models.BorrowingFeedbackSummary
	var err error

	if filter.Kind == "" || filter.Kind == "assistance" {
		assistance, err = s.Repos.Feedback.AssistanceSummaries(filter, feedbackPageSize)
		if err != nil {
			return nil, nil, err
		}
	}
	if filter.Kind == "" || filter.Kind == "borrowing" {
		borrowing, err = s.Repos.Feedback.BorrowingSummaries(filter, feedbackPageSize)
		if err != nil {
			return nil, nil, err
		}
	}
	return assistance, borrowing, nil
}

// PendingForStudent lists what the student can still rate.
func (s *FeedbackService) PendingForStudent(studentID string) ([]models.AssistanceTicket, []models.BorrowingRequest, error) {
	tickets, err := s.Repos.Feedback.EligibleAssistance(studentID)
	if err != nil {
		return nil, nil, err
	}
	requests, err := s.Repos.Feedback.EligibleBorrowing(studentID)
	if err != nil {
		return nil, nil, err
	}
	return tickets, requests, nil
}

func recommendOrDefault(value *bool) bool {
	if value == nil {
		return true
	}
	return *value
}
