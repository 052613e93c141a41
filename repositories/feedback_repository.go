package repositories

import (
	"time"

	"github.com/hwlab/portal-go/db"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/models"
)

type FeedbackRepo interface {
	HasAssistance(ticketID uint, studentID string) (bool, error)
	CreateAssistance(fb *models.AssistanceFeedback) error
	HasBorrowing(requestID uint, studentID string) (bool, error)
	CreateBorrowing(fb *models.BorrowingFeedback) error
	AssistanceSummaries(filter dto.FeedbackFilterDTO, limit int) ([]models.AssistanceFeedbackSummary, error)
	BorrowingSummaries(filter dto.FeedbackFilterDTO, limit int) ([]models.BorrowingFeedbackSummary, error)
	AssistanceStats(from, to time.Time) (dto.FeedbackStats, error)
	BorrowingStats(from, to time.Time) (dto.FeedbackStats, error)
	EligibleAssistance(studentID string) ([]models.AssistanceTicket, error)
	EligibleBorrowing(studentID string) ([]models.BorrowingRequest, error)
}

type DBFeedbackRepo struct{}

func (r *DBFeedbackRepo) HasAssistance(ticketID uint, studentID string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.AssistanceFeedback{}).
		Where("ticket_id = ? AND student_id = ?", ticketID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBFeedbackRepo) CreateAssistance(fb *models.AssistanceFeedback) error {
	return db.DB.Create(fb).Error
}

func (r *DBFeedbackRepo) HasBorrowing(requestID uint, studentID string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.BorrowingFeedback{}).
		Where("request_id = ? AND student_id = ?", requestID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBFeedbackRepo) CreateBorrowing(fb *models.BorrowingFeedback) error {
	return db.DB.Create(fb).Error
}

func (r *DBFeedbackRepo) AssistanceSummaries(filter dto.FeedbackFilterDTO, limit int) ([]models.AssistanceFeedbackSummary, error) {
	var rows []models.AssistanceFeedbackSummary
	query := db.DB.Order("feedback_date desc").Limit(limit)
	if filter.Satisfaction != "" {
		query = query.Where("satisfaction = ?", filter.Satisfaction)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	err := query.Find(&rows).Error
	return rows, err
}

func (r *DBFeedbackRepo) BorrowingSummaries(filter dto.FeedbackFilterDTO, limit int) ([]models.BorrowingFeedbackSummary, error) {
	var rows []models.BorrowingFeedbackSummary
	query := db.DB.Order("feedback_date desc").Limit(limit)
	if filter.Satisfaction != "" {
		query = query.Where("satisfaction = ?", filter.Satisfaction)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	err := query.Find(&rows).Error
	return rows, err
}

func (r *DBFeedbackRepo) AssistanceStats(from, to time.Time) (dto.FeedbackStats, error) {
	var stats dto.FeedbackStats
	err := db.DB.Raw(`
		SELECT
		COUNT(*) AS count,
		COALESCE(AVG(rating), 0) AS avg_rating,
		COALESCE(AVG(CASE WHEN would_recommend THEN 100.0 ELSE 0 END), 0) AS recommend_pct,
		COUNT(*) FILTER (WHERE satisfaction IN ('satisfied', 'very_satisfied')) AS satisfied_count
		FROM assistance_feedback
		WHERE created_at BETWEEN ? AND ?`, from, to).Scan(&stats).Error
	return stats, err
}

func (r *DBFeedbackRepo) BorrowingStats(from, to time.Time) (dto.FeedbackStats, error) {
	var stats dto.FeedbackStats
	err := db.DB.Raw(`
		SELECT
		COUNT(*) AS count,
		COALESCE(AVG(rating), 0) AS avg_rating,
		COALESCE(AVG(CASE WHEN would_recommend THEN 100.0 ELSE 0 END), 0) AS recommend_pct,
		COUNT(*) FILTER (WHERE satisfaction IN ('satisfied', 'very_satisfied')) AS satisfied_count
		FROM borrowing_feedback
		WHERE created_at BETWEEN ? AND ?`, from, to).Scan(&stats).Error
	return stats, err
}

// EligibleAssistance lists resolved tickets the student has not rated yet.
func (r *DBFeedbackRepo) EligibleAssistance(studentID string) ([]models.AssistanceTicket, error) {
	var tickets []models.AssistanceTicket
	err := db.DB.Preload("Type").
		Where("student_id = ? AND status = ?", studentID, models.TicketStatusResolved).
		Where("id NOT IN (SELECT ticket_id FROM assistance_feedback WHERE student_id = ?)", studentID).
		Order("created_at desc").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBFeedbackRepo) EligibleBorrowing(studentID string) ([]models.BorrowingRequest, error) {
	var reqs []models.BorrowingRequest
	err := db.DB.Preload("Equipment").
		Where("student_id = ? AND status = ?", studentID, models.BorrowingStatusReturned).
		Where("id NOT IN (SELECT request_id FROM borrowing_feedback WHERE student_id = ?)", studentID).
		Order("created_at desc").
		Find(&reqs).Error
	return reqs, err
}
