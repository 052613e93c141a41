package services

import (
	"time"

	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/utils"
)

const defaultReportDays = 30

type ReportService struct {
	Repos *repositories.Repos
}

func NewReportService(repos *repositories.Repos) *ReportService {
	return &ReportService{Repos: repos}
}

// resolveRange parses the requested window, defaulting to the trailing
// thirty days. The upper bound is pushed to end of day so "to=today"
// includes today's rows.
func (s *ReportService) resolveRange(input dto.ReportRangeDTO) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -defaultReportDays)
	to := now

	if input.From != "" {
		parsed, err := utils.ParseDate(input.From)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		from = parsed
	}
	if input.To != "" {
		parsed, err := utils.ParseDate(input.To)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		to = parsed.Add(24*time.Hour - time.Second)
	}
	return from, to, nil
}

// Reports that touch loan state sweep overdue rows first so the
// aggregates reflect reality rather than the last admin page load.

func (s *ReportService) Overview(input dto.ReportRangeDTO) (dto.OverviewStats, error) {
	from, to, err := s.resolveRange(input)
	if err != nil {
		return dto.OverviewStats{}, err
	}
	if _, err := s.Repos.Borrowing.MarkOverdue(time.Now()); err != nil {
		return dto.OverviewStats{}, err
	}
	return s.Repos.Report.Overview(from, to)
}

func (s *ReportService) Tickets(input dto.ReportRangeDTO) (dto.TicketAnalytics, error) {
	from, to, err := s.resolveRange(input)
	if err != nil {
		return dto.TicketAnalytics{}, err
	}
	return s.Repos.Report.TicketAnalytics(from, to)
}

func (s *ReportService) Equipment(input dto.ReportRangeDTO) (dto.EquipmentAnalytics, error) {
	from, to, err := s.resolveRange(input)
	if err != nil {
		return dto.EquipmentAnalytics{}, err
	}
	if _, err := s.Repos.Borrowing.MarkOverdue(time.Now()); err != nil {
		return dto.EquipmentAnalytics{}, err
	}
	return s.Repos.Report.EquipmentAnalytics(from, to)
}

func (s *ReportService) Students(input dto.ReportRangeDTO) (dto.StudentAnalytics, error) {
	from, to, err := s.resolveRange(input)
	if err != nil {
		return dto.StudentAnalytics{}, err
	}
	return s.Repos.Report.StudentAnalytics(from, to)
}

func (s *ReportService) Feedback(input dto.ReportRangeDTO) (dto.FeedbackStats, dto.FeedbackStats, error) {
	from, to, err := s.resolveRange(input)
	if err != nil {
		return dto.FeedbackStats{}, dto.FeedbackStats{}, err
	}
	assistance, err := s.Repos.Feedback.AssistanceStats(from, to)
	if err != nil {
		return dto.FeedbackStats{}, dto.FeedbackStats{}, err
	}
	borrowing, err := s.Repos.Feedback.BorrowingStats(from, to)
	if err != nil {
		return dto.FeedbackStats{}, dto.FeedbackStats{}, err
	}
	return assistance, borrowing, nil
}

func (s *ReportService) Dashboard() (dto.DashboardCounts, error) {
	if _, err := s.Repos.Borrowing.MarkOverdue(time.Now()); err != nil {
		return dto.DashboardCounts{}, err
	}
	return s.Repos.Report.DashboardCounts()
}
