package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupReportServiceMocks(t *testing.T) (*ReportService,
	*mock_repositories.MockReportRepo,
	*mock_repositories.MockBorrowingRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockReport := mock_repositories.NewMockReportRepo(ctrl)
	mockBorrowing := mock_repositories.NewMockBorrowingRepo(ctrl)
	repos := &repositories.Repos{
		Report:    mockReport,
		Borrowing: mockBorrowing,
	}
	svc := NewReportService(repos)
	return svc, mockReport, mockBorrowing
}

func TestOverview_SweepsOverdueFirst(t *testing.T) {
	svc, mockReport, mockBorrowing := setupReportServiceMocks(t)

	gomock.InOrder(
		mockBorrowing.EXPECT().MarkOverdue(gomock.Any()).Return(int64(2), nil),
		mockReport.EXPECT().Overview(gomock.Any(), gomock.Any()).
			Return(dto.OverviewStats{TotalTickets: 12}, nil),
	)

	stats, err := svc.Overview(dto.ReportRangeDTO{})
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalTickets)
}

// Omitting the range falls back to the trailing thirty days.
func TestTickets_DefaultRange(t *testing.T) {
	svc, mockReport, _ := setupReportServiceMocks(t)

	mockReport.EXPECT().TicketAnalytics(gomock.Any(), gomock.Any()).DoAndReturn(
		func(from, to time.Time) (dto.TicketAnalytics, error) {
			days := to.Sub(from).Hours() / 24
			assert.InDelta(t, 30, days, 0.01)
			return dto.TicketAnalytics{}, nil
		})

	_, err := svc.Tickets(dto.ReportRangeDTO{})
	assert.NoError(t, err)
}

// An explicit "to" date covers the whole day, not just midnight.
func TestTickets_UpperBoundIsEndOfDay(t *testing.T) {
	svc, mockReport, _ := setupReportServiceMocks(t)

	mockReport.EXPECT().TicketAnalytics(gomock.Any(), gomock.Any()).DoAndReturn(
		func(from, to time.Time) (dto.TicketAnalytics, error) {
			assert.Equal(t, 23, to.Hour())
			assert.Equal(t, 59, to.Minute())
			assert.Equal(t, 59, to.Second())
			return dto.TicketAnalytics{}, nil
		})

	_, err := svc.Tickets(dto.ReportRangeDTO{From: "2026-08-01", To: "2026-08-15"})
	assert.NoError(t, err)
}

func TestTickets_BadDate(t *testing.T) {
	svc, _, _ := setupReportServiceMocks(t)

	_, err := svc.Tickets(dto.ReportRangeDTO{From: "15-08-2026"})
	assert.Equal(t, ErrInvalidDate, err)
}
