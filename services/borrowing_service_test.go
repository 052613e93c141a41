package services

import (
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupBorrowingServiceMocks(t *testing.T) (*BorrowingService,
	*mock_repositories.MockBorrowingRepo,
	*mock_repositories.MockEquipmentRepo,
	*mock_repositories.MockStudentRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockBorrowing := mock_repositories.NewMockBorrowingRepo(ctrl)
	mockEquipment := mock_repositories.NewMockEquipmentRepo(ctrl)
	mockStudent := mock_repositories.NewMockStudentRepo(ctrl)
	repos := &repositories.Repos{
		Borrowing: mockBorrowing,
		Equipment: mockEquipment,
		Student:   mockStudent,
	}
	svc := NewBorrowingService(repos)
	return svc, mockBorrowing, mockEquipment, mockStudent
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func availableScope(quantity int) models.Equipment {
	return models.Equipment{
		ID:                5,
		Name:              "Digital Oscilloscope",
		Status:            models.EquipmentStatusAvailable,
		QuantityAvailable: quantity,
		TotalQuantity:     6,
	}
}

// --------------------- CreateRequest ---------------------
func TestCreateRequest_Success(t *testing.T) {
	svc, mockBorrowing, mockEquipment, _ := setupBorrowingServiceMocks(t)

	mockEquipment.EXPECT().GetByID(uint(5)).Return(availableScope(6), nil)

	var created models.BorrowingRequest
	mockBorrowing.EXPECT().Create(gomock.Any()).DoAndReturn(func(req *models.BorrowingRequest) error {
		created = *req
		return nil
	})

	input := dto.CreateBorrowingDTO{
		EquipmentID:   5,
		Quantity:      3,
		Purpose:       "Signals lab project",
		RequestedFrom: futureDate(1),
		RequestedTo:   futureDate(8),
	}
	req, err := svc.CreateRequest("ST001", input)
	assert.NoError(t, err)
	assert.Equal(t, models.BorrowingStatusPending, req.Status)
	assert.True(t, strings.HasPrefix(created.RequestNumber, "BR"))
	assert.Len(t, created.RequestNumber, 14)
}

func TestCreateRequest_ZeroQuantity(t *testing.T) {
	svc, _, _, _ := setupBorrowingServiceMocks(t)

	input := dto.CreateBorrowingDTO{EquipmentID: 5, Quantity: 0, Purpose: "p",
		RequestedFrom: futureDate(1), RequestedTo: futureDate(2)}
	_, err := svc.CreateRequest("ST001", input)
	assert.Equal(t, ErrInvalidQuantity, err)
}

// Self-service needs at least one full day between pickup and return.
func TestCreateRequest_SameDayWindowRejected(t *testing.T) {
	svc, _, _, _ := setupBorrowingServiceMocks(t)

	day := futureDate(1)
	input := dto.CreateBorrowingDTO{EquipmentID: 5, Quantity: 1, Purpose: "p",
		RequestedFrom: day, RequestedTo: day}
	_, err := svc.CreateRequest("ST001", input)
	assert.Equal(t, ErrInvalidDateRange, err)
}

func TestCreateRequest_PastDateRejected(t *testing.T) {
	svc, _, _, _ := setupBorrowingServiceMocks(t)

	input := dto.CreateBorrowingDTO{EquipmentID: 5, Quantity: 1, Purpose: "p",
		RequestedFrom: futureDate(-1), RequestedTo: futureDate(3)}
	_, err := svc.CreateRequest("ST001", input)
	assert.Equal(t, ErrPastDate, err)
}

func TestCreateRequest_InsufficientStock(t *testing.T) {
	svc, _, mockEquipment, _ := setupBorrowingServiceMocks(t)

	mockEquipment.EXPECT().GetByID(uint(5)).Return(availableScope(2), nil)

	input := dto.CreateBorrowingDTO{EquipmentID: 5, Quantity: 3, Purpose: "p",
		RequestedFrom: futureDate(1), RequestedTo: futureDate(3)}
	_, err := svc.CreateRequest("ST001", input)
	assert.Equal(t, ErrInsufficientStock, err)
}

func TestCreateRequest_EquipmentUnderMaintenance(t *testing.T) {
	svc, _, mockEquipment, _ := setupBorrowingServiceMocks(t)

	item := availableScope(6)
	item.Status = models.EquipmentStatusMaintenance
	mockEquipment.EXPECT().GetByID(uint(5)).Return(item, nil)

	input := dto.CreateBorrowingDTO{EquipmentID: 5, Quantity: 1, Purpose: "p",
		RequestedFrom: futureDate(1), RequestedTo: futureDate(3)}
	_, err := svc.CreateRequest("ST001", input)
	assert.Equal(t, ErrEquipmentUnavailable, err)
}

// --------------------- CreatePhoneRequest ---------------------
// Phone requests allow same-day pickup and return.
func TestCreatePhoneRequest_SameDayWindowAllowed(t *testing.T) {
	svc, mockBorrowing, mockEquipment, mockStudent := setupBorrowingServiceMocks(t)

	mockStudent.EXPECT().GetByStudentID("ST002").Return(models.Student{StudentID: "ST002"}, nil)
	mockEquipment.EXPECT().GetByID(uint(5)).Return(availableScope(6), nil)
	mockBorrowing.EXPECT().Create(gomock.Any()).Return(nil)

	day := futureDate(0)
	input := dto.PhoneBorrowingDTO{
		StudentID: "ST002", EquipmentID: 5, Quantity: 1, Purpose: "Demo",
		RequestedFrom: day, RequestedTo: day,
		CallerNotes: "Picking up at noon",
	}
	req, err := svc.CreatePhoneRequest(input)
	assert.NoError(t, err)
	assert.True(t, req.PhoneRequest)
	assert.Equal(t, "Picking up at noon", req.CallerNotes)
}

func TestCreatePhoneRequest_ReversedWindowRejected(t *testing.T) {
	svc, _, _, _ := setupBorrowingServiceMocks(t)

	input := dto.PhoneBorrowingDTO{StudentID: "ST002", EquipmentID: 5, Quantity: 1, Purpose: "p",
		RequestedFrom: futureDate(3), RequestedTo: futureDate(1)}
	_, err := svc.CreatePhoneRequest(input)
	assert.Equal(t, ErrInvalidDateRange, err)
}

// --------------------- UpdateStatus ---------------------
func pendingRequest(quantity int) models.BorrowingRequest {
	return models.BorrowingRequest{
		ID:                10,
		StudentID:         "ST001",
		EquipmentID:       5,
		QuantityRequested: quantity,
		Status:            models.BorrowingStatusPending,
	}
}

func TestUpdateStatus_ApprovedStampsApprover(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	mockBorrowing.EXPECT().GetByID(uint(10)).Return(pendingRequest(3), nil)
	mockBorrowing.EXPECT().UpdateWithInventory(gomock.Any(), 0).DoAndReturn(
		func(req *models.BorrowingRequest, delta int) error {
			assert.Equal(t, models.BorrowingStatusApproved, req.Status)
			assert.Equal(t, uint(7), *req.ApprovedBy)
			assert.NotNil(t, req.ApprovedAt)
			return nil
		})

	_, err := svc.UpdateStatus(7, 10, dto.UpdateBorrowingDTO{Status: "approved"})
	assert.NoError(t, err)
}

func TestUpdateStatus_ActiveTakesStock(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	req := pendingRequest(3)
	req.Status = models.BorrowingStatusApproved
	mockBorrowing.EXPECT().GetByID(uint(10)).Return(req, nil)
	mockBorrowing.EXPECT().UpdateWithInventory(gomock.Any(), -3).DoAndReturn(
		func(updated *models.BorrowingRequest, delta int) error {
			assert.NotNil(t, updated.BorrowedAt)
			assert.NotNil(t, updated.DueDate)
			return nil
		})

	_, err := svc.UpdateStatus(7, 10, dto.UpdateBorrowingDTO{Status: "active"})
	assert.NoError(t, err)
}

func TestUpdateStatus_ReturnedRestocks(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	req := pendingRequest(3)
	req.Status = models.BorrowingStatusActive
	mockBorrowing.EXPECT().GetByID(uint(10)).Return(req, nil)
	mockBorrowing.EXPECT().UpdateWithInventory(gomock.Any(), 3).DoAndReturn(
		func(updated *models.BorrowingRequest, delta int) error {
			assert.NotNil(t, updated.ReturnedAt)
			return nil
		})

	_, err := svc.UpdateStatus(7, 10, dto.UpdateBorrowingDTO{Status: "returned"})
	assert.NoError(t, err)
}

// Saving the same active status twice must not take stock twice.
func TestUpdateStatus_ActiveToActiveIsNeutral(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	req := pendingRequest(3)
	req.Status = models.BorrowingStatusActive
	mockBorrowing.EXPECT().GetByID(uint(10)).Return(req, nil)
	mockBorrowing.EXPECT().UpdateWithInventory(gomock.Any(), 0).Return(nil)

	_, err := svc.UpdateStatus(7, 10, dto.UpdateBorrowingDTO{Status: "active", Notes: "still out"})
	assert.NoError(t, err)
}

func TestUpdateStatus_OverdueReturnRestocks(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	req := pendingRequest(2)
	req.Status = models.BorrowingStatusOverdue
	mockBorrowing.EXPECT().GetByID(uint(10)).Return(req, nil)
	mockBorrowing.EXPECT().UpdateWithInventory(gomock.Any(), 2).Return(nil)

	_, err := svc.UpdateStatus(7, 10, dto.UpdateBorrowingDTO{Status: "returned"})
	assert.NoError(t, err)
}

// A return against a corrupted count gets its own banner instead of the
// out-of-stock one.
func TestUpdateStatus_ReturnBeyondTotalIsOverflow(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	req := pendingRequest(3)
	req.Status = models.BorrowingStatusActive
	mockBorrowing.EXPECT().GetByID(uint(10)).Return(req, nil)
	mockBorrowing.EXPECT().UpdateWithInventory(gomock.Any(), 3).
		Return(repositories.ErrInventoryExhausted)

	_, err := svc.UpdateStatus(7, 10, dto.UpdateBorrowingDTO{Status: "returned"})
	assert.Equal(t, ErrStockOverflow, err)
}

func TestUpdateStatus_InventoryExhausted(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	req := pendingRequest(4)
	req.Status = models.BorrowingStatusApproved
	mockBorrowing.EXPECT().GetByID(uint(10)).Return(req, nil)
	mockBorrowing.EXPECT().UpdateWithInventory(gomock.Any(), -4).
		Return(repositories.ErrInventoryExhausted)

	_, err := svc.UpdateStatus(7, 10, dto.UpdateBorrowingDTO{Status: "active"})
	assert.Equal(t, ErrInsufficientStock, err)
}

// --------------------- CancelRequest ---------------------
func TestCancelRequest_PendingLandsInRejected(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	mockBorrowing.EXPECT().GetByID(uint(10)).Return(pendingRequest(1), nil)
	mockBorrowing.EXPECT().Save(gomock.Any()).DoAndReturn(func(req *models.BorrowingRequest) error {
		assert.Equal(t, models.BorrowingStatusRejected, req.Status)
		return nil
	})

	req, err := svc.CancelRequest("ST001", 10)
	assert.NoError(t, err)
	assert.Equal(t, models.BorrowingStatusRejected, req.Status)
}

func TestCancelRequest_ActiveCannotBeCancelled(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	req := pendingRequest(1)
	req.Status = models.BorrowingStatusActive
	mockBorrowing.EXPECT().GetByID(uint(10)).Return(req, nil)

	_, err := svc.CancelRequest("ST001", 10)
	assert.Equal(t, ErrCannotCancelRequest, err)
}

func TestCancelRequest_NotOwner(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	mockBorrowing.EXPECT().GetByID(uint(10)).Return(pendingRequest(1), nil)

	_, err := svc.CancelRequest("ST002", 10)
	assert.Equal(t, ErrNotRequestOwner, err)
}

func TestGet_NotFound(t *testing.T) {
	svc, mockBorrowing, _, _ := setupBorrowingServiceMocks(t)

	mockBorrowing.EXPECT().GetByID(uint(99)).Return(models.BorrowingRequest{}, gorm.ErrRecordNotFound)

	_, err := svc.Get(99)
	assert.Equal(t, ErrRequestNotFound, err)
}
