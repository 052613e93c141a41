package services

import (
	"errors"
	"time"

	"github.com/hwlab/portal-go/config"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	"github.com/hwlab/portal-go/utils"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound      = errors.New("borrowing request not found")
	ErrNotRequestOwner      = errors.New("request belongs to another student")
	ErrCannotCancelRequest  = errors.New("only pending requests can be cancelled")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidDate          = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange     = errors.New("return date must be after the borrow date")
	ErrPastDate             = errors.New("borrow date cannot be in the past")
	ErrEquipmentUnavailable = errors.New("equipment not found or not available")
	ErrInsufficientStock    = errors.New("not enough units in stock")
	ErrStockOverflow        = errors.New("return would exceed the recorded total quantity")
)

type BorrowingService struct {
	Repos *repositories.Repos
}

func NewBorrowingService(repos *repositories.Repos) *BorrowingService {
	return &BorrowingService{Repos: repos}
}

func (s *BorrowingService) CreateRequest(studentID string, input dto.CreateBorrowingDTO) (models.BorrowingRequest, error) {
	if input.Quantity < 1 {
		return models.BorrowingRequest{}, ErrInvalidQuantity
	}

	from, to, err := parseRange(input.RequestedFrom, input.RequestedTo)
	if err != nil {
		return models.BorrowingRequest{}, err
	}
	// Self-service requires a strictly positive loan window.
	if !from.Before(to) {
		return models.BorrowingRequest{}, ErrInvalidDateRange
	}
	if from.Before(utils.Today()) {
		return models.BorrowingRequest{}, ErrPastDate
	}

	if err := s.checkStock(input.EquipmentID, input.Quantity); err != nil {
		return models.BorrowingRequest{}, err
	}

	req := models.BorrowingRequest{
		StudentID:         studentID,
		EquipmentID:       input.EquipmentID,
		QuantityRequested: input.Quantity,
		Purpose:           input.Purpose,
		RequestedFrom:     utils.ToDate(from),
		RequestedTo:       utils.ToDate(to),
		Status:            models.BorrowingStatusPending,
	}

	if err := s.createWithNumber(&req); err != nil {
		return models.BorrowingRequest{}, err
	}
	return req, nil
}

// CreatePhoneRequest is the staff-entered variant. Same-day pickups phoned
// in are legitimate, so the window check allows from == to and skips the
// past-date rule.
func (s *BorrowingService) CreatePhoneRequest(input dto.PhoneBorrowingDTO) (models.BorrowingRequest, error) {
	if input.Quantity < 1 {
		return models.BorrowingRequest{}, ErrInvalidQuantity
	}

	from, to, err := parseRange(input.RequestedFrom, input.RequestedTo)
	if err != nil {
		return models.BorrowingRequest{}, err
	}
	if from.After(to) {
		return models.BorrowingRequest{}, ErrInvalidDateRange
	}

	if _, err := s.Repos.Student.GetByStudentID(input.StudentID); err != nil {
		return models.BorrowingRequest{}, ErrStudentNotFound
	}
	if err := s.checkStock(input.EquipmentID, input.Quantity); err != nil {
		return models.BorrowingRequest{}, err
	}

	req := models.BorrowingRequest{
		StudentID:         input.StudentID,
		EquipmentID:       input.EquipmentID,
		QuantityRequested: input.Quantity,
		Purpose:           input.Purpose,
		RequestedFrom:     utils.ToDate(from),
		RequestedTo:       utils.ToDate(to),
		Status:            models.BorrowingStatusPending,
		PhoneRequest:      true,
		CallerNotes:       input.CallerNotes,
	}

	if err := s.createWithNumber(&req); err != nil {
		return models.BorrowingRequest{}, err
	}
	return req, nil
}

func (s *BorrowingService) checkStock(equipmentID uint, quantity int) error {
	item, err := s.Repos.Equipment.GetByID(equipmentID)
	if err != nil || item.Status != models.EquipmentStatusAvailable {
		return ErrEquipmentUnavailable
	}
	if quantity > item.QuantityAvailable {
		return ErrInsufficientStock
	}
	return nil
}

func (s *BorrowingService) createWithNumber(req *models.BorrowingRequest) error {
	for attempt := 0; attempt < config.NumberAttempts; attempt++ {
		req.RequestNumber = utils.GenerateRequestNumber(time.Now())
		err := s.Repos.Borrowing.Create(req)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return ErrNumbersExhausted
}

func (s *BorrowingService) ListByStudent(studentID string) ([]models.BorrowingRequest, error) {
	return s.Repos.Borrowing.FindByStudent(studentID)
}

func (s *BorrowingService) ListRecent(limit int) ([]models.BorrowingRequest, error) {
	return s.Repos.Borrowing.FindRecent(limit)
}

func (s *BorrowingService) Get(id uint) (models.BorrowingRequest, error) {
	req, err := s.Repos.Borrowing.GetByID(id)
	if err != nil {
		return models.BorrowingRequest{}, ErrRequestNotFound
	}
	return req, nil
}

// UpdateStatus moves a request through its lifecycle and applies the
// matching stock adjustment in the same transaction. Going active takes
// units off the shelf; a return from active or overdue puts them back.
func (s *BorrowingService) UpdateStatus(adminID uint, id uint, input dto.UpdateBorrowingDTO) (models.BorrowingRequest, error) {
	req, err := s.Repos.Borrowing.GetByID(id)
	if err != nil {
		return models.BorrowingRequest{}, ErrRequestNotFound
	}

	oldStatus := req.Status
	newStatus := models.BorrowingStatus(input.Status)
	now := time.Now()

	switch newStatus {
	case models.BorrowingStatusApproved:
		req.ApprovedBy = &adminID
		req.ApprovedAt = &now
	case models.BorrowingStatusActive:
		if oldStatus != models.BorrowingStatusActive {
			borrowedAt := now
			if input.BorrowedAt != nil {
				parsed, err := utils.ParseDate(*input.BorrowedAt)
				if err != nil {
					return models.BorrowingRequest{}, ErrInvalidDate
				}
				borrowedAt = parsed
			}
			dueDate := time.Time(req.RequestedTo)
			if input.DueDate != nil {
				parsed, err := utils.ParseDate(*input.DueDate)
				if err != nil {
					return models.BorrowingRequest{}, ErrInvalidDate
				}
				dueDate = parsed
			}
			req.BorrowedAt = &borrowedAt
			req.DueDate = &dueDate
		}
	case models.BorrowingStatusReturned:
		req.ReturnedAt = &now
	}

	req.Status = newStatus
	if input.Notes != "" {
		req.Notes = input.Notes
	}

	delta := models.InventoryDelta(oldStatus, newStatus, req.QuantityRequested)
	if err := s.Repos.Borrowing.UpdateWithInventory(&req, delta); err != nil {
		if errors.Is(err, repositories.ErrInventoryExhausted) {
			if delta > 0 {
				return models.BorrowingRequest{}, ErrStockOverflow
			}
			return models.BorrowingRequest{}, ErrInsufficientStock
		}
		return models.BorrowingRequest{}, err
	}

	return req, nil
}

// CancelRequest lets a student withdraw a request that the lab has not
// acted on yet. The row lands in rejected, same as a staff denial.
func (s *BorrowingService) CancelRequest(studentID string, id uint) (models.BorrowingRequest, error) {
	req, err := s.Repos.Borrowing.GetByID(id)
	if err != nil {
		return models.BorrowingRequest{}, ErrRequestNotFound
	}
	if req.StudentID != studentID {
		return models.BorrowingRequest{}, ErrNotRequestOwner
	}
	if req.Status != models.BorrowingStatusPending {
		return models.BorrowingRequest{}, ErrCannotCancelRequest
	}

	req.Status = models.BorrowingStatusRejected
	if err := s.Repos.Borrowing.Save(&req); err != nil {
		return models.BorrowingRequest{}, err
	}
	return req, nil
}

// SweepOverdue is called on demand before dashboards and reports.
func (s *BorrowingService) SweepOverdue() (int64, error) {
	return s.Repos.Borrowing.MarkOverdue(time.Now())
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := utils.ParseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	to, err := utils.ParseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return from, to, nil
}
