//go:build integration
// +build integration

package repositories

import (
	"testing"
	"time"

	"github.com/hwlab/portal-go/db"
	"github.com/hwlab/portal-go/internal/testutils"
	"github.com/hwlab/portal-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func setupBorrowingFixtures(t *testing.T) (models.Equipment, models.BorrowingRequest) {
	gormDB, cleanup := testutils.SetupPostgres()
	t.Cleanup(cleanup)
	db.InitWithGormDB(gormDB)
	db.Migrate()

	student := models.Student{StudentID: "ST001", Email: "a@b.edu", FirstName: "A", LastName: "B"}
	require.NoError(t, gormDB.Create(&student).Error)

	category := models.EquipmentCategory{Name: "Test"}
	require.NoError(t, gormDB.Create(&category).Error)

	item := models.Equipment{
		CategoryID:        category.ID,
		Name:              "Oscilloscope",
		SerialNumber:      "OSC-001",
		Status:            models.EquipmentStatusAvailable,
		QuantityAvailable: 5,
		TotalQuantity:     5,
	}
	require.NoError(t, gormDB.Create(&item).Error)

	today := datatypes.Date(time.Now())
	req := models.BorrowingRequest{
		RequestNumber:     "BR202601010001",
		StudentID:         "ST001",
		EquipmentID:       item.ID,
		QuantityRequested: 3,
		Purpose:           "lab",
		RequestedFrom:     today,
		RequestedTo:       today,
		Status:            models.BorrowingStatusApproved,
	}
	require.NoError(t, gormDB.Create(&req).Error)

	return item, req
}

func TestUpdateWithInventory_RoundTrip(t *testing.T) {
	item, req := setupBorrowingFixtures(t)
	repo := &DBBorrowingRepo{}

	req.Status = models.BorrowingStatusActive
	require.NoError(t, repo.UpdateWithInventory(&req, -3))

	var got models.Equipment
	require.NoError(t, db.DB.First(&got, item.ID).Error)
	assert.Equal(t, 2, got.QuantityAvailable)

	req.Status = models.BorrowingStatusReturned
	require.NoError(t, repo.UpdateWithInventory(&req, 3))

	require.NoError(t, db.DB.First(&got, item.ID).Error)
	assert.Equal(t, 5, got.QuantityAvailable)
}

func TestUpdateWithInventory_RejectsOverdraw(t *testing.T) {
	item, req := setupBorrowingFixtures(t)
	repo := &DBBorrowingRepo{}

	req.Status = models.BorrowingStatusActive
	err := repo.UpdateWithInventory(&req, -6)
	assert.ErrorIs(t, err, ErrInventoryExhausted)

	// Rolled back: the status change must not have stuck either.
	var got models.BorrowingRequest
	require.NoError(t, db.DB.First(&got, req.ID).Error)
	assert.Equal(t, models.BorrowingStatusApproved, got.Status)

	var item2 models.Equipment
	require.NoError(t, db.DB.First(&item2, item.ID).Error)
	assert.Equal(t, 5, item2.QuantityAvailable)
}
