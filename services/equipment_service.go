package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/hwlab/portal-go/dto"
	"github.com/hwlab/portal-go/minio"
	"github.com/hwlab/portal-go/models"
	"github.com/hwlab/portal-go/repositories"
	minioSDK "github.com/minio/minio-go/v7"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

type EquipmentService struct {
	Repos *repositories.Repos
}

func NewEquipmentService(repos *repositories.Repos) *EquipmentService {
	return &EquipmentService{Repos: repos}
}

// Add registers new stock. Everything starts on the shelf, so available
// equals total.
func (s *EquipmentService) Add(input dto.CreateEquipmentDTO) (models.Equipment, error) {
	item := models.Equipment{
		CategoryID:        input.CategoryID,
		Name:              input.Name,
		Model:             input.Model,
		SerialNumber:      input.SerialNumber,
		Status:            models.EquipmentStatusAvailable,
		QuantityAvailable: input.Quantity,
		TotalQuantity:     input.Quantity,
	}

	if err := s.Repos.Equipment.Create(&item); err != nil {
		return models.Equipment{}, err
	}
	return item, nil
}

func (s *EquipmentService) Get(id uint) (models.Equipment, error) {
	item, err := s.Repos.Equipment.GetByID(id)
	if err != nil {
		return models.Equipment{}, ErrEquipmentNotFound
	}
	return item, nil
}

func (s *EquipmentService) List() ([]models.Equipment, error) {
	return s.Repos.Equipment.List()
}

func (s *EquipmentService) ListInStock() ([]models.Equipment, error) {
	return s.Repos.Equipment.ListInStock()
}

func (s *EquipmentService) Categories() ([]models.EquipmentCategory, error) {
	return s.Repos.Equipment.Categories()
}

func (s *EquipmentService) UpdateStatus(id uint, status string) error {
	if _, err := s.Repos.Equipment.GetByID(id); err != nil {
		return ErrEquipmentNotFound
	}
	return s.Repos.Equipment.UpdateStatus(id, models.EquipmentStatus(status))
}

// UploadPhoto stores the image in the equipment bucket under a random
// object name and records that name on the row.
func (s *EquipmentService) UploadPhoto(ctx context.Context, id uint, reader io.Reader, size int64, contentType string) (string, error) {
	if _, err := s.Repos.Equipment.GetByID(id); err != nil {
		return "", ErrEquipmentNotFound
	}

	objectName := uuid.NewString()
	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	if err := s.Repos.Equipment.SetPhotoObject(id, objectName); err != nil {
		return "", err
	}
	return objectName, nil
}

// PhotoURL returns a short-lived presigned link for the stored photo.
func (s *EquipmentService) PhotoURL(ctx context.Context, id uint) (string, error) {
	item, err := s.Repos.Equipment.GetByID(id)
	if err != nil {
		return "", ErrEquipmentNotFound
	}
	if item.PhotoObject == "" {
		return "", nil
	}

	url, err := minio.Client.PresignedGetObject(ctx, minio.BucketName, item.PhotoObject, 15*time.Minute, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}
